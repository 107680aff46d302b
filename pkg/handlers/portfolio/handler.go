package portfolio

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/Marcus-dot/project-dashboard-sub000/pkg/adapters"
	"github.com/Marcus-dot/project-dashboard-sub000/pkg/models/api"
	"github.com/Marcus-dot/project-dashboard-sub000/pkg/models/domain"
	"github.com/Marcus-dot/project-dashboard-sub000/pkg/services/portfolio"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handler serves the project-scoped endpoints: calculator runs recorded
// against a project, project health and the portfolio summary.
type Handler struct {
	portfolio portfolio.ManagementService
}

func NewHandler(portfolio portfolio.ManagementService) *Handler {
	return &Handler{portfolio: portfolio}
}

func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.portfolio.ListProjects(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	response := make([]api.Project, 0, len(projects))
	for _, p := range projects {
		response = append(response, adapters.MapProjectDomainToApi(p))
	}
	writeJSON(w, r, http.StatusOK, response)
}

func (h *Handler) UpsertProject(w http.ResponseWriter, r *http.Request) {
	var req api.UpsertProjectRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	project := domain.Project{
		Name:     chi.URLParam(r, "project"),
		Status:   domain.ProjectStatus(req.Status),
		Priority: domain.ProjectPriority(req.Priority),
	}
	if err := h.portfolio.UpsertProject(r.Context(), project); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, adapters.MapProjectDomainToApi(project))
}

func (h *Handler) RecordNPV(w http.ResponseWriter, r *http.Request) {
	var req api.NPVRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if req.CashFlows == nil {
		writeError(w, r, &domain.InputShapeError{Field: "cash_flows", Reason: "must be an array"})
		return
	}
	if req.PeriodType != "" && !domain.PeriodType(req.PeriodType).IsValid() {
		writeError(w, r, &domain.InputShapeError{Field: "period_type", Reason: "must be one of years, quarters, months, weeks"})
		return
	}

	result, err := h.portfolio.RecordNPV(r.Context(), chi.URLParam(r, "project"), adapters.MapNPVRequestApiToDomain(req))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, adapters.MapNPVResultDomainToApi(*result))
}

func (h *Handler) RecordRiskAssessment(w http.ResponseWriter, r *http.Request) {
	var req api.RiskRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.portfolio.RecordRiskAssessment(
		r.Context(),
		chi.URLParam(r, "project"),
		adapters.MapRiskRequestApiToDomain(req),
	)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, adapters.MapRiskResultDomainToApi(*result))
}

func (h *Handler) RecordWastage(w http.ResponseWriter, r *http.Request) {
	var req api.WastageRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.portfolio.RecordWastage(
		r.Context(),
		chi.URLParam(r, "project"),
		adapters.MapWastageRequestApiToDomain(req),
	)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, adapters.MapWastageResultDomainToApi(*result))
}

func (h *Handler) ListCalculations(w http.ResponseWriter, r *http.Request) {
	calcs, err := h.portfolio.ListCalculations(
		r.Context(),
		chi.URLParam(r, "project"),
		r.URL.Query().Get("kind"),
	)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response := make([]api.Calculation, 0, len(calcs))
	for _, c := range calcs {
		response = append(response, adapters.MapCalculationDomainToApi(c))
	}
	writeJSON(w, r, http.StatusOK, response)
}

func (h *Handler) GetProjectHealth(w http.ResponseWriter, r *http.Request) {
	result, err := h.portfolio.GetProjectHealth(r.Context(), chi.URLParam(r, "project"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, adapters.MapProjectHealthDomainToApi(*result))
}

func (h *Handler) GetPortfolioSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.portfolio.GetPortfolioSummary(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, adapters.MapPortfolioSummaryDomainToApi(*summary))
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &domain.InputShapeError{Field: "body", Reason: "malformed JSON payload"}
	}
	return nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		shapeErr  *domain.InputShapeError
		domainErr *domain.DomainError
	)

	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &shapeErr):
		status = http.StatusBadRequest
	case errors.As(err, &domainErr):
		status = http.StatusUnprocessableEntity
	case strings.Contains(err.Error(), "not found"):
		status = http.StatusNotFound
	default:
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("portfolio request failed")
	}

	writeJSON(w, r, status, api.ErrorResponse{Error: err.Error()})
}
