package calc

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Marcus-dot/project-dashboard-sub000/pkg/adapters"
	"github.com/Marcus-dot/project-dashboard-sub000/pkg/models/api"
	"github.com/Marcus-dot/project-dashboard-sub000/pkg/models/domain"
	"github.com/Marcus-dot/project-dashboard-sub000/pkg/services/finance"
	"github.com/Marcus-dot/project-dashboard-sub000/pkg/services/health"
	"github.com/Marcus-dot/project-dashboard-sub000/pkg/services/risk"
	"github.com/Marcus-dot/project-dashboard-sub000/pkg/services/wastage"
	"github.com/rs/zerolog"
)

// Handler serves the stateless calculator endpoints. Every call
// computes a fresh result from the request payload alone; nothing is
// read from or written to the project store.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) ComputeNPV(w http.ResponseWriter, r *http.Request) {
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

	result, err := finance.EvaluateSeries(adapters.MapNPVRequestApiToDomain(req))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, adapters.MapNPVResultDomainToApi(*result))
}

func (h *Handler) ComputeRiskScore(w http.ResponseWriter, r *http.Request) {
	var req api.RiskRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	factors := adapters.MapRiskRequestApiToDomain(req)
	if factors.Empty() {
		writeError(w, r, &domain.InputShapeError{Field: "factors", Reason: "at least one risk factor is required"})
		return
	}

	writeJSON(w, r, http.StatusOK, adapters.MapRiskResultDomainToApi(risk.Assess(factors)))
}

func (h *Handler) ComputeWastage(w http.ResponseWriter, r *http.Request) {
	var req api.WastageRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := wastage.Evaluate(adapters.MapWastageRequestApiToDomain(req))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, adapters.MapWastageResultDomainToApi(*result))
}

func (h *Handler) ComputeHealthScore(w http.ResponseWriter, r *http.Request) {
	var req api.HealthRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if !domain.ProjectStatus(req.Status).IsValid() {
		writeError(w, r, &domain.InputShapeError{Field: "status", Reason: "unknown project status"})
		return
	}
	if !domain.ProjectPriority(req.Priority).IsValid() {
		writeError(w, r, &domain.InputShapeError{Field: "priority", Reason: "unknown project priority"})
		return
	}

	score := health.ProjectScore(adapters.MapHealthRequestApiToDomain(req))
	band := health.BandFromScore(score)
	writeJSON(w, r, http.StatusOK, api.HealthResponse{
		HealthScore: score,
		Status:      string(band),
		Color:       band.Color(),
	})
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
	default:
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("calculation failed")
	}

	writeJSON(w, r, status, api.ErrorResponse{Error: err.Error()})
}
