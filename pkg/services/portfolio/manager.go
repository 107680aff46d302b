package portfolio

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Marcus-dot/project-dashboard-sub000/pkg/adapters"
	"github.com/Marcus-dot/project-dashboard-sub000/pkg/models/domain"
	"github.com/Marcus-dot/project-dashboard-sub000/pkg/models/store"
	"github.com/Marcus-dot/project-dashboard-sub000/pkg/services/finance"
	"github.com/Marcus-dot/project-dashboard-sub000/pkg/services/health"
	"github.com/Marcus-dot/project-dashboard-sub000/pkg/services/risk"
	"github.com/Marcus-dot/project-dashboard-sub000/pkg/services/wastage"
	"github.com/Marcus-dot/project-dashboard-sub000/pkg/store/duckdb"
	projectstore "github.com/Marcus-dot/project-dashboard-sub000/pkg/store/duckdb/project"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ManagementService runs the calculators against persisted projects:
// each Record* call computes a fresh result, archives it and overwrites
// the project's latest link for that metric. Health and the portfolio
// summary are derived from the latest links on demand.
type ManagementService interface {
	UpsertProject(ctx context.Context, project domain.Project) error
	ListProjects(ctx context.Context) ([]domain.Project, error)
	RecordNPV(ctx context.Context, project string, series domain.CashFlowSeries) (*domain.NPVResult, error)
	RecordRiskAssessment(ctx context.Context, project string, factors domain.RiskFactors) (*domain.RiskResult, error)
	RecordWastage(ctx context.Context, project string, input domain.WastageInput) (*domain.WastageResult, error)
	ListCalculations(ctx context.Context, project, kind string) ([]domain.Calculation, error)
	GetProjectHealth(ctx context.Context, project string) (*domain.ProjectHealth, error)
	GetPortfolioSummary(ctx context.Context) (*domain.PortfolioSummary, error)
}

type manager struct {
	db    *sql.DB
	store projectstore.Store
}

func NewManager(db *sql.DB, store projectstore.Store) ManagementService {
	return &manager{db: db, store: store}
}

func (m *manager) UpsertProject(ctx context.Context, project domain.Project) error {
	if !project.Status.IsValid() {
		return &domain.InputShapeError{Field: "status", Reason: fmt.Sprintf("unknown status %q", project.Status)}
	}
	if !project.Priority.IsValid() {
		return &domain.InputShapeError{Field: "priority", Reason: fmt.Sprintf("unknown priority %q", project.Priority)}
	}
	return m.store.UpsertProject(ctx, adapters.MapProjectDomainToStore(project))
}

func (m *manager) ListProjects(ctx context.Context) ([]domain.Project, error) {
	records, err := m.store.ListProjects(ctx)
	if err != nil {
		return nil, err
	}

	projects := make([]domain.Project, 0, len(records))
	for _, record := range records {
		projects = append(projects, adapters.MapProjectStoreToDomain(record))
	}
	return projects, nil
}

func (m *manager) RecordNPV(ctx context.Context, project string, series domain.CashFlowSeries) (*domain.NPVResult, error) {
	result, err := finance.EvaluateSeries(series)
	if err != nil {
		return nil, err
	}

	err = m.inTransaction(ctx, func(txCtx context.Context) error {
		if err := m.archive(txCtx, project, store.CalculationKindNPV, result); err != nil {
			return err
		}
		return m.store.SetLatestNPV(txCtx, project, result.NPV)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (m *manager) RecordRiskAssessment(ctx context.Context, project string, factors domain.RiskFactors) (*domain.RiskResult, error) {
	if factors.Empty() {
		return nil, &domain.InputShapeError{Field: "factors", Reason: "at least one risk factor is required"}
	}

	result := risk.Assess(factors)
	err := m.inTransaction(ctx, func(txCtx context.Context) error {
		if err := m.archive(txCtx, project, store.CalculationKindRisk, result); err != nil {
			return err
		}
		return m.store.SetLatestRiskScore(txCtx, project, float64(result.Score))
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (m *manager) RecordWastage(ctx context.Context, project string, input domain.WastageInput) (*domain.WastageResult, error) {
	result, err := wastage.Evaluate(input)
	if err != nil {
		return nil, err
	}

	err = m.inTransaction(ctx, func(txCtx context.Context) error {
		if err := m.archive(txCtx, project, store.CalculationKindWastage, result); err != nil {
			return err
		}
		return m.store.SetLatestWastage(txCtx, project, result.WastagePercentage)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (m *manager) ListCalculations(ctx context.Context, project, kind string) ([]domain.Calculation, error) {
	switch kind {
	case store.CalculationKindNPV, store.CalculationKindRisk, store.CalculationKindWastage:
	default:
		return nil, &domain.InputShapeError{Field: "kind", Reason: "must be one of npv, risk, wastage"}
	}

	if _, err := m.store.GetProject(ctx, project); err != nil {
		return nil, err
	}

	records, err := m.store.ListCalculations(ctx, project, kind)
	if err != nil {
		return nil, err
	}

	calcs := make([]domain.Calculation, 0, len(records))
	for _, record := range records {
		calcs = append(calcs, adapters.MapCalculationStoreToDomain(record))
	}
	return calcs, nil
}

func (m *manager) GetProjectHealth(ctx context.Context, project string) (*domain.ProjectHealth, error) {
	record, err := m.store.GetProject(ctx, project)
	if err != nil {
		return nil, err
	}

	result := health.Evaluate(record.Name, adapters.MapProjectStoreToDomain(*record).HealthInputs())
	return &result, nil
}

func (m *manager) GetPortfolioSummary(ctx context.Context) (*domain.PortfolioSummary, error) {
	projects, err := m.ListProjects(ctx)
	if err != nil {
		return nil, err
	}

	healths := make([]domain.ProjectHealth, 0, len(projects))
	for _, p := range projects {
		healths = append(healths, health.Evaluate(p.Name, p.HealthInputs()))
	}

	summary := health.Summarize(healths)
	return &summary, nil
}

// inTransaction runs fn with a transaction attached to the context so
// the history insert and the latest-link update commit together.
func (m *manager) inTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(duckdb.WithTransaction(ctx, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// archive stores the full result JSON in the calculation history.
// A failed archive fails the calculation: partial results are never
// reported back as success.
func (m *manager) archive(ctx context.Context, project, kind string, result any) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal %s result: %w", kind, err)
	}

	record := store.CalculationRecord{
		ID:      uuid.NewString(),
		Project: project,
		Kind:    kind,
		Payload: payload,
	}
	if err := m.store.SaveCalculation(ctx, record); err != nil {
		return err
	}

	zerolog.Ctx(ctx).Debug().
		Str("project", project).
		Str("kind", kind).
		Str("calculation_id", record.ID).
		Msg("calculation archived")
	return nil
}
