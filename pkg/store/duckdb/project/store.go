package project

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Marcus-dot/project-dashboard-sub000/pkg/models/store"
	"github.com/Marcus-dot/project-dashboard-sub000/pkg/store/duckdb"
)

// Store persists project rows and their calculation history. The
// latest-calculation columns on the project row follow last-writer-wins
// semantics; history rows are append-only.
type Store interface {
	UpsertProject(ctx context.Context, record store.ProjectRecord) error
	GetProject(ctx context.Context, name string) (*store.ProjectRecord, error)
	ListProjects(ctx context.Context) ([]store.ProjectRecord, error)
	SaveCalculation(ctx context.Context, record store.CalculationRecord) error
	ListCalculations(ctx context.Context, project, kind string) ([]store.CalculationRecord, error)
	SetLatestNPV(ctx context.Context, project string, npv float64) error
	SetLatestRiskScore(ctx context.Context, project string, score float64) error
	SetLatestWastage(ctx context.Context, project string, percentage float64) error
}

type projectStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &projectStore{db: db}, nil
}

func (s *projectStore) UpsertProject(ctx context.Context, record store.ProjectRecord) error {
	query := `
		INSERT INTO projects (name, status, priority, npv, risk_score, wastage_pct, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (name) DO UPDATE SET
			status = excluded.status,
			priority = excluded.priority,
			updated_at = CURRENT_TIMESTAMP
	`
	_, err := s.exec(ctx, query,
		record.Name,
		record.Status,
		record.Priority,
		nullFloat(record.NPV),
		nullFloat(record.RiskScore),
		nullFloat(record.WastagePct),
	)
	if err != nil {
		return fmt.Errorf("upsert project: %w", err)
	}
	return nil
}

func (s *projectStore) GetProject(ctx context.Context, name string) (*store.ProjectRecord, error) {
	query := `
		SELECT name, status, priority, npv, risk_score, wastage_pct, updated_at
		FROM projects
		WHERE name = ?
	`
	record, err := scanProjectRow(s.db.QueryRowContext(ctx, query, name))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("project %q not found", name)
	}
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	return record, nil
}

func (s *projectStore) ListProjects(ctx context.Context) ([]store.ProjectRecord, error) {
	query := `
		SELECT name, status, priority, npv, risk_score, wastage_pct, updated_at
		FROM projects
		ORDER BY name
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	records := make([]store.ProjectRecord, 0)
	for rows.Next() {
		record, err := scanProjectRow(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}
	return records, rows.Err()
}

func (s *projectStore) SaveCalculation(ctx context.Context, record store.CalculationRecord) error {
	query := `
		INSERT INTO calculations (id, project, kind, payload, created_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
	`
	_, err := s.exec(ctx, query, record.ID, record.Project, record.Kind, string(record.Payload))
	if err != nil {
		return fmt.Errorf("insert calculation: %w", err)
	}
	return nil
}

func (s *projectStore) ListCalculations(ctx context.Context, project, kind string) ([]store.CalculationRecord, error) {
	query := `
		SELECT id, project, kind, payload, created_at
		FROM calculations
		WHERE project = ? AND kind = ?
		ORDER BY created_at DESC
	`
	rows, err := s.db.QueryContext(ctx, query, project, kind)
	if err != nil {
		return nil, fmt.Errorf("list calculations: %w", err)
	}
	defer rows.Close()

	records := make([]store.CalculationRecord, 0)
	for rows.Next() {
		var (
			record  store.CalculationRecord
			payload string
		)
		if err := rows.Scan(&record.ID, &record.Project, &record.Kind, &payload, &record.CreatedAt); err != nil {
			return nil, err
		}
		record.Payload = []byte(payload)
		records = append(records, record)
	}
	return records, rows.Err()
}

func (s *projectStore) SetLatestNPV(ctx context.Context, project string, npv float64) error {
	return s.setLatest(ctx, "npv", project, npv)
}

func (s *projectStore) SetLatestRiskScore(ctx context.Context, project string, score float64) error {
	return s.setLatest(ctx, "risk_score", project, score)
}

func (s *projectStore) SetLatestWastage(ctx context.Context, project string, percentage float64) error {
	return s.setLatest(ctx, "wastage_pct", project, percentage)
}

// setLatest overwrites one latest-calculation column; whoever writes
// last wins, mirroring the link-latest-calculation update semantics.
func (s *projectStore) setLatest(ctx context.Context, column, project string, value float64) error {
	query := fmt.Sprintf(`
		UPDATE projects SET %s = ?, updated_at = CURRENT_TIMESTAMP WHERE name = ?
	`, column)

	result, err := s.exec(ctx, query, value, project)
	if err != nil {
		return fmt.Errorf("set latest %s: %w", column, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("set latest %s: %w", column, err)
	}
	if affected == 0 {
		return fmt.Errorf("project %q not found", project)
	}
	return nil
}

func (s *projectStore) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if tx := duckdb.GetTransaction(ctx); tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return s.db.ExecContext(ctx, query, args...)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProjectRow(row rowScanner) (*store.ProjectRecord, error) {
	var (
		record             store.ProjectRecord
		npv, risk, wastage sql.NullFloat64
		updatedAt          time.Time
	)
	err := row.Scan(&record.Name, &record.Status, &record.Priority, &npv, &risk, &wastage, &updatedAt)
	if err != nil {
		return nil, err
	}
	record.NPV = floatPtr(npv)
	record.RiskScore = floatPtr(risk)
	record.WastagePct = floatPtr(wastage)
	record.UpdatedAt = updatedAt
	return &record, nil
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
