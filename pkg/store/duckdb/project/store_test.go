package project

import (
	"context"
	"database/sql"
	"testing"

	"github.com/Marcus-dot/project-dashboard-sub000/pkg/models/store"
	"github.com/Marcus-dot/project-dashboard-sub000/pkg/store/duckdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	db    *sql.DB
	store Store
}

func setupFixture(t *testing.T) *fixture {
	db, err := duckdb.NewDB(duckdb.Settings{DbPath: ":memory:"})
	require.NoError(t, err)

	s, err := NewStore(db)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return &fixture{db: db, store: s}
}

func TestProjectStore_UpsertAndGet(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	record := store.ProjectRecord{
		Name:     "irrigation-upgrade",
		Status:   "In progress",
		Priority: "High",
	}
	require.NoError(t, f.store.UpsertProject(ctx, record))

	got, err := f.store.GetProject(ctx, "irrigation-upgrade")
	require.NoError(t, err)
	assert.Equal(t, record.Name, got.Name)
	assert.Equal(t, record.Status, got.Status)
	assert.Equal(t, record.Priority, got.Priority)
	assert.Nil(t, got.NPV)
	assert.Nil(t, got.RiskScore)
	assert.Nil(t, got.WastagePct)
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestProjectStore_UpsertUpdatesStatusAndPriority(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	require.NoError(t, f.store.UpsertProject(ctx, store.ProjectRecord{
		Name: "solar-farm", Status: "Planning", Priority: "Low",
	}))
	require.NoError(t, f.store.SetLatestNPV(ctx, "solar-farm", 12500.50))

	// Upserting again must not clobber the latest NPV link.
	require.NoError(t, f.store.UpsertProject(ctx, store.ProjectRecord{
		Name: "solar-farm", Status: "In progress", Priority: "High",
	}))

	got, err := f.store.GetProject(ctx, "solar-farm")
	require.NoError(t, err)
	assert.Equal(t, "In progress", got.Status)
	assert.Equal(t, "High", got.Priority)
	require.NotNil(t, got.NPV)
	assert.Equal(t, 12500.50, *got.NPV)
}

func TestProjectStore_GetMissing(t *testing.T) {
	f := setupFixture(t)

	_, err := f.store.GetProject(context.Background(), "absent")
	assert.ErrorContains(t, err, "not found")
}

func TestProjectStore_LatestLinks(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	require.NoError(t, f.store.UpsertProject(ctx, store.ProjectRecord{
		Name: "clinic-build", Status: "In progress", Priority: "Medium",
	}))

	require.NoError(t, f.store.SetLatestNPV(ctx, "clinic-build", 5000))
	require.NoError(t, f.store.SetLatestRiskScore(ctx, "clinic-build", 27))
	require.NoError(t, f.store.SetLatestWastage(ctx, "clinic-build", 12.5))

	// Last writer wins on repeat.
	require.NoError(t, f.store.SetLatestNPV(ctx, "clinic-build", -300))

	got, err := f.store.GetProject(ctx, "clinic-build")
	require.NoError(t, err)
	require.NotNil(t, got.NPV)
	require.NotNil(t, got.RiskScore)
	require.NotNil(t, got.WastagePct)
	assert.Equal(t, -300.0, *got.NPV)
	assert.Equal(t, 27.0, *got.RiskScore)
	assert.Equal(t, 12.5, *got.WastagePct)
}

func TestProjectStore_LatestLinkMissingProject(t *testing.T) {
	f := setupFixture(t)

	err := f.store.SetLatestRiskScore(context.Background(), "absent", 50)
	assert.ErrorContains(t, err, "not found")
}

func TestProjectStore_ListProjects(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	for _, name := range []string{"bravo", "alpha", "charlie"} {
		require.NoError(t, f.store.UpsertProject(ctx, store.ProjectRecord{
			Name: name, Status: "Planning", Priority: "Low",
		}))
	}

	records, err := f.store.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "alpha", records[0].Name)
	assert.Equal(t, "bravo", records[1].Name)
	assert.Equal(t, "charlie", records[2].Name)
}

func TestProjectStore_Calculations(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	require.NoError(t, f.store.UpsertProject(ctx, store.ProjectRecord{
		Name: "bridge-repair", Status: "In progress", Priority: "High",
	}))

	require.NoError(t, f.store.SaveCalculation(ctx, store.CalculationRecord{
		ID:      "calc-1",
		Project: "bridge-repair",
		Kind:    store.CalculationKindNPV,
		Payload: []byte(`{"npv": 1200.5, "is_viable": true}`),
	}))
	require.NoError(t, f.store.SaveCalculation(ctx, store.CalculationRecord{
		ID:      "calc-2",
		Project: "bridge-repair",
		Kind:    store.CalculationKindRisk,
		Payload: []byte(`{"risk_score": 40}`),
	}))

	npvCalcs, err := f.store.ListCalculations(ctx, "bridge-repair", store.CalculationKindNPV)
	require.NoError(t, err)
	require.Len(t, npvCalcs, 1)
	assert.Equal(t, "calc-1", npvCalcs[0].ID)
	assert.JSONEq(t, `{"npv": 1200.5, "is_viable": true}`, string(npvCalcs[0].Payload))

	riskCalcs, err := f.store.ListCalculations(ctx, "bridge-repair", store.CalculationKindRisk)
	require.NoError(t, err)
	require.Len(t, riskCalcs, 1)

	empty, err := f.store.ListCalculations(ctx, "bridge-repair", store.CalculationKindWastage)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestNewStore_NilDB(t *testing.T) {
	_, err := NewStore(nil)
	assert.Error(t, err)
}
