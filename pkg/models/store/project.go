package store

import "time"

// ProjectRecord is a persisted project row. The latest-calculation
// columns are nil until the matching calculator has run for the project.
type ProjectRecord struct {
	Name       string
	Status     string
	Priority   string
	NPV        *float64
	RiskScore  *float64
	WastagePct *float64
	UpdatedAt  time.Time
}

// CalculationRecord is one archived calculation result. Payload holds
// the full result encoded as JSON; the typed latest links live on the
// project row.
type CalculationRecord struct {
	ID        string
	Project   string
	Kind      string
	Payload   []byte
	CreatedAt time.Time
}

const (
	CalculationKindNPV     = "npv"
	CalculationKindRisk    = "risk"
	CalculationKindWastage = "wastage"
)
