package domain

import "time"

// Project is a portfolio entry together with the latest calculation
// results linked to it. The latest links are nil until the matching
// calculator has run at least once for the project.
type Project struct {
	Name       string
	Status     ProjectStatus
	Priority   ProjectPriority
	NPV        *float64
	RiskScore  *float64
	WastagePct *float64
	UpdatedAt  time.Time
}

// HealthInputs projects the record down to what the health aggregator reads.
func (p Project) HealthInputs() ProjectHealthInputs {
	return ProjectHealthInputs{
		NPV:       p.NPV,
		RiskScore: p.RiskScore,
		Status:    p.Status,
		Priority:  p.Priority,
	}
}

// Calculation is one archived calculator run. Result carries the full
// result of the run as recorded at the time, newest first when listed.
type Calculation struct {
	ID        string
	Project   string
	Kind      string
	Result    []byte
	CreatedAt time.Time
}
