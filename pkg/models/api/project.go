package api

import (
	"encoding/json"
	"time"
)

type Project struct {
	Name       string   `json:"name"`
	Status     string   `json:"status"`
	Priority   string   `json:"priority"`
	NPV        *float64 `json:"npv,omitempty"`
	RiskScore  *float64 `json:"risk_score,omitempty"`
	WastagePct *float64 `json:"wastage_pct,omitempty"`
}

// UpsertProjectRequest creates or replaces a project's status and priority.
type UpsertProjectRequest struct {
	Status   string `json:"status"`
	Priority string `json:"priority"`
}

type ProjectHealth struct {
	Project     string `json:"project"`
	HealthScore int    `json:"health_score"`
	Status      string `json:"status"`
	Color       string `json:"color"`
}

// Calculation is one archived calculator run; result is the recorded
// result document verbatim.
type Calculation struct {
	ID        string          `json:"id"`
	Kind      string          `json:"kind"`
	Result    json.RawMessage `json:"result"`
	CreatedAt time.Time       `json:"created_at"`
}

type PortfolioSummary struct {
	ProjectCount   int             `json:"project_count"`
	AverageScore   float64         `json:"average_score"`
	BandCounts     map[string]int  `json:"band_counts"`
	NeedsAttention []ProjectHealth `json:"needs_attention"`
}
