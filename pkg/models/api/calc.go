package api

// NPVRequest is the payload of a compute-NPV call. CashFlows is
// required; an absent array is rejected, an empty one is legal and
// yields -InitialInvestment.
type NPVRequest struct {
	InitialInvestment float64    `json:"initial_investment"`
	DiscountRate      float64    `json:"discount_rate"`
	CashFlows         *[]float64 `json:"cash_flows"`
	PeriodType        string     `json:"period_type,omitempty"`
}

type PeriodValue struct {
	Period int     `json:"period"`
	Value  float64 `json:"value"`
}

type NPVResponse struct {
	NPV              float64       `json:"npv"`
	IsViable         bool          `json:"is_viable"`
	CumulativeValues []PeriodValue `json:"cumulative_values"`
	BreakEvenPeriod  *int          `json:"break_even_period,omitempty"`
}

// RiskRequest carries up to five optional factor scores in [0,100].
// An omitted factor is excluded from the weighted average.
type RiskRequest struct {
	BudgetVariance       *float64 `json:"budget_variance,omitempty"`
	ScheduleDelay        *float64 `json:"schedule_delay,omitempty"`
	ResourceAvailability *float64 `json:"resource_availability,omitempty"`
	Complexity           *float64 `json:"complexity,omitempty"`
	StakeholderAlignment *float64 `json:"stakeholder_alignment,omitempty"`
}

type RiskResponse struct {
	RiskScore       int      `json:"risk_score"`
	RiskLevel       string   `json:"risk_level"`
	RiskColor       string   `json:"risk_color"`
	Recommendations []string `json:"recommendations"`
}

type WastageRequest struct {
	Allocated   float64  `json:"allocated"`
	Used        float64  `json:"used"`
	CostPerUnit *float64 `json:"cost_per_unit,omitempty"`
}

type WastageResponse struct {
	WastageAmount     float64  `json:"wastage_amount"`
	WastagePercentage float64  `json:"wastage_percentage"`
	EfficiencyScore   float64  `json:"efficiency_score"`
	WastageCost       float64  `json:"wastage_cost"`
	Status            string   `json:"status"`
	Recommendations   []string `json:"recommendations"`
}

type HealthRequest struct {
	NPV       *float64 `json:"npv,omitempty"`
	RiskScore *float64 `json:"risk_score,omitempty"`
	Status    string   `json:"status"`
	Priority  string   `json:"priority"`
}

type HealthResponse struct {
	HealthScore int    `json:"health_score"`
	Status      string `json:"status"`
	Color       string `json:"color"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
