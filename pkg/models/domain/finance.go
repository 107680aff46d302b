package domain

// PeriodType is the unit in which a cash-flow series is spaced.
type PeriodType string

const (
	PeriodYears    PeriodType = "years"
	PeriodQuarters PeriodType = "quarters"
	PeriodMonths   PeriodType = "months"
	PeriodWeeks    PeriodType = "weeks"
)

func (p PeriodType) IsValid() bool {
	switch p {
	case PeriodYears, PeriodQuarters, PeriodMonths, PeriodWeeks:
		return true
	default:
		return false
	}
}

// Years converts the t-th period index into fractional years.
func (p PeriodType) Years(t int) float64 {
	switch p {
	case PeriodQuarters:
		return float64(t) / 4
	case PeriodMonths:
		return float64(t) / 12
	case PeriodWeeks:
		return float64(t) / 52
	default:
		return float64(t)
	}
}

// CashFlowSeries is the input to the discounting engine. Index 0 of
// CashFlows is the first period after the initial outlay; the initial
// investment is paid at period 0.
type CashFlowSeries struct {
	InitialInvestment float64
	DiscountRatePct   float64
	CashFlows         []float64
	Periods           PeriodType
}

// PeriodValue is one point of the cumulative present-value sequence.
type PeriodValue struct {
	Period int
	Value  float64
}

// NPVResult carries the outcome of evaluating a cash-flow series.
// CumulativeValues always has len(CashFlows)+1 entries and starts at
// {0, -InitialInvestment}. BreakEvenPeriod is nil when the running
// total never turns positive.
type NPVResult struct {
	NPV              float64
	IsViable         bool
	CumulativeValues []PeriodValue
	BreakEvenPeriod  *int
}
