package domain

// RiskFactors are the five independently optional risk dimensions, each
// scored 0-100 by the caller. A nil field means the factor was not
// assessed; it is excluded from scoring entirely, never treated as zero.
type RiskFactors struct {
	BudgetVariance       *float64
	ScheduleDelay        *float64
	ResourceAvailability *float64
	Complexity           *float64
	StakeholderAlignment *float64
}

// Empty reports whether no factor was supplied at all.
func (f RiskFactors) Empty() bool {
	return f.BudgetVariance == nil &&
		f.ScheduleDelay == nil &&
		f.ResourceAvailability == nil &&
		f.Complexity == nil &&
		f.StakeholderAlignment == nil
}

const (
	RiskLevelHigh   = "High Risk"
	RiskLevelMedium = "Medium Risk"
	RiskLevelLow    = "Low Risk"
)

// RiskLevel is a display band derived from a risk score.
type RiskLevel struct {
	Level string
	Color string
}

type RiskResult struct {
	Score           int
	Level           RiskLevel
	Recommendations []string
}
