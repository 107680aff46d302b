package risk

import (
	"math"

	"github.com/Marcus-dot/project-dashboard-sub000/pkg/models/domain"
)

// factor binds a risk dimension to its weight and accessor. The slice
// order is fixed: it drives both scoring iteration and the order
// factor-specific advice is emitted in. Weights sum to 1.0 across the
// full set.
type factor struct {
	name   string
	weight float64
	value  func(domain.RiskFactors) *float64
}

var factors = []factor{
	{"budget_variance", 0.25, func(f domain.RiskFactors) *float64 { return f.BudgetVariance }},
	{"schedule_delay", 0.20, func(f domain.RiskFactors) *float64 { return f.ScheduleDelay }},
	{"resource_availability", 0.20, func(f domain.RiskFactors) *float64 { return f.ResourceAvailability }},
	{"complexity", 0.20, func(f domain.RiskFactors) *float64 { return f.Complexity }},
	{"stakeholder_alignment", 0.15, func(f domain.RiskFactors) *float64 { return f.StakeholderAlignment }},
}

// Score combines the supplied factors into one weighted score in
// [0,100]. Weights are re-normalized over the factors actually present:
// a single supplied factor scores as itself, not as value*weight.
// No factors at all scores 0.
func Score(f domain.RiskFactors) int {
	var weighted, total float64
	for _, fa := range factors {
		v := fa.value(f)
		if v == nil {
			continue
		}
		weighted += *v * fa.weight
		total += fa.weight
	}

	if total == 0 {
		return 0
	}

	score := weighted / total
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return int(math.Round(score))
}

// LevelFromScore bands a risk score: 70 and above is high, 40-69
// medium, below 40 low.
func LevelFromScore(score float64) domain.RiskLevel {
	switch {
	case score >= 70:
		return domain.RiskLevel{Level: domain.RiskLevelHigh, Color: "#ef4444"}
	case score >= 40:
		return domain.RiskLevel{Level: domain.RiskLevelMedium, Color: "#f59e0b"}
	default:
		return domain.RiskLevel{Level: domain.RiskLevelLow, Color: "#10b981"}
	}
}

// Assess runs the full risk pass: score, band and recommendations.
func Assess(f domain.RiskFactors) domain.RiskResult {
	score := Score(f)
	return domain.RiskResult{
		Score:           score,
		Level:           LevelFromScore(float64(score)),
		Recommendations: Recommendations(score, f),
	}
}
