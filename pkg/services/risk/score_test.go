package risk

import (
	"testing"

	"github.com/Marcus-dot/project-dashboard-sub000/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		factors  domain.RiskFactors
		expected int
	}{
		{
			name: "all five factors",
			factors: domain.RiskFactors{
				BudgetVariance:       ptr(30),
				ScheduleDelay:        ptr(25),
				ResourceAvailability: ptr(20),
				Complexity:           ptr(40),
				StakeholderAlignment: ptr(15),
			},
			// 30*.25 + 25*.2 + 20*.2 + 40*.2 + 15*.15 = 26.75
			expected: 27,
		},
		{
			name:     "single factor renormalizes to itself",
			factors:  domain.RiskFactors{BudgetVariance: ptr(80)},
			expected: 80,
		},
		{
			name: "two factors renormalize over their weights",
			factors: domain.RiskFactors{
				ScheduleDelay: ptr(60),
				Complexity:    ptr(20),
			},
			// (60*.2 + 20*.2) / .4 = 40
			expected: 40,
		},
		{
			name:     "no factors",
			factors:  domain.RiskFactors{},
			expected: 0,
		},
		{
			name:     "clamped to 100",
			factors:  domain.RiskFactors{Complexity: ptr(250)},
			expected: 100,
		},
		{
			name:     "clamped to 0",
			factors:  domain.RiskFactors{Complexity: ptr(-50)},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Score(tt.factors))
		})
	}
}

func TestLevelFromScore(t *testing.T) {
	tests := []struct {
		score float64
		level string
		color string
	}{
		{0, domain.RiskLevelLow, "#10b981"},
		{39, domain.RiskLevelLow, "#10b981"},
		{40, domain.RiskLevelMedium, "#f59e0b"},
		{69, domain.RiskLevelMedium, "#f59e0b"},
		{70, domain.RiskLevelHigh, "#ef4444"},
		{100, domain.RiskLevelHigh, "#ef4444"},
	}

	for _, tt := range tests {
		got := LevelFromScore(tt.score)
		assert.Equal(t, tt.level, got.Level, "score %v", tt.score)
		assert.Equal(t, tt.color, got.Color, "score %v", tt.score)
	}
}

func TestRecommendations_Order(t *testing.T) {
	factors := domain.RiskFactors{
		BudgetVariance:       ptr(75),
		ScheduleDelay:        ptr(50),
		ResourceAvailability: ptr(60),
		StakeholderAlignment: ptr(90),
	}

	recs := Recommendations(Score(factors), factors)

	// Two lines each for budget_variance, resource_availability and
	// stakeholder_alignment (in that order), then one closing verdict.
	// schedule_delay sits below the advice threshold and complexity is
	// absent; neither contributes.
	require.Len(t, recs, 7)
	assert.Equal(t, factorAdvice["budget_variance"], recs[0:2])
	assert.Equal(t, factorAdvice["resource_availability"], recs[2:4])
	assert.Equal(t, factorAdvice["stakeholder_alignment"], recs[4:6])
	assert.Equal(t, closingAdvice(Score(factors)), recs[6])
}

func TestRecommendations_ClosingVerdictOnly(t *testing.T) {
	tests := []struct {
		name    string
		factors domain.RiskFactors
		closing string
	}{
		{
			name:    "low band",
			factors: domain.RiskFactors{Complexity: ptr(10)},
			closing: "Overall risk is low: maintain current controls and monitoring",
		},
		{
			name:    "medium band",
			factors: domain.RiskFactors{Complexity: ptr(55)},
			closing: "Overall risk is moderate: monitor closely and mitigate where possible",
		},
		{
			name:    "high band",
			factors: domain.RiskFactors{BudgetVariance: ptr(59), ScheduleDelay: ptr(85)},
			closing: "Overall risk is high: immediate mitigation planning is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs := Recommendations(Score(tt.factors), tt.factors)
			assert.Equal(t, tt.closing, recs[len(recs)-1])
		})
	}
}

func TestAssess(t *testing.T) {
	factors := domain.RiskFactors{
		BudgetVariance: ptr(30),
		ScheduleDelay:  ptr(25),
	}

	result := Assess(factors)
	assert.Equal(t, Score(factors), result.Score)
	assert.Equal(t, domain.RiskLevelLow, result.Level.Level)
	require.NotEmpty(t, result.Recommendations)

	// Deterministic across invocations.
	assert.Equal(t, result, Assess(factors))
}
