package wastage

import (
	"github.com/Marcus-dot/project-dashboard-sub000/pkg/models/domain"
)

// Evaluate computes wastage metrics for an allocation. Zero allocation
// is a special case: every metric is zero, the status is excellent and
// the recommendation list is the single no-allocation line. Negative
// quantities are rejected as malformed input.
func Evaluate(in domain.WastageInput) (*domain.WastageResult, error) {
	if in.Allocated < 0 {
		return nil, &domain.InputShapeError{Field: "allocated", Reason: "must be non-negative"}
	}
	if in.Used < 0 {
		return nil, &domain.InputShapeError{Field: "used", Reason: "must be non-negative"}
	}
	if in.CostPerUnit != nil && *in.CostPerUnit < 0 {
		return nil, &domain.InputShapeError{Field: "cost_per_unit", Reason: "must be non-negative"}
	}

	if in.Allocated == 0 {
		return &domain.WastageResult{
			Status:          domain.WastageExcellent,
			Recommendations: []string{"No resources allocated"},
		}, nil
	}

	amount := in.Allocated - in.Used
	if amount < 0 {
		amount = 0
	}
	percentage := amount / in.Allocated * 100
	efficiency := in.Used / in.Allocated * 100

	var cost float64
	if in.CostPerUnit != nil {
		cost = amount * *in.CostPerUnit
	}

	status := StatusFromPercentage(percentage)
	return &domain.WastageResult{
		WastageAmount:     amount,
		WastagePercentage: percentage,
		EfficiencyScore:   efficiency,
		WastageCost:       cost,
		Status:            status,
		Recommendations:   Recommendations(status, efficiency),
	}, nil
}

// StatusFromPercentage bands wastage percentage into five tiers with
// inclusive lower bounds: 35 and above is critical, then 20, 10 and 5
// down to excellent below 5.
func StatusFromPercentage(percentage float64) domain.WastageStatus {
	switch {
	case percentage >= 35:
		return domain.WastageCritical
	case percentage >= 20:
		return domain.WastageConcerning
	case percentage >= 10:
		return domain.WastageAcceptable
	case percentage >= 5:
		return domain.WastageGood
	default:
		return domain.WastageExcellent
	}
}
