package risk

import "github.com/Marcus-dot/project-dashboard-sub000/pkg/models/domain"

// A factor contributes its advice lines once it reaches this value.
const adviceThreshold = 60

// factorAdvice maps each factor to its two remediation lines. Kept as
// an explicit table so the emitted text stays auditable.
var factorAdvice = map[string][]string{
	"budget_variance": {
		"Review and revise budget allocations to reduce variance",
		"Implement stricter cost control and approval measures",
	},
	"schedule_delay": {
		"Re-evaluate the project timeline and critical milestones",
		"Consider additional resources to recover lost schedule",
	},
	"resource_availability": {
		"Secure firm commitments for key resources",
		"Develop contingency staffing plans for critical roles",
	},
	"complexity": {
		"Break complex deliverables into smaller work packages",
		"Increase technical oversight and review frequency",
	},
	"stakeholder_alignment": {
		"Schedule alignment workshops with key stakeholders",
		"Increase communication frequency and transparency",
	},
}

// Recommendations emits advisory text for a risk assessment: each
// factor at or above the advice threshold contributes its two lines, in
// fixed factor order, followed by exactly one closing verdict keyed by
// the overall score band. Lines are never deduplicated.
func Recommendations(score int, f domain.RiskFactors) []string {
	var recs []string
	for _, fa := range factors {
		v := fa.value(f)
		if v == nil || *v < adviceThreshold {
			continue
		}
		recs = append(recs, factorAdvice[fa.name]...)
	}
	return append(recs, closingAdvice(score))
}

func closingAdvice(score int) string {
	switch {
	case score >= 70:
		return "Overall risk is high: immediate mitigation planning is required"
	case score >= 40:
		return "Overall risk is moderate: monitor closely and mitigate where possible"
	default:
		return "Overall risk is low: maintain current controls and monitoring"
	}
}
