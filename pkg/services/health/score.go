package health

import (
	"github.com/Marcus-dot/project-dashboard-sub000/pkg/models/domain"
)

// The composite score starts from a neutral prior; each component
// shifts it only when the underlying data is present.
const baseScore = 50

// ProjectScore combines NPV outlook, risk score, execution status and
// priority into one 0-100 composite. Absent NPV or risk data leaves the
// base uncontested for that component; it is never penalized as zero.
func ProjectScore(in domain.ProjectHealthInputs) int {
	score := baseScore

	if in.NPV != nil {
		switch {
		case *in.NPV > 0:
			score += 30
		case *in.NPV >= -10000:
			score += 15
		default:
			score -= 10
		}
	}

	if in.RiskScore != nil {
		switch {
		case *in.RiskScore < 30:
			score += 25
		case *in.RiskScore < 50:
			score += 15
		case *in.RiskScore < 70:
			score += 5
		default:
			score -= 15
		}
	}

	switch in.Status {
	case domain.StatusComplete:
		score += 15
	case domain.StatusInProgress:
		score += 10
	case domain.StatusPlanning:
		score += 5
	case domain.StatusPaused:
		score -= 5
	case domain.StatusCancelled:
		score -= 15
	}

	switch in.Priority {
	case domain.PriorityHigh:
		score += 10
	case domain.PriorityMedium:
		score += 5
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// BandFromScore classifies a composite score: 80 and above excellent,
// then 65, 45 and 25 down to critical below 25.
func BandFromScore(score int) domain.HealthBand {
	switch {
	case score >= 80:
		return domain.HealthExcellent
	case score >= 65:
		return domain.HealthGood
	case score >= 45:
		return domain.HealthFair
	case score >= 25:
		return domain.HealthPoor
	default:
		return domain.HealthCritical
	}
}

// Evaluate scores a project and returns the banded result.
func Evaluate(project string, in domain.ProjectHealthInputs) domain.ProjectHealth {
	score := ProjectScore(in)
	return domain.ProjectHealth{
		Project: project,
		Score:   score,
		Band:    BandFromScore(score),
	}
}
