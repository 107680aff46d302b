package wastage

import "github.com/Marcus-dot/project-dashboard-sub000/pkg/models/domain"

const overAllocationWarning = "Warning: resource usage exceeds allocation; review project scope or request additional allocation"

// statusAdvice maps each wastage band to its fixed advisory block.
// Kept as an explicit table so the emitted text stays auditable.
var statusAdvice = map[domain.WastageStatus][]string{
	domain.WastageCritical: {
		"Critical wastage level detected: conduct an immediate resource audit",
		"Reallocate unused resources to other projects",
		"Review the allocation process for systematic over-provisioning",
		"Schedule weekly utilization reviews until wastage drops below 20%",
	},
	domain.WastageConcerning: {
		"Wastage is above acceptable levels: review current allocations",
		"Identify resources that can be released or reassigned",
		"Tighten allocation requests for the next planning cycle",
	},
	domain.WastageAcceptable: {
		"Wastage is within tolerable limits but can be improved",
		"Monitor utilization trends over the next period",
		"Adjust future allocations closer to observed usage",
	},
	domain.WastageGood: {
		"Resource utilization is healthy",
		"Minor wastage detected: no immediate action required",
		"Keep allocations aligned with current usage patterns",
	},
	domain.WastageExcellent: {
		"Resource utilization is excellent",
		"Current allocation levels are well matched to usage",
		"Maintain existing planning practices",
	},
}

// Recommendations returns the advisory block for a wastage band, with
// the over-allocation warning prepended when efficiency exceeds 100
// (more was used than allocated).
func Recommendations(status domain.WastageStatus, efficiencyScore float64) []string {
	recs := append([]string(nil), statusAdvice[status]...)
	if efficiencyScore > 100 {
		recs = append([]string{overAllocationWarning}, recs...)
	}
	return recs
}
