package domain

// WastageStatus is the five-band classification of wastage percentage.
type WastageStatus string

const (
	WastageCritical   WastageStatus = "critical"
	WastageConcerning WastageStatus = "concerning"
	WastageAcceptable WastageStatus = "acceptable"
	WastageGood       WastageStatus = "good"
	WastageExcellent  WastageStatus = "excellent"
)

func (s WastageStatus) IsValid() bool {
	switch s {
	case WastageCritical, WastageConcerning, WastageAcceptable, WastageGood, WastageExcellent:
		return true
	default:
		return false
	}
}

// WastageInput describes an allocation and its observed consumption.
// Used may exceed Allocated. CostPerUnit is nil when no unit cost is
// known, in which case no financial impact is reported.
type WastageInput struct {
	Allocated   float64
	Used        float64
	CostPerUnit *float64
}

// WastageResult reports unused allocation and its financial impact.
// EfficiencyScore exceeds 100 when more was used than allocated.
type WastageResult struct {
	WastageAmount     float64
	WastagePercentage float64
	EfficiencyScore   float64
	WastageCost       float64
	Status            WastageStatus
	Recommendations   []string
}
