package adapters

import (
	"github.com/Marcus-dot/project-dashboard-sub000/pkg/models/api"
	"github.com/Marcus-dot/project-dashboard-sub000/pkg/models/domain"
)

func MapNPVRequestApiToDomain(req api.NPVRequest) domain.CashFlowSeries {
	var flows []float64
	if req.CashFlows != nil {
		flows = *req.CashFlows
	}
	return domain.CashFlowSeries{
		InitialInvestment: req.InitialInvestment,
		DiscountRatePct:   req.DiscountRate,
		CashFlows:         flows,
		Periods:           domain.PeriodType(req.PeriodType),
	}
}

func MapNPVResultDomainToApi(result domain.NPVResult) api.NPVResponse {
	values := make([]api.PeriodValue, 0, len(result.CumulativeValues))
	for _, pv := range result.CumulativeValues {
		values = append(values, api.PeriodValue{Period: pv.Period, Value: pv.Value})
	}
	return api.NPVResponse{
		NPV:              result.NPV,
		IsViable:         result.IsViable,
		CumulativeValues: values,
		BreakEvenPeriod:  result.BreakEvenPeriod,
	}
}

func MapRiskRequestApiToDomain(req api.RiskRequest) domain.RiskFactors {
	return domain.RiskFactors{
		BudgetVariance:       req.BudgetVariance,
		ScheduleDelay:        req.ScheduleDelay,
		ResourceAvailability: req.ResourceAvailability,
		Complexity:           req.Complexity,
		StakeholderAlignment: req.StakeholderAlignment,
	}
}

func MapRiskResultDomainToApi(result domain.RiskResult) api.RiskResponse {
	return api.RiskResponse{
		RiskScore:       result.Score,
		RiskLevel:       result.Level.Level,
		RiskColor:       result.Level.Color,
		Recommendations: result.Recommendations,
	}
}

func MapWastageRequestApiToDomain(req api.WastageRequest) domain.WastageInput {
	return domain.WastageInput{
		Allocated:   req.Allocated,
		Used:        req.Used,
		CostPerUnit: req.CostPerUnit,
	}
}

func MapWastageResultDomainToApi(result domain.WastageResult) api.WastageResponse {
	return api.WastageResponse{
		WastageAmount:     result.WastageAmount,
		WastagePercentage: result.WastagePercentage,
		EfficiencyScore:   result.EfficiencyScore,
		WastageCost:       result.WastageCost,
		Status:            string(result.Status),
		Recommendations:   result.Recommendations,
	}
}

func MapHealthRequestApiToDomain(req api.HealthRequest) domain.ProjectHealthInputs {
	return domain.ProjectHealthInputs{
		NPV:       req.NPV,
		RiskScore: req.RiskScore,
		Status:    domain.ProjectStatus(req.Status),
		Priority:  domain.ProjectPriority(req.Priority),
	}
}

func MapProjectHealthDomainToApi(h domain.ProjectHealth) api.ProjectHealth {
	return api.ProjectHealth{
		Project:     h.Project,
		HealthScore: h.Score,
		Status:      string(h.Band),
		Color:       h.Band.Color(),
	}
}
