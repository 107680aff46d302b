package finance

import (
	"fmt"
	"math"

	"github.com/Marcus-dot/project-dashboard-sub000/pkg/models/domain"
)

// NetPresentValue discounts a periodic cash-flow series to present value
// and subtracts the initial investment. Flows are accumulated
// left-to-right in period order so repeated calls are bit-identical.
// A discount rate at or below -100% makes the discount base
// non-positive and is rejected rather than propagated as NaN/Inf.
func NetPresentValue(
	initialInvestment, discountRatePct float64,
	cashFlows []float64,
	periods domain.PeriodType,
) (float64, error) {
	base, err := discountBase("finance.NetPresentValue", discountRatePct)
	if err != nil {
		return 0, err
	}

	npv := -initialInvestment
	for t, cf := range cashFlows {
		npv += cf / math.Pow(base, periods.Years(t+1))
	}
	return npv, nil
}

// CumulativeSeries returns the running present-value total per period.
// Element 0 is always {0, -initialInvestment}; each later element adds
// that period's discounted value to the previous running total.
func CumulativeSeries(
	initialInvestment, discountRatePct float64,
	cashFlows []float64,
	periods domain.PeriodType,
) ([]domain.PeriodValue, error) {
	base, err := discountBase("finance.CumulativeSeries", discountRatePct)
	if err != nil {
		return nil, err
	}

	values := make([]domain.PeriodValue, 0, len(cashFlows)+1)
	running := -initialInvestment
	values = append(values, domain.PeriodValue{Period: 0, Value: running})

	for t, cf := range cashFlows {
		running += cf / math.Pow(base, periods.Years(t+1))
		values = append(values, domain.PeriodValue{Period: t + 1, Value: running})
	}
	return values, nil
}

// EvaluateSeries runs the full discounting pass over a series: NPV,
// viability, the cumulative sequence and the break-even period (first
// period where the running total turns positive, if any). The NPV is
// taken from the last cumulative element so both views always agree.
func EvaluateSeries(series domain.CashFlowSeries) (*domain.NPVResult, error) {
	periods := series.Periods
	if periods == "" {
		periods = domain.PeriodYears
	}

	cumulative, err := CumulativeSeries(series.InitialInvestment, series.DiscountRatePct, series.CashFlows, periods)
	if err != nil {
		return nil, err
	}

	npv := cumulative[len(cumulative)-1].Value
	result := &domain.NPVResult{
		NPV:              npv,
		IsViable:         npv > 0,
		CumulativeValues: cumulative,
	}

	for _, pv := range cumulative {
		if pv.Value > 0 {
			period := pv.Period
			result.BreakEvenPeriod = &period
			break
		}
	}
	return result, nil
}

// LumpSumNPV is the legacy single-shot form kept for records that only
// carry aggregate revenue and cost: the whole expected revenue is
// treated as one lump sum received at durationMonths/12 years,
// discounted once, minus actual costs, rounded to 2 decimals. It is not
// interchangeable with the series form. Zero revenue or duration
// yields 0.
func LumpSumNPV(expectedRevenue, actualCosts, discountRatePct, durationMonths float64) (float64, error) {
	if expectedRevenue == 0 || durationMonths == 0 {
		return 0, nil
	}

	base, err := discountBase("finance.LumpSumNPV", discountRatePct)
	if err != nil {
		return 0, err
	}

	present := expectedRevenue / math.Pow(base, durationMonths/12)
	return math.Round((present-actualCosts)*100) / 100, nil
}

func discountBase(op string, discountRatePct float64) (float64, error) {
	base := 1 + discountRatePct/100
	if base <= 0 {
		return 0, &domain.DomainError{
			Op:     op,
			Reason: fmt.Sprintf("discount rate %.2f%% makes the discount base non-positive", discountRatePct),
		}
	}
	return base, nil
}
