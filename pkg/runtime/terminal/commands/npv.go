package commands

import (
	"fmt"

	"github.com/Marcus-dot/project-dashboard-sub000/pkg/adapters"
	"github.com/Marcus-dot/project-dashboard-sub000/pkg/models/domain"
	"github.com/Marcus-dot/project-dashboard-sub000/pkg/runtime/terminal/export"
	"github.com/Marcus-dot/project-dashboard-sub000/pkg/services/display"
	"github.com/Marcus-dot/project-dashboard-sub000/pkg/services/finance"
	"github.com/spf13/cobra"
)

type NPVCmd struct {
	investment float64
	rate       float64
	country    string
	flows      []float64
	periodType string
	currency   string
	asJSON     bool
	reporter   *export.Reporter
}

func NewNPVCmd(reporter *export.Reporter) *cobra.Command {
	nc := &NPVCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "npv",
		Short: "Discount a cash flow series to present value",
		RunE:  nc.run,
	}

	cmd.Flags().Float64Var(&nc.investment, "investment", 0, "Initial investment (time zero outflow)")
	cmd.Flags().Float64Var(&nc.rate, "rate", 0, "Annual discount rate in percent")
	cmd.Flags().StringVar(&nc.country, "country", "", "Country used to pick a default discount rate when --rate is omitted")
	cmd.Flags().Float64SliceVar(&nc.flows, "flows", nil, "Cash flows per period, comma separated")
	cmd.Flags().StringVar(&nc.periodType, "period", string(domain.PeriodYears), "Period type: years, quarters, months or weeks")
	cmd.Flags().StringVar(&nc.currency, "currency", "ZMW", "Display currency code")
	cmd.Flags().BoolVar(&nc.asJSON, "json", false, "Emit the raw result as JSON")

	_ = cmd.MarkFlagRequired("investment")
	_ = cmd.MarkFlagRequired("flows")

	return cmd
}

func (nc *NPVCmd) run(cmd *cobra.Command, args []string) error {
	periods := domain.PeriodType(nc.periodType)
	if !periods.IsValid() {
		return fmt.Errorf("unsupported period type %q. Supported types: years, quarters, months, weeks", nc.periodType)
	}

	rate := nc.rate
	if !cmd.Flags().Changed("rate") {
		rate = finance.DefaultDiscountRate(nc.country)
	}

	result, err := finance.EvaluateSeries(domain.CashFlowSeries{
		InitialInvestment: nc.investment,
		DiscountRatePct:   rate,
		CashFlows:         nc.flows,
		Periods:           periods,
	})
	if err != nil {
		return err
	}

	if nc.asJSON {
		return nc.reporter.JSON(adapters.MapNPVResultDomainToApi(*result))
	}

	currency := display.Lookup(nc.currency)

	details := make([]domain.ReportDetail, 0, len(result.CumulativeValues))
	for _, pv := range result.CumulativeValues {
		details = append(details, domain.ReportDetail{
			Name:  fmt.Sprintf("Period %d", pv.Period),
			Value: display.FormatAmount(currency, pv.Value),
			Unit:  string(periods),
		})
	}

	verdict := "not viable"
	if result.IsViable {
		verdict = "viable"
	}
	summary := map[string]interface{}{
		"NPV":     display.FormatAmount(currency, result.NPV),
		"Verdict": verdict,
	}
	if result.BreakEvenPeriod != nil {
		summary["Break-even period"] = *result.BreakEvenPeriod
	}

	return nc.reporter.Handle(&domain.Report{
		Title:    "Net Present Value",
		Currency: currency.Code,
		Sections: []domain.ReportSection{{
			Title:   "Discounted cash flow",
			Summary: summary,
			Details: details,
		}},
	})
}
