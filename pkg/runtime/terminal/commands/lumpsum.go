package commands

import (
	"github.com/Marcus-dot/project-dashboard-sub000/pkg/models/domain"
	"github.com/Marcus-dot/project-dashboard-sub000/pkg/runtime/terminal/export"
	"github.com/Marcus-dot/project-dashboard-sub000/pkg/services/display"
	"github.com/Marcus-dot/project-dashboard-sub000/pkg/services/finance"
	"github.com/spf13/cobra"
)

type LumpSumCmd struct {
	revenue  float64
	costs    float64
	rate     float64
	country  string
	months   float64
	currency string
	asJSON   bool
	reporter *export.Reporter
}

func NewLumpSumCmd(reporter *export.Reporter) *cobra.Command {
	lc := &LumpSumCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "lumpsum",
		Short: "Discount a single expected revenue against upfront costs",
		RunE:  lc.run,
	}

	cmd.Flags().Float64Var(&lc.revenue, "revenue", 0, "Expected revenue at the end of the project")
	cmd.Flags().Float64Var(&lc.costs, "costs", 0, "Upfront actual costs")
	cmd.Flags().Float64Var(&lc.rate, "rate", 0, "Annual discount rate in percent")
	cmd.Flags().StringVar(&lc.country, "country", "", "Country used to pick a default discount rate when --rate is omitted")
	cmd.Flags().Float64Var(&lc.months, "months", 12, "Project duration in months")
	cmd.Flags().StringVar(&lc.currency, "currency", "ZMW", "Display currency code")
	cmd.Flags().BoolVar(&lc.asJSON, "json", false, "Emit the raw result as JSON")

	_ = cmd.MarkFlagRequired("revenue")

	return cmd
}

func (lc *LumpSumCmd) run(cmd *cobra.Command, args []string) error {
	rate := lc.rate
	if !cmd.Flags().Changed("rate") {
		rate = finance.DefaultDiscountRate(lc.country)
	}

	npv, err := finance.LumpSumNPV(lc.revenue, lc.costs, rate, lc.months)
	if err != nil {
		return err
	}

	if lc.asJSON {
		return lc.reporter.JSON(map[string]float64{"npv": npv})
	}

	currency := display.Lookup(lc.currency)
	verdict := "not viable"
	if npv > 0 {
		verdict = "viable"
	}

	return lc.reporter.Handle(&domain.Report{
		Title:    "Lump-sum Net Present Value",
		Currency: currency.Code,
		Sections: []domain.ReportSection{{
			Title: "Single-payoff discounting",
			Summary: map[string]interface{}{
				"NPV":     display.FormatAmount(currency, npv),
				"Verdict": verdict,
			},
		}},
	})
}
