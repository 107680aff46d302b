package commands

import (
	"fmt"

	"github.com/Marcus-dot/project-dashboard-sub000/pkg/adapters"
	"github.com/Marcus-dot/project-dashboard-sub000/pkg/models/domain"
	"github.com/Marcus-dot/project-dashboard-sub000/pkg/runtime/terminal/export"
	"github.com/Marcus-dot/project-dashboard-sub000/pkg/services/display"
	"github.com/Marcus-dot/project-dashboard-sub000/pkg/services/wastage"
	"github.com/spf13/cobra"
)

type WastageCmd struct {
	allocated   float64
	used        float64
	costPerUnit float64
	currency    string
	asJSON      bool
	reporter    *export.Reporter
}

func NewWastageCmd(reporter *export.Reporter) *cobra.Command {
	wc := &WastageCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "wastage",
		Short: "Measure unused resource allocation",
		RunE:  wc.run,
	}

	cmd.Flags().Float64Var(&wc.allocated, "allocated", 0, "Allocated resource units")
	cmd.Flags().Float64Var(&wc.used, "used", 0, "Consumed resource units")
	cmd.Flags().Float64Var(&wc.costPerUnit, "cost-per-unit", 0, "Cost per resource unit, used to price the wastage")
	cmd.Flags().StringVar(&wc.currency, "currency", "ZMW", "Display currency code")
	cmd.Flags().BoolVar(&wc.asJSON, "json", false, "Emit the raw result as JSON")

	_ = cmd.MarkFlagRequired("allocated")
	_ = cmd.MarkFlagRequired("used")

	return cmd
}

func (wc *WastageCmd) run(cmd *cobra.Command, args []string) error {
	result, err := wastage.Evaluate(domain.WastageInput{
		Allocated:   wc.allocated,
		Used:        wc.used,
		CostPerUnit: optional(cmd, "cost-per-unit", wc.costPerUnit),
	})
	if err != nil {
		return err
	}

	if wc.asJSON {
		return wc.reporter.JSON(adapters.MapWastageResultDomainToApi(*result))
	}

	currency := display.Lookup(wc.currency)

	details := make([]domain.ReportDetail, 0, len(result.Recommendations))
	for i, rec := range result.Recommendations {
		details = append(details, domain.ReportDetail{
			Name:        fmt.Sprintf("Recommendation %d", i+1),
			Value:       "",
			Description: rec,
		})
	}

	return wc.reporter.Handle(&domain.Report{
		Title:    "Resource Wastage",
		Currency: currency.Code,
		Sections: []domain.ReportSection{{
			Title: "Allocation efficiency",
			Summary: map[string]interface{}{
				"Wastage":    fmt.Sprintf("%.2f units (%.2f%%)", result.WastageAmount, result.WastagePercentage),
				"Efficiency": fmt.Sprintf("%.2f%%", result.EfficiencyScore),
				"Cost":       display.FormatAmount(currency, result.WastageCost),
				"Status":     string(result.Status),
			},
			Details: details,
		}},
	})
}
