package commands

import (
	"fmt"

	"github.com/Marcus-dot/project-dashboard-sub000/pkg/adapters"
	"github.com/Marcus-dot/project-dashboard-sub000/pkg/models/domain"
	"github.com/Marcus-dot/project-dashboard-sub000/pkg/runtime/terminal/export"
	"github.com/Marcus-dot/project-dashboard-sub000/pkg/services/risk"
	"github.com/spf13/cobra"
)

type RiskCmd struct {
	budgetVariance       float64
	scheduleDelay        float64
	resourceAvailability float64
	complexity           float64
	stakeholderAlignment float64
	asJSON               bool
	reporter             *export.Reporter
}

func NewRiskCmd(reporter *export.Reporter) *cobra.Command {
	rc := &RiskCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "risk",
		Short: "Score project risk from weighted factors",
		RunE:  rc.run,
	}

	cmd.Flags().Float64Var(&rc.budgetVariance, "budget-variance", 0, "Budget variance severity, 0-100")
	cmd.Flags().Float64Var(&rc.scheduleDelay, "schedule-delay", 0, "Schedule delay severity, 0-100")
	cmd.Flags().Float64Var(&rc.resourceAvailability, "resource-availability", 0, "Resource availability risk, 0-100")
	cmd.Flags().Float64Var(&rc.complexity, "complexity", 0, "Technical complexity, 0-100")
	cmd.Flags().Float64Var(&rc.stakeholderAlignment, "stakeholder-alignment", 0, "Stakeholder misalignment, 0-100")
	cmd.Flags().BoolVar(&rc.asJSON, "json", false, "Emit the raw result as JSON")

	return cmd
}

// optional returns the flag value only when it was set on the command
// line; an untouched factor stays out of the weighted average.
func optional(cmd *cobra.Command, name string, value float64) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &value
}

func (rc *RiskCmd) run(cmd *cobra.Command, args []string) error {
	factors := domain.RiskFactors{
		BudgetVariance:       optional(cmd, "budget-variance", rc.budgetVariance),
		ScheduleDelay:        optional(cmd, "schedule-delay", rc.scheduleDelay),
		ResourceAvailability: optional(cmd, "resource-availability", rc.resourceAvailability),
		Complexity:           optional(cmd, "complexity", rc.complexity),
		StakeholderAlignment: optional(cmd, "stakeholder-alignment", rc.stakeholderAlignment),
	}
	if factors.Empty() {
		return fmt.Errorf("at least one risk factor flag is required")
	}

	result := risk.Assess(factors)

	if rc.asJSON {
		return rc.reporter.JSON(adapters.MapRiskResultDomainToApi(result))
	}

	details := make([]domain.ReportDetail, 0, len(result.Recommendations))
	for i, rec := range result.Recommendations {
		details = append(details, domain.ReportDetail{
			Name:        fmt.Sprintf("Recommendation %d", i+1),
			Value:       "",
			Description: rec,
		})
	}

	return rc.reporter.Handle(&domain.Report{
		Title: "Risk Assessment",
		Sections: []domain.ReportSection{{
			Title: "Weighted risk score",
			Summary: map[string]interface{}{
				"Score": result.Score,
				"Level": result.Level.Level,
			},
			Details: details,
		}},
	})
}
