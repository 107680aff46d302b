package commands

import (
	"fmt"

	"github.com/Marcus-dot/project-dashboard-sub000/pkg/adapters"
	"github.com/Marcus-dot/project-dashboard-sub000/pkg/models/domain"
	"github.com/Marcus-dot/project-dashboard-sub000/pkg/runtime/terminal/export"
	"github.com/Marcus-dot/project-dashboard-sub000/pkg/services/health"
	"github.com/spf13/cobra"
)

type HealthCmd struct {
	project   string
	npv       float64
	riskScore float64
	status    string
	priority  string
	asJSON    bool
	reporter  *export.Reporter
}

func NewHealthCmd(reporter *export.Reporter) *cobra.Command {
	hc := &HealthCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Score composite project health",
		RunE:  hc.run,
	}

	cmd.Flags().StringVar(&hc.project, "project", "", "Project name for the report header")
	cmd.Flags().Float64Var(&hc.npv, "npv", 0, "Latest NPV, omit when not yet calculated")
	cmd.Flags().Float64Var(&hc.riskScore, "risk-score", 0, "Latest risk score, omit when not yet assessed")
	cmd.Flags().StringVar(&hc.status, "status", "", "Project status: Planning, In progress, Complete, Paused or Cancelled")
	cmd.Flags().StringVar(&hc.priority, "priority", "", "Project priority: High, Medium or Low")
	cmd.Flags().BoolVar(&hc.asJSON, "json", false, "Emit the raw result as JSON")

	_ = cmd.MarkFlagRequired("status")
	_ = cmd.MarkFlagRequired("priority")

	return cmd
}

func (hc *HealthCmd) run(cmd *cobra.Command, args []string) error {
	status := domain.ProjectStatus(hc.status)
	if !status.IsValid() {
		return fmt.Errorf("unknown status %q", hc.status)
	}
	priority := domain.ProjectPriority(hc.priority)
	if !priority.IsValid() {
		return fmt.Errorf("unknown priority %q", hc.priority)
	}

	result := health.Evaluate(hc.project, domain.ProjectHealthInputs{
		NPV:       optional(cmd, "npv", hc.npv),
		RiskScore: optional(cmd, "risk-score", hc.riskScore),
		Status:    status,
		Priority:  priority,
	})

	if hc.asJSON {
		return hc.reporter.JSON(adapters.MapProjectHealthDomainToApi(result))
	}

	title := "Project Health"
	if hc.project != "" {
		title = fmt.Sprintf("Project Health: %s", hc.project)
	}

	return hc.reporter.Handle(&domain.Report{
		Title: title,
		Sections: []domain.ReportSection{{
			Title: "Composite score",
			Summary: map[string]interface{}{
				"Score": result.Score,
				"Band":  string(result.Band),
				"Color": result.Band.Color(),
			},
		}},
	})
}
