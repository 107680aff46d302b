package adapters

import (
	"github.com/Marcus-dot/project-dashboard-sub000/pkg/models/api"
	"github.com/Marcus-dot/project-dashboard-sub000/pkg/models/domain"
	"github.com/Marcus-dot/project-dashboard-sub000/pkg/models/store"
)

func MapProjectDomainToStore(project domain.Project) store.ProjectRecord {
	return store.ProjectRecord{
		Name:       project.Name,
		Status:     string(project.Status),
		Priority:   string(project.Priority),
		NPV:        project.NPV,
		RiskScore:  project.RiskScore,
		WastagePct: project.WastagePct,
		UpdatedAt:  project.UpdatedAt,
	}
}

func MapProjectStoreToDomain(record store.ProjectRecord) domain.Project {
	return domain.Project{
		Name:       record.Name,
		Status:     domain.ProjectStatus(record.Status),
		Priority:   domain.ProjectPriority(record.Priority),
		NPV:        record.NPV,
		RiskScore:  record.RiskScore,
		WastagePct: record.WastagePct,
		UpdatedAt:  record.UpdatedAt,
	}
}

func MapProjectDomainToApi(project domain.Project) api.Project {
	return api.Project{
		Name:       project.Name,
		Status:     string(project.Status),
		Priority:   string(project.Priority),
		NPV:        project.NPV,
		RiskScore:  project.RiskScore,
		WastagePct: project.WastagePct,
	}
}

func MapCalculationStoreToDomain(record store.CalculationRecord) domain.Calculation {
	return domain.Calculation{
		ID:        record.ID,
		Project:   record.Project,
		Kind:      record.Kind,
		Result:    record.Payload,
		CreatedAt: record.CreatedAt,
	}
}

func MapCalculationDomainToApi(calc domain.Calculation) api.Calculation {
	return api.Calculation{
		ID:        calc.ID,
		Kind:      calc.Kind,
		Result:    calc.Result,
		CreatedAt: calc.CreatedAt,
	}
}

func MapPortfolioSummaryDomainToApi(summary domain.PortfolioSummary) api.PortfolioSummary {
	bands := make(map[string]int, len(summary.BandCounts))
	for band, count := range summary.BandCounts {
		bands[string(band)] = count
	}

	attention := make([]api.ProjectHealth, 0, len(summary.NeedsAttention))
	for _, h := range summary.NeedsAttention {
		attention = append(attention, MapProjectHealthDomainToApi(h))
	}

	return api.PortfolioSummary{
		ProjectCount:   summary.ProjectCount,
		AverageScore:   summary.AverageScore,
		BandCounts:     bands,
		NeedsAttention: attention,
	}
}
