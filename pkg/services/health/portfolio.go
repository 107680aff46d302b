package health

import "github.com/Marcus-dot/project-dashboard-sub000/pkg/models/domain"

// Projects below the fair threshold land on the needs-attention list.
const attentionThreshold = 45

// Summarize aggregates scored projects into the dashboard view:
// average score, counts per band and the needs-attention list in input
// order. The summary is recomputed on demand, never persisted.
func Summarize(healths []domain.ProjectHealth) domain.PortfolioSummary {
	summary := domain.PortfolioSummary{
		ProjectCount: len(healths),
		BandCounts:   make(map[domain.HealthBand]int),
	}

	var total int
	for _, h := range healths {
		total += h.Score
		summary.BandCounts[h.Band]++
		if h.Score < attentionThreshold {
			summary.NeedsAttention = append(summary.NeedsAttention, h)
		}
	}

	if len(healths) > 0 {
		summary.AverageScore = float64(total) / float64(len(healths))
	}
	return summary
}
