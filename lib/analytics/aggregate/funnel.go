package aggregate

import (
	"recruiting-dashboard-backend/models"
	analyticsapimodels "recruiting-dashboard-backend/models/api/analytics"
	dbmodels "recruiting-dashboard-backend/models/db"
)

// Funnel counts candidates per stage and derives the funnel-relative and
// stage-to-stage percentages. The candidate collection must already exclude
// the Closed status; Rejected candidates simply match no stage.
func Funnel(stages []models.FunnelStage, candidates []dbmodels.Candidate) []analyticsapimodels.FunnelStageView {
	counts := make([]int, len(stages))
	for _, candidate := range candidates {
		for i, stage := range stages {
			if stage.Matches(candidate.Status) {
				counts[i]++
			}
		}
	}

	entryCount := 0
	if len(counts) > 0 {
		entryCount = counts[0]
	}

	result := make([]analyticsapimodels.FunnelStageView, 0, len(stages))
	for i, stage := range stages {
		value := float64(0)
		if entryCount > 0 {
			value = round1(float64(counts[i]) / float64(entryCount) * 100)
		}
		// the entry stage converts from itself
		rate := float64(100)
		if i > 0 {
			rate = 0
			if counts[i-1] > 0 {
				rate = round1(float64(counts[i]) / float64(counts[i-1]) * 100)
			}
		}
		result = append(result, analyticsapimodels.FunnelStageView{
			Name:             stage.Name,
			Count:            counts[i],
			Value:            value,
			StageToStageRate: rate,
		})
	}
	return result
}

// FindBottleneck picks the transition with the minimum stage-to-stage rate,
// scanning left to right from the second stage; ties keep the earliest
// transition. With fewer than two stages there is no bottleneck.
func FindBottleneck(stages []analyticsapimodels.FunnelStageView) *analyticsapimodels.Bottleneck {
	if len(stages) < 2 {
		return nil
	}
	worst := 1
	for i := 2; i < len(stages); i++ {
		if stages[i].StageToStageRate < stages[worst].StageToStageRate {
			worst = i
		}
	}
	return &analyticsapimodels.Bottleneck{
		FromStage: stages[worst-1].Name,
		ToStage:   stages[worst].Name,
		Rate:      stages[worst].StageToStageRate,
	}
}
