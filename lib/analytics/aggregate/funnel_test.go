package aggregate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"recruiting-dashboard-backend/models"
	analyticsapimodels "recruiting-dashboard-backend/models/api/analytics"
	dbmodels "recruiting-dashboard-backend/models/db"
)

func candidateWithStatus(status models.CandidateStatus) dbmodels.Candidate {
	return dbmodels.Candidate{Status: status}
}

func TestFunnel(t *testing.T) {
	stages := models.DefaultFunnelStages()

	t.Run("counts are monotonically non-increasing", func(t *testing.T) {
		candidates := []dbmodels.Candidate{
			candidateWithStatus(models.CandidateStatusApplied),
			candidateWithStatus(models.CandidateStatusApplied),
			candidateWithStatus(models.CandidateStatusHRReview),
			candidateWithStatus(models.CandidateStatusHRApproved),
			candidateWithStatus(models.CandidateStatusTraining),
			candidateWithStatus(models.CandidateStatusSalesTask),
			candidateWithStatus(models.CandidateStatusFinalInterview),
			candidateWithStatus(models.CandidateStatusHired),
			candidateWithStatus(models.CandidateStatusRejected),
		}

		views := Funnel(stages, candidates)
		require.Len(t, views, len(stages))
		for i := 1; i < len(views); i++ {
			require.LessOrEqual(t, views[i].Count, views[i-1].Count,
				"stage %q must not exceed stage %q", views[i].Name, views[i-1].Name)
		}
	})

	t.Run("percentages are relative to the entry stage", func(t *testing.T) {
		candidates := []dbmodels.Candidate{
			candidateWithStatus(models.CandidateStatusApplied),
			candidateWithStatus(models.CandidateStatusApplied),
			candidateWithStatus(models.CandidateStatusHRReview),
			candidateWithStatus(models.CandidateStatusHired),
		}

		views := Funnel(stages, candidates)
		require.Equal(t, 4, views[0].Count)
		require.Equal(t, 100.0, views[0].Value)
		require.Equal(t, 100.0, views[0].StageToStageRate)

		// 2 of 4 reached hr_review: 50% of entry, 50% of previous stage
		require.Equal(t, 2, views[1].Count)
		require.Equal(t, 50.0, views[1].Value)
		require.Equal(t, 50.0, views[1].StageToStageRate)

		// the single hire: 25% of entry, 100% of final interview survivors
		last := views[len(views)-1]
		require.Equal(t, 1, last.Count)
		require.Equal(t, 25.0, last.Value)
		require.Equal(t, 100.0, last.StageToStageRate)
	})

	t.Run("one decimal rounding", func(t *testing.T) {
		candidates := []dbmodels.Candidate{
			candidateWithStatus(models.CandidateStatusApplied),
			candidateWithStatus(models.CandidateStatusApplied),
			candidateWithStatus(models.CandidateStatusHRReview),
		}

		views := Funnel(stages, candidates)
		// 1 of 3 is 33.333..., kept at one decimal
		require.Equal(t, 33.3, views[1].Value)
	})

	t.Run("empty input keeps every stage at zero", func(t *testing.T) {
		views := Funnel(stages, nil)
		require.Len(t, views, len(stages))
		for _, v := range views {
			require.Equal(t, 0, v.Count)
			require.Equal(t, float64(0), v.Value)
		}
		require.Equal(t, 100.0, views[0].StageToStageRate)
		for _, v := range views[1:] {
			require.Equal(t, float64(0), v.StageToStageRate)
		}
	})
}

func TestFindBottleneck(t *testing.T) {
	t.Run("picks the transition with the lowest rate", func(t *testing.T) {
		views := []analyticsapimodels.FunnelStageView{
			{Name: "A", StageToStageRate: 100},
			{Name: "B", StageToStageRate: 80},
			{Name: "C", StageToStageRate: 30},
			{Name: "D", StageToStageRate: 90},
		}

		b := FindBottleneck(views)
		require.NotNil(t, b)
		require.Equal(t, "B", b.FromStage)
		require.Equal(t, "C", b.ToStage)
		require.Equal(t, 30.0, b.Rate)
	})

	t.Run("tie keeps the earliest transition", func(t *testing.T) {
		views := []analyticsapimodels.FunnelStageView{
			{Name: "A", StageToStageRate: 100},
			{Name: "B", StageToStageRate: 40},
			{Name: "C", StageToStageRate: 40},
		}

		b := FindBottleneck(views)
		require.NotNil(t, b)
		require.Equal(t, "A", b.FromStage)
		require.Equal(t, "B", b.ToStage)
	})

	t.Run("fewer than two stages has no bottleneck", func(t *testing.T) {
		require.Nil(t, FindBottleneck(nil))
		require.Nil(t, FindBottleneck([]analyticsapimodels.FunnelStageView{{Name: "A", StageToStageRate: 100}}))
	})
}
