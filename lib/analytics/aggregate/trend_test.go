package aggregate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"recruiting-dashboard-backend/models"
	dbmodels "recruiting-dashboard-backend/models/db"
)

func trendCandidate(status models.CandidateStatus, updatedAt time.Time) dbmodels.Candidate {
	c := dbmodels.Candidate{Status: status}
	c.UpdatedAt = updatedAt
	return c
}

func TestHiringTrend(t *testing.T) {
	now := time.Date(2026, time.August, 25, 15, 30, 0, 0, time.UTC)
	windowStart := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)

	t.Run("series spans twelve months ending at the current one", func(t *testing.T) {
		trend := HiringTrend(now, nil)
		require.Len(t, trend.Labels, 12)
		require.Len(t, trend.Candidates, 12)
		require.Len(t, trend.Hires, 12)
		require.Equal(t, "Sep", trend.Labels[0])
		require.Equal(t, "Aug", trend.Labels[11])
	})

	t.Run("activity lands in the month of its timestamp", func(t *testing.T) {
		trend := HiringTrend(now, []dbmodels.Candidate{
			trendCandidate(models.CandidateStatusApplied, windowStart),
			trendCandidate(models.CandidateStatusTraining, time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)),
			trendCandidate(models.CandidateStatusHired, now),
		})

		require.Equal(t, 1, trend.Candidates[0])
		require.Equal(t, 1, trend.Candidates[4])
		require.Equal(t, 1, trend.Candidates[11])
		require.Equal(t, 1, trend.Hires[11])
		require.Equal(t, 0, trend.Hires[0])
	})

	t.Run("timestamps outside the window are dropped", func(t *testing.T) {
		trend := HiringTrend(now, []dbmodels.Candidate{
			trendCandidate(models.CandidateStatusHired, windowStart.Add(-time.Second)),
			trendCandidate(models.CandidateStatusApplied, now.AddDate(0, 1, 0)),
		})

		for i := 0; i < 12; i++ {
			require.Equal(t, 0, trend.Candidates[i])
			require.Equal(t, 0, trend.Hires[i])
		}
	})

	t.Run("window boundary is inclusive", func(t *testing.T) {
		trend := HiringTrend(now, []dbmodels.Candidate{
			trendCandidate(models.CandidateStatusHired, windowStart),
		})

		require.Equal(t, 1, trend.Candidates[0])
		require.Equal(t, 1, trend.Hires[0])
	})

	t.Run("non hired statuses never count as hires", func(t *testing.T) {
		trend := HiringTrend(now, []dbmodels.Candidate{
			trendCandidate(models.CandidateStatusRejected, now),
			trendCandidate(models.CandidateStatusFinalInterview, now),
		})

		require.Equal(t, 2, trend.Candidates[11])
		require.Equal(t, 0, trend.Hires[11])
	})
}
