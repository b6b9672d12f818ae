package aggregate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"recruiting-dashboard-backend/models"
	dbmodels "recruiting-dashboard-backend/models/db"
)

func TestStatusSummary(t *testing.T) {
	t.Run("buckets are exhaustive", func(t *testing.T) {
		statuses := []models.CandidateStatus{
			models.CandidateStatusApplied,
			models.CandidateStatusHRReview,
			models.CandidateStatusHRApproved,
			models.CandidateStatusTraining,
			models.CandidateStatusSalesTask,
			models.CandidateStatusFinalInterview,
			models.CandidateStatusHired,
			models.CandidateStatusRejected,
		}
		candidates := make([]dbmodels.Candidate, 0, len(statuses))
		for _, s := range statuses {
			candidates = append(candidates, dbmodels.Candidate{Status: s})
		}

		summary := StatusSummary(candidates)
		require.Equal(t, 1, summary.Hired)
		require.Equal(t, 1, summary.Rejected)
		require.Equal(t, 6, summary.InProgress)
		require.Equal(t, len(candidates), summary.Hired+summary.Rejected+summary.InProgress)
	})

	t.Run("empty input", func(t *testing.T) {
		summary := StatusSummary(nil)
		require.Equal(t, 0, summary.Hired)
		require.Equal(t, 0, summary.Rejected)
		require.Equal(t, 0, summary.InProgress)
	})
}
