package candidateapimodels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"recruiting-dashboard-backend/models"
	dbmodels "recruiting-dashboard-backend/models/db"
)

func TestCandidateDataValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		data := CandidateData{FirstName: "Jane", Email: "jane@example.com"}
		require.NoError(t, data.Validate())
	})

	t.Run("name required", func(t *testing.T) {
		data := CandidateData{Email: "jane@example.com"}
		require.Error(t, data.Validate())
	})

	t.Run("email required", func(t *testing.T) {
		data := CandidateData{FirstName: "Jane"}
		require.Error(t, data.Validate())
	})
}

func TestCandidateFilterValidate(t *testing.T) {
	require.NoError(t, CandidateFilter{}.Validate())
	require.NoError(t, CandidateFilter{Statuses: []models.CandidateStatus{models.CandidateStatusHired}}.Validate())
	require.Error(t, CandidateFilter{Statuses: []models.CandidateStatus{"hired"}}.Validate())
}

func TestStatusUpdateRequestValidate(t *testing.T) {
	require.NoError(t, StatusUpdateRequest{Status: models.CandidateStatusTraining}.Validate())
	require.Error(t, StatusUpdateRequest{Status: "HIRED"}.Validate())
	require.Error(t, StatusUpdateRequest{}.Validate())
}

func TestCandidateConvert(t *testing.T) {
	rec := dbmodels.Candidate{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Status:    models.CandidateStatusHRReview,
	}
	rec.ID = "id-1"
	rec.UpdatedAt = time.Date(2026, time.March, 5, 14, 7, 0, 0, time.UTC)

	view := CandidateConvert(rec)
	require.Equal(t, "id-1", view.ID)
	require.Equal(t, "Jane Doe", view.FullName)
	require.Equal(t, models.CandidateStatusHRReview, view.Status)
	require.Equal(t, "HR review", view.StatusName)
	require.Equal(t, "05.03.2026 14:07", view.UpdatedAt)
}
