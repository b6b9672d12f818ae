package assessmentapimodels

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecordResultRequestValidate(t *testing.T) {
	score := func(v float64) *float64 { return &v }

	t.Run("valid graded", func(t *testing.T) {
		req := RecordResultRequest{CandidateID: "c1", AssessmentID: "a1", Score: score(87)}
		require.NoError(t, req.Validate())
	})

	t.Run("valid ungraded", func(t *testing.T) {
		req := RecordResultRequest{CandidateID: "c1", AssessmentID: "a1"}
		require.NoError(t, req.Validate())
	})

	t.Run("score bounds", func(t *testing.T) {
		req := RecordResultRequest{CandidateID: "c1", AssessmentID: "a1", Score: score(101)}
		require.Error(t, req.Validate())
		req.Score = score(-1)
		require.Error(t, req.Validate())
		req.Score = score(0)
		require.NoError(t, req.Validate())
		req.Score = score(100)
		require.NoError(t, req.Validate())
	})

	t.Run("references required", func(t *testing.T) {
		require.Error(t, RecordResultRequest{AssessmentID: "a1"}.Validate())
		require.Error(t, RecordResultRequest{CandidateID: "c1"}.Validate())
	})
}
