package aggregate

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	dbmodels "recruiting-dashboard-backend/models/db"
)

func performerCandidate(id, firstName, lastName string) dbmodels.Candidate {
	c := dbmodels.Candidate{FirstName: firstName, LastName: lastName}
	c.ID = id
	return c
}

func scoreFor(candidateID string, score float64) dbmodels.AssessmentResult {
	r := dbmodels.AssessmentResult{CandidateID: candidateID, Score: &score}
	return r
}

func TestTopPerformers(t *testing.T) {
	t.Run("ranks by average descending and keeps five", func(t *testing.T) {
		scores := []float64{90, 85, 95, 70, 60, 100}
		candidates := make([]dbmodels.Candidate, 0, len(scores))
		results := make([]dbmodels.AssessmentResult, 0, len(scores))
		for i, s := range scores {
			id := fmt.Sprintf("c%d", i)
			candidates = append(candidates, performerCandidate(id, "Candidate", fmt.Sprint(i)))
			results = append(results, scoreFor(id, s))
		}

		performers := TopPerformers(candidates, results)
		require.Len(t, performers, 5)
		got := make([]int, 0, len(performers))
		for _, p := range performers {
			got = append(got, p.AvgScore)
		}
		require.Equal(t, []int{100, 95, 90, 85, 70}, got)
	})

	t.Run("averages multiple submissions per candidate", func(t *testing.T) {
		candidates := []dbmodels.Candidate{performerCandidate("c1", "Jane", "Doe")}
		results := []dbmodels.AssessmentResult{
			scoreFor("c1", 70),
			scoreFor("c1", 75),
			scoreFor("c1", 80),
		}

		performers := TopPerformers(candidates, results)
		require.Len(t, performers, 1)
		require.Equal(t, 75, performers[0].AvgScore)
		require.Equal(t, "Jane Doe", performers[0].Name)
	})

	t.Run("candidates without graded scores are excluded", func(t *testing.T) {
		candidates := []dbmodels.Candidate{
			performerCandidate("c1", "Graded", "One"),
			performerCandidate("c2", "Ungraded", "Two"),
			performerCandidate("c3", "Absent", "Three"),
		}
		results := []dbmodels.AssessmentResult{
			scoreFor("c1", 88),
			{CandidateID: "c2", Score: nil},
		}

		performers := TopPerformers(candidates, results)
		require.Len(t, performers, 1)
		require.Equal(t, "c1", performers[0].CandidateID)
	})

	t.Run("blank names fall back to a placeholder", func(t *testing.T) {
		candidates := []dbmodels.Candidate{performerCandidate("c1", "", "")}
		results := []dbmodels.AssessmentResult{scoreFor("c1", 50)}

		performers := TopPerformers(candidates, results)
		require.Len(t, performers, 1)
		require.Equal(t, "Unknown", performers[0].Name)
	})

	t.Run("ties keep the fetch order", func(t *testing.T) {
		candidates := []dbmodels.Candidate{
			performerCandidate("c1", "First", "Tied"),
			performerCandidate("c2", "Second", "Tied"),
		}
		results := []dbmodels.AssessmentResult{
			scoreFor("c1", 80),
			scoreFor("c2", 80),
		}

		performers := TopPerformers(candidates, results)
		require.Len(t, performers, 2)
		require.Equal(t, "c1", performers[0].CandidateID)
		require.Equal(t, "c2", performers[1].CandidateID)
	})
}
