package aggregate

import (
	"testing"

	"github.com/stretchr/testify/require"

	dbmodels "recruiting-dashboard-backend/models/db"
)

func gradedResult(title string, score float64) dbmodels.AssessmentResult {
	return dbmodels.AssessmentResult{
		Score:      &score,
		Assessment: &dbmodels.Assessment{Title: title},
	}
}

func TestPerformance(t *testing.T) {
	titles := []string{"HR Screening", "Product Knowledge"}

	t.Run("average rounds to nearest integer", func(t *testing.T) {
		results := []dbmodels.AssessmentResult{
			gradedResult("HR Screening", 70),
			gradedResult("HR Screening", 75),
			gradedResult("HR Screening", 80),
		}

		views := Performance(titles, results)
		require.Len(t, views, 2)
		require.Equal(t, "HR Screening", views[0].Title)
		require.Equal(t, 75, views[0].AvgScore)
		require.Equal(t, 3, views[0].Submissions)
	})

	t.Run("ungraded results are skipped", func(t *testing.T) {
		results := []dbmodels.AssessmentResult{
			gradedResult("HR Screening", 90),
			{Score: nil, Assessment: &dbmodels.Assessment{Title: "HR Screening"}},
		}

		views := Performance(titles, results)
		require.Equal(t, 90, views[0].AvgScore)
		require.Equal(t, 1, views[0].Submissions)
	})

	t.Run("unknown titles are ignored", func(t *testing.T) {
		results := []dbmodels.AssessmentResult{
			gradedResult("Something Else", 10),
		}

		views := Performance(titles, results)
		for _, v := range views {
			require.Equal(t, 0, v.AvgScore)
			require.Equal(t, 0, v.Submissions)
		}
	})

	t.Run("assessment without submissions reports zero", func(t *testing.T) {
		views := Performance(titles, nil)
		require.Len(t, views, 2)
		require.Equal(t, 0, views[1].AvgScore)
		require.Equal(t, 0, views[1].Submissions)
	})
}
