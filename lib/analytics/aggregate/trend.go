package aggregate

import (
	"time"

	"recruiting-dashboard-backend/models"
	analyticsapimodels "recruiting-dashboard-backend/models/api/analytics"
	dbmodels "recruiting-dashboard-backend/models/db"
)

const trendMonths = 12

// HiringTrend bins candidates into a fixed 12-month series ending at the
// month of now, oldest first. UpdatedAt stands in for both "entered the
// pipeline" and "hired": the store tracks no separate application or hire
// timestamp, so the last status change is the only signal available.
func HiringTrend(now time.Time, candidates []dbmodels.Candidate) analyticsapimodels.HiringTrend {
	windowStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).
		AddDate(0, -(trendMonths - 1), 0)

	trend := analyticsapimodels.HiringTrend{
		Labels:     make([]string, trendMonths),
		Candidates: make([]int, trendMonths),
		Hires:      make([]int, trendMonths),
	}
	for i := 0; i < trendMonths; i++ {
		trend.Labels[i] = windowStart.AddDate(0, i, 0).Format("Jan")
	}

	for _, candidate := range candidates {
		idx := bucketIndex(windowStart, candidate.UpdatedAt)
		if idx < 0 || idx >= trendMonths {
			continue
		}
		trend.Candidates[idx]++
		if candidate.Status == models.CandidateStatusHired && !candidate.UpdatedAt.Before(windowStart) {
			trend.Hires[idx]++
		}
	}
	return trend
}

// bucketIndex returns the month offset of ts from the window start.
func bucketIndex(windowStart, ts time.Time) int {
	return (ts.Year()-windowStart.Year())*12 + int(ts.Month()) - int(windowStart.Month())
}
