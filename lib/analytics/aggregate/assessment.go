package aggregate

import (
	analyticsapimodels "recruiting-dashboard-backend/models/api/analytics"
	dbmodels "recruiting-dashboard-backend/models/db"
)

// Performance averages graded submissions per assessment title. Matching is
// exact title equality; results with no score or no resolvable title are
// skipped.
func Performance(titles []string, results []dbmodels.AssessmentResult) []analyticsapimodels.AssessmentPerformance {
	type acc struct {
		sum float64
		n   int
	}
	byTitle := make(map[string]*acc, len(titles))
	for _, title := range titles {
		byTitle[title] = &acc{}
	}
	for _, rec := range results {
		if rec.Score == nil {
			continue
		}
		a, ok := byTitle[rec.AssessmentTitle()]
		if !ok {
			continue
		}
		a.sum += *rec.Score
		a.n++
	}

	result := make([]analyticsapimodels.AssessmentPerformance, 0, len(titles))
	for _, title := range titles {
		a := byTitle[title]
		avg := 0
		if a.n > 0 {
			avg = roundInt(a.sum / float64(a.n))
		}
		result = append(result, analyticsapimodels.AssessmentPerformance{
			Title:       title,
			Submissions: a.n,
			AvgScore:    avg,
		})
	}
	return result
}
