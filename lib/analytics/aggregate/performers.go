package aggregate

import (
	"sort"

	analyticsapimodels "recruiting-dashboard-backend/models/api/analytics"
	dbmodels "recruiting-dashboard-backend/models/db"
)

const topPerformersLimit = 5

const unknownPerformerName = "Unknown"

// TopPerformers ranks candidates by the rounded mean of their own graded
// scores, descending, and keeps the top five. Candidates without a single
// graded submission are left out entirely, they are not scored as zero.
// Ties keep the candidate fetch order.
func TopPerformers(candidates []dbmodels.Candidate, results []dbmodels.AssessmentResult) []analyticsapimodels.TopPerformer {
	type acc struct {
		sum float64
		n   int
	}
	byCandidate := make(map[string]*acc)
	for _, rec := range results {
		if rec.Score == nil {
			continue
		}
		a, ok := byCandidate[rec.CandidateID]
		if !ok {
			a = &acc{}
			byCandidate[rec.CandidateID] = a
		}
		a.sum += *rec.Score
		a.n++
	}

	performers := make([]analyticsapimodels.TopPerformer, 0, len(candidates))
	for _, candidate := range candidates {
		a, ok := byCandidate[candidate.ID]
		if !ok || a.n == 0 {
			continue
		}
		name := candidate.FullName()
		if name == "" {
			name = unknownPerformerName
		}
		performers = append(performers, analyticsapimodels.TopPerformer{
			CandidateID: candidate.ID,
			Name:        name,
			AvgScore:    roundInt(a.sum / float64(a.n)),
		})
	}

	sort.SliceStable(performers, func(i, j int) bool {
		return performers[i].AvgScore > performers[j].AvgScore
	})
	if len(performers) > topPerformersLimit {
		performers = performers[:topPerformersLimit]
	}
	return performers
}
