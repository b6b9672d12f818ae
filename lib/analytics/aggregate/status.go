package aggregate

import (
	"recruiting-dashboard-backend/models"
	analyticsapimodels "recruiting-dashboard-backend/models/api/analytics"
	dbmodels "recruiting-dashboard-backend/models/db"
)

// StatusSummary classifies every candidate of the (already Closed-free)
// collection into exactly one of three buckets. The buckets are exhaustive:
// anything neither hired nor rejected counts as in progress.
func StatusSummary(candidates []dbmodels.Candidate) analyticsapimodels.StatusSummary {
	summary := analyticsapimodels.StatusSummary{}
	for _, candidate := range candidates {
		switch candidate.Status {
		case models.CandidateStatusHired:
			summary.Hired++
		case models.CandidateStatusRejected:
			summary.Rejected++
		default:
			summary.InProgress++
		}
	}
	return summary
}
