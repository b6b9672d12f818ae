package models

// FunnelStage names a pipeline checkpoint and lists the status tags that
// count as having reached it. Stages are ordered and cumulative toward
// hiring: every next stage's status set is a subset of the previous one's.
type FunnelStage struct {
	Name     string
	Statuses []CandidateStatus
}

func (f FunnelStage) Matches(status CandidateStatus) bool {
	for _, s := range f.Statuses {
		if s == status {
			return true
		}
	}
	return false
}

// DefaultFunnelStages is the stage ladder rendered on the dashboard.
// Rejected and Closed belong to no stage.
func DefaultFunnelStages() []FunnelStage {
	return []FunnelStage{
		{
			Name: "Applied",
			Statuses: []CandidateStatus{
				CandidateStatusApplied, CandidateStatusHRReview, CandidateStatusHRApproved,
				CandidateStatusTraining, CandidateStatusSalesTask, CandidateStatusFinalInterview,
				CandidateStatusHired,
			},
		},
		{
			Name: "HR Review",
			Statuses: []CandidateStatus{
				CandidateStatusHRReview, CandidateStatusHRApproved, CandidateStatusTraining,
				CandidateStatusSalesTask, CandidateStatusFinalInterview, CandidateStatusHired,
			},
		},
		{
			Name: "HR Approved",
			Statuses: []CandidateStatus{
				CandidateStatusHRApproved, CandidateStatusTraining, CandidateStatusSalesTask,
				CandidateStatusFinalInterview, CandidateStatusHired,
			},
		},
		{
			Name: "Training",
			Statuses: []CandidateStatus{
				CandidateStatusTraining, CandidateStatusSalesTask, CandidateStatusFinalInterview,
				CandidateStatusHired,
			},
		},
		{
			Name: "Sales Task",
			Statuses: []CandidateStatus{
				CandidateStatusSalesTask, CandidateStatusFinalInterview, CandidateStatusHired,
			},
		},
		{
			Name: "Final Interview",
			Statuses: []CandidateStatus{
				CandidateStatusFinalInterview, CandidateStatusHired,
			},
		},
		{
			Name:     "Hired",
			Statuses: []CandidateStatus{CandidateStatusHired},
		},
	}
}

// DefaultAssessmentTitles is the fixed ordered list of assessments shown on
// the assessment performance widget.
func DefaultAssessmentTitles() []string {
	return []string{
		"HR Screening",
		"Product Knowledge",
		"Sales Task",
		"Final Interview",
	}
}
