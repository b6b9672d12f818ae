package models

type CandidateStatus string

// Pipeline status tags. Casing is part of the stored value and must not be
// normalized: early stages are lowercase, terminal tags are capitalized.
const (
	CandidateStatusApplied        CandidateStatus = "applied"
	CandidateStatusHRReview       CandidateStatus = "hr_review"
	CandidateStatusHRApproved     CandidateStatus = "hr_approved"
	CandidateStatusTraining       CandidateStatus = "training"
	CandidateStatusSalesTask      CandidateStatus = "sales_task"
	CandidateStatusFinalInterview CandidateStatus = "final_interview"
	CandidateStatusHired          CandidateStatus = "Hired"
	CandidateStatusRejected       CandidateStatus = "Rejected"
	CandidateStatusClosed         CandidateStatus = "Closed"
)

var candidateStatusHumanName = map[CandidateStatus]string{
	CandidateStatusApplied:        "Applied",
	CandidateStatusHRReview:       "HR review",
	CandidateStatusHRApproved:     "HR approved",
	CandidateStatusTraining:       "Training",
	CandidateStatusSalesTask:      "Sales task",
	CandidateStatusFinalInterview: "Final interview",
	CandidateStatusHired:          "Hired",
	CandidateStatusRejected:       "Rejected",
	CandidateStatusClosed:         "Closed",
}

func (s CandidateStatus) ToHuman() string {
	if human, exist := candidateStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s CandidateStatus) IsKnown() bool {
	_, exist := candidateStatusHumanName[s]
	return exist
}

// IsTerminal reports whether the candidate left the active pipeline.
func (s CandidateStatus) IsTerminal() bool {
	return s == CandidateStatusHired || s == CandidateStatusRejected || s == CandidateStatusClosed
}
