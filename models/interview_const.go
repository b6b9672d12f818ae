package models

type InterviewStatus string

const (
	InterviewStatusScheduled InterviewStatus = "scheduled"
	InterviewStatusCompleted InterviewStatus = "completed"
	InterviewStatusCanceled  InterviewStatus = "canceled"
)

var interviewStatusHumanName = map[InterviewStatus]string{
	InterviewStatusScheduled: "Scheduled",
	InterviewStatusCompleted: "Completed",
	InterviewStatusCanceled:  "Canceled",
}

func (s InterviewStatus) ToHuman() string {
	if human, exist := interviewStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}
