package interviewapimodels

import (
	"time"

	"github.com/pkg/errors"

	"recruiting-dashboard-backend/models"
	dbmodels "recruiting-dashboard-backend/models/db"
)

type InterviewView struct {
	ID              string                 `json:"id"`
	CandidateID     string                 `json:"candidate_id"`
	CandidateName   string                 `json:"candidate_name"`
	InterviewerID   string                 `json:"interviewer_id"`
	InterviewerName string                 `json:"interviewer_name"`
	Title           string                 `json:"title"`
	ScheduledAt     time.Time              `json:"scheduled_at"`
	DurationMin     int                    `json:"duration_min"`
	Location        string                 `json:"location"`
	Status          models.InterviewStatus `json:"status"`
	StatusName      string                 `json:"status_name"`
	Notes           string                 `json:"notes"`
}

type ScheduleRequest struct {
	CandidateID string    `json:"candidate_id"`
	Title       string    `json:"title"`
	ScheduledAt time.Time `json:"scheduled_at"`
	DurationMin int       `json:"duration_min"`
	Location    string    `json:"location"`
	Notes       string    `json:"notes"`
}

func (r ScheduleRequest) Validate() error {
	if r.CandidateID == "" {
		return errors.New("candidate is required")
	}
	if r.Title == "" {
		return errors.New("interview title is required")
	}
	if r.ScheduledAt.IsZero() {
		return errors.New("interview time is required")
	}
	if r.DurationMin <= 0 {
		return errors.New("duration must be positive")
	}
	return nil
}

func InterviewConvert(rec dbmodels.Interview) InterviewView {
	view := InterviewView{
		ID:            rec.ID,
		CandidateID:   rec.CandidateID,
		InterviewerID: rec.InterviewerID,
		Title:         rec.Title,
		ScheduledAt:   rec.ScheduledAt,
		DurationMin:   rec.DurationMin,
		Location:      rec.Location,
		Status:        rec.Status,
		StatusName:    rec.Status.ToHuman(),
		Notes:         rec.Notes,
	}
	if rec.Candidate != nil {
		view.CandidateName = rec.Candidate.FullName()
	}
	if rec.Interviewer != nil {
		view.InterviewerName = rec.Interviewer.FullName()
	}
	return view
}
