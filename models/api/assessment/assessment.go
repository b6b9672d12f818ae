package assessmentapimodels

import (
	"time"

	"github.com/pkg/errors"

	dbmodels "recruiting-dashboard-backend/models/db"
)

type AssessmentView struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type ResultView struct {
	ID              string    `json:"id"`
	CandidateID     string    `json:"candidate_id"`
	CandidateName   string    `json:"candidate_name"`
	AssessmentID    string    `json:"assessment_id"`
	AssessmentTitle string    `json:"assessment_title"`
	Score           *float64  `json:"score"` // null until graded
	SubmittedAt     time.Time `json:"submitted_at"`
}

type RecordResultRequest struct {
	CandidateID  string   `json:"candidate_id"`
	AssessmentID string   `json:"assessment_id"`
	Score        *float64 `json:"score"` // omit to record an ungraded submission
}

func (r RecordResultRequest) Validate() error {
	if r.CandidateID == "" {
		return errors.New("candidate is required")
	}
	if r.AssessmentID == "" {
		return errors.New("assessment is required")
	}
	if r.Score != nil && (*r.Score < 0 || *r.Score > 100) {
		return errors.New("score must be between 0 and 100")
	}
	return nil
}

func AssessmentConvert(rec dbmodels.Assessment) AssessmentView {
	return AssessmentView{
		ID:          rec.ID,
		Title:       rec.Title,
		Description: rec.Description,
	}
}

func ResultConvert(rec dbmodels.AssessmentResult) ResultView {
	view := ResultView{
		ID:           rec.ID,
		CandidateID:  rec.CandidateID,
		AssessmentID: rec.AssessmentID,
		Score:        rec.Score,
		SubmittedAt:  rec.SubmittedAt,
	}
	if rec.Candidate != nil {
		view.CandidateName = rec.Candidate.FullName()
	}
	if rec.Assessment != nil {
		view.AssessmentTitle = rec.Assessment.Title
	}
	return view
}
