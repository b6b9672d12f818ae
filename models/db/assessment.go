package dbmodels

import "time"

type Assessment struct {
	BaseModel
	Title       string `gorm:"type:varchar(255);uniqueIndex"`
	Description string
	// SortOrder fixes the display order on the performance widget.
	SortOrder int
}

// AssessmentResult is one candidate's submission for one assessment.
// Score is null until the submission is graded; ungraded results are
// excluded from every average.
type AssessmentResult struct {
	BaseModel
	CandidateID  string      `gorm:"type:varchar(36);index"`
	Candidate    *Candidate  `gorm:"foreignKey:CandidateID"`
	AssessmentID string      `gorm:"type:varchar(36);index"`
	Assessment   *Assessment `gorm:"foreignKey:AssessmentID"`
	Score        *float64
	SubmittedAt  time.Time
}

func (r AssessmentResult) AssessmentTitle() string {
	if r.Assessment == nil {
		return ""
	}
	return r.Assessment.Title
}
