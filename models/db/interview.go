package dbmodels

import (
	"time"

	"recruiting-dashboard-backend/models"
)

type Interview struct {
	BaseModel
	CandidateID   string                 `gorm:"type:varchar(36);index"`
	Candidate     *Candidate             `gorm:"foreignKey:CandidateID"`
	InterviewerID string                 `gorm:"type:varchar(36);index"`
	Interviewer   *DashboardUser         `gorm:"foreignKey:InterviewerID"`
	Title         string                 `gorm:"type:varchar(255)"`
	ScheduledAt   time.Time
	DurationMin   int
	Location      string                 `gorm:"type:varchar(255)"`
	Status        models.InterviewStatus `gorm:"type:varchar(50);index"`
	Notes         string
}
