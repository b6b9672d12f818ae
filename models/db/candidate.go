package dbmodels

import (
	"fmt"
	"strings"

	"recruiting-dashboard-backend/models"
)

type Candidate struct {
	BaseModel
	FirstName string                 `gorm:"type:varchar(255)"`
	LastName  string                 `gorm:"type:varchar(255)"`
	Email     string                 `gorm:"type:varchar(255);index"`
	Phone     string                 `gorm:"type:varchar(255)"`
	Region    string                 `gorm:"type:varchar(255)"`
	Status    models.CandidateStatus `gorm:"type:varchar(50);index"`
	// UserID links the record to a candidate login, when one exists.
	UserID string `gorm:"type:varchar(36);index"`
}

func (c Candidate) FullName() string {
	name := strings.TrimSpace(fmt.Sprintf("%s %s", c.FirstName, c.LastName))
	return name
}
