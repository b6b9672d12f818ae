package dbmodels

import (
	"fmt"
	"strings"

	"recruiting-dashboard-backend/models"
)

type DashboardUser struct {
	BaseModel
	FirstName    string          `gorm:"type:varchar(255)"`
	LastName     string          `gorm:"type:varchar(255)"`
	Email        string          `gorm:"type:varchar(255);uniqueIndex"`
	PasswordHash string          `gorm:"type:varchar(255)"`
	Role         models.UserRole `gorm:"type:varchar(50);index"`
	IsActive     bool            `gorm:"default:true"`
}

func (u DashboardUser) FullName() string {
	return strings.TrimSpace(fmt.Sprintf("%s %s", u.FirstName, u.LastName))
}
