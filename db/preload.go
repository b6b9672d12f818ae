package db

import (
	log "github.com/sirupsen/logrus"

	"recruiting-dashboard-backend/models"
	dbmodels "recruiting-dashboard-backend/models/db"
)

func InitPreload() {
	fillAssessments()
}

// fillAssessments seeds the fixed assessment list the performance widget
// is built around. Existing titles are left untouched.
func fillAssessments() {
	for i, title := range models.DefaultAssessmentTitles() {
		var count int64
		err := DB.Model(&dbmodels.Assessment{}).
			Where("title = ?", title).
			Count(&count).
			Error
		if err != nil {
			log.WithError(err).Error("assessment seed failed")
			return
		}
		if count > 0 {
			continue
		}
		rec := dbmodels.Assessment{
			Title:     title,
			SortOrder: i,
		}
		if err := DB.Create(&rec).Error; err != nil {
			log.WithError(err).Error("assessment seed failed")
			return
		}
	}
}
