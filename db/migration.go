package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	dbmodels "recruiting-dashboard-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.DashboardUser{}); err != nil {
		return errors.Wrap(err, "DashboardUser migration failed")
	}
	if err := DB.AutoMigrate(&dbmodels.Candidate{}); err != nil {
		return errors.Wrap(err, "Candidate migration failed")
	}
	if err := DB.AutoMigrate(&dbmodels.Assessment{}); err != nil {
		return errors.Wrap(err, "Assessment migration failed")
	}
	if err := DB.AutoMigrate(&dbmodels.AssessmentResult{}); err != nil {
		return errors.Wrap(err, "AssessmentResult migration failed")
	}
	if err := DB.AutoMigrate(&dbmodels.Interview{}); err != nil {
		return errors.Wrap(err, "Interview migration failed")
	}
	log.Info("migrations finished")
	return nil
}
