package analyticsstore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"recruiting-dashboard-backend/models"
	dbmodels "recruiting-dashboard-backend/models/db"
)

// Provider fetches the flat row collections the aggregation functions
// consume. Closed candidates are filtered out at query level: they are
// invisible to every dashboard widget.
type Provider interface {
	PipelineCandidates() (list []dbmodels.Candidate, err error)
	GradedResults() (list []dbmodels.AssessmentResult, err error)
	PeriodCounts(from, to time.Time) (applications, hires int, err error)
	ActiveCount() (count int, err error)
	ActiveCountBefore(moment time.Time) (count int, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) PipelineCandidates() (list []dbmodels.Candidate, err error) {
	list = []dbmodels.Candidate{}
	err = i.db.
		Model(&dbmodels.Candidate{}).
		Where("status <> ?", models.CandidateStatusClosed).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) GradedResults() (list []dbmodels.AssessmentResult, err error) {
	list = []dbmodels.AssessmentResult{}
	err = i.db.
		Model(&dbmodels.AssessmentResult{}).
		Where("score is not null").
		Preload("Assessment").
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

// PeriodCounts counts applications and hires whose last status change falls
// into [from, to). UpdatedAt is the only timestamp the pipeline tracks.
func (i impl) PeriodCounts(from, to time.Time) (applications, hires int, err error) {
	var appCount int64
	err = i.db.
		Model(&dbmodels.Candidate{}).
		Where("status <> ?", models.CandidateStatusClosed).
		Where("updated_at >= ? and updated_at < ?", from, to).
		Count(&appCount).
		Error
	if err != nil {
		return 0, 0, err
	}
	var hireCount int64
	err = i.db.
		Model(&dbmodels.Candidate{}).
		Where("status = ?", models.CandidateStatusHired).
		Where("updated_at >= ? and updated_at < ?", from, to).
		Count(&hireCount).
		Error
	if err != nil {
		return 0, 0, err
	}
	return int(appCount), int(hireCount), nil
}

func (i impl) ActiveCount() (count int, err error) {
	var c int64
	err = i.db.
		Model(&dbmodels.Candidate{}).
		Where("status not in (?)", []string{
			string(models.CandidateStatusHired),
			string(models.CandidateStatusRejected),
			string(models.CandidateStatusClosed),
		}).
		Count(&c).
		Error
	return int(c), err
}

// ActiveCountBefore approximates last period's active headcount: active
// candidates whose last status change predates the current period.
func (i impl) ActiveCountBefore(moment time.Time) (count int, err error) {
	var c int64
	err = i.db.
		Model(&dbmodels.Candidate{}).
		Where("status not in (?)", []string{
			string(models.CandidateStatusHired),
			string(models.CandidateStatusRejected),
			string(models.CandidateStatusClosed),
		}).
		Where("updated_at < ?", moment).
		Count(&c).
		Error
	return int(c), err
}
