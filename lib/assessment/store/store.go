package assessmentstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbmodels "recruiting-dashboard-backend/models/db"
)

type Provider interface {
	List() (list []dbmodels.Assessment, err error)
	GetByID(id string) (rec *dbmodels.Assessment, err error)
	CreateResult(rec dbmodels.AssessmentResult) (id string, err error)
	ResultsByCandidate(candidateID string) (list []dbmodels.AssessmentResult, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) List() (list []dbmodels.Assessment, err error) {
	list = []dbmodels.Assessment{}
	err = i.db.
		Model(&dbmodels.Assessment{}).
		Order("sort_order").
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

func (i impl) GetByID(id string) (*dbmodels.Assessment, error) {
	rec := dbmodels.Assessment{}
	err := i.db.
		Model(&dbmodels.Assessment{}).
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) CreateResult(rec dbmodels.AssessmentResult) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ResultsByCandidate(candidateID string) (list []dbmodels.AssessmentResult, err error) {
	list = []dbmodels.AssessmentResult{}
	err = i.db.
		Model(&dbmodels.AssessmentResult{}).
		Where("candidate_id = ?", candidateID).
		Preload(clause.Associations).
		Order("submitted_at desc").
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
