package interviewstore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"recruiting-dashboard-backend/models"
	dbmodels "recruiting-dashboard-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Interview) (id string, err error)
	GetByID(id string) (rec *dbmodels.Interview, err error)
	SetStatus(id string, status models.InterviewStatus) error
	ListUpcoming(from time.Time) (list []dbmodels.Interview, err error)
	ListByCandidate(candidateID string) (list []dbmodels.Interview, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Interview) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Interview, error) {
	rec := dbmodels.Interview{}
	err := i.db.
		Model(&dbmodels.Interview{}).
		Where("id = ?", id).
		Preload(clause.Associations).
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

func (i impl) SetStatus(id string, status models.InterviewStatus) error {
	tx := i.db.
		Model(&dbmodels.Interview{}).
		Where("id = ?", id).
		Update("status", status)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("interview not found")
	}
	return nil
}

func (i impl) ListUpcoming(from time.Time) (list []dbmodels.Interview, err error) {
	list = []dbmodels.Interview{}
	err = i.db.
		Model(&dbmodels.Interview{}).
		Where("scheduled_at >= ?", from).
		Where("status = ?", models.InterviewStatusScheduled).
		Preload(clause.Associations).
		Order("scheduled_at").
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

func (i impl) ListByCandidate(candidateID string) (list []dbmodels.Interview, err error) {
	list = []dbmodels.Interview{}
	err = i.db.
		Model(&dbmodels.Interview{}).
		Where("candidate_id = ?", candidateID).
		Preload(clause.Associations).
		Order("scheduled_at desc").
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
