package usersstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "recruiting-dashboard-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.DashboardUser) (id string, err error)
	GetByID(id string) (rec *dbmodels.DashboardUser, err error)
	FindByEmail(email string) (rec *dbmodels.DashboardUser, err error)
	ExistByEmail(email string) (found bool, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.DashboardUser) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.DashboardUser, error) {
	rec := dbmodels.DashboardUser{}
	err := i.db.
		Model(&dbmodels.DashboardUser{}).
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

func (i impl) FindByEmail(email string) (*dbmodels.DashboardUser, error) {
	rec := dbmodels.DashboardUser{}
	err := i.db.
		Model(&dbmodels.DashboardUser{}).
		Where("email = ?", email).
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

func (i impl) ExistByEmail(email string) (found bool, err error) {
	var exists bool
	err = i.db.Model(&dbmodels.DashboardUser{}).
		Select("count(*) > 0").
		Where("email = ?", email).
		Find(&exists).
		Error
	return exists, err
}
