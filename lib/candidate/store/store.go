package candidatestore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	candidateapimodels "recruiting-dashboard-backend/models/api/candidate"
	dbmodels "recruiting-dashboard-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Candidate) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	GetByID(id string) (rec *dbmodels.Candidate, err error)
	GetByUserID(userID string) (rec *dbmodels.Candidate, err error)
	List(filter candidateapimodels.CandidateFilter) (list []dbmodels.Candidate, rowCount int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Candidate) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Candidate{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("candidate not found")
	}
	return nil
}

func (i impl) Delete(id string) error {
	tx := i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Candidate{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("candidate not found")
	}
	return nil
}

func (i impl) GetByID(id string) (*dbmodels.Candidate, error) {
	rec := dbmodels.Candidate{}
	err := i.db.
		Model(&dbmodels.Candidate{}).
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

func (i impl) GetByUserID(userID string) (*dbmodels.Candidate, error) {
	rec := dbmodels.Candidate{}
	err := i.db.
		Model(&dbmodels.Candidate{}).
		Where("user_id = ?", userID).
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

func (i impl) List(filter candidateapimodels.CandidateFilter) (list []dbmodels.Candidate, rowCount int64, err error) {
	list = []dbmodels.Candidate{}
	tx := i.db.
		Model(&dbmodels.Candidate{})
	i.addFilter(tx, filter)
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	err = tx.
		Order("updated_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, nil
		}
		return nil, 0, err
	}
	return list, rowCount, nil
}

func (i impl) addFilter(tx *gorm.DB, filter candidateapimodels.CandidateFilter) {
	if len(filter.Statuses) != 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, status := range filter.Statuses {
			statuses = append(statuses, string(status))
		}
		tx.Where("status in (?)", statuses)
	}
	if filter.Search != "" {
		searchValue := "%" + strings.ToLower(filter.Search) + "%"
		tx.Where("LOWER(CONCAT(first_name,' ',last_name)) like ? or LOWER(email) like ? or phone like ?",
			searchValue, searchValue, searchValue)
	}
}
