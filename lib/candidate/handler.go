package candidate

import (
	"bytes"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"recruiting-dashboard-backend/db"
	candidatestore "recruiting-dashboard-backend/lib/candidate/store"
	xlsexport "recruiting-dashboard-backend/lib/export/xls"
	initchecker "recruiting-dashboard-backend/lib/utils/init-checker"
	"recruiting-dashboard-backend/models"
	candidateapimodels "recruiting-dashboard-backend/models/api/candidate"
	dbmodels "recruiting-dashboard-backend/models/db"
)

type Provider interface {
	List(filter candidateapimodels.CandidateFilter) (list []candidateapimodels.CandidateView, rowCount int64, err error)
	GetByID(id string) (view *candidateapimodels.CandidateView, err error)
	GetByUserID(userID string) (view *candidateapimodels.CandidateView, err error)
	Create(data candidateapimodels.CandidateData) (id string, err error)
	UpdateStatus(id string, status models.CandidateStatus) error
	Delete(id string) error
	ExportToXls(filter candidateapimodels.CandidateFilter) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: candidatestore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store candidatestore.Provider
}

func (i impl) List(filter candidateapimodels.CandidateFilter) (list []candidateapimodels.CandidateView, rowCount int64, err error) {
	recs, rowCount, err := i.store.List(filter)
	if err != nil {
		return nil, 0, err
	}
	list = make([]candidateapimodels.CandidateView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, candidateapimodels.CandidateConvert(rec))
	}
	return list, rowCount, nil
}

func (i impl) GetByID(id string) (*candidateapimodels.CandidateView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	view := candidateapimodels.CandidateConvert(*rec)
	return &view, nil
}

func (i impl) GetByUserID(userID string) (*candidateapimodels.CandidateView, error) {
	rec, err := i.store.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	view := candidateapimodels.CandidateConvert(*rec)
	return &view, nil
}

func (i impl) Create(data candidateapimodels.CandidateData) (id string, err error) {
	rec := dbmodels.Candidate{
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Email:     data.Email,
		Phone:     data.Phone,
		Region:    data.Region,
		Status:    models.CandidateStatusApplied,
	}
	rec.ID = uuid.NewString()
	return i.store.Create(rec)
}

func (i impl) UpdateStatus(id string, status models.CandidateStatus) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("candidate not found")
	}
	if rec.Status == status {
		return nil
	}
	return i.store.Update(id, map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})
}

func (i impl) Delete(id string) error {
	return i.store.Delete(id)
}

func (i impl) ExportToXls(filter candidateapimodels.CandidateFilter) (*bytes.Buffer, error) {
	recs, _, err := i.store.List(filter)
	if err != nil {
		return nil, err
	}
	return xlsexport.Instance.ExportCandidateList(recs)
}
