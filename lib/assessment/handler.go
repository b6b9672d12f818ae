package assessment

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"recruiting-dashboard-backend/db"
	assessmentstore "recruiting-dashboard-backend/lib/assessment/store"
	candidatestore "recruiting-dashboard-backend/lib/candidate/store"
	initchecker "recruiting-dashboard-backend/lib/utils/init-checker"
	assessmentapimodels "recruiting-dashboard-backend/models/api/assessment"
	dbmodels "recruiting-dashboard-backend/models/db"
)

type Provider interface {
	List() (list []assessmentapimodels.AssessmentView, err error)
	RecordResult(data assessmentapimodels.RecordResultRequest) (id string, err error)
	ResultsByCandidate(candidateID string) (list []assessmentapimodels.ResultView, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:          assessmentstore.NewInstance(db.DB),
		candidateStore: candidatestore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
		"candidateStore", instance.candidateStore,
	)
	Instance = instance
}

type impl struct {
	store          assessmentstore.Provider
	candidateStore candidatestore.Provider
}

func (i impl) List() (list []assessmentapimodels.AssessmentView, err error) {
	recs, err := i.store.List()
	if err != nil {
		return nil, err
	}
	list = make([]assessmentapimodels.AssessmentView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, assessmentapimodels.AssessmentConvert(rec))
	}
	return list, nil
}

func (i impl) RecordResult(data assessmentapimodels.RecordResultRequest) (id string, err error) {
	candidate, err := i.candidateStore.GetByID(data.CandidateID)
	if err != nil {
		return "", err
	}
	if candidate == nil {
		return "", errors.New("candidate not found")
	}
	assessmentRec, err := i.store.GetByID(data.AssessmentID)
	if err != nil {
		return "", err
	}
	if assessmentRec == nil {
		return "", errors.New("assessment not found")
	}
	rec := dbmodels.AssessmentResult{
		CandidateID:  data.CandidateID,
		AssessmentID: data.AssessmentID,
		Score:        data.Score,
		SubmittedAt:  time.Now(),
	}
	rec.ID = uuid.NewString()
	return i.store.CreateResult(rec)
}

func (i impl) ResultsByCandidate(candidateID string) (list []assessmentapimodels.ResultView, err error) {
	recs, err := i.store.ResultsByCandidate(candidateID)
	if err != nil {
		return nil, err
	}
	list = make([]assessmentapimodels.ResultView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, assessmentapimodels.ResultConvert(rec))
	}
	return list, nil
}
