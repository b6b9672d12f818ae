package interview

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"recruiting-dashboard-backend/config"
	"recruiting-dashboard-backend/db"
	candidatestore "recruiting-dashboard-backend/lib/candidate/store"
	interviewstore "recruiting-dashboard-backend/lib/interview/store"
	"recruiting-dashboard-backend/lib/smtp"
	initchecker "recruiting-dashboard-backend/lib/utils/init-checker"
	"recruiting-dashboard-backend/models"
	interviewapimodels "recruiting-dashboard-backend/models/api/interview"
	dbmodels "recruiting-dashboard-backend/models/db"
)

type Provider interface {
	Schedule(interviewerID string, data interviewapimodels.ScheduleRequest) (id string, err error)
	Cancel(id string) error
	ListUpcoming() (list []interviewapimodels.InterviewView, err error)
	ListByCandidate(candidateID string) (list []interviewapimodels.InterviewView, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:          interviewstore.NewInstance(db.DB),
		candidateStore: candidatestore.NewInstance(db.DB),
		emailProvider:  smtp.Instance,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"candidateStore", instance.candidateStore,
		"emailProvider", instance.emailProvider,
	)
	Instance = instance
}

type impl struct {
	store          interviewstore.Provider
	candidateStore candidatestore.Provider
	emailProvider  smtp.Provider
}

func (i impl) Schedule(interviewerID string, data interviewapimodels.ScheduleRequest) (id string, err error) {
	candidate, err := i.candidateStore.GetByID(data.CandidateID)
	if err != nil {
		return "", err
	}
	if candidate == nil {
		return "", errors.New("candidate not found")
	}
	if candidate.Status.IsTerminal() {
		return "", errors.New("candidate is no longer in the pipeline")
	}
	rec := dbmodels.Interview{
		CandidateID:   data.CandidateID,
		InterviewerID: interviewerID,
		Title:         data.Title,
		ScheduledAt:   data.ScheduledAt,
		DurationMin:   data.DurationMin,
		Location:      data.Location,
		Status:        models.InterviewStatusScheduled,
		Notes:         data.Notes,
	}
	rec.ID = uuid.NewString()
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	i.sendInvite(*candidate, rec)
	return id, nil
}

// sendInvite is best effort: a failed email never rolls back the booking.
func (i impl) sendInvite(candidate dbmodels.Candidate, rec dbmodels.Interview) {
	if candidate.Email == "" {
		return
	}
	message := fmt.Sprintf("You are invited to %q on %v (%v min). Location: %v",
		rec.Title, rec.ScheduledAt.Format("02.01.2006 15:04"), rec.DurationMin, rec.Location)
	err := i.emailProvider.SendEMail(config.Conf.Smtp.From, candidate.Email, message, "Interview invitation")
	if err != nil {
		log.WithError(err).
			WithField("interview_id", rec.ID).
			Error("interview invite email failed")
	}
}

func (i impl) Cancel(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("interview not found")
	}
	if rec.Status != models.InterviewStatusScheduled {
		return errors.New("only scheduled interviews can be canceled")
	}
	return i.store.SetStatus(id, models.InterviewStatusCanceled)
}

func (i impl) ListUpcoming() (list []interviewapimodels.InterviewView, err error) {
	recs, err := i.store.ListUpcoming(time.Now())
	if err != nil {
		return nil, err
	}
	return convertList(recs), nil
}

func (i impl) ListByCandidate(candidateID string) (list []interviewapimodels.InterviewView, err error) {
	recs, err := i.store.ListByCandidate(candidateID)
	if err != nil {
		return nil, err
	}
	return convertList(recs), nil
}

func convertList(recs []dbmodels.Interview) []interviewapimodels.InterviewView {
	list := make([]interviewapimodels.InterviewView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, interviewapimodels.InterviewConvert(rec))
	}
	return list
}
