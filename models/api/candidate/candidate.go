package candidateapimodels

import (
	"github.com/pkg/errors"

	"recruiting-dashboard-backend/models"
	apimodels "recruiting-dashboard-backend/models/api"
	dbmodels "recruiting-dashboard-backend/models/db"
)

type CandidateView struct {
	ID         string                 `json:"id"`
	FirstName  string                 `json:"first_name"`
	LastName   string                 `json:"last_name"`
	FullName   string                 `json:"full_name"`
	Email      string                 `json:"email"`
	Phone      string                 `json:"phone"`
	Region     string                 `json:"region"`
	Status     models.CandidateStatus `json:"status"`
	StatusName string                 `json:"status_name"`
	UpdatedAt  string                 `json:"updated_at"` // DD.MM.YYYY HH:MM
	CreatedAt  string                 `json:"created_at"` // DD.MM.YYYY HH:MM
}

type CandidateData struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Region    string `json:"region"`
}

func (c CandidateData) Validate() error {
	if c.FirstName == "" && c.LastName == "" {
		return errors.New("candidate name is required")
	}
	if c.Email == "" {
		return errors.New("email is required")
	}
	return nil
}

type CandidateFilter struct {
	apimodels.Pagination
	Search   string                   `json:"search"`   // name, email or phone substring
	Statuses []models.CandidateStatus `json:"statuses"` // empty means all
}

func (f CandidateFilter) Validate() error {
	for _, status := range f.Statuses {
		if !status.IsKnown() {
			return errors.Errorf("unknown status: %v", status)
		}
	}
	return nil
}

type StatusUpdateRequest struct {
	Status models.CandidateStatus `json:"status"`
}

func (r StatusUpdateRequest) Validate() error {
	if !r.Status.IsKnown() {
		return errors.Errorf("unknown status: %v", r.Status)
	}
	return nil
}

const timeViewFormat = "02.01.2006 15:04"

func CandidateConvert(rec dbmodels.Candidate) CandidateView {
	return CandidateView{
		ID:         rec.ID,
		FirstName:  rec.FirstName,
		LastName:   rec.LastName,
		FullName:   rec.FullName(),
		Email:      rec.Email,
		Phone:      rec.Phone,
		Region:     rec.Region,
		Status:     rec.Status,
		StatusName: rec.Status.ToHuman(),
		UpdatedAt:  rec.UpdatedAt.Format(timeViewFormat),
		CreatedAt:  rec.CreatedAt.Format(timeViewFormat),
	}
}
