package intakeapimodels

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"work-forward-backend/models"
	dbmodels "work-forward-backend/models/db"
)

// SubmissionForm mirrors the public intake form post field-for-field.
// All values arrive as free-form strings; barrier flags are tri-state
// (absent / "true"-ish / other) and are kept verbatim.
type SubmissionForm struct {
	FirstName    string `form:"first_name" json:"first_name"`
	LastName     string `form:"last_name" json:"last_name"`
	BestWay      string `form:"best_way" json:"best_way"`
	Email        string `form:"email_submission" json:"email_submission"`
	Phone        string `form:"phone_submission" json:"phone_submission"`
	TextNumber   string `form:"text_submission" json:"text_submission"`
	Neighborhood string `form:"neighborhood" json:"neighborhood"`
	Referral     string `form:"referral" json:"referral"`

	YoungAdult             string `form:"young_adult" json:"young_adult"`
	Veteran                string `form:"veteran" json:"veteran"`
	NoTransportation       string `form:"no_transportation" json:"no_transportation"`
	Homeless               string `form:"homeless" json:"homeless"`
	NoDriversLicense       string `form:"no_drivers_license" json:"no_drivers_license"`
	NoStateID              string `form:"no_state_id" json:"no_state_id"`
	Disabled               string `form:"disabled" json:"disabled"`
	Childcare              string `form:"childcare" json:"childcare"`
	Criminal               string `form:"criminal" json:"criminal"`
	PreviouslyIncarcerated string `form:"previously_incarcerated" json:"previously_incarcerated"`
	UsingDrugs             string `form:"using_drugs" json:"using_drugs"`
	NoneOfAbove            string `form:"none" json:"none"`

	// Partner routing inboxes. Used for recipient resolution only,
	// never persisted.
	Job1     string `form:"job1" json:"job1"`
	Goodwill string `form:"goodwill" json:"goodwill"`
	TCA      string `form:"tca" json:"tca"`
}

func (f SubmissionForm) Validate() error {
	if f.IsEmpty() {
		return errors.Wrap(models.ErrValidation, "form contains no data")
	}
	return nil
}

// IsEmpty reports whether the post carries no submission data at all.
// Contact presence is expected but not enforced, so a form with only a
// neighborhood or a barrier flag still goes through. Routing inboxes
// are not submission data and do not count.
func (f SubmissionForm) IsEmpty() bool {
	fields := []string{
		f.FirstName, f.LastName, f.BestWay, f.Email, f.Phone,
		f.TextNumber, f.Neighborhood, f.Referral,
		f.YoungAdult, f.Veteran, f.NoTransportation, f.Homeless,
		f.NoDriversLicense, f.NoStateID, f.Disabled, f.Childcare,
		f.Criminal, f.PreviouslyIncarcerated, f.UsingDrugs, f.NoneOfAbove,
	}
	for _, value := range fields {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}

// RoutingValue resolves a configured routing key against the raw form
// payload. Unknown keys resolve to empty and are skipped by the
// recipient resolver.
func (f SubmissionForm) RoutingValue(key string) string {
	switch key {
	case "email_submission":
		return f.Email
	case "job1":
		return f.Job1
	case "goodwill":
		return f.Goodwill
	case "tca":
		return f.TCA
	}
	return ""
}

func (f SubmissionForm) ToRecord(resumeName string) dbmodels.Submission {
	return dbmodels.Submission{
		FirstName:              f.FirstName,
		LastName:               f.LastName,
		BestWay:                f.BestWay,
		Email:                  f.Email,
		Phone:                  f.Phone,
		TextNumber:             f.TextNumber,
		Neighborhood:           f.Neighborhood,
		Referral:               f.Referral,
		YoungAdult:             f.YoungAdult,
		Veteran:                f.Veteran,
		NoTransportation:       f.NoTransportation,
		Homeless:               f.Homeless,
		NoDriversLicense:       f.NoDriversLicense,
		NoStateID:              f.NoStateID,
		Disabled:               f.Disabled,
		Childcare:              f.Childcare,
		Criminal:               f.Criminal,
		PreviouslyIncarcerated: f.PreviouslyIncarcerated,
		UsingDrugs:             f.UsingDrugs,
		NoneOfAbove:            f.NoneOfAbove,
		ResumeName:             resumeName,
	}
}

type SubmissionView struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	BestWay      string    `json:"best_way"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	TextNumber   string    `json:"text_number"`
	Neighborhood string    `json:"neighborhood"`
	Referral     string    `json:"referral"`
	HasResume    bool      `json:"has_resume"`
	ResumeName   string    `json:"resume_name,omitempty"`
}

func ToSubmissionView(rec dbmodels.Submission) SubmissionView {
	return SubmissionView{
		ID:           rec.ID,
		CreatedAt:    rec.CreatedAt,
		FirstName:    rec.FirstName,
		LastName:     rec.LastName,
		BestWay:      rec.BestWay,
		Email:        rec.Email,
		Phone:        rec.Phone,
		TextNumber:   rec.TextNumber,
		Neighborhood: rec.Neighborhood,
		Referral:     rec.Referral,
		HasResume:    rec.HasResume(),
		ResumeName:   rec.ResumeName,
	}
}
