package intakeapimodels

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"work-forward-backend/models"
)

func TestSubmissionForm(t *testing.T) {
	t.Run("empty form fails validation", func(t *testing.T) {
		err := SubmissionForm{}.Validate()
		require.Error(t, err)
		require.True(t, errors.Is(err, models.ErrValidation))
	})

	t.Run("any contact field is enough", func(t *testing.T) {
		require.NoError(t, SubmissionForm{Phone: "5045550100"}.Validate())
		require.NoError(t, SubmissionForm{FirstName: "Jane"}.Validate())
	})

	t.Run("contact-less forms still go through", func(t *testing.T) {
		require.NoError(t, SubmissionForm{Neighborhood: "Mid-City", YoungAdult: "true"}.Validate())
		require.NoError(t, SubmissionForm{Homeless: "true"}.Validate())
		require.NoError(t, SubmissionForm{Referral: "library"}.Validate())
		require.NoError(t, SubmissionForm{NoneOfAbove: "true"}.Validate())
	})

	t.Run("whitespace-only fields do not count as data", func(t *testing.T) {
		err := SubmissionForm{FirstName: "  ", Neighborhood: " "}.Validate()
		require.Error(t, err)
		require.True(t, errors.Is(err, models.ErrValidation))
	})

	t.Run("routing inboxes alone do not make a submission", func(t *testing.T) {
		err := SubmissionForm{Job1: "job1@partners.org"}.Validate()
		require.Error(t, err)
		require.True(t, errors.Is(err, models.ErrValidation))
	})

	t.Run("routing values resolve by form field name", func(t *testing.T) {
		form := SubmissionForm{Email: "jane@x.com", Job1: "job1@partners.org", TCA: "tca@partners.org"}
		require.Equal(t, "jane@x.com", form.RoutingValue("email_submission"))
		require.Equal(t, "job1@partners.org", form.RoutingValue("job1"))
		require.Equal(t, "tca@partners.org", form.RoutingValue("tca"))
		require.Empty(t, form.RoutingValue("goodwill"))
		require.Empty(t, form.RoutingValue("unknown"))
	})

	t.Run("record keeps flag strings verbatim and omits routing inboxes", func(t *testing.T) {
		form := SubmissionForm{
			FirstName:  "Jane",
			YoungAdult: "on",
			Veteran:    "whatever",
			Job1:       "job1@partners.org",
		}
		rec := form.ToRecord("resume.pdf")
		require.Equal(t, "Jane", rec.FirstName)
		require.Equal(t, "on", rec.YoungAdult)
		require.Equal(t, "whatever", rec.Veteran)
		require.Equal(t, "resume.pdf", rec.ResumeName)
		require.True(t, rec.HasResume())
	})
}
