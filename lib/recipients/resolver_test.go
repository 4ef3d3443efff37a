package recipients

import (
	"testing"

	"github.com/stretchr/testify/require"
	intakeapimodels "work-forward-backend/models/api/intake"
)

const owner = "owner@workforward.org"

var defaultKeys = []string{"email_submission", "job1", "goodwill", "tca"}

func TestResolve(t *testing.T) {
	r := impl{ownerEmail: owner, routingKeys: defaultKeys}

	t.Run("owner only when no routing fields are set", func(t *testing.T) {
		list := r.Resolve(intakeapimodels.SubmissionForm{FirstName: "Jane"})
		require.Equal(t, []string{owner}, list)
	})

	t.Run("submitter email is appended after the owner", func(t *testing.T) {
		form := intakeapimodels.SubmissionForm{FirstName: "Jane", Email: "jane@x.com"}
		list := r.Resolve(form)
		require.Equal(t, []string{owner, "jane@x.com"}, list)
	})

	t.Run("partner inboxes follow key order", func(t *testing.T) {
		form := intakeapimodels.SubmissionForm{
			Email:    "jane@x.com",
			TCA:      "tca@partners.org",
			Goodwill: "goodwill@partners.org",
		}
		list := r.Resolve(form)
		require.Equal(t, []string{owner, "jane@x.com", "goodwill@partners.org", "tca@partners.org"}, list)
	})

	t.Run("list size is one plus non-empty routing fields", func(t *testing.T) {
		form := intakeapimodels.SubmissionForm{Email: "jane@x.com", Job1: "job1@partners.org"}
		require.Len(t, r.Resolve(form), 3)
	})

	t.Run("owner appears exactly once even when submitted as a routing value", func(t *testing.T) {
		form := intakeapimodels.SubmissionForm{Email: owner}
		require.Equal(t, []string{owner}, r.Resolve(form))
	})

	t.Run("duplicate routing values are kept once, first occurrence wins", func(t *testing.T) {
		form := intakeapimodels.SubmissionForm{Email: "dup@x.com", Job1: "dup@x.com"}
		require.Equal(t, []string{owner, "dup@x.com"}, r.Resolve(form))
	})

	t.Run("unknown configured key is skipped", func(t *testing.T) {
		r := impl{ownerEmail: owner, routingKeys: []string{"email_submission", "mystery_key"}}
		form := intakeapimodels.SubmissionForm{Email: "jane@x.com"}
		require.Equal(t, []string{owner, "jane@x.com"}, r.Resolve(form))
	})
}
