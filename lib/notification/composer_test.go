package notification

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	dbmodels "work-forward-backend/models/db"
)

func newTestComposer() Provider {
	NewHandler("noreply@workforward.org")
	return Instance
}

func TestCompose(t *testing.T) {
	composer := newTestComposer()

	t.Run("message carries fixed subject and configured sender", func(t *testing.T) {
		msg, err := composer.Compose(dbmodels.Submission{FirstName: "Jane"}, []string{"owner@x.com"}, nil)
		require.NoError(t, err)
		require.Equal(t, "New Submission: Opportunity Center Sign Up", msg.Subject)
		require.Equal(t, "noreply@workforward.org", msg.Sender)
		require.Equal(t, []string{"owner@x.com"}, msg.Recipients)
	})

	t.Run("html body enumerates submission fields", func(t *testing.T) {
		rec := dbmodels.Submission{
			FirstName:    "Jane",
			LastName:     "Doe",
			BestWay:      "email",
			Email:        "jane@x.com",
			Neighborhood: "Mid-City",
			Veteran:      "true",
		}
		msg, err := composer.Compose(rec, nil, nil)
		require.NoError(t, err)
		require.Contains(t, msg.HTMLBody, "First Name: Jane")
		require.Contains(t, msg.HTMLBody, "Last Name: Doe")
		require.Contains(t, msg.HTMLBody, "Email: jane@x.com")
		require.Contains(t, msg.HTMLBody, "Which neighborhood:  Mid-City")
		require.Contains(t, msg.HTMLBody, "Are you a veteran?  true")
	})

	t.Run("html-significant characters are escaped", func(t *testing.T) {
		rec := dbmodels.Submission{
			FirstName: `<script>alert("x")</script>`,
			LastName:  "Smith & Sons",
		}
		msg, err := composer.Compose(rec, nil, nil)
		require.NoError(t, err)
		require.NotContains(t, msg.HTMLBody, "<script>")
		require.NotContains(t, msg.HTMLBody, "Smith & Sons")
		require.Contains(t, msg.HTMLBody, "&lt;script&gt;")
		require.Contains(t, msg.HTMLBody, "Smith &amp; Sons")
	})

	t.Run("both bodies open with the New Orleans greeting", func(t *testing.T) {
		msg, err := composer.Compose(dbmodels.Submission{FirstName: "Jane"}, nil, nil)
		require.NoError(t, err)
		require.Contains(t, msg.HTMLBody, "Thank you for registering in the New Orleans job system.")
		require.Contains(t, msg.TextBody, "Thank you for registering in the New Orleans job system.")
	})

	t.Run("plaintext body is generic and shorter than html", func(t *testing.T) {
		rec := dbmodels.Submission{FirstName: "Jane", Email: "jane@x.com"}
		msg, err := composer.Compose(rec, nil, nil)
		require.NoError(t, err)
		require.NotContains(t, msg.TextBody, "Jane")
		require.NotContains(t, msg.TextBody, "jane@x.com")
		require.Less(t, len(msg.TextBody), len(msg.HTMLBody))
	})

	t.Run("attachment metadata is passed through", func(t *testing.T) {
		att := &Attachment{Name: "resume.pdf", Body: []byte("%PDF-1.4")}
		msg, err := composer.Compose(dbmodels.Submission{}, nil, att)
		require.NoError(t, err)
		require.NotNil(t, msg.Attachment)
		require.Equal(t, "resume.pdf", msg.Attachment.Name)
	})

	t.Run("field order is stable", func(t *testing.T) {
		msg, err := composer.Compose(dbmodels.Submission{}, nil, nil)
		require.NoError(t, err)
		first := strings.Index(msg.HTMLBody, "First Name:")
		last := strings.Index(msg.HTMLBody, "None of the above.")
		require.True(t, first >= 0 && last > first)
	})
}
