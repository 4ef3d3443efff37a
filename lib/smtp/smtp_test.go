package smtp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"work-forward-backend/lib/notification"
)

func TestBuildMessage(t *testing.T) {
	msg := notification.Message{
		Subject:    "New Submission: Opportunity Center Sign Up",
		HTMLBody:   "<p>Thank you</p>",
		TextBody:   "Thank you",
		Sender:     "noreply@workforward.org",
		Recipients: []string{"owner@x.com", "jane@x.com"},
		Attachment: &notification.Attachment{Name: "resume.pdf", Body: []byte("%PDF-1.4")},
	}

	buf := new(bytes.Buffer)
	_, err := buildMessage(msg).WriteTo(buf)
	require.NoError(t, err)
	raw := buf.String()

	t.Run("headers", func(t *testing.T) {
		require.Contains(t, raw, "From: noreply@workforward.org")
		require.Contains(t, raw, "To: owner@x.com, jane@x.com")
		require.Contains(t, raw, "Subject: New Submission: Opportunity Center Sign Up")
	})

	t.Run("multipart alternative bodies", func(t *testing.T) {
		require.Contains(t, raw, "Content-Type: text/plain")
		require.Contains(t, raw, "Content-Type: text/html")
	})

	t.Run("attachment name is carried byte for byte", func(t *testing.T) {
		require.Contains(t, raw, `filename="resume.pdf"`)
	})
}

func TestBuildMessageWithoutAttachment(t *testing.T) {
	msg := notification.Message{
		Subject:    "New Submission: Opportunity Center Sign Up",
		HTMLBody:   "<p>Thank you</p>",
		TextBody:   "Thank you",
		Sender:     "noreply@workforward.org",
		Recipients: []string{"owner@x.com"},
	}
	buf := new(bytes.Buffer)
	_, err := buildMessage(msg).WriteTo(buf)
	require.NoError(t, err)
	require.NotContains(t, buf.String(), "Content-Disposition: attachment")
}

func TestSendNotificationUnconfigured(t *testing.T) {
	// an unconfigured relay skips sending instead of failing the intake
	i := impl{}
	err := i.SendNotification(notification.Message{Recipients: []string{"owner@x.com"}})
	require.NoError(t, err)
}
