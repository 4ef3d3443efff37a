package notification

import (
	"bytes"
	"html/template"

	"github.com/pkg/errors"
	dbmodels "work-forward-backend/models/db"
)

const Subject = "New Submission: Opportunity Center Sign Up"

// Plaintext alternative for non-HTML mail clients. Intentionally
// generic, it does not enumerate submission fields.
const textBody = "Thank you for registering in the New Orleans job system. " +
	"We are evaluating which opportunity center can best meet your needs or barriers. " +
	"You'll get a reply by email of who to contact. " +
	"If you do not have email, someone will call you."

type Attachment struct {
	Name string
	Body []byte
}

type Message struct {
	Subject    string
	HTMLBody   string
	TextBody   string
	Sender     string
	Recipients []string
	Attachment *Attachment
}

type Provider interface {
	Compose(rec dbmodels.Submission, recipients []string, attachment *Attachment) (Message, error)
}

var Instance Provider

func NewHandler(senderEmail string) {
	Instance = impl{
		senderEmail: senderEmail,
		tpl:         template.Must(template.New("submission_summary").Parse(htmlBodyTemplate)),
	}
}

type impl struct {
	senderEmail string
	tpl         *template.Template
}

func (i impl) Compose(rec dbmodels.Submission, recipients []string, attachment *Attachment) (Message, error) {
	buf := new(bytes.Buffer)
	if err := i.tpl.Execute(buf, rec); err != nil {
		return Message{}, errors.Wrap(err, "rendering of submission summary failed")
	}
	return Message{
		Subject:    Subject,
		HTMLBody:   buf.String(),
		TextBody:   textBody,
		Sender:     i.senderEmail,
		Recipients: recipients,
		Attachment: attachment,
	}, nil
}
