package smtp

import (
	"bytes"
	"io"
	"strings"
	"time"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
	"work-forward-backend/lib/notification"
	"work-forward-backend/models"
)

var Instance Provider

type Provider interface {
	SendNotification(msg notification.Message) error
}

func Connect(user, password, host, port string, tlsEnabled bool, timeout time.Duration) error {
	Instance = &impl{
		user:       user,
		password:   password,
		host:       host,
		port:       port,
		tlsEnabled: tlsEnabled,
		timeout:    timeout,
	}
	return nil
}

type impl struct {
	user       string
	password   string
	host       string
	port       string
	tlsEnabled bool
	timeout    time.Duration
}

func (i impl) SendNotification(msg notification.Message) (err error) {
	logger := log.WithField("recipients", strings.Join(msg.Recipients, ","))
	if i.user == "" || i.host == "" || i.port == "" {
		logger.Warn("notification not sent, smtp client is not configured")
		return nil
	}
	if len(msg.Recipients) == 0 {
		return errors.Wrap(models.ErrMail, "message has no recipients")
	}

	body := new(bytes.Buffer)
	if _, err = buildMessage(msg).WriteTo(body); err != nil {
		return errors.Wrap(models.ErrMail, err.Error())
	}

	// Authentication.
	auth := sasl.NewPlainClient("", i.user, i.password)
	addr := i.host + ":" + i.port

	// The relay gets one chance within the configured window, a stuck
	// connection must not hold the submitter's request open.
	done := make(chan error, 1)
	go func() {
		reader := bytes.NewReader(body.Bytes())
		if i.tlsEnabled {
			done <- smtp.SendMailTLS(addr, auth, msg.Sender, msg.Recipients, reader)
		} else {
			done <- smtp.SendMail(addr, auth, msg.Sender, msg.Recipients, reader)
		}
	}()
	select {
	case err = <-done:
		if err != nil {
			logger.WithError(err).Error("notification send failed")
			return errors.Wrap(models.ErrMail, err.Error())
		}
	case <-time.After(i.timeout):
		logger.Error("notification send timed out")
		return errors.Wrap(models.ErrMail, "smtp send timed out")
	}
	logger.Info("notification sent")
	return nil
}

func buildMessage(msg notification.Message) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", msg.Sender)
	m.SetHeader("To", msg.Recipients...)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.TextBody)
	m.AddAlternative("text/html", msg.HTMLBody)
	if msg.Attachment != nil {
		m.Attach(msg.Attachment.Name, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(msg.Attachment.Body)
			return err
		}))
	}
	return m
}
