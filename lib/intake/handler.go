package intake

import (
	"context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"work-forward-backend/db"
	filestorage "work-forward-backend/lib/file-storage"
	"work-forward-backend/lib/intake/store"
	"work-forward-backend/lib/ledger"
	"work-forward-backend/lib/notification"
	"work-forward-backend/lib/recipients"
	"work-forward-backend/lib/smtp"
	"work-forward-backend/models"
	apimodels "work-forward-backend/models/api"
	intakeapimodels "work-forward-backend/models/api/intake"
	dbmodels "work-forward-backend/models/db"
)

type Provider interface {
	Submit(ctx context.Context, form intakeapimodels.SubmissionForm, resumeName string, resume []byte) (id string, err error)
	GetByID(id string) (*dbmodels.Submission, error)
	List(pg apimodels.Pagination) (list []intakeapimodels.SubmissionView, rowCount int64, err error)
	ListAll() ([]dbmodels.Submission, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:    intakestore.NewInstance(db.DB),
		storage:  filestorage.Instance,
		ledger:   ledger.Instance,
		resolver: recipients.Instance,
		composer: notification.Instance,
		mailer:   smtp.Instance,
	}
}

type impl struct {
	store    intakestore.Provider
	storage  filestorage.Provider // nil when the S3 client failed to initialize
	ledger   ledger.Provider      // nil when the ledger mirror is disabled
	resolver recipients.Provider
	composer notification.Provider
	mailer   smtp.Provider
}

// Submit runs the fan-out pipeline for one form post. Persistence is a
// hard precondition: a submission that cannot be stored is never
// uploaded, mirrored or mailed. Resume upload and ledger append are
// best-effort, their failures are logged and the flow continues. A
// mail failure fails the whole request even though the record exists.
func (i impl) Submit(ctx context.Context, form intakeapimodels.SubmissionForm, resumeName string, resume []byte) (id string, err error) {
	if err = form.Validate(); err != nil {
		return "", err
	}
	hasResume := resumeName != "" && len(resume) > 0

	rec := form.ToRecord(resumeName)
	id, err = i.store.Create(rec)
	if err != nil {
		log.WithError(err).Error("submission not persisted")
		return "", errors.Wrap(models.ErrPersistence, err.Error())
	}
	rec.ID = id
	logger := log.WithField("submission_id", id)

	if hasResume && i.storage == nil {
		logger.Warn("resume not stored, object storage is not configured")
	}
	if hasResume && i.storage != nil {
		key, upErr := i.storage.UploadResume(ctx, id, resumeName, resume)
		if upErr != nil {
			logger.WithError(upErr).Error("resume upload failed, submission kept without stored resume")
		} else {
			rec.ResumeKey = key
			if stErr := i.store.SetResumeKey(id, key); stErr != nil {
				logger.WithError(stErr).Error("resume key not recorded")
			}
		}
	}

	if i.ledger != nil {
		if ledErr := i.ledger.AppendRow(rec); ledErr != nil {
			logger.WithError(ledErr).Error("ledger append failed")
		}
	}

	var attachment *notification.Attachment
	if hasResume {
		attachment = &notification.Attachment{Name: resumeName, Body: resume}
	}
	msg, err := i.composer.Compose(rec, i.resolver.Resolve(form), attachment)
	if err != nil {
		return id, errors.Wrap(models.ErrMail, err.Error())
	}
	if err = i.mailer.SendNotification(msg); err != nil {
		return id, err
	}
	logger.Info("submission handled")
	return id, nil
}

func (i impl) GetByID(id string) (*dbmodels.Submission, error) {
	return i.store.GetByID(id)
}

func (i impl) List(pg apimodels.Pagination) (list []intakeapimodels.SubmissionView, rowCount int64, err error) {
	page, limit := pg.GetPage()
	recs, rowCount, err := i.store.List(page, limit)
	if err != nil {
		return nil, 0, err
	}
	list = make([]intakeapimodels.SubmissionView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, intakeapimodels.ToSubmissionView(rec))
	}
	return list, rowCount, nil
}

func (i impl) ListAll() ([]dbmodels.Submission, error) {
	return i.store.ListAll()
}
