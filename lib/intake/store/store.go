package intakestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "work-forward-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Submission) (id string, err error)
	SetResumeKey(id, key string) error
	GetByID(id string) (rec *dbmodels.Submission, err error)
	List(page, limit int) (list []dbmodels.Submission, rowCount int64, err error)
	ListAll() (list []dbmodels.Submission, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Submission) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) SetResumeKey(id, key string) error {
	return i.db.
		Model(&dbmodels.Submission{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"resume_key": key}).
		Error
}

func (i impl) GetByID(id string) (rec *dbmodels.Submission, err error) {
	rec = &dbmodels.Submission{}
	err = i.db.
		Where("id = ?", id).
		First(rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) List(page, limit int) (list []dbmodels.Submission, rowCount int64, err error) {
	tx := i.db.Model(&dbmodels.Submission{})
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	err = tx.
		Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}

func (i impl) ListAll() (list []dbmodels.Submission, err error) {
	err = i.db.
		Model(&dbmodels.Submission{}).
		Order("created_at asc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
