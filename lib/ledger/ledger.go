// Package ledger mirrors persisted submissions into an xlsx workbook
// kept as a human-facing duplicate of the database. The column order
// is a hand-maintained contract with the people reading the workbook:
// any change to the Submission field set requires updating
// ledgerColumns and rowValues in lockstep, there is no versioning.
package ledger

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
	"work-forward-backend/models"
	dbmodels "work-forward-backend/models/db"
)

type Provider interface {
	AppendRow(rec dbmodels.Submission) error
}

// Instance stays nil when the ledger mirror is disabled in config;
// callers treat the appender as an optional collaborator.
var Instance Provider

func NewHandler(filePath, sheetName string) {
	Instance = &impl{
		filePath: filePath,
		sheet:    sheetName,
	}
}

type impl struct {
	filePath string
	sheet    string
	mu       sync.Mutex
}

// AppendRow appends one row after the last used row. Appends are
// serialized through the handler mutex; concurrent writers in other
// processes still race on the file (last write wins).
func (i *impl) AppendRow(rec dbmodels.Submission) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	f, created, err := i.openWorkbook()
	if err != nil {
		return errors.Wrap(models.ErrLedger, err.Error())
	}
	defer f.Close()

	row := 1
	if created {
		if err = writeRow(f, i.sheet, row, headerValues()); err != nil {
			return errors.Wrap(models.ErrLedger, err.Error())
		}
	} else {
		rows, err := f.GetRows(i.sheet)
		if err != nil {
			return errors.Wrap(models.ErrLedger, err.Error())
		}
		row = len(rows)
	}
	if err = writeRow(f, i.sheet, row+1, rowValues(rec)); err != nil {
		return errors.Wrap(models.ErrLedger, err.Error())
	}
	if err = f.SaveAs(i.filePath); err != nil {
		return errors.Wrap(models.ErrLedger, err.Error())
	}
	return nil
}

func (i *impl) openWorkbook() (f *excelize.File, created bool, err error) {
	f, err = excelize.OpenFile(i.filePath)
	if err == nil {
		return f, false, nil
	}
	if !os.IsNotExist(errors.Cause(err)) {
		return nil, false, err
	}
	if err = os.MkdirAll(filepath.Dir(i.filePath), 0o755); err != nil {
		return nil, false, err
	}
	f = excelize.NewFile()
	if err = f.SetSheetName("Sheet1", i.sheet); err != nil {
		return nil, false, err
	}
	return f, true, nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for idx, value := range values {
		cell, err := excelize.CoordinatesToCellName(idx+1, row)
		if err != nil {
			return err
		}
		if err = f.SetCellValue(sheet, cell, value); err != nil {
			return err
		}
	}
	return nil
}
