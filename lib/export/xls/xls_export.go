package xlsexport

import (
	"bytes"
	"fmt"
	dbmodels "work-forward-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportSubmissionList(list []dbmodels.Submission) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var submissionHeaders = []string{"Submitted", "Name", "Best Way", "Contacts", "Neighborhood", "Referral", "Barriers", "Resume"}

func (i impl) ExportSubmissionList(list []dbmodels.Submission) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("workbook close failed")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, submissionHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "header generation in xlsx failed")
	}
	if len(list) != 0 {
		row, err = writeSubmissionData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "data table generation in xlsx failed")
		}
	}
	f.SetSheetName(sheet, "Submissions")
	return f.WriteToBuffer()
}

func writeSubmissionData(f *excelize.File, sheet string, list []dbmodels.Submission, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(submissionHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Submitted"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.CreatedAt.Format("01/02/2006 15:04")); err != nil {
			return row, err
		}

		// "Name"
		col++
		if err := writeColumn(f, sheet, col, row, item.GetFullName()); err != nil {
			return row, err
		}

		// "Best Way"
		col++
		if err := writeColumn(f, sheet, col, row, item.BestWay); err != nil {
			return row, err
		}

		// "Contacts"
		col++
		if err := writeColumn(f, sheet, col, row, fmt.Sprintf("%v\r%v\r%v", item.Email, item.Phone, item.TextNumber)); err != nil {
			return row, err
		}

		// "Neighborhood"
		col++
		if err := writeColumn(f, sheet, col, row, item.Neighborhood); err != nil {
			return row, err
		}

		// "Referral"
		col++
		if err := writeColumn(f, sheet, col, row, item.Referral); err != nil {
			return row, err
		}

		// "Barriers"
		col++
		if err := writeColumn(f, sheet, col, row, barrierSummary(item)); err != nil {
			return row, err
		}

		// "Resume"
		col++
		if err := writeColumn(f, sheet, col, row, item.ResumeName); err != nil {
			return row, err
		}
	}
	return row, nil
}

var barrierLabels = []struct {
	label string
	value func(dbmodels.Submission) string
}{
	{"young adult", func(s dbmodels.Submission) string { return s.YoungAdult }},
	{"veteran", func(s dbmodels.Submission) string { return s.Veteran }},
	{"no transportation", func(s dbmodels.Submission) string { return s.NoTransportation }},
	{"homeless", func(s dbmodels.Submission) string { return s.Homeless }},
	{"no drivers license", func(s dbmodels.Submission) string { return s.NoDriversLicense }},
	{"no state id", func(s dbmodels.Submission) string { return s.NoStateID }},
	{"disabled", func(s dbmodels.Submission) string { return s.Disabled }},
	{"childcare", func(s dbmodels.Submission) string { return s.Childcare }},
	{"criminal charge", func(s dbmodels.Submission) string { return s.Criminal }},
	{"previously incarcerated", func(s dbmodels.Submission) string { return s.PreviouslyIncarcerated }},
	{"using drugs", func(s dbmodels.Submission) string { return s.UsingDrugs }},
}

func barrierSummary(rec dbmodels.Submission) string {
	out := ""
	for _, b := range barrierLabels {
		if b.value(rec) == "" {
			continue
		}
		if out != "" {
			out += ", "
		}
		out += b.label
	}
	if out == "" {
		return rec.NoneOfAbove
	}
	return out
}
