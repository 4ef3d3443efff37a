package pdfexport

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	dbmodels "work-forward-backend/models/db"
)

// GenerateSubmissionSummary renders a one-page printable summary of a
// stored submission for case workers.
func GenerateSubmissionSummary(rec dbmodels.Submission) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateSubmissionSummary panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	pdf.CellFormat(0, 10, "Opportunity Center Sign Up", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Submission %s, received %s", rec.ID, rec.CreatedAt.Format("01/02/2006 15:04")), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	writeSection(pdf, "Contact")
	writeField(pdf, "First Name", rec.FirstName)
	writeField(pdf, "Last Name", rec.LastName)
	writeField(pdf, "Best way to contact", rec.BestWay)
	writeField(pdf, "Email", rec.Email)
	writeField(pdf, "Phone", rec.Phone)
	writeField(pdf, "Text", rec.TextNumber)
	writeField(pdf, "Neighborhood", rec.Neighborhood)
	writeField(pdf, "Referred by", rec.Referral)
	pdf.Ln(4)

	writeSection(pdf, "Barriers")
	writeField(pdf, "Young adult", rec.YoungAdult)
	writeField(pdf, "Veteran", rec.Veteran)
	writeField(pdf, "No transportation", rec.NoTransportation)
	writeField(pdf, "Homeless", rec.Homeless)
	writeField(pdf, "No drivers license", rec.NoDriversLicense)
	writeField(pdf, "No state-issued I.D.", rec.NoStateID)
	writeField(pdf, "Disabled", rec.Disabled)
	writeField(pdf, "Needs childcare", rec.Childcare)
	writeField(pdf, "Open criminal charge", rec.Criminal)
	writeField(pdf, "Previously incarcerated", rec.PreviouslyIncarcerated)
	writeField(pdf, "Using drugs, wants help", rec.UsingDrugs)
	writeField(pdf, "None of the above", rec.NoneOfAbove)
	pdf.Ln(4)

	if rec.HasResume() {
		writeSection(pdf, "Resume")
		writeField(pdf, "File", rec.ResumeName)
	}

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeSection(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
}

func writeField(pdf *fpdf.Fpdf, label, value string) {
	if value == "" {
		value = "-"
	}
	pdf.CellFormat(60, 6, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
}
