package xlsexport

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	dbmodels "work-forward-backend/models/db"
)

func TestExportSubmissionList(t *testing.T) {
	NewHandler()

	list := []dbmodels.Submission{
		{
			FirstName:        "Jane",
			LastName:         "Doe",
			BestWay:          "email",
			Email:            "jane@x.com",
			Neighborhood:     "Mid-City",
			Referral:         "library",
			Veteran:          "true",
			NoTransportation: "true",
			ResumeName:       "resume.pdf",
		},
		{
			FirstName:   "John",
			NoneOfAbove: "true",
		},
	}

	buf, err := Instance.ExportSubmissionList(list)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Submissions")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, submissionHeaders, rows[0])
	require.Equal(t, "Jane Doe", rows[1][1])
	require.Equal(t, "veteran, no transportation", rows[1][6])
	require.Equal(t, "resume.pdf", rows[1][7])
	require.Equal(t, "John", rows[2][1])
	require.Equal(t, "true", rows[2][6]) // falls back to none-of-above value
}

func TestExportEmptyList(t *testing.T) {
	NewHandler()
	buf, err := Instance.ExportSubmissionList(nil)
	require.NoError(t, err)
	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Submissions")
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
