package ledger

import dbmodels "work-forward-backend/models/db"

var ledgerColumns = []string{
	"First Name", "Last Name", "Best Way", "Email", "Phone", "Text",
	"Referral", "Neighborhood", "Young Adult", "Veteran",
	"No Transportation", "Homeless", "No Drivers License", "No State ID",
	"Disabled", "Childcare", "Criminal", "Previously Incarcerated",
	"Using Drugs", "None Of Above", "Resume",
}

func headerValues() []interface{} {
	values := make([]interface{}, len(ledgerColumns))
	for idx, name := range ledgerColumns {
		values[idx] = name
	}
	return values
}

// rowValues must stay aligned with ledgerColumns.
func rowValues(rec dbmodels.Submission) []interface{} {
	return []interface{}{
		rec.FirstName,
		rec.LastName,
		rec.BestWay,
		rec.Email,
		rec.Phone,
		rec.TextNumber,
		rec.Referral,
		rec.Neighborhood,
		rec.YoungAdult,
		rec.Veteran,
		rec.NoTransportation,
		rec.Homeless,
		rec.NoDriversLicense,
		rec.NoStateID,
		rec.Disabled,
		rec.Childcare,
		rec.Criminal,
		rec.PreviouslyIncarcerated,
		rec.UsingDrugs,
		rec.NoneOfAbove,
		rec.ResumeName,
	}
}
