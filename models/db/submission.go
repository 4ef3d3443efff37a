package dbmodels

import "strings"

// Submission is one intake record from the public form. Rows are
// append-only: corrections arrive as new submissions, there is no
// update or delete path.
type Submission struct {
	BaseModel
	FirstName    string `gorm:"type:varchar(255)"`
	LastName     string `gorm:"type:varchar(255)"`
	BestWay      string `gorm:"type:varchar(100)"` // preferred contact method, free-form
	Email        string `gorm:"type:varchar(255)"`
	Phone        string `gorm:"type:varchar(50)"`
	TextNumber   string `gorm:"type:varchar(50)"`
	Neighborhood string `gorm:"type:varchar(255)"`
	Referral     string `gorm:"type:varchar(255)"`

	// Barrier flags arrive as free-form strings from the form
	// transport (absent / "true"-ish / other) and are stored verbatim.
	YoungAdult             string `gorm:"type:varchar(50)"`
	Veteran                string `gorm:"type:varchar(50)"`
	NoTransportation       string `gorm:"type:varchar(50)"`
	Homeless               string `gorm:"type:varchar(50)"`
	NoDriversLicense       string `gorm:"type:varchar(50)"`
	NoStateID              string `gorm:"type:varchar(50)"`
	Disabled               string `gorm:"type:varchar(50)"`
	Childcare              string `gorm:"type:varchar(50)"`
	Criminal               string `gorm:"type:varchar(50)"`
	PreviouslyIncarcerated string `gorm:"type:varchar(50)"`
	UsingDrugs             string `gorm:"type:varchar(50)"`
	NoneOfAbove            string `gorm:"type:varchar(50)"`

	ResumeName string `gorm:"type:varchar(255)"` // filename as submitted
	ResumeKey  string `gorm:"type:varchar(512)"` // object storage key, empty if upload skipped or failed
}

func (s Submission) HasResume() bool {
	return s.ResumeName != ""
}

func (s Submission) GetFullName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}
