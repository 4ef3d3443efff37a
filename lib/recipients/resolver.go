package recipients

import (
	intakeapimodels "work-forward-backend/models/api/intake"
)

// Resolves the notification recipient list for one submission: the
// configured owner address first, then the value of each configured
// routing key that is present and non-empty in the form payload.
// Values are not validated as addresses; the mail relay is the
// validator.
type Provider interface {
	Resolve(form intakeapimodels.SubmissionForm) []string
}

var Instance Provider

func NewHandler(ownerEmail string, routingKeys []string) {
	Instance = impl{
		ownerEmail:  ownerEmail,
		routingKeys: routingKeys,
	}
}

type impl struct {
	ownerEmail  string
	routingKeys []string
}

func (i impl) Resolve(form intakeapimodels.SubmissionForm) []string {
	list := []string{i.ownerEmail}
	seen := map[string]bool{i.ownerEmail: true}
	for _, key := range i.routingKeys {
		value := form.RoutingValue(key)
		if value == "" || seen[value] {
			continue
		}
		seen[value] = true
		list = append(list, value)
	}
	return list
}
