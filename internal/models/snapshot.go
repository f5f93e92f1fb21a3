package models

const (
	LoanChoicePayMortgage = "pay-mortgage"
	LoanChoiceRefinance   = "refinance"
)

// LoanSnapshot is the cached copy of a submission's original fields. It is
// written once by the gateway with a bounded TTL and only ever read after
// that; expiry is normal and readers must tolerate its absence.
type LoanSnapshot struct {
	ID          string            `json:"id"`
	SubmittedBy string            `json:"submitted_by,omitempty"`
	Fields      map[string]string `json:"fields"`
}

// ValidLoanChoice reports whether opted is one of the two options the admin
// dashboard accepts.
func ValidLoanChoice(opted string) bool {
	return opted == LoanChoicePayMortgage || opted == LoanChoiceRefinance
}

// LoanChoice is the payload of the outbound admin sync webhook.
type LoanChoice struct {
	UserID     string
	Opted      string
	Name       string
	Address    string
	LoanAmount string
}
