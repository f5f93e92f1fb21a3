package models

import "time"

const (
	StatusApproved = "approved"
	StatusDenied   = "denied"

	LoanRequestsTopic = "loans.requests"
	LoanStatusTopic   = "loans.status"
	LoansDLQTopic     = "loans.dlq"
)

// LoanRequestEvent is appended to the loan requests log once per submission.
// The correlation ID doubles as the partition key so every event for one
// submission lands on the same partition.
type LoanRequestEvent struct {
	ID          string            `json:"id"`
	SubmittedBy string            `json:"submitted_by,omitempty"`
	Fields      map[string]string `json:"fields"`
}

// LoanStatusEvent carries the decision for one submission. Consumers treat
// it as an idempotent notification, so re-delivery is safe.
type LoanStatusEvent struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// ValidStatus reports whether s is one of the two allowed decision values.
func ValidStatus(s string) bool {
	return s == StatusApproved || s == StatusDenied
}

// BroadcastTopic returns the ephemeral pub/sub channel for one submission.
func BroadcastTopic(loanID string) string {
	return "loan_status:" + loanID
}

type DLQMessage struct {
	OriginalTopic string    `json:"original_topic"`
	Partition     int       `json:"partition"`
	Offset        int64     `json:"offset"`
	Key           string    `json:"key"`
	Value         string    `json:"value"`
	Reason        string    `json:"reason"`
	Timestamp     time.Time `json:"timestamp"`
	Attempts      int       `json:"attempts"`
}
