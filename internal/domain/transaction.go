package domain

import "github.com/google/uuid"

// Transaction correlates every log entry and published event of a
// single inbound call. Exactly one is created per call and discarded
// when the response is written.
type Transaction struct {
	// ID is the per-call correlation identifier (UUID v4).
	ID string
	// Component names the handling component in log entries.
	Component string
}

// NewTransaction creates a Transaction with a generated UUID.
func NewTransaction(component string) Transaction {
	return Transaction{
		ID:        uuid.New().String(),
		Component: component,
	}
}
