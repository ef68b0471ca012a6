package wealthflow

import "github.com/google/uuid"

// NewID returns an identifier unique across sessions. Accounts, transactions
// and stocks each keep their own ID space; uniqueness within a collection is
// all that is required.
func NewID() string {
	return uuid.NewString()
}
