package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Load when no value exists for the key.
var ErrNotFound = errors.New("storage: key not found")

// Store is the persistence collaborator for the finance core. Values are
// opaque documents keyed by string; the only guarantee is last-write-wins
// at key granularity.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// TransactionsKey is the document key for a user's transaction ledger.
func TransactionsKey(userID string) string {
	return "transactions_" + userID
}

// BudgetKey is the document key for a user's budget configuration.
func BudgetKey(userID string) string {
	return "budget_" + userID
}
