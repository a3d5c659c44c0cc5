package service

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/core"
	"github.com/carson-networks/finance-tracker/internal/identity"
	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// TransactionService handles transaction read queries.
type TransactionService struct {
	backend storage.Store
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(backend storage.Store) *TransactionService {
	return &TransactionService{backend: backend}
}

// List returns the active user's transactions matching the filter, in
// insertion order. Without an active user the list is empty, not an error.
func (s *TransactionService) List(ctx context.Context, filter *ledger.Filter) ([]core.Transaction, error) {
	userID, ok := identity.UserID(ctx)
	if !ok {
		return []core.Transaction{}, nil
	}

	store, err := ledger.Open(ctx, s.backend, userID)
	if err != nil {
		return nil, err
	}
	return store.List(filter), nil
}
