package service

import (
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// Service holds the read-side services exposed to presentation layers.
// Mutations go through the operator queue instead, so writes stay ordered.
type Service struct {
	Transaction *TransactionService
	Budget      *BudgetService
	Summary     *SummaryService
}

// NewService creates a new Service over the given storage backend.
func NewService(backend storage.Store) *Service {
	return &Service{
		Transaction: NewTransactionService(backend),
		Budget:      NewBudgetService(backend),
		Summary:     NewSummaryService(backend),
	}
}
