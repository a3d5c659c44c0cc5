package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/core"
	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// UpdateTransaction merges fields into an existing ledger record.
type UpdateTransaction struct {
	ID     uuid.UUID
	Update core.TransactionUpdate
}

func (a *UpdateTransaction) Perform(ctx context.Context, backend storage.Store) error {
	userID, err := requireUser(ctx)
	if err != nil {
		return err
	}

	store, err := ledger.Open(ctx, backend, userID)
	if err != nil {
		return err
	}
	return store.Update(ctx, a.ID, a.Update)
}
