package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// DeleteTransaction removes a ledger record. Unknown ids are a no-op.
type DeleteTransaction struct {
	ID uuid.UUID
}

func (a *DeleteTransaction) Perform(ctx context.Context, backend storage.Store) error {
	userID, err := requireUser(ctx)
	if err != nil {
		return err
	}

	store, err := ledger.Open(ctx, backend, userID)
	if err != nil {
		return err
	}
	return store.Remove(ctx, a.ID)
}
