package actions

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/budget"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// DeleteCategory removes a catalog entry and its budget limit. Existing
// transactions keep the stored category string unchanged.
type DeleteCategory struct {
	Name string
}

func (a *DeleteCategory) Perform(ctx context.Context, backend storage.Store) error {
	userID, err := requireUser(ctx)
	if err != nil {
		return err
	}

	store, err := budget.Open(ctx, backend, userID)
	if err != nil {
		return err
	}
	return store.DeleteCategory(ctx, a.Name)
}
