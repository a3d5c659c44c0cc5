package actions

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/budget"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// AddCategory adds a catalog entry for the active user.
type AddCategory struct {
	Name  string
	Color string
	Icon  string
}

func (a *AddCategory) Perform(ctx context.Context, backend storage.Store) error {
	userID, err := requireUser(ctx)
	if err != nil {
		return err
	}

	store, err := budget.Open(ctx, backend, userID)
	if err != nil {
		return err
	}
	return store.AddCategory(ctx, a.Name, a.Color, a.Icon)
}
