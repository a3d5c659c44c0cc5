package actions

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/budget"
	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// RenameCategory renames a catalog category and rewrites every transaction
// carrying the old name, as one serialized operation: the catalog entry,
// the migrated budget limit, and the ledger rewrite all land before the
// next action runs, so aggregates never fragment across both names.
type RenameCategory struct {
	OldName string
	NewName string
	Color   string
	Icon    string

	RenamedTransactions int
}

func (a *RenameCategory) Perform(ctx context.Context, backend storage.Store) error {
	userID, err := requireUser(ctx)
	if err != nil {
		return err
	}

	budgetStore, err := budget.Open(ctx, backend, userID)
	if err != nil {
		return err
	}
	if err := budgetStore.RenameCategory(ctx, a.OldName, a.NewName, a.Color, a.Icon); err != nil {
		return err
	}

	if a.OldName == a.NewName {
		return nil
	}

	ledgerStore, err := ledger.Open(ctx, backend, userID)
	if err != nil {
		return err
	}
	count, err := ledgerStore.RenameCategoryEverywhere(ctx, a.OldName, a.NewName)
	if err != nil {
		return err
	}
	a.RenamedTransactions = count
	return nil
}
