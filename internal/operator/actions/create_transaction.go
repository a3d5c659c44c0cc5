package actions

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/core"
	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// CreateTransaction appends a record to the active user's ledger.
// Created is populated once Perform succeeds.
type CreateTransaction struct {
	Input core.TransactionInput

	Created core.Transaction
}

func (a *CreateTransaction) Perform(ctx context.Context, backend storage.Store) error {
	userID, err := requireUser(ctx)
	if err != nil {
		return err
	}

	store, err := ledger.Open(ctx, backend, userID)
	if err != nil {
		return err
	}

	created, err := store.Add(ctx, a.Input)
	if err != nil {
		return err
	}
	a.Created = created
	return nil
}
