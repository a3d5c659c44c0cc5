package actions

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/core"
	"github.com/carson-networks/finance-tracker/internal/identity"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// IAction is a single mutation against the persisted finance state.
// Actions run on the operator worker, one at a time, so each Perform sees
// the storage state left by the previous action.
type IAction interface {
	Perform(ctx context.Context, backend storage.Store) error
}

// requireUser resolves the active user id; mutations without one fail.
func requireUser(ctx context.Context) (string, error) {
	userID, ok := identity.UserID(ctx)
	if !ok {
		return "", &core.ValidationError{Reason: "no active user"}
	}
	return userID, nil
}
