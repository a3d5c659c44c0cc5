package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/budget"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// SetMonthlyBudget sets the monthly budget total.
type SetMonthlyBudget struct {
	Amount decimal.Decimal
}

func (a *SetMonthlyBudget) Perform(ctx context.Context, backend storage.Store) error {
	userID, err := requireUser(ctx)
	if err != nil {
		return err
	}

	store, err := budget.Open(ctx, backend, userID)
	if err != nil {
		return err
	}
	return store.SetMonthlyBudget(ctx, a.Amount)
}

// SetCategoryBudget sets the spending limit for one catalog category.
type SetCategoryBudget struct {
	Category string
	Amount   decimal.Decimal
}

func (a *SetCategoryBudget) Perform(ctx context.Context, backend storage.Store) error {
	userID, err := requireUser(ctx)
	if err != nil {
		return err
	}

	store, err := budget.Open(ctx, backend, userID)
	if err != nil {
		return err
	}
	return store.SetCategoryBudget(ctx, a.Category, a.Amount)
}

// SetSavingsGoal sets the savings goal.
type SetSavingsGoal struct {
	Amount decimal.Decimal
}

func (a *SetSavingsGoal) Perform(ctx context.Context, backend storage.Store) error {
	userID, err := requireUser(ctx)
	if err != nil {
		return err
	}

	store, err := budget.Open(ctx, backend, userID)
	if err != nil {
		return err
	}
	return store.SetSavingsGoal(ctx, a.Amount)
}
