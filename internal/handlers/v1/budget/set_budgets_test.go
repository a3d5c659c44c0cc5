package budget

import (
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	budgetstore "github.com/carson-networks/finance-tracker/internal/budget"
	"github.com/carson-networks/finance-tracker/internal/identity"
	"github.com/carson-networks/finance-tracker/internal/operator"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

func newSetBudgetsTestSetup(t *testing.T) (humatest.TestAPI, storage.Store, *SetBudgetsHandler) {
	t.Helper()
	backend := storage.NewMemory()
	delegator := operator.NewOperatorDelegator(backend)
	delegator.Start()
	t.Cleanup(delegator.Stop)

	handler := NewSetBudgetsHandler(delegator)
	_, api := humatest.New(t)
	handler.Register(api)
	return api, backend, handler
}

func TestHTTP_SetMonthlyBudget_InvalidAmount(t *testing.T) {
	api, _, _ := newSetBudgetsTestSetup(t)

	resp := api.Put("/v1/budget/monthly", SetAmountBody{Amount: "not-a-number"})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_SetMonthlyBudget_NoActiveUser(t *testing.T) {
	api, _, _ := newSetBudgetsTestSetup(t)

	resp := api.Put("/v1/budget/monthly", SetAmountBody{Amount: "2000"})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestSetMonthlyBudget_Handle(t *testing.T) {
	_, backend, handler := newSetBudgetsTestSetup(t)
	ctx := identity.WithUserID(context.Background(), "alice")

	output, err := handler.handleMonthly(ctx, &SetMonthlyBudgetInput{Body: SetAmountBody{Amount: "2000"}})
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, output.Status)

	store, err := budgetstore.Open(context.Background(), backend, "alice")
	assert.NoError(t, err)
	assert.True(t, store.MonthlyBudget().Equal(decimal.NewFromInt(2000)))
}

func TestSetMonthlyBudget_HandleNegativeAmount(t *testing.T) {
	_, _, handler := newSetBudgetsTestSetup(t)
	ctx := identity.WithUserID(context.Background(), "alice")

	_, err := handler.handleMonthly(ctx, &SetMonthlyBudgetInput{Body: SetAmountBody{Amount: "-1"}})
	assert.Error(t, err)
}

func TestSetSavingsGoal_Handle(t *testing.T) {
	_, backend, handler := newSetBudgetsTestSetup(t)
	ctx := identity.WithUserID(context.Background(), "alice")

	output, err := handler.handleSavingsGoal(ctx, &SetSavingsGoalInput{Body: SetAmountBody{Amount: "300"}})
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, output.Status)

	store, err := budgetstore.Open(context.Background(), backend, "alice")
	assert.NoError(t, err)
	assert.True(t, store.SavingsGoal().Equal(decimal.NewFromInt(300)))
}

func TestSetCategoryBudget_Handle(t *testing.T) {
	_, backend, handler := newSetBudgetsTestSetup(t)
	ctx := identity.WithUserID(context.Background(), "alice")

	output, err := handler.handleCategory(ctx, &SetCategoryBudgetInput{
		Category: "Food",
		Body:     SetAmountBody{Amount: "400"},
	})
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, output.Status)

	store, err := budgetstore.Open(context.Background(), backend, "alice")
	assert.NoError(t, err)
	limit, ok := store.CategoryBudget("Food")
	assert.True(t, ok)
	assert.True(t, limit.Equal(decimal.NewFromInt(400)))
}

func TestSetCategoryBudget_HandleUnknownCategory(t *testing.T) {
	_, _, handler := newSetBudgetsTestSetup(t)
	ctx := identity.WithUserID(context.Background(), "alice")

	_, err := handler.handleCategory(ctx, &SetCategoryBudgetInput{
		Category: "Yachts",
		Body:     SetAmountBody{Amount: "400"},
	})
	assert.Error(t, err)
}
