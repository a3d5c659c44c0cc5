package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/httperror"
	"github.com/carson-networks/finance-tracker/internal/operator"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
)

// SetAmountBody is the request body shared by the budget amount endpoints.
type SetAmountBody struct {
	Amount string `json:"amount" required:"true" doc:"Decimal amount, must be non-negative"`
}

// SetAmountOutput is the Huma output shared by the budget amount endpoints.
type SetAmountOutput struct {
	Status int `json:"status" doc:"HTTP status"`
}

// SetMonthlyBudgetInput is the Huma input for setting the monthly budget.
type SetMonthlyBudgetInput struct {
	Body SetAmountBody
}

// SetSavingsGoalInput is the Huma input for setting the savings goal.
type SetSavingsGoalInput struct {
	Body SetAmountBody
}

// SetCategoryBudgetInput is the Huma input for setting a category limit.
type SetCategoryBudgetInput struct {
	Category string `path:"category" doc:"Catalog category name"`
	Body     SetAmountBody
}

// SetBudgetsHandler handles the budget amount endpoints.
type SetBudgetsHandler struct {
	Operator *operator.OperatorDelegator
}

// NewSetBudgetsHandler creates a new SetBudgetsHandler.
func NewSetBudgetsHandler(op *operator.OperatorDelegator) *SetBudgetsHandler {
	return &SetBudgetsHandler{Operator: op}
}

// Register registers the budget amount endpoints with the Huma API.
func (h *SetBudgetsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "set-monthly-budget",
		Method:      http.MethodPut,
		Path:        "/v1/budget/monthly",
		Summary:     "Set monthly budget",
		Description: "Sets the active user's monthly budget total.",
		Tags:        []string{"Budget"},
	}, h.handleMonthly)
	huma.Register(api, huma.Operation{
		OperationID: "set-savings-goal",
		Method:      http.MethodPut,
		Path:        "/v1/budget/savings-goal",
		Summary:     "Set savings goal",
		Description: "Sets the active user's savings goal.",
		Tags:        []string{"Budget"},
	}, h.handleSavingsGoal)
	huma.Register(api, huma.Operation{
		OperationID: "set-category-budget",
		Method:      http.MethodPut,
		Path:        "/v1/budget/categories/{category}",
		Summary:     "Set category budget",
		Description: "Sets the spending limit for one catalog category.",
		Tags:        []string{"Budget"},
	}, h.handleCategory)
}

func parseAmount(body SetAmountBody) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(body.Amount)
	if err != nil {
		return decimal.Zero, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	return amount, nil
}

func (h *SetBudgetsHandler) handleMonthly(ctx context.Context, input *SetMonthlyBudgetInput) (*SetAmountOutput, error) {
	amount, err := parseAmount(input.Body)
	if err != nil {
		return nil, err
	}
	if err := h.Operator.Process(ctx, &actions.SetMonthlyBudget{Amount: amount}); err != nil {
		return nil, httperror.FromDomain(err, "failed to set monthly budget")
	}
	return &SetAmountOutput{Status: http.StatusOK}, nil
}

func (h *SetBudgetsHandler) handleSavingsGoal(ctx context.Context, input *SetSavingsGoalInput) (*SetAmountOutput, error) {
	amount, err := parseAmount(input.Body)
	if err != nil {
		return nil, err
	}
	if err := h.Operator.Process(ctx, &actions.SetSavingsGoal{Amount: amount}); err != nil {
		return nil, httperror.FromDomain(err, "failed to set savings goal")
	}
	return &SetAmountOutput{Status: http.StatusOK}, nil
}

func (h *SetBudgetsHandler) handleCategory(ctx context.Context, input *SetCategoryBudgetInput) (*SetAmountOutput, error) {
	amount, err := parseAmount(input.Body)
	if err != nil {
		return nil, err
	}
	action := &actions.SetCategoryBudget{Category: input.Category, Amount: amount}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperror.FromDomain(err, "failed to set category budget")
	}
	return &SetAmountOutput{Status: http.StatusOK}, nil
}
