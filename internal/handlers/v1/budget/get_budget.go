package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/core"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/httperror"
)

// GetBudgetInput is the Huma input for fetching the budget document.
type GetBudgetInput struct{}

// GetBudgetOutput is the Huma output for fetching the budget document.
type GetBudgetOutput struct {
	Body Budget
}

// budgetGetter is the interface for reading the budget document.
type budgetGetter interface {
	Get(ctx context.Context) (core.BudgetConfig, error)
}

// GetBudgetHandler handles GET /v1/budget.
type GetBudgetHandler struct {
	BudgetService budgetGetter
}

// NewGetBudgetHandler creates a new GetBudgetHandler.
func NewGetBudgetHandler(svc budgetGetter) *GetBudgetHandler {
	return &GetBudgetHandler{BudgetService: svc}
}

// Register registers the get budget endpoint with the Huma API.
func (h *GetBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-budget",
		Method:      http.MethodGet,
		Path:        "/v1/budget",
		Summary:     "Get budget",
		Description: "Returns the active user's budget document: monthly budget, category limits, savings goal and category catalog.",
		Tags:        []string{"Budget"},
	}, h.handle)
}

func (h *GetBudgetHandler) handle(ctx context.Context, _ *GetBudgetInput) (*GetBudgetOutput, error) {
	config, err := h.BudgetService.Get(ctx)
	if err != nil {
		return nil, httperror.FromDomain(err, "failed to load budget")
	}
	return &GetBudgetOutput{Body: toAPI(config)}, nil
}
