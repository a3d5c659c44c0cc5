package category

import (
	"context"
	"net/http"
	"sort"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/core"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/httperror"
)

// ListCategoriesInput is the Huma input for listing categories.
type ListCategoriesInput struct{}

// ListCategoriesResponseBody is the response body for listing categories.
type ListCategoriesResponseBody struct {
	Categories []Category `json:"categories" doc:"Catalog entries sorted by name"`
}

// ListCategoriesOutput is the Huma output for listing categories.
type ListCategoriesOutput struct {
	Body ListCategoriesResponseBody
}

// budgetGetter is the interface for reading the budget document.
type budgetGetter interface {
	Get(ctx context.Context) (core.BudgetConfig, error)
}

// ListCategoriesHandler handles GET /v1/categories.
type ListCategoriesHandler struct {
	BudgetService budgetGetter
}

// NewListCategoriesHandler creates a new ListCategoriesHandler.
func NewListCategoriesHandler(svc budgetGetter) *ListCategoriesHandler {
	return &ListCategoriesHandler{BudgetService: svc}
}

// Register registers the list categories endpoint with the Huma API.
func (h *ListCategoriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/v1/categories",
		Summary:     "List categories",
		Description: "Returns the active user's category catalog, sorted by name.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *ListCategoriesHandler) handle(ctx context.Context, _ *ListCategoriesInput) (*ListCategoriesOutput, error) {
	config, err := h.BudgetService.Get(ctx)
	if err != nil {
		return nil, httperror.FromDomain(err, "failed to list categories")
	}

	names := make([]string, 0, len(config.Categories))
	for name := range config.Categories {
		names = append(names, name)
	}
	sort.Strings(names)

	resp := ListCategoriesResponseBody{
		Categories: make([]Category, len(names)),
	}
	for i, name := range names {
		entry := config.Categories[name]
		resp.Categories[i] = Category{Name: name, Color: entry.Color, Icon: entry.Icon}
	}

	return &ListCategoriesOutput{Body: resp}, nil
}
