package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/httperror"
	"github.com/carson-networks/finance-tracker/internal/operator"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
)

// CreateCategoryBody is the request body for creating a category.
type CreateCategoryBody struct {
	Name  string `json:"name" required:"true" doc:"Category name, must be unique"`
	Color string `json:"color,omitempty" doc:"Display color token"`
	Icon  string `json:"icon,omitempty" doc:"Display icon token"`
}

// CreateCategoryInput is the Huma input for creating a category.
type CreateCategoryInput struct {
	Body CreateCategoryBody
}

// CreateCategoryOutput is the Huma output for creating a category.
type CreateCategoryOutput struct {
	Status int `json:"status" doc:"HTTP status"`
}

// CreateCategoryHandler handles POST /v1/categories.
type CreateCategoryHandler struct {
	Operator *operator.OperatorDelegator
}

// NewCreateCategoryHandler creates a new CreateCategoryHandler.
func NewCreateCategoryHandler(op *operator.OperatorDelegator) *CreateCategoryHandler {
	return &CreateCategoryHandler{Operator: op}
}

// Register registers the create category endpoint with the Huma API.
func (h *CreateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-category",
		Method:        http.MethodPost,
		Path:          "/v1/categories",
		Summary:       "Create category",
		Description:   "Adds a new entry to the active user's category catalog.",
		Tags:          []string{"Categories"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateCategoryHandler) handle(ctx context.Context, input *CreateCategoryInput) (*CreateCategoryOutput, error) {
	action := &actions.AddCategory{
		Name:  input.Body.Name,
		Color: input.Body.Color,
		Icon:  input.Body.Icon,
	}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperror.FromDomain(err, "failed to create category")
	}
	return &CreateCategoryOutput{Status: http.StatusCreated}, nil
}
