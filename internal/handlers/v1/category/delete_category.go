package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/httperror"
	"github.com/carson-networks/finance-tracker/internal/operator"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
)

// DeleteCategoryInput is the Huma input for deleting a category.
type DeleteCategoryInput struct {
	Name string `path:"name" doc:"Category name"`
}

// DeleteCategoryOutput is the Huma output for deleting a category.
type DeleteCategoryOutput struct {
	Status int `json:"status" doc:"HTTP status"`
}

// DeleteCategoryHandler handles DELETE /v1/categories/{name}.
type DeleteCategoryHandler struct {
	Operator *operator.OperatorDelegator
}

// NewDeleteCategoryHandler creates a new DeleteCategoryHandler.
func NewDeleteCategoryHandler(op *operator.OperatorDelegator) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{Operator: op}
}

// Register registers the delete category endpoint with the Huma API.
func (h *DeleteCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-category",
		Method:      http.MethodDelete,
		Path:        "/v1/categories/{name}",
		Summary:     "Delete category",
		Description: "Removes a catalog entry and its budget limit. Existing transactions keep the stored category name.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *DeleteCategoryHandler) handle(ctx context.Context, input *DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	if err := h.Operator.Process(ctx, &actions.DeleteCategory{Name: input.Name}); err != nil {
		return nil, httperror.FromDomain(err, "failed to delete category")
	}
	return &DeleteCategoryOutput{Status: http.StatusOK}, nil
}
