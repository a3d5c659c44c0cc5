package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/httperror"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/operator"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
)

// RenameCategoryBody is the request body for renaming a category.
type RenameCategoryBody struct {
	Name  string `json:"name" required:"true" doc:"New category name"`
	Color string `json:"color,omitempty" doc:"New display color token, keeps the old one when empty"`
	Icon  string `json:"icon,omitempty" doc:"New display icon token, keeps the old one when empty"`
}

// RenameCategoryInput is the Huma input for renaming a category.
type RenameCategoryInput struct {
	Name string `path:"name" doc:"Current category name"`
	Body RenameCategoryBody
}

// RenameCategoryResponseBody is the response body for renaming a category.
type RenameCategoryResponseBody struct {
	RenamedTransactions int `json:"renamedTransactions" doc:"Number of ledger records rewritten to the new name"`
}

// RenameCategoryOutput is the Huma output for renaming a category.
type RenameCategoryOutput struct {
	Body RenameCategoryResponseBody
}

// RenameCategoryHandler handles PUT /v1/categories/{name}.
type RenameCategoryHandler struct {
	Operator *operator.OperatorDelegator
}

// NewRenameCategoryHandler creates a new RenameCategoryHandler.
func NewRenameCategoryHandler(op *operator.OperatorDelegator) *RenameCategoryHandler {
	return &RenameCategoryHandler{Operator: op}
}

// Register registers the rename category endpoint with the Huma API.
func (h *RenameCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "rename-category",
		Method:      http.MethodPut,
		Path:        "/v1/categories/{name}",
		Summary:     "Rename category",
		Description: "Renames a catalog category and rewrites every transaction carrying the old name in the same operation.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *RenameCategoryHandler) handle(ctx context.Context, input *RenameCategoryInput) (*RenameCategoryOutput, error) {
	action := &actions.RenameCategory{
		OldName: input.Name,
		NewName: input.Body.Name,
		Color:   input.Body.Color,
		Icon:    input.Body.Icon,
	}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperror.FromDomain(err, "failed to rename category")
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("renamedTransactions", action.RenamedTransactions)
	}

	return &RenameCategoryOutput{
		Body: RenameCategoryResponseBody{RenamedTransactions: action.RenamedTransactions},
	}, nil
}
