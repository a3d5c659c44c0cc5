package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/core"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/httperror"
	"github.com/carson-networks/finance-tracker/internal/operator"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
)

// UpdateTransactionBody is the request body for updating a transaction.
// Absent fields are left untouched.
type UpdateTransactionBody struct {
	Amount   *string `json:"amount,omitempty" doc:"New decimal amount, must be positive"`
	Type     *string `json:"type,omitempty" enum:"income,expense" doc:"New transaction type"`
	Category *string `json:"category,omitempty" doc:"New category name"`
	Date     *string `json:"date,omitempty" doc:"New date as YYYY-MM-DD"`
	Note     *string `json:"note,omitempty" doc:"New note, empty string clears it"`
}

// UpdateTransactionInput is the Huma input for updating a transaction.
type UpdateTransactionInput struct {
	ID   string `path:"id" doc:"Transaction UUID"`
	Body UpdateTransactionBody
}

// UpdateTransactionOutput is the Huma output for updating a transaction.
type UpdateTransactionOutput struct {
	Status int `json:"status" doc:"HTTP status"`
}

// UpdateTransactionHandler handles PATCH /v1/transactions/{id}.
type UpdateTransactionHandler struct {
	Operator *operator.OperatorDelegator
}

// NewUpdateTransactionHandler creates a new UpdateTransactionHandler.
func NewUpdateTransactionHandler(op *operator.OperatorDelegator) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{Operator: op}
}

// Register registers the update transaction endpoint with the Huma API.
func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPatch,
		Path:        "/v1/transactions/{id}",
		Summary:     "Update transaction",
		Description: "Merges the supplied fields into an existing transaction. ID and creation time never change.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseUpdateTransactionBody(body UpdateTransactionBody) (core.TransactionUpdate, error) {
	var update core.TransactionUpdate

	if body.Amount != nil {
		amount, err := decimal.NewFromString(*body.Amount)
		if err != nil {
			return update, huma.NewError(http.StatusBadRequest, "invalid amount", err)
		}
		update.Amount = &amount
	}
	if body.Type != nil {
		txType := core.TransactionType(*body.Type)
		update.Type = &txType
	}
	if body.Category != nil {
		update.Category = body.Category
	}
	if body.Date != nil {
		date, err := core.ParseDate(*body.Date)
		if err != nil {
			return update, huma.NewError(http.StatusBadRequest, "invalid date", err)
		}
		update.Date = &date
	}
	if body.Note != nil {
		update.Note = body.Note
	}
	return update, nil
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid transaction id", err)
	}

	update, err := parseUpdateTransactionBody(input.Body)
	if err != nil {
		return nil, err
	}

	action := &actions.UpdateTransaction{ID: id, Update: update}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperror.FromDomain(err, "failed to update transaction")
	}

	return &UpdateTransactionOutput{Status: http.StatusOK}, nil
}
