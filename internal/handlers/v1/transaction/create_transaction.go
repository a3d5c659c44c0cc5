package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/core"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/httperror"
	"github.com/carson-networks/finance-tracker/internal/operator"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	Amount   string `json:"amount" required:"true" doc:"Decimal amount, must be positive"`
	Type     string `json:"type" required:"true" enum:"income,expense" doc:"Either income or expense"`
	Category string `json:"category" required:"true" doc:"Category name"`
	Date     string `json:"date,omitempty" doc:"Transaction date as YYYY-MM-DD, defaults to today"`
	Note     string `json:"note,omitempty" doc:"Free-form note"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Body Transaction
}

// CreateTransactionHandler handles POST /v1/transactions.
type CreateTransactionHandler struct {
	Operator *operator.OperatorDelegator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(op *operator.OperatorDelegator) *CreateTransactionHandler {
	return &CreateTransactionHandler{Operator: op}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/v1/transactions",
		Summary:       "Create transaction",
		Description:   "Records a new transaction in the active user's ledger.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	var date core.Date
	if input.Body.Date != "" {
		date, err = core.ParseDate(input.Body.Date)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid date", err)
		}
	}

	action := &actions.CreateTransaction{
		Input: core.TransactionInput{
			Amount:   amount,
			Type:     core.TransactionType(input.Body.Type),
			Category: input.Body.Category,
			Date:     date,
			Note:     input.Body.Note,
		},
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperror.FromDomain(err, "failed to create transaction")
	}

	return &CreateTransactionOutput{Body: toAPI(action.Created)}, nil
}
