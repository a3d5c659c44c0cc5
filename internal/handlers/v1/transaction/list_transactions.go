package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/core"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/httperror"
	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/logging"
)

// ListTransactionsInput is the Huma input for listing transactions.
// All filters are optional and combine with AND.
type ListTransactionsInput struct {
	Type     string `query:"type" doc:"Restrict to one transaction type, income or expense"`
	Category string `query:"category" doc:"Restrict to one category"`
	From     string `query:"from" doc:"Earliest date to include, YYYY-MM-DD"`
	To       string `query:"to" doc:"Latest date to include, YYYY-MM-DD"`
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Transactions []Transaction `json:"transactions" doc:"Matching transactions in insertion order"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	List(ctx context.Context, filter *ledger.Filter) ([]core.Transaction, error)
}

// ListTransactionsHandler handles GET /v1/transactions.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transactions",
		Summary:     "List transactions",
		Description: "Returns the active user's transactions, optionally filtered by type, category and date range.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseListTransactionsInput parses and validates the query filters.
// No filters at all means a nil filter, which matches everything.
func parseListTransactionsInput(input *ListTransactionsInput) (*ledger.Filter, error) {
	if input.Type == "" && input.Category == "" && input.From == "" && input.To == "" {
		return nil, nil
	}

	filter := &ledger.Filter{}
	if input.Type != "" {
		txType := core.TransactionType(input.Type)
		if !txType.Valid() {
			return nil, huma.NewError(http.StatusBadRequest, "unknown transaction type: "+input.Type)
		}
		filter.Type = &txType
	}
	if input.Category != "" {
		category := input.Category
		filter.Category = &category
	}
	if input.From != "" {
		from, err := core.ParseDate(input.From)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid from date", err)
		}
		filter.From = &from
	}
	if input.To != "" {
		to, err := core.ParseDate(input.To)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid to date", err)
		}
		filter.To = &to
	}
	return filter, nil
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)
	filter, err := parseListTransactionsInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	transactions, err := h.TransactionService.List(ctx, filter)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperror.FromDomain(err, "failed to list transactions")
	}

	if logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	resp := ListTransactionsResponseBody{
		Transactions: make([]Transaction, len(transactions)),
	}
	for i, record := range transactions {
		resp.Transactions[i] = toAPI(record)
	}

	return &ListTransactionsOutput{Body: resp}, nil
}
