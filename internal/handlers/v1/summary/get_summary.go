// Package summary exposes the read-only aggregation endpoints. Everything
// served here is recomputed from the ledger on each request.
package summary

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/httperror"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/metrics"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// GetSummaryInput is the Huma input for the summary endpoint.
type GetSummaryInput struct {
	Month int `query:"month" minimum:"0" maximum:"12" doc:"Calendar month 1-12, requires year"`
	Year  int `query:"year" minimum:"0" doc:"Calendar year, requires month"`
}

// SeriesPoint is the API model for one running-balance step.
type SeriesPoint struct {
	Date    string `json:"date" doc:"Transaction date, YYYY-MM-DD"`
	Balance string `json:"balance" doc:"Running balance after this transaction"`
}

// GetSummaryResponseBody is the response body for the summary endpoint.
type GetSummaryResponseBody struct {
	TotalIncome    string            `json:"totalIncome" doc:"Total income"`
	TotalExpenses  string            `json:"totalExpenses" doc:"Total expenses"`
	Balance        string            `json:"balance" doc:"All-time income minus expenses"`
	CategoryTotals map[string]string `json:"categoryTotals" doc:"Expense totals per category"`
	Series         []SeriesPoint     `json:"series" doc:"Running-balance series over the whole ledger"`
}

// GetSummaryOutput is the Huma output for the summary endpoint.
type GetSummaryOutput struct {
	Body GetSummaryResponseBody
}

// summarizer is the interface for computing the summary.
type summarizer interface {
	Summary(ctx context.Context, filter *metrics.MonthFilter) (service.Summary, error)
}

// GetSummaryHandler handles GET /v1/summary.
type GetSummaryHandler struct {
	SummaryService summarizer
}

// NewGetSummaryHandler creates a new GetSummaryHandler.
func NewGetSummaryHandler(svc summarizer) *GetSummaryHandler {
	return &GetSummaryHandler{SummaryService: svc}
}

// Register registers the summary endpoint with the Huma API.
func (h *GetSummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-summary",
		Method:      http.MethodGet,
		Path:        "/v1/summary",
		Summary:     "Get financial summary",
		Description: "Returns income and expense totals, per-category expense totals, and the running-balance series. A month filter narrows the totals; the series always covers the whole ledger.",
		Tags:        []string{"Summary"},
	}, h.handle)
}

func (h *GetSummaryHandler) handle(ctx context.Context, input *GetSummaryInput) (*GetSummaryOutput, error) {
	logData := logging.GetLogData(ctx)

	filter, err := metrics.ParseMonthFilter(input.Month, input.Year)
	if err != nil {
		return nil, httperror.FromDomain(err, "invalid month filter")
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("summaryMs")
	}
	result, err := h.SummaryService.Summary(ctx, filter)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperror.FromDomain(err, "failed to compute summary")
	}

	if logData != nil {
		logData.AddData("seriesLength", len(result.Series))
	}

	resp := GetSummaryResponseBody{
		TotalIncome:    result.TotalIncome.String(),
		TotalExpenses:  result.TotalExpenses.String(),
		Balance:        result.Balance.String(),
		CategoryTotals: make(map[string]string, len(result.CategoryTotals)),
		Series:         make([]SeriesPoint, len(result.Series)),
	}
	for name, total := range result.CategoryTotals {
		resp.CategoryTotals[name] = total.String()
	}
	for i, point := range result.Series {
		resp.Series[i] = SeriesPoint{
			Date:    point.Date.String(),
			Balance: point.Balance.String(),
		}
	}

	return &GetSummaryOutput{Body: resp}, nil
}
