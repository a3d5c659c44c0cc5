package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/httperror"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/metrics"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// GetUsageInput is the Huma input for the budget usage report.
type GetUsageInput struct {
	Month int `query:"month" minimum:"0" maximum:"12" doc:"Calendar month 1-12, requires year"`
	Year  int `query:"year" minimum:"0" doc:"Calendar year, requires month"`
}

// CategoryUsage is the API model for one category's usage.
type CategoryUsage struct {
	Spent      string `json:"spent" doc:"Amount spent in the category"`
	Limit      string `json:"limit" doc:"Configured category limit"`
	Percentage string `json:"percentage" doc:"Spend as a percentage of the limit"`
	Warning    bool   `json:"warning" doc:"True at 80 percent or more of the limit"`
	Exceeded   bool   `json:"exceeded" doc:"True at or over the limit"`
}

// GetUsageResponseBody is the response body for the budget usage report.
type GetUsageResponseBody struct {
	TotalSpent        string                   `json:"totalSpent" doc:"Total expense spend"`
	MonthlyBudget     string                   `json:"monthlyBudget" doc:"Configured monthly budget"`
	MonthlyPercentage string                   `json:"monthlyPercentage" doc:"Spend as a percentage of the monthly budget"`
	Warning           bool                     `json:"warning" doc:"True at 80 percent or more of the monthly budget"`
	Exceeded          bool                     `json:"exceeded" doc:"True at or over the monthly budget"`
	Categories        map[string]CategoryUsage `json:"categories" doc:"Usage per category with a configured limit"`
}

// GetUsageOutput is the Huma output for the budget usage report.
type GetUsageOutput struct {
	Body GetUsageResponseBody
}

// usageReporter is the interface for building the usage report.
type usageReporter interface {
	Usage(ctx context.Context, filter *metrics.MonthFilter) (service.UsageReport, error)
}

// GetUsageHandler handles GET /v1/budget/usage.
type GetUsageHandler struct {
	BudgetService usageReporter
}

// NewGetUsageHandler creates a new GetUsageHandler.
func NewGetUsageHandler(svc usageReporter) *GetUsageHandler {
	return &GetUsageHandler{BudgetService: svc}
}

// Register registers the budget usage endpoint with the Huma API.
func (h *GetUsageHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-budget-usage",
		Method:      http.MethodGet,
		Path:        "/v1/budget/usage",
		Summary:     "Get budget usage",
		Description: "Reports expense spend against the monthly budget and each configured category limit, optionally for one month.",
		Tags:        []string{"Budget"},
	}, h.handle)
}

func (h *GetUsageHandler) handle(ctx context.Context, input *GetUsageInput) (*GetUsageOutput, error) {
	logData := logging.GetLogData(ctx)

	filter, err := metrics.ParseMonthFilter(input.Month, input.Year)
	if err != nil {
		return nil, httperror.FromDomain(err, "invalid month filter")
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("budgetUsageMs")
	}
	report, err := h.BudgetService.Usage(ctx, filter)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperror.FromDomain(err, "failed to build usage report")
	}

	resp := GetUsageResponseBody{
		TotalSpent:        report.TotalSpent.String(),
		MonthlyBudget:     report.MonthlyBudget.String(),
		MonthlyPercentage: report.MonthlyPercentage.String(),
		Warning:           report.Warning,
		Exceeded:          report.Exceeded,
		Categories:        make(map[string]CategoryUsage, len(report.Categories)),
	}
	for name, usage := range report.Categories {
		resp.Categories[name] = CategoryUsage{
			Spent:      usage.Spent.String(),
			Limit:      usage.Limit.String(),
			Percentage: usage.Percentage.String(),
			Warning:    usage.Warning,
			Exceeded:   usage.Exceeded,
		}
	}

	return &GetUsageOutput{Body: resp}, nil
}
