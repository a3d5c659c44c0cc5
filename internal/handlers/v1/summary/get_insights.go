package summary

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/httperror"
	"github.com/carson-networks/finance-tracker/internal/insight"
	"github.com/carson-networks/finance-tracker/internal/logging"
)

// GetInsightsInput is the Huma input for the insights endpoint.
type GetInsightsInput struct{}

// TopExpenseCategory is the API model for the dominant expense bucket.
type TopExpenseCategory struct {
	Name   string `json:"name" doc:"Category name, None when there are no expenses"`
	Amount string `json:"amount" doc:"Total spent in the category"`
}

// GetInsightsResponseBody is the response body for the insights endpoint.
type GetInsightsResponseBody struct {
	SavingsRate        string             `json:"savingsRate" doc:"Savings as a percentage of income"`
	BudgetAdherence    string             `json:"budgetAdherence" doc:"Remaining budget as a percentage of the monthly budget, floored at zero"`
	HealthScore        string             `json:"healthScore" doc:"Weighted score clamped to 0-100"`
	HealthStatus       string             `json:"healthStatus" doc:"Excellent, Good, Fair or Needs Attention"`
	Savings            string             `json:"savings" doc:"Income minus expenses"`
	TopExpenseCategory TopExpenseCategory `json:"topExpenseCategory" doc:"Category with the highest expense total"`
}

// GetInsightsOutput is the Huma output for the insights endpoint.
type GetInsightsOutput struct {
	Body GetInsightsResponseBody
}

// insightComputer is the interface for computing the insight bundle.
type insightComputer interface {
	Insights(ctx context.Context) (insight.Bundle, error)
}

// GetInsightsHandler handles GET /v1/insights.
type GetInsightsHandler struct {
	SummaryService insightComputer
}

// NewGetInsightsHandler creates a new GetInsightsHandler.
func NewGetInsightsHandler(svc insightComputer) *GetInsightsHandler {
	return &GetInsightsHandler{SummaryService: svc}
}

// Register registers the insights endpoint with the Huma API.
func (h *GetInsightsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-insights",
		Method:      http.MethodGet,
		Path:        "/v1/insights",
		Summary:     "Get financial insights",
		Description: "Returns the health-score bundle: savings rate, budget adherence, health score and status, savings, and the top expense category.",
		Tags:        []string{"Summary"},
	}, h.handle)
}

func (h *GetInsightsHandler) handle(ctx context.Context, _ *GetInsightsInput) (*GetInsightsOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("insightsMs")
	}
	bundle, err := h.SummaryService.Insights(ctx)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperror.FromDomain(err, "failed to compute insights")
	}

	if logData != nil {
		logData.AddData("healthStatus", bundle.HealthStatus)
	}

	return &GetInsightsOutput{
		Body: GetInsightsResponseBody{
			SavingsRate:     bundle.SavingsRate.String(),
			BudgetAdherence: bundle.BudgetAdherence.String(),
			HealthScore:     bundle.HealthScore.String(),
			HealthStatus:    bundle.HealthStatus,
			Savings:         bundle.Savings.String(),
			TopExpenseCategory: TopExpenseCategory{
				Name:   bundle.TopExpenseCategory.Name,
				Amount: bundle.TopExpenseCategory.Amount.String(),
			},
		},
	}, nil
}
