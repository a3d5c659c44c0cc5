package budget

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/core"
)

type mockBudgetGetter struct {
	mock.Mock
}

func (m *mockBudgetGetter) Get(ctx context.Context) (core.BudgetConfig, error) {
	args := m.Called(ctx)
	config, _ := args.Get(0).(core.BudgetConfig)
	return config, args.Error(1)
}

func newGetBudgetTestAPI(t *testing.T, svc budgetGetter) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewGetBudgetHandler(svc).Register(api)
	return api
}

func TestHTTP_GetBudget(t *testing.T) {
	mockSvc := new(mockBudgetGetter)
	mockSvc.On("Get", mock.Anything).Return(core.BudgetConfig{
		MonthlyBudget: decimal.NewFromInt(2000),
		SavingsGoal:   decimal.NewFromInt(300),
		CategoryBudgets: map[string]decimal.Decimal{
			"Food": decimal.NewFromInt(400),
		},
		Categories: map[string]core.Category{
			"Food": {Color: "#f59e0b", Icon: "utensils"},
		},
	}, nil)

	resp := newGetBudgetTestAPI(t, mockSvc).Get("/v1/budget")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Budget
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "2000", body.MonthlyBudget)
	assert.Equal(t, "300", body.SavingsGoal)
	assert.Equal(t, "400", body.CategoryBudgets["Food"])
	assert.Equal(t, Category{Color: "#f59e0b", Icon: "utensils"}, body.Categories["Food"])
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetBudget_ServiceError(t *testing.T) {
	mockSvc := new(mockBudgetGetter)
	mockSvc.On("Get", mock.Anything).Return(core.BudgetConfig{}, errors.New("storage unavailable"))

	resp := newGetBudgetTestAPI(t, mockSvc).Get("/v1/budget")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}
