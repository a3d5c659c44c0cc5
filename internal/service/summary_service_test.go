package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/finance-tracker/internal/budget"
	"github.com/carson-networks/finance-tracker/internal/core"
	"github.com/carson-networks/finance-tracker/internal/insight"
	"github.com/carson-networks/finance-tracker/internal/metrics"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

func seedSampleLedger(t *testing.T, backend storage.Store, userID string) {
	t.Helper()
	seedTransaction(t, backend, userID, core.TransactionInput{
		Amount:   decimal.NewFromInt(1000),
		Type:     core.TypeIncome,
		Category: "Other",
		Date:     core.NewDate(2026, time.June, 1),
	})
	seedTransaction(t, backend, userID, core.TransactionInput{
		Amount:   decimal.NewFromInt(300),
		Type:     core.TypeExpense,
		Category: "Food",
		Date:     core.NewDate(2026, time.June, 2),
	})
	seedTransaction(t, backend, userID, core.TransactionInput{
		Amount:   decimal.NewFromInt(200),
		Type:     core.TypeExpense,
		Category: "Transport",
		Date:     core.NewDate(2026, time.June, 3),
	})
}

func TestSummaryService_Summary_NoUser(t *testing.T) {
	svc := NewSummaryService(storage.NewMemory())

	result, err := svc.Summary(context.Background(), nil)
	assert.NoError(t, err)
	assert.True(t, result.TotalIncome.IsZero())
	assert.True(t, result.TotalExpenses.IsZero())
	assert.True(t, result.Balance.IsZero())
	assert.Empty(t, result.CategoryTotals)
	assert.Empty(t, result.Series)
}

func TestSummaryService_Summary(t *testing.T) {
	backend := storage.NewMemory()
	seedSampleLedger(t, backend, "alice")

	svc := NewSummaryService(backend)

	result, err := svc.Summary(userContext("alice"), nil)
	assert.NoError(t, err)
	assert.True(t, result.TotalIncome.Equal(decimal.NewFromInt(1000)))
	assert.True(t, result.TotalExpenses.Equal(decimal.NewFromInt(500)))
	assert.True(t, result.Balance.Equal(decimal.NewFromInt(500)))
	assert.True(t, result.CategoryTotals["Food"].Equal(decimal.NewFromInt(300)))
	assert.True(t, result.CategoryTotals["Transport"].Equal(decimal.NewFromInt(200)))

	assert.Len(t, result.Series, 3)
	assert.True(t, result.Series[0].Balance.Equal(decimal.NewFromInt(1000)))
	assert.True(t, result.Series[1].Balance.Equal(decimal.NewFromInt(700)))
	assert.True(t, result.Series[2].Balance.Equal(decimal.NewFromInt(500)))
}

func TestSummaryService_Summary_MonthFilterNarrowsTotalsNotSeries(t *testing.T) {
	backend := storage.NewMemory()
	seedSampleLedger(t, backend, "alice")
	seedTransaction(t, backend, "alice", core.TransactionInput{
		Amount:   decimal.NewFromInt(50),
		Type:     core.TypeExpense,
		Category: "Food",
		Date:     core.NewDate(2026, time.May, 20),
	})

	svc := NewSummaryService(backend)

	result, err := svc.Summary(userContext("alice"), &metrics.MonthFilter{Month: time.May, Year: 2026})
	assert.NoError(t, err)
	assert.True(t, result.TotalIncome.IsZero())
	assert.True(t, result.TotalExpenses.Equal(decimal.NewFromInt(50)))
	assert.True(t, result.CategoryTotals["Food"].Equal(decimal.NewFromInt(50)))

	// The series keeps the whole ledger so trends keep their history
	assert.Len(t, result.Series, 4)
}

func TestSummaryService_Insights_NoUser(t *testing.T) {
	svc := NewSummaryService(storage.NewMemory())

	bundle, err := svc.Insights(context.Background())
	assert.NoError(t, err)
	assert.True(t, bundle.HealthScore.IsZero())
	assert.Equal(t, insight.StatusNeedsAttention, bundle.HealthStatus)
	assert.Equal(t, insight.NoTopCategory, bundle.TopExpenseCategory.Name)
}

func TestSummaryService_Insights(t *testing.T) {
	backend := storage.NewMemory()
	seedSampleLedger(t, backend, "alice")

	budgetStore, err := budget.Open(context.Background(), backend, "alice")
	assert.NoError(t, err)
	assert.NoError(t, budgetStore.SetMonthlyBudget(context.Background(), decimal.NewFromInt(1000)))

	svc := NewSummaryService(backend)

	bundle, err := svc.Insights(userContext("alice"))
	assert.NoError(t, err)
	assert.True(t, bundle.SavingsRate.Equal(decimal.NewFromInt(50)))
	assert.True(t, bundle.BudgetAdherence.Equal(decimal.NewFromInt(50)))
	assert.True(t, bundle.HealthScore.Equal(decimal.NewFromInt(80)))
	assert.Equal(t, insight.StatusExcellent, bundle.HealthStatus)
	assert.True(t, bundle.Savings.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, "Food", bundle.TopExpenseCategory.Name)
}
