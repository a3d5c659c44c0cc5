package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/budget"
	"github.com/carson-networks/finance-tracker/internal/core"
	"github.com/carson-networks/finance-tracker/internal/identity"
	"github.com/carson-networks/finance-tracker/internal/insight"
	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/metrics"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// SummaryService computes derived financial metrics on demand. It holds no
// state of its own; every query reloads the snapshot and recomputes.
type SummaryService struct {
	backend storage.Store
}

// NewSummaryService creates a new SummaryService.
func NewSummaryService(backend storage.Store) *SummaryService {
	return &SummaryService{backend: backend}
}

// Summary returns totals, expense category totals, and the running-balance
// series. The month filter narrows the totals; the series always covers the
// whole ledger so trends keep their history. No active user yields the
// empty summary.
func (s *SummaryService) Summary(ctx context.Context, filter *metrics.MonthFilter) (Summary, error) {
	userID, ok := identity.UserID(ctx)
	if !ok {
		return emptySummary(), nil
	}

	store, err := ledger.Open(ctx, s.backend, userID)
	if err != nil {
		return Summary{}, err
	}
	snapshot := store.Snapshot()

	return Summary{
		TotalIncome:    metrics.TotalByType(snapshot, core.TypeIncome, filter),
		TotalExpenses:  metrics.TotalByType(snapshot, core.TypeExpense, filter),
		Balance:        metrics.Balance(snapshot),
		CategoryTotals: metrics.CategoryTotals(snapshot, core.TypeExpense, filter),
		Series:         metrics.RunningBalanceSeries(snapshot),
	}, nil
}

// Insights returns the health-score bundle over the full ledger and the
// user's monthly budget. No active user yields the zero-input bundle.
func (s *SummaryService) Insights(ctx context.Context) (insight.Bundle, error) {
	userID, ok := identity.UserID(ctx)
	if !ok {
		return insight.Compute(decimal.Zero, decimal.Zero, decimal.Zero, nil), nil
	}

	ledgerStore, err := ledger.Open(ctx, s.backend, userID)
	if err != nil {
		return insight.Bundle{}, err
	}
	budgetStore, err := budget.Open(ctx, s.backend, userID)
	if err != nil {
		return insight.Bundle{}, err
	}

	snapshot := ledgerStore.Snapshot()
	income := metrics.TotalByType(snapshot, core.TypeIncome, nil)
	expenses := metrics.TotalByType(snapshot, core.TypeExpense, nil)
	categoryTotals := metrics.CategoryTotals(snapshot, core.TypeExpense, nil)

	return insight.Compute(income, expenses, budgetStore.MonthlyBudget(), categoryTotals), nil
}

func emptySummary() Summary {
	return Summary{
		TotalIncome:    decimal.Zero,
		TotalExpenses:  decimal.Zero,
		Balance:        decimal.Zero,
		CategoryTotals: map[string]decimal.Decimal{},
		Series:         []metrics.SeriesPoint{},
	}
}
