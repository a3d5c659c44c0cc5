package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/budget"
	"github.com/carson-networks/finance-tracker/internal/core"
	"github.com/carson-networks/finance-tracker/internal/identity"
	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/metrics"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// BudgetService handles budget configuration read queries.
type BudgetService struct {
	backend storage.Store
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(backend storage.Store) *BudgetService {
	return &BudgetService{backend: backend}
}

// Get returns the active user's budget document. Without an active user it
// returns zero budgets and the default catalog.
func (s *BudgetService) Get(ctx context.Context) (core.BudgetConfig, error) {
	userID, ok := identity.UserID(ctx)
	if !ok {
		return core.BudgetConfig{
			MonthlyBudget:   decimal.Zero,
			SavingsGoal:     decimal.Zero,
			CategoryBudgets: map[string]decimal.Decimal{},
			Categories:      core.DefaultCategories(),
		}, nil
	}

	store, err := budget.Open(ctx, s.backend, userID)
	if err != nil {
		return core.BudgetConfig{}, err
	}
	return store.Config(), nil
}

// Usage reports expense spend against the monthly budget and each
// configured category limit, optionally for one month.
func (s *BudgetService) Usage(ctx context.Context, filter *metrics.MonthFilter) (UsageReport, error) {
	userID, ok := identity.UserID(ctx)
	if !ok {
		return UsageReport{Categories: map[string]CategoryUsage{}}, nil
	}

	budgetStore, err := budget.Open(ctx, s.backend, userID)
	if err != nil {
		return UsageReport{}, err
	}
	ledgerStore, err := ledger.Open(ctx, s.backend, userID)
	if err != nil {
		return UsageReport{}, err
	}

	snapshot := ledgerStore.Snapshot()
	spent := metrics.TotalByType(snapshot, core.TypeExpense, filter)
	categoryTotals := metrics.CategoryTotals(snapshot, core.TypeExpense, filter)

	monthlyPct := budgetStore.MonthlyUsage(spent)
	report := UsageReport{
		TotalSpent:        spent,
		MonthlyBudget:     budgetStore.MonthlyBudget(),
		MonthlyPercentage: monthlyPct,
		Warning:           budget.IsWarning(monthlyPct),
		Exceeded:          budget.IsExceeded(monthlyPct),
		Categories:        make(map[string]CategoryUsage),
	}

	// Only categories with a configured limit get a usage entry; spend in
	// uncapped categories already shows up in TotalSpent.
	for name := range budgetStore.Config().CategoryBudgets {
		limit, _ := budgetStore.CategoryBudget(name)
		categorySpent := categoryTotals[name]
		pct := budget.UsagePercentage(categorySpent, limit)
		report.Categories[name] = CategoryUsage{
			Spent:      categorySpent,
			Limit:      limit,
			Percentage: pct,
			Warning:    budget.IsWarning(pct),
			Exceeded:   budget.IsExceeded(pct),
		}
	}
	return report, nil
}
