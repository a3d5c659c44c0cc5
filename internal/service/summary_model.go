package service

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/metrics"
)

// Summary is the aggregation result bundle: ephemeral, recomputed on every
// query, never persisted.
type Summary struct {
	TotalIncome    decimal.Decimal
	TotalExpenses  decimal.Decimal
	Balance        decimal.Decimal
	CategoryTotals map[string]decimal.Decimal
	Series         []metrics.SeriesPoint
}

// CategoryUsage is one category's spend against its configured limit.
type CategoryUsage struct {
	Spent      decimal.Decimal
	Limit      decimal.Decimal
	Percentage decimal.Decimal
	Warning    bool
	Exceeded   bool
}

// UsageReport is the budget usage picture for one month (or all time).
type UsageReport struct {
	TotalSpent        decimal.Decimal
	MonthlyBudget     decimal.Decimal
	MonthlyPercentage decimal.Decimal
	Warning           bool
	Exceeded          bool
	Categories        map[string]CategoryUsage
}
