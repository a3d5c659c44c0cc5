// Package metrics is the aggregation engine: pure functions over a ledger
// snapshot, recomputed eagerly on every read. Every function is total over
// all possible inputs; an empty or odd-shaped ledger yields zero values,
// never an error.
package metrics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/core"
)

// MonthFilter restricts an aggregation to a single calendar month.
// Months are 1-indexed via time.Month.
type MonthFilter struct {
	Month time.Month
	Year  int
}

// ParseMonthFilter builds a MonthFilter from raw query values. Both fields
// absent (zero) means no filter; supplying only one of them, or a month
// outside 1..12, is a validation error.
func ParseMonthFilter(month, year int) (*MonthFilter, error) {
	if month == 0 && year == 0 {
		return nil, nil
	}
	if month == 0 || year == 0 {
		return nil, &core.ValidationError{Reason: "month and year must be supplied together"}
	}
	if month < 1 || month > 12 {
		return nil, &core.ValidationError{Reason: "month must be between 1 and 12"}
	}
	return &MonthFilter{Month: time.Month(month), Year: year}, nil
}

// SeriesPoint is one step of the running-balance series.
type SeriesPoint struct {
	Date    core.Date       `json:"date"`
	Balance decimal.Decimal `json:"balance"`
}

// TotalByType sums the amounts of transactions matching the type, optionally
// restricted to one month. An empty match set sums to zero.
func TotalByType(transactions []core.Transaction, txType core.TransactionType, filter *MonthFilter) decimal.Decimal {
	total := decimal.Zero
	for _, record := range transactions {
		if record.Type != txType {
			continue
		}
		if filter != nil && !record.Date.InMonth(filter.Month, filter.Year) {
			continue
		}
		total = total.Add(record.Amount)
	}
	return total
}

// Balance is total income minus total expenses over the whole ledger.
func Balance(transactions []core.Transaction) decimal.Decimal {
	return TotalByType(transactions, core.TypeIncome, nil).
		Sub(TotalByType(transactions, core.TypeExpense, nil))
}

// CategoryTotals groups matching transactions by their stored category
// string and sums the amounts. The category does not have to exist in any
// catalog; whatever string the record carries is its aggregation key.
// Categories with no matches are absent, never zero-valued.
func CategoryTotals(transactions []core.Transaction, txType core.TransactionType, filter *MonthFilter) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, record := range transactions {
		if record.Type != txType {
			continue
		}
		if filter != nil && !record.Date.InMonth(filter.Month, filter.Year) {
			continue
		}
		totals[record.Category] = totals[record.Category].Add(record.Amount)
	}
	return totals
}

// RunningBalanceSeries sorts the ledger by date ascending (createdAt breaks
// same-day ties deterministically) and folds a running balance: income adds,
// expense subtracts. One point per transaction, so multiple same-day records
// yield multiple points. An empty ledger yields an empty series; deciding
// whether one point is "enough data" is the display layer's concern.
func RunningBalanceSeries(transactions []core.Transaction) []SeriesPoint {
	sorted := make([]core.Transaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date.Time) {
			return sorted[i].Date.Before(sorted[j].Date.Time)
		}
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	series := make([]SeriesPoint, 0, len(sorted))
	balance := decimal.Zero
	for _, record := range sorted {
		if record.Type == core.TypeIncome {
			balance = balance.Add(record.Amount)
		} else {
			balance = balance.Sub(record.Amount)
		}
		series = append(series, SeriesPoint{Date: record.Date, Balance: balance})
	}
	return series
}
