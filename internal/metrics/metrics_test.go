package metrics

import (
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/finance-tracker/internal/core"
)

func record(amount string, txType core.TransactionType, category string, date core.Date, createdAt time.Time) core.Transaction {
	return core.Transaction{
		ID:        uuid.Must(uuid.NewV4()),
		Amount:    decimal.RequireFromString(amount),
		Type:      txType,
		Category:  category,
		Date:      date,
		CreatedAt: createdAt,
	}
}

// The canonical scenario: one salary payment and two expenses.
func sampleLedger() []core.Transaction {
	base := time.Date(2026, time.June, 1, 10, 0, 0, 0, time.UTC)
	return []core.Transaction{
		record("1000", core.TypeIncome, "Other", core.NewDate(2026, time.June, 1), base),
		record("300", core.TypeExpense, "Food", core.NewDate(2026, time.June, 2), base.Add(time.Hour)),
		record("200", core.TypeExpense, "Transport", core.NewDate(2026, time.June, 3), base.Add(2*time.Hour)),
	}
}

func TestTotalByType(t *testing.T) {
	ledger := sampleLedger()

	income := TotalByType(ledger, core.TypeIncome, nil)
	expenses := TotalByType(ledger, core.TypeExpense, nil)

	assert.True(t, income.Equal(decimal.NewFromInt(1000)))
	assert.True(t, expenses.Equal(decimal.NewFromInt(500)))
}

func TestTotalByType_EmptyLedger(t *testing.T) {
	assert.True(t, TotalByType(nil, core.TypeIncome, nil).IsZero())
	assert.True(t, TotalByType([]core.Transaction{}, core.TypeExpense, nil).IsZero())
}

func TestBalance(t *testing.T) {
	assert.True(t, Balance(sampleLedger()).Equal(decimal.NewFromInt(500)))
	assert.True(t, Balance(nil).IsZero())
}

// Every transaction is counted exactly once: the two type totals always
// reconcile with the balance.
func TestTotalsPartitionTheLedger(t *testing.T) {
	ledger := sampleLedger()

	income := TotalByType(ledger, core.TypeIncome, nil)
	expenses := TotalByType(ledger, core.TypeExpense, nil)
	assert.True(t, income.Sub(expenses).Equal(Balance(ledger)))
}

func TestTotalByType_MonthFilter(t *testing.T) {
	base := time.Date(2026, time.May, 1, 10, 0, 0, 0, time.UTC)
	ledger := append(sampleLedger(),
		record("50", core.TypeExpense, "Food", core.NewDate(2026, time.May, 20), base),
	)

	june := &MonthFilter{Month: time.June, Year: 2026}
	may := &MonthFilter{Month: time.May, Year: 2026}

	assert.True(t, TotalByType(ledger, core.TypeExpense, june).Equal(decimal.NewFromInt(500)))
	assert.True(t, TotalByType(ledger, core.TypeExpense, may).Equal(decimal.NewFromInt(50)))
	assert.True(t, TotalByType(ledger, core.TypeExpense, &MonthFilter{Month: time.July, Year: 2026}).IsZero())
}

func TestCategoryTotals(t *testing.T) {
	totals := CategoryTotals(sampleLedger(), core.TypeExpense, nil)

	assert.Len(t, totals, 2)
	assert.True(t, totals["Food"].Equal(decimal.NewFromInt(300)))
	assert.True(t, totals["Transport"].Equal(decimal.NewFromInt(200)))

	// Categories without matches are absent, not zero-valued
	_, ok := totals["Rent"]
	assert.False(t, ok)
}

func TestCategoryTotals_UsesStoredString(t *testing.T) {
	base := time.Now().UTC()
	ledger := []core.Transaction{
		record("10", core.TypeExpense, "Deleted Category", core.NewDate(2026, time.June, 1), base),
	}

	totals := CategoryTotals(ledger, core.TypeExpense, nil)
	assert.True(t, totals["Deleted Category"].Equal(decimal.NewFromInt(10)))
}

func TestRunningBalanceSeries(t *testing.T) {
	series := RunningBalanceSeries(sampleLedger())

	assert.Len(t, series, 3)
	assert.True(t, series[0].Balance.Equal(decimal.NewFromInt(1000)))
	assert.True(t, series[1].Balance.Equal(decimal.NewFromInt(700)))
	assert.True(t, series[2].Balance.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, "2026-06-01", series[0].Date.String())
}

func TestRunningBalanceSeries_SortsByDate(t *testing.T) {
	base := time.Date(2026, time.June, 1, 10, 0, 0, 0, time.UTC)
	ledger := []core.Transaction{
		record("200", core.TypeExpense, "Food", core.NewDate(2026, time.June, 10), base),
		record("1000", core.TypeIncome, "Other", core.NewDate(2026, time.June, 1), base.Add(time.Hour)),
	}

	series := RunningBalanceSeries(ledger)
	assert.True(t, series[0].Balance.Equal(decimal.NewFromInt(1000)))
	assert.True(t, series[1].Balance.Equal(decimal.NewFromInt(800)))
}

func TestRunningBalanceSeries_SameDayTieBrokenByCreatedAt(t *testing.T) {
	base := time.Date(2026, time.June, 1, 10, 0, 0, 0, time.UTC)
	date := core.NewDate(2026, time.June, 5)
	ledger := []core.Transaction{
		record("100", core.TypeExpense, "Food", date, base.Add(time.Hour)),
		record("1000", core.TypeIncome, "Other", date, base),
	}

	series := RunningBalanceSeries(ledger)
	assert.Len(t, series, 2)
	assert.True(t, series[0].Balance.Equal(decimal.NewFromInt(1000)))
	assert.True(t, series[1].Balance.Equal(decimal.NewFromInt(900)))
}

func TestRunningBalanceSeries_Empty(t *testing.T) {
	assert.Empty(t, RunningBalanceSeries(nil))
}

func TestRunningBalanceSeries_DoesNotMutateInput(t *testing.T) {
	ledger := []core.Transaction{
		record("200", core.TypeExpense, "Food", core.NewDate(2026, time.June, 10), time.Now()),
		record("1000", core.TypeIncome, "Other", core.NewDate(2026, time.June, 1), time.Now()),
	}

	RunningBalanceSeries(ledger)
	assert.Equal(t, "Food", ledger[0].Category)
}

func TestParseMonthFilter(t *testing.T) {
	filter, err := ParseMonthFilter(6, 2026)
	assert.NoError(t, err)
	assert.Equal(t, &MonthFilter{Month: time.June, Year: 2026}, filter)
}

func TestParseMonthFilter_Absent(t *testing.T) {
	filter, err := ParseMonthFilter(0, 0)
	assert.NoError(t, err)
	assert.Nil(t, filter)
}

func TestParseMonthFilter_Partial(t *testing.T) {
	_, err := ParseMonthFilter(6, 0)
	assert.Error(t, err)

	_, err = ParseMonthFilter(0, 2026)
	assert.Error(t, err)
}

func TestParseMonthFilter_MonthOutOfRange(t *testing.T) {
	_, err := ParseMonthFilter(13, 2026)
	assert.Error(t, err)

	_, err = ParseMonthFilter(-1, 2026)
	assert.Error(t, err)
}
