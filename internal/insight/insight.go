// Package insight combines aggregation results with budget state into the
// health-score bundle. Compute is deterministic and never fails: edge cases
// (zero income, zero budget, empty totals) produce defined zero/sentinel
// values.
package insight

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Health status bands. Inclusive on the lower bound, contiguous over [0,100].
const (
	StatusExcellent      = "Excellent"
	StatusGood           = "Good"
	StatusFair           = "Fair"
	StatusNeedsAttention = "Needs Attention"
)

// NoTopCategory is the sentinel name when there are no expense totals.
const NoTopCategory = "None"

// Score weighting. A fixed heuristic, not a law of finance: savings rate
// dominates, budget adherence nudges.
var (
	savingsWeight   = decimal.NewFromFloat(1.2)
	adherenceWeight = decimal.NewFromFloat(0.4)
)

var (
	oneHundred     = decimal.NewFromInt(100)
	excellentFloor = decimal.NewFromInt(80)
	goodFloor      = decimal.NewFromInt(50)
	fairFloor      = decimal.NewFromInt(30)
)

// TopCategory is the dominant expense bucket.
type TopCategory struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// Bundle is the full set of derived insights.
type Bundle struct {
	SavingsRate        decimal.Decimal `json:"savingsRate"`
	BudgetAdherence    decimal.Decimal `json:"budgetAdherence"`
	HealthScore        decimal.Decimal `json:"healthScore"`
	HealthStatus       string          `json:"healthStatus"`
	Savings            decimal.Decimal `json:"savings"`
	TopExpenseCategory TopCategory     `json:"topExpenseCategory"`
}

// Compute derives the insight bundle from aggregate income, expenses, the
// monthly budget total, and per-category expense totals.
func Compute(income, expenses, monthlyBudget decimal.Decimal, categoryTotals map[string]decimal.Decimal) Bundle {
	savings := income.Sub(expenses)

	savingsRate := decimal.Zero
	if income.Sign() > 0 {
		savingsRate = savings.Div(income).Mul(oneHundred)
	}

	// Guarded division: a zero budget means zero adherence, not NaN.
	budgetAdherence := decimal.Zero
	if monthlyBudget.Sign() > 0 {
		budgetAdherence = monthlyBudget.Sub(expenses).Div(monthlyBudget).Mul(oneHundred)
		if budgetAdherence.Sign() < 0 {
			budgetAdherence = decimal.Zero
		}
	}

	score := savingsRate.Mul(savingsWeight).Add(budgetAdherence.Mul(adherenceWeight))
	if score.Sign() < 0 {
		score = decimal.Zero
	}
	if score.GreaterThan(oneHundred) {
		score = oneHundred
	}

	return Bundle{
		SavingsRate:        savingsRate,
		BudgetAdherence:    budgetAdherence,
		HealthScore:        score,
		HealthStatus:       statusFor(score),
		Savings:            savings,
		TopExpenseCategory: topCategory(categoryTotals),
	}
}

func statusFor(score decimal.Decimal) string {
	switch {
	case score.GreaterThanOrEqual(excellentFloor):
		return StatusExcellent
	case score.GreaterThanOrEqual(goodFloor):
		return StatusGood
	case score.GreaterThanOrEqual(fairFloor):
		return StatusFair
	default:
		return StatusNeedsAttention
	}
}

// topCategory scans keys in sorted order so ties resolve the same way on
// every call; Go map iteration order would make the result flap.
func topCategory(categoryTotals map[string]decimal.Decimal) TopCategory {
	top := TopCategory{Name: NoTopCategory, Amount: decimal.Zero}
	if len(categoryTotals) == 0 {
		return top
	}

	names := make([]string, 0, len(categoryTotals))
	for name := range categoryTotals {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if categoryTotals[name].GreaterThan(top.Amount) {
			top = TopCategory{Name: name, Amount: categoryTotals[name]}
		}
	}
	return top
}
