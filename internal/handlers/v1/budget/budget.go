package budget

import (
	"github.com/carson-networks/finance-tracker/internal/core"
)

// Budget is the API response model for the budget document.
type Budget struct {
	MonthlyBudget   string              `json:"monthlyBudget" doc:"Monthly budget total as a decimal string"`
	CategoryBudgets map[string]string   `json:"categoryBudgets" doc:"Per-category spending limits"`
	SavingsGoal     string              `json:"savingsGoal" doc:"Savings goal as a decimal string"`
	Categories      map[string]Category `json:"categories" doc:"Category catalog keyed by name"`
}

// Category is the API model for one catalog entry.
type Category struct {
	Color string `json:"color" doc:"Display color token"`
	Icon  string `json:"icon" doc:"Display icon token"`
}

func toAPI(config core.BudgetConfig) Budget {
	out := Budget{
		MonthlyBudget:   config.MonthlyBudget.String(),
		CategoryBudgets: make(map[string]string, len(config.CategoryBudgets)),
		SavingsGoal:     config.SavingsGoal.String(),
		Categories:      make(map[string]Category, len(config.Categories)),
	}
	for name, limit := range config.CategoryBudgets {
		out.CategoryBudgets[name] = limit.String()
	}
	for name, category := range config.Categories {
		out.Categories[name] = Category{Color: category.Color, Icon: category.Icon}
	}
	return out
}
