package core

import "github.com/shopspring/decimal"

// Category holds the display metadata for a spending/income bucket.
// Color and icon are opaque tokens resolved only at the presentation
// boundary; the core never interprets them.
type Category struct {
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// BudgetConfig is the per-user budget document persisted under
// budget_<userId>. Absent fields unmarshal to their zero values.
type BudgetConfig struct {
	MonthlyBudget   decimal.Decimal            `json:"monthlyBudget"`
	CategoryBudgets map[string]decimal.Decimal `json:"categoryBudgets"`
	SavingsGoal     decimal.Decimal            `json:"savingsGoal"`
	Categories      map[string]Category        `json:"categories"`
}

// DefaultCategories is the catalog a user starts with before any
// customization is persisted.
func DefaultCategories() map[string]Category {
	return map[string]Category{
		"Food":          {Icon: "UtensilsCrossed", Color: "#f59e0b"},
		"Transport":     {Icon: "Car", Color: "#3b82f6"},
		"Rent":          {Icon: "Home", Color: "#8b5cf6"},
		"Utilities":     {Icon: "Lightbulb", Color: "#10b981"},
		"Entertainment": {Icon: "Film", Color: "#ec4899"},
		"Savings":       {Icon: "PiggyBank", Color: "#059669"},
		"Healthcare":    {Icon: "Heart", Color: "#ef4444"},
		"Shopping":      {Icon: "ShoppingBag", Color: "#f97316"},
		"Education":     {Icon: "GraduationCap", Color: "#6366f1"},
		"Other":         {Icon: "MoreHorizontal", Color: "#64748b"},
	}
}
