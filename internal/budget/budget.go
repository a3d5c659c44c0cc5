// Package budget owns the per-user budget configuration: the monthly budget
// total, sparse per-category limits, the savings goal, and the category
// catalog. Every mutation persists the full document keyed by the user.
package budget

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/core"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// Usage thresholds. Fixed policy constants, not configurable.
var (
	WarningThreshold  = decimal.NewFromInt(80)
	ExceededThreshold = decimal.NewFromInt(100)
)

var oneHundred = decimal.NewFromInt(100)

// Store is one user's budget configuration. Like the ledger store it is
// not safe for concurrent use on its own; mutations go through the
// operator queue.
type Store struct {
	userID  string
	backend storage.Store
	config  core.BudgetConfig
}

// Open loads the user's budget document. A missing document yields zero
// budgets and the default category catalog.
func Open(ctx context.Context, backend storage.Store, userID string) (*Store, error) {
	s := &Store{userID: userID, backend: backend}

	raw, err := backend.Load(ctx, storage.BudgetKey(userID))
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}
	if err == nil {
		if err := json.Unmarshal(raw, &s.config); err != nil {
			return nil, err
		}
	}

	if s.config.CategoryBudgets == nil {
		s.config.CategoryBudgets = make(map[string]decimal.Decimal)
	}
	if len(s.config.Categories) == 0 {
		s.config.Categories = core.DefaultCategories()
	}
	return s, nil
}

// Config returns a copy of the full budget document.
func (s *Store) Config() core.BudgetConfig {
	copied := core.BudgetConfig{
		MonthlyBudget:   s.config.MonthlyBudget,
		SavingsGoal:     s.config.SavingsGoal,
		CategoryBudgets: make(map[string]decimal.Decimal, len(s.config.CategoryBudgets)),
		Categories:      make(map[string]core.Category, len(s.config.Categories)),
	}
	for name, limit := range s.config.CategoryBudgets {
		copied.CategoryBudgets[name] = limit
	}
	for name, category := range s.config.Categories {
		copied.Categories[name] = category
	}
	return copied
}

// MonthlyBudget returns the monthly budget total.
func (s *Store) MonthlyBudget() decimal.Decimal {
	return s.config.MonthlyBudget
}

// SavingsGoal returns the savings goal.
func (s *Store) SavingsGoal() decimal.Decimal {
	return s.config.SavingsGoal
}

// CategoryBudget returns the limit for a category and whether one is set.
func (s *Store) CategoryBudget(name string) (decimal.Decimal, bool) {
	limit, ok := s.config.CategoryBudgets[name]
	return limit, ok
}

// HasCategory reports whether the catalog contains the named category.
func (s *Store) HasCategory(name string) bool {
	_, ok := s.config.Categories[name]
	return ok
}

// SetMonthlyBudget validates amount >= 0 and persists immediately.
func (s *Store) SetMonthlyBudget(ctx context.Context, amount decimal.Decimal) error {
	if amount.Sign() < 0 {
		return &core.ValidationError{Reason: "monthly budget must not be negative"}
	}
	s.config.MonthlyBudget = amount
	return s.persist(ctx)
}

// SetCategoryBudget sets the limit for an existing catalog category.
func (s *Store) SetCategoryBudget(ctx context.Context, category string, amount decimal.Decimal) error {
	if amount.Sign() < 0 {
		return &core.ValidationError{Reason: "category budget must not be negative"}
	}
	if !s.HasCategory(category) {
		return &core.NotFoundError{Kind: "category", Key: category}
	}
	s.config.CategoryBudgets[category] = amount
	return s.persist(ctx)
}

// SetSavingsGoal validates amount >= 0 and persists immediately.
func (s *Store) SetSavingsGoal(ctx context.Context, amount decimal.Decimal) error {
	if amount.Sign() < 0 {
		return &core.ValidationError{Reason: "savings goal must not be negative"}
	}
	s.config.SavingsGoal = amount
	return s.persist(ctx)
}

// AddCategory adds a catalog entry. Name collisions fail with
// DuplicateError so callers can surface them.
func (s *Store) AddCategory(ctx context.Context, name, color, icon string) error {
	if strings.TrimSpace(name) == "" {
		return &core.ValidationError{Reason: "category name must not be empty"}
	}
	if s.HasCategory(name) {
		return &core.DuplicateError{Name: name}
	}
	s.config.Categories[name] = core.Category{Color: color, Icon: icon}
	return s.persist(ctx)
}

// RenameCategory updates the catalog entry and migrates its budget limit in
// one persisted step. Rewriting the ledger's category fields is coordinated
// by the service rename action, which calls this and the ledger rewrite as
// one serialized operation.
func (s *Store) RenameCategory(ctx context.Context, oldName, newName, color, icon string) error {
	if strings.TrimSpace(newName) == "" {
		return &core.ValidationError{Reason: "category name must not be empty"}
	}
	if !s.HasCategory(oldName) {
		return &core.NotFoundError{Kind: "category", Key: oldName}
	}
	if newName != oldName && s.HasCategory(newName) {
		return &core.DuplicateError{Name: newName}
	}

	entry := s.config.Categories[oldName]
	if color != "" {
		entry.Color = color
	}
	if icon != "" {
		entry.Icon = icon
	}

	if newName != oldName {
		delete(s.config.Categories, oldName)
		if limit, ok := s.config.CategoryBudgets[oldName]; ok {
			s.config.CategoryBudgets[newName] = limit
			delete(s.config.CategoryBudgets, oldName)
		}
	}
	s.config.Categories[newName] = entry
	return s.persist(ctx)
}

// DeleteCategory removes the catalog entry and its budget limit. Deleting
// an unknown name is a no-op. Transactions keep their stored category
// string; aggregation treats it as a valid key of its own.
func (s *Store) DeleteCategory(ctx context.Context, name string) error {
	if !s.HasCategory(name) {
		return nil
	}
	delete(s.config.Categories, name)
	delete(s.config.CategoryBudgets, name)
	return s.persist(ctx)
}

// MonthlyUsage returns spent as a percentage of the monthly budget total.
func (s *Store) MonthlyUsage(spent decimal.Decimal) decimal.Decimal {
	return UsagePercentage(spent, s.config.MonthlyBudget)
}

// CategoryUsage returns spent as a percentage of the category's limit,
// or zero when no limit is set.
func (s *Store) CategoryUsage(category string, spent decimal.Decimal) decimal.Decimal {
	limit, ok := s.config.CategoryBudgets[category]
	if !ok {
		return decimal.Zero
	}
	return UsagePercentage(spent, limit)
}

// UsagePercentage is spent / limit * 100, defined as zero when the limit is
// zero. Results above 100 are returned as-is; clamping is a display concern.
func UsagePercentage(spent, limit decimal.Decimal) decimal.Decimal {
	if limit.IsZero() {
		return decimal.Zero
	}
	return spent.Div(limit).Mul(oneHundred)
}

// IsWarning reports usage in [80, 100).
func IsWarning(percentage decimal.Decimal) bool {
	return percentage.GreaterThanOrEqual(WarningThreshold) &&
		percentage.LessThan(ExceededThreshold)
}

// IsExceeded reports usage >= 100.
func IsExceeded(percentage decimal.Decimal) bool {
	return percentage.GreaterThanOrEqual(ExceededThreshold)
}

func (s *Store) persist(ctx context.Context) error {
	raw, err := json.Marshal(s.config)
	if err != nil {
		return err
	}
	return s.backend.Save(ctx, storage.BudgetKey(s.userID), raw)
}
