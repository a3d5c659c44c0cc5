// Package ledger owns the per-user transaction collection. Every mutation
// persists the full updated collection through the storage collaborator
// before returning, keyed by the owning user.
package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/core"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// Store is one user's ledger. It is not safe for concurrent use on its own;
// mutations are serialized by the operator queue.
type Store struct {
	userID  string
	backend storage.Store
	records []core.Transaction
}

// Filter narrows List results. Nil fields match everything.
type Filter struct {
	Type     *core.TransactionType
	Category *string
	From     *core.Date
	To       *core.Date
}

// Open loads the user's ledger snapshot. A missing document is an empty
// ledger, not an error.
func Open(ctx context.Context, backend storage.Store, userID string) (*Store, error) {
	s := &Store{userID: userID, backend: backend}

	raw, err := backend.Load(ctx, storage.TransactionsKey(userID))
	if errors.Is(err, storage.ErrNotFound) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &s.records); err != nil {
		return nil, err
	}
	return s, nil
}

// Add validates the input, assigns id and createdAt, defaults the date to
// today when absent, and persists the updated collection.
func (s *Store) Add(ctx context.Context, input core.TransactionInput) (core.Transaction, error) {
	if err := input.Validate(); err != nil {
		return core.Transaction{}, err
	}

	date := input.Date
	if date.IsZero() {
		date = core.Today()
	}

	record := core.Transaction{
		ID:        uuid.Must(uuid.NewV4()),
		Amount:    input.Amount,
		Type:      input.Type,
		Category:  input.Category,
		Date:      date,
		Note:      input.Note,
		CreatedAt: time.Now().UTC(),
	}

	s.records = append(s.records, record)
	if err := s.persist(ctx); err != nil {
		return core.Transaction{}, err
	}
	return record, nil
}

// Update merges the populated fields into the existing record. ID and
// CreatedAt are preserved. Unknown ids fail with NotFoundError.
func (s *Store) Update(ctx context.Context, id uuid.UUID, update core.TransactionUpdate) error {
	if err := update.Validate(); err != nil {
		return err
	}

	for i := range s.records {
		if s.records[i].ID != id {
			continue
		}
		record := &s.records[i]
		if update.Amount != nil {
			record.Amount = *update.Amount
		}
		if update.Type != nil {
			record.Type = *update.Type
		}
		if update.Category != nil {
			record.Category = *update.Category
		}
		if update.Date != nil {
			record.Date = *update.Date
		}
		if update.Note != nil {
			record.Note = *update.Note
		}
		return s.persist(ctx)
	}
	return &core.NotFoundError{Kind: "transaction", Key: id.String()}
}

// Remove deletes the record with the given id. Removal is idempotent:
// an unknown id is treated as success and nothing is persisted.
func (s *Store) Remove(ctx context.Context, id uuid.UUID) error {
	for i := range s.records {
		if s.records[i].ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return s.persist(ctx)
		}
	}
	return nil
}

// RenameCategoryEverywhere rewrites the category field on every matching
// record and returns the number affected. The rewrite and its persistence
// are a single step, so readers never observe a partial rename.
func (s *Store) RenameCategoryEverywhere(ctx context.Context, oldKey, newKey string) (int, error) {
	count := 0
	for i := range s.records {
		if s.records[i].Category == oldKey {
			s.records[i].Category = newKey
			count++
		}
	}
	if count == 0 {
		return 0, nil
	}
	return count, s.persist(ctx)
}

// List returns the records matching the filter in insertion order.
// A nil filter returns everything.
func (s *Store) List(filter *Filter) []core.Transaction {
	result := make([]core.Transaction, 0, len(s.records))
	for _, record := range s.records {
		if filter != nil {
			if filter.Type != nil && record.Type != *filter.Type {
				continue
			}
			if filter.Category != nil && record.Category != *filter.Category {
				continue
			}
			if filter.From != nil && record.Date.Before(filter.From.Time) {
				continue
			}
			if filter.To != nil && record.Date.After(filter.To.Time) {
				continue
			}
		}
		result = append(result, record)
	}
	return result
}

// Snapshot returns a copy of the full collection in insertion order.
func (s *Store) Snapshot() []core.Transaction {
	result := make([]core.Transaction, len(s.records))
	copy(result, s.records)
	return result
}

func (s *Store) persist(ctx context.Context) error {
	records := s.records
	if records == nil {
		records = []core.Transaction{}
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return s.backend.Save(ctx, storage.TransactionsKey(s.userID), raw)
}
