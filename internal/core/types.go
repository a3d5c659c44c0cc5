package core

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// TransactionType is the direction of a cash-flow event. Sign is always
// carried by the type; stored amounts are positive magnitudes.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Date is a calendar date with day granularity. It marshals as YYYY-MM-DD.
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

// NewDate creates a Date from year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current date in UTC.
func Today() Date {
	now := time.Now().UTC()
	return NewDate(now.Year(), now.Month(), now.Day())
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, &ValidationError{Reason: "invalid date: " + s}
	}
	return Date{Time: t}, nil
}

// InMonth reports whether the date falls within the given calendar month.
// Months are 1-indexed via time.Month.
func (d Date) InMonth(month time.Month, year int) bool {
	return d.Time.Month() == month && d.Time.Year() == year
}

func (d Date) String() string {
	return d.Time.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Time.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return &ValidationError{Reason: "invalid date: " + s}
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Transaction is one recorded cash-flow event. ID and CreatedAt are assigned
// at creation and never change for the lifetime of the record.
type Transaction struct {
	ID        uuid.UUID       `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Type      TransactionType `json:"type"`
	Category  string          `json:"category"`
	Date      Date            `json:"date"`
	Note      string          `json:"note,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

// TransactionInput is the caller-supplied part of a new transaction.
// A zero Date defaults to today at add time.
type TransactionInput struct {
	Amount   decimal.Decimal
	Type     TransactionType
	Category string
	Date     Date
	Note     string
}

// Validate checks the input against the ledger contract: amounts must be
// strictly positive and the type must be known.
func (in TransactionInput) Validate() error {
	if in.Amount.Sign() <= 0 {
		return &ValidationError{Reason: "amount must be positive"}
	}
	if !in.Type.Valid() {
		return &ValidationError{Reason: "unknown transaction type: " + string(in.Type)}
	}
	return nil
}

// TransactionUpdate carries the fields to merge into an existing record.
// Nil fields are left untouched; ID and CreatedAt are never replaceable.
type TransactionUpdate struct {
	Amount   *decimal.Decimal
	Type     *TransactionType
	Category *string
	Date     *Date
	Note     *string
}

// Validate checks the populated fields of the update.
func (u TransactionUpdate) Validate() error {
	if u.Amount != nil && u.Amount.Sign() <= 0 {
		return &ValidationError{Reason: "amount must be positive"}
	}
	if u.Type != nil && !u.Type.Valid() {
		return &ValidationError{Reason: "unknown transaction type: " + string(*u.Type)}
	}
	return nil
}
