package transaction

import (
	"time"

	"github.com/carson-networks/finance-tracker/internal/core"
)

// Transaction is the API response model for a ledger record.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID        string `json:"id" doc:"Transaction UUID"`
	Amount    string `json:"amount" doc:"Decimal amount, always a positive magnitude"`
	Type      string `json:"type" doc:"Either income or expense"`
	Category  string `json:"category" doc:"Category name"`
	Date      string `json:"date" doc:"Transaction date, YYYY-MM-DD"`
	Note      string `json:"note,omitempty" doc:"Free-form note"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
}

func toAPI(record core.Transaction) Transaction {
	return Transaction{
		ID:        record.ID.String(),
		Amount:    record.Amount.String(),
		Type:      string(record.Type),
		Category:  record.Category,
		Date:      record.Date.String(),
		Note:      record.Note,
		CreatedAt: record.CreatedAt.Format(time.RFC3339),
	}
}
