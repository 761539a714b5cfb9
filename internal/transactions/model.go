package transactions

import (
	"strings"
	"time"
)

// Type classifies a transaction. Transfers move money between a user's own
// accounts and are excluded from income/expense totals.
type Type string

const (
	TypeIncome   Type = "income"
	TypeExpense  Type = "expense"
	TypeTransfer Type = "transfer"
)

// ParseType normalizes a raw type string. Returns false for anything that is
// not income, expense or transfer.
func ParseType(s string) (Type, bool) {
	switch Type(strings.TrimSpace(strings.ToLower(s))) {
	case TypeIncome:
		return TypeIncome, true
	case TypeExpense:
		return TypeExpense, true
	case TypeTransfer:
		return TypeTransfer, true
	}
	return "", false
}

// Transaction is a persisted transaction record. Amounts are int64 minor
// units. The five account references are used only for display enrichment;
// aggregation ignores them.
type Transaction struct {
	ID            string    `db:"id" json:"id"`
	UserID        string    `db:"user_id" json:"user_id"`
	Type          Type      `db:"type" json:"type"`
	Amount        int64     `db:"amount" json:"amount"`
	Date          time.Time `db:"date" json:"date"`
	AccountID     *string   `db:"account_id" json:"account_id,omitempty"`
	SourceID      *string   `db:"source_id" json:"source_id,omitempty"`
	DestinationID *string   `db:"destination_id" json:"destination_id,omitempty"`
	FromAccountID *string   `db:"from_account_id" json:"from_account_id,omitempty"`
	ToAccountID   *string   `db:"to_account_id" json:"to_account_id,omitempty"`
	Note          *string   `db:"note" json:"note,omitempty"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// AccountRef is an account reference resolved to its display name.
type AccountRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// View is a transaction shaped for listing responses, with every account
// reference joined to its name.
type View struct {
	ID          string      `json:"id"`
	Type        Type        `json:"type"`
	Amount      int64       `json:"amount"`
	Date        string      `json:"date"` // YYYY-MM-DD
	Account     *AccountRef `json:"accountId,omitempty"`
	Source      *AccountRef `json:"sourceId,omitempty"`
	Destination *AccountRef `json:"destinationId,omitempty"`
	FromAccount *AccountRef `json:"fromAccountId,omitempty"`
	ToAccount   *AccountRef `json:"toAccountId,omitempty"`
	Note        string      `json:"note,omitempty"`
	CreatedAt   string      `json:"created_at"`
}

// ListFilter narrows a user's transaction listing. StartDate and EndDate are
// applied only when both are set, inclusive on both ends, unlike the
// half-open bound used by the month aggregators.
type ListFilter struct {
	AccountID string
	Type      Type
	StartDate *time.Time
	EndDate   *time.Time
}
