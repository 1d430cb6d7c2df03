package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionFilter narrows a transaction query. Nil fields (and an empty
// AccountNo) are wildcards; amount and timestamp bounds are inclusive.
type TransactionFilter struct {
	AccountNo string
	Direction *TransactionDirection
	Status    *TransactionStatus
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
	From      *time.Time
	To        *time.Time
}

// Matches reports whether the transaction satisfies every set field. A nil
// filter matches everything.
func (f *TransactionFilter) Matches(t Transaction) bool {
	if f == nil {
		return true
	}
	if f.AccountNo != "" && t.AccountNo != f.AccountNo {
		return false
	}
	if f.Direction != nil && t.Direction != *f.Direction {
		return false
	}
	if f.Status != nil && t.Status != *f.Status {
		return false
	}
	if f.MinAmount != nil && t.Amount.LessThan(*f.MinAmount) {
		return false
	}
	if f.MaxAmount != nil && t.Amount.GreaterThan(*f.MaxAmount) {
		return false
	}
	if f.From != nil && t.Timestamp.Before(*f.From) {
		return false
	}
	if f.To != nil && t.Timestamp.After(*f.To) {
		return false
	}
	return true
}
