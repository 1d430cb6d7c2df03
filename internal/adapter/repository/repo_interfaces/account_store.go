package repo_interfaces

import (
	"context"

	"github.com/shopspring/decimal"
)

// AccountStore owns every balance mutation. Mutations against one account
// number are serialized; distinct accounts never block each other.
type AccountStore interface {
	Create(ctx context.Context, accountNo string, initialBalance decimal.Decimal) error
	Credit(ctx context.Context, accountNo string, amount decimal.Decimal) (decimal.Decimal, error)
	Debit(ctx context.Context, accountNo string, amount decimal.Decimal) (decimal.Decimal, error)
	Balance(ctx context.Context, accountNo string) (decimal.Decimal, error)
	Delete(ctx context.Context, accountNo string) error
}
