package service_interfaces

import (
	"context"

	"github.com/api-sage/ledger-core/internal/domain"
	"github.com/shopspring/decimal"
)

type AccountService interface {
	CreateAccount(ctx context.Context, accountNo string, initialBalance decimal.Decimal) (domain.Account, error)
	Credit(ctx context.Context, accountNo string, amount decimal.Decimal) (decimal.Decimal, error)
	Debit(ctx context.Context, accountNo string, amount decimal.Decimal) (decimal.Decimal, error)
	GetBalance(ctx context.Context, accountNo string) (decimal.Decimal, error)
	DeleteAccount(ctx context.Context, accountNo string) error

	// Apply posts the transaction's balance effect: OUT debits the account,
	// IN credits it.
	Apply(ctx context.Context, tx domain.Transaction) error
}
