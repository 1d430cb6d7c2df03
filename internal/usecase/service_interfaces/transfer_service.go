package service_interfaces

import (
	"context"

	"github.com/shopspring/decimal"
)

type TransferService interface {
	Transfer(ctx context.Context, fromAccount, toAccount string, amount decimal.Decimal, description string) error
}
