package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Account struct {
	AccountNo string
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
