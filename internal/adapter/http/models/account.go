package models

import (
	"errors"
	"strings"
	"time"

	"github.com/api-sage/ledger-core/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateAccountRequest struct {
	AccountNo      string `json:"accountNo"`
	InitialBalance string `json:"initialBalance"`
}

func (r CreateAccountRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.AccountNo) == "" {
		errs = append(errs, "accountNo is required")
	}

	balance := strings.TrimSpace(r.InitialBalance)
	if balance == "" {
		errs = append(errs, "initialBalance is required")
	} else {
		parsed, err := decimal.NewFromString(balance)
		if err != nil {
			errs = append(errs, "initialBalance must be numeric")
		} else if parsed.IsNegative() {
			errs = append(errs, "initialBalance cannot be negative")
		}
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func (r CreateAccountRequest) Balance() decimal.Decimal {
	parsed, _ := decimal.NewFromString(strings.TrimSpace(r.InitialBalance))
	return parsed
}

type AccountResponse struct {
	AccountNo string `json:"accountNo"`
	Balance   string `json:"balance"`
	CreatedAt string `json:"createdAt,omitempty"`
}

func AccountResponseFromDomain(account domain.Account) AccountResponse {
	return AccountResponse{
		AccountNo: account.AccountNo,
		Balance:   account.Balance.String(),
		CreatedAt: account.CreatedAt.Format(time.RFC3339),
	}
}

type BalanceResponse struct {
	AccountNo string `json:"accountNo"`
	Balance   string `json:"balance"`
}
