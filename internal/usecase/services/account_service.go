package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/api-sage/ledger-core/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/ledger-core/internal/domain"
	"github.com/api-sage/ledger-core/internal/logger"
	"github.com/shopspring/decimal"
)

// AccountService fronts the account store with input validation. Balance
// mutation itself happens inside the store's per-account critical section.
type AccountService struct {
	accountStore repo_interfaces.AccountStore
}

func NewAccountService(accountStore repo_interfaces.AccountStore) *AccountService {
	return &AccountService{accountStore: accountStore}
}

func (s *AccountService) CreateAccount(ctx context.Context, accountNo string, initialBalance decimal.Decimal) (domain.Account, error) {
	logger.Info("account service create account request", logger.Fields{
		"accountNo":      accountNo,
		"initialBalance": initialBalance.String(),
	})

	accountNo = strings.TrimSpace(accountNo)
	if accountNo == "" {
		return domain.Account{}, fmt.Errorf("%w: account number is required", domain.ErrInvalidArgument)
	}
	if initialBalance.IsNegative() {
		return domain.Account{}, fmt.Errorf("%w: initial balance cannot be negative", domain.ErrInvalidArgument)
	}

	if err := s.accountStore.Create(ctx, accountNo, initialBalance); err != nil {
		logger.Error("account service create account failed", err, logger.Fields{
			"accountNo": accountNo,
		})
		return domain.Account{}, err
	}

	now := time.Now()
	return domain.Account{
		AccountNo: accountNo,
		Balance:   initialBalance,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (s *AccountService) Credit(ctx context.Context, accountNo string, amount decimal.Decimal) (decimal.Decimal, error) {
	if err := validateAmount(amount); err != nil {
		return decimal.Zero, err
	}

	balance, err := s.accountStore.Credit(ctx, accountNo, amount)
	if err != nil {
		logger.Error("account service credit failed", err, logger.Fields{
			"accountNo": accountNo,
			"amount":    amount.String(),
		})
		return decimal.Zero, err
	}

	logger.Info("account service credited account", logger.Fields{
		"accountNo": accountNo,
		"amount":    amount.String(),
	})

	return balance, nil
}

func (s *AccountService) Debit(ctx context.Context, accountNo string, amount decimal.Decimal) (decimal.Decimal, error) {
	if err := validateAmount(amount); err != nil {
		return decimal.Zero, err
	}

	balance, err := s.accountStore.Debit(ctx, accountNo, amount)
	if err != nil {
		logger.Error("account service debit failed", err, logger.Fields{
			"accountNo": accountNo,
			"amount":    amount.String(),
		})
		return decimal.Zero, err
	}

	logger.Info("account service debited account", logger.Fields{
		"accountNo": accountNo,
		"amount":    amount.String(),
	})

	return balance, nil
}

func (s *AccountService) GetBalance(ctx context.Context, accountNo string) (decimal.Decimal, error) {
	return s.accountStore.Balance(ctx, accountNo)
}

func (s *AccountService) DeleteAccount(ctx context.Context, accountNo string) error {
	logger.Info("account service delete account request", logger.Fields{
		"accountNo": accountNo,
	})

	return s.accountStore.Delete(ctx, accountNo)
}

func (s *AccountService) Apply(ctx context.Context, tx domain.Transaction) error {
	var err error
	if tx.Direction == domain.DirectionOut {
		_, err = s.accountStore.Debit(ctx, tx.AccountNo, tx.Amount)
	} else {
		_, err = s.accountStore.Credit(ctx, tx.AccountNo, tx.Amount)
	}
	return err
}

func validateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: amount must be greater than zero", domain.ErrInvalidArgument)
	}
	return nil
}
