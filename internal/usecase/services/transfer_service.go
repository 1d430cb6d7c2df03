package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/api-sage/ledger-core/internal/domain"
	"github.com/api-sage/ledger-core/internal/logger"
	"github.com/api-sage/ledger-core/internal/usecase/service_interfaces"
	"github.com/shopspring/decimal"
)

// TransferService moves an amount between two accounts: debit the source,
// credit the destination, record an OUT leg and an IN leg. If anything after
// the debit fails the debit is credited back; a failure of that rollback is
// surfaced distinctly because the accounts are then inconsistent.
type TransferService struct {
	accountService     service_interfaces.AccountService
	transactionService service_interfaces.TransactionService
}

func NewTransferService(
	accountService service_interfaces.AccountService,
	transactionService service_interfaces.TransactionService,
) *TransferService {
	return &TransferService{
		accountService:     accountService,
		transactionService: transactionService,
	}
}

func (s *TransferService) Transfer(ctx context.Context, fromAccount, toAccount string, amount decimal.Decimal, description string) error {
	logger.Info("transfer service transfer request", logger.Fields{
		"fromAccount": fromAccount,
		"toAccount":   toAccount,
		"amount":      amount.String(),
	})

	fromAccount = strings.TrimSpace(fromAccount)
	toAccount = strings.TrimSpace(toAccount)

	if fromAccount == "" || toAccount == "" {
		return fmt.Errorf("%w: source and destination accounts are required", domain.ErrInvalidArgument)
	}
	if fromAccount == toAccount {
		return fmt.Errorf("%w: source and destination accounts cannot be the same", domain.ErrInvalidArgument)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: amount must be greater than zero", domain.ErrInvalidArgument)
	}

	if _, err := s.accountService.Debit(ctx, fromAccount, amount); err != nil {
		return err
	}

	if err := s.completeTransfer(ctx, fromAccount, toAccount, amount, description); err != nil {
		if _, rollbackErr := s.accountService.Credit(ctx, fromAccount, amount); rollbackErr != nil {
			logger.Error("transfer service rollback failed, accounts may be inconsistent", rollbackErr, logger.Fields{
				"fromAccount": fromAccount,
				"toAccount":   toAccount,
			})
			return &domain.CompensationError{Original: err, Compensation: rollbackErr}
		}
		return err
	}

	return nil
}

func (s *TransferService) completeTransfer(ctx context.Context, fromAccount, toAccount string, amount decimal.Decimal, description string) error {
	if _, err := s.accountService.Credit(ctx, toAccount, amount); err != nil {
		return err
	}

	outLeg := domain.Transaction{
		AccountNo:   fromAccount,
		Amount:      amount,
		Description: description + " - Transfer to " + toAccount,
		Direction:   domain.DirectionOut,
	}
	inLeg := domain.Transaction{
		AccountNo:   toAccount,
		Amount:      amount,
		Description: description + " - Transfer from " + fromAccount,
		Direction:   domain.DirectionIn,
	}

	// Balances were already posted above, so both legs are recorded through
	// the marker path rather than the balance-posting transition.
	for _, leg := range []domain.Transaction{outLeg, inLeg} {
		created, err := s.transactionService.Create(ctx, leg)
		if err != nil {
			return err
		}
		if _, err := s.transactionService.MarkSucceeded(ctx, created.TransactionID); err != nil {
			return err
		}
	}

	return nil
}
