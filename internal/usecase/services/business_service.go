package services

import (
	"context"
	"fmt"

	"github.com/api-sage/ledger-core/internal/domain"
	"github.com/api-sage/ledger-core/internal/logger"
	"github.com/api-sage/ledger-core/internal/usecase/service_interfaces"
)

// BusinessService is the compensation coordinator. Combine applies a batch
// eagerly (create record, post balance effect, mark SUCCESS) and, when a
// member fails, reverts every already-applied member with a new inverse
// transaction before re-raising the member's error. Compensation is
// best-effort software rollback, not an atomic one: a failure while
// reverting surfaces as a CompensationError and may leave the ledger
// partially compensated.
type BusinessService struct {
	accountService     service_interfaces.AccountService
	transactionService service_interfaces.TransactionService
}

func NewBusinessService(
	accountService service_interfaces.AccountService,
	transactionService service_interfaces.TransactionService,
) *BusinessService {
	return &BusinessService{
		accountService:     accountService,
		transactionService: transactionService,
	}
}

func (s *BusinessService) Combine(ctx context.Context, batch []domain.Transaction) error {
	if batch == nil {
		return fmt.Errorf("%w: batch cannot be nil", domain.ErrInvalidArgument)
	}
	if len(batch) == 0 {
		return nil
	}

	logger.Info("business service combine request", logger.Fields{
		"batchSize": len(batch),
	})

	applied := make([]domain.Transaction, 0, len(batch))

	for _, tx := range batch {
		created, err := s.transactionService.Create(ctx, tx)
		if err != nil {
			return s.compensate(ctx, applied, err)
		}

		if err := s.accountService.Apply(ctx, created); err != nil {
			// The failing member leaves no record behind; the caller only
			// observes its error.
			_ = s.transactionService.Delete(ctx, created.TransactionID)
			return s.compensate(ctx, applied, err)
		}

		succeeded, err := s.transactionService.MarkSucceeded(ctx, created.TransactionID)
		if err != nil {
			applied = append(applied, created)
			return s.compensate(ctx, applied, err)
		}

		applied = append(applied, succeeded)
	}

	logger.Info("business service combine applied", logger.Fields{
		"batchSize": len(batch),
	})

	return nil
}

// compensate reverts applied entries most-recent-first and returns cause,
// the error that stopped the batch. Each step posts an inverse transaction,
// marks it SUCCESS and stamps the original REFUNDED.
func (s *BusinessService) compensate(ctx context.Context, applied []domain.Transaction, cause error) error {
	logger.Error("business service combine failed, compensating applied entries", cause, logger.Fields{
		"appliedCount": len(applied),
	})

	for i := len(applied) - 1; i >= 0; i-- {
		original := applied[i]

		revert, err := s.transactionService.Create(ctx, original.Revert())
		if err != nil {
			return &domain.CompensationError{Original: cause, Compensation: err}
		}

		if err := s.accountService.Apply(ctx, revert); err != nil {
			return &domain.CompensationError{Original: cause, Compensation: err}
		}

		if _, err := s.transactionService.MarkSucceeded(ctx, revert.TransactionID); err != nil {
			return &domain.CompensationError{Original: cause, Compensation: err}
		}

		if _, err := s.transactionService.MarkRefunded(ctx, original.TransactionID); err != nil {
			return &domain.CompensationError{Original: cause, Compensation: err}
		}

		logger.Info("business service reverted transaction", logger.Fields{
			"originalTransactionId": original.TransactionID,
			"revertTransactionId":   revert.TransactionID,
			"accountNo":             original.AccountNo,
			"amount":                original.Amount.String(),
		})
	}

	return cause
}
