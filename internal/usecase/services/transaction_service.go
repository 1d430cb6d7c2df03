package services

import (
	"context"
	"fmt"
	"time"

	"github.com/api-sage/ledger-core/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/ledger-core/internal/domain"
	"github.com/api-sage/ledger-core/internal/logger"
	"github.com/api-sage/ledger-core/internal/usecase/service_interfaces"
	"github.com/google/uuid"
)

// TransactionService owns the transaction log and the status state machine.
// A record is created RUNNING and moves exactly once to SUCCESS or FAILED
// through UpdateStatus; SUCCESS posts the balance effect inside the record's
// critical section so a competing transition on the same identifier can
// neither double-post nor observe a half-applied record.
type TransactionService struct {
	transactionStore repo_interfaces.TransactionStore
	accountService   service_interfaces.AccountService
}

func NewTransactionService(
	transactionStore repo_interfaces.TransactionStore,
	accountService service_interfaces.AccountService,
) *TransactionService {
	return &TransactionService{
		transactionStore: transactionStore,
		accountService:   accountService,
	}
}

func (s *TransactionService) Create(ctx context.Context, tx domain.Transaction) (domain.Transaction, error) {
	if err := tx.Validate(); err != nil {
		logger.Error("transaction service create validation failed", err, nil)
		return domain.Transaction{}, err
	}

	if tx.TransactionID == "" {
		tx.TransactionID = uuid.NewString()
	}
	tx.Status = domain.StatusRunning
	if tx.Timestamp.IsZero() {
		tx.Timestamp = time.Now()
	}

	logger.Info("transaction service creating transaction", logger.Fields{
		"transactionId": tx.TransactionID,
		"accountNo":     tx.AccountNo,
		"direction":     string(tx.Direction),
		"amount":        tx.Amount.String(),
	})

	return s.transactionStore.Create(ctx, tx)
}

func (s *TransactionService) Get(ctx context.Context, id string) (domain.Transaction, error) {
	return s.transactionStore.Get(ctx, id)
}

func (s *TransactionService) GetByAccount(ctx context.Context, accountNo string) ([]domain.Transaction, error) {
	return s.transactionStore.List(ctx, &domain.TransactionFilter{AccountNo: accountNo})
}

func (s *TransactionService) Query(ctx context.Context, filter *domain.TransactionFilter, page, size int) (domain.PageResponse[domain.Transaction], error) {
	if size < 1 {
		return domain.PageResponse[domain.Transaction]{}, fmt.Errorf("%w: page size must be at least 1", domain.ErrInvalidArgument)
	}

	matches, err := s.transactionStore.List(ctx, filter)
	if err != nil {
		return domain.PageResponse[domain.Transaction]{}, err
	}

	return domain.Paginate(matches, page, size), nil
}

func (s *TransactionService) UpdateStatus(ctx context.Context, id string, status domain.TransactionStatus) (domain.Transaction, error) {
	logger.Info("transaction service update status request", logger.Fields{
		"transactionId": id,
		"status":        string(status),
	})

	return s.transactionStore.Update(ctx, id, func(current domain.Transaction) (domain.Transaction, error) {
		if current.Status != domain.StatusRunning {
			return domain.Transaction{}, fmt.Errorf(
				"%w: cannot update transaction status from %s to %s, only RUNNING transactions can be updated",
				domain.ErrInvalidTransactionState, current.Status, status)
		}
		if status == domain.StatusRunning {
			return domain.Transaction{}, fmt.Errorf("%w: cannot set status to RUNNING", domain.ErrInvalidArgument)
		}
		if status != domain.StatusSuccess && status != domain.StatusFailed {
			return domain.Transaction{}, fmt.Errorf(
				"%w: %s is not reachable from RUNNING", domain.ErrInvalidTransactionState, status)
		}

		if status == domain.StatusSuccess {
			// The balance posting and the status write commit together: if
			// the account rejects the effect the record stays RUNNING.
			if err := s.accountService.Apply(ctx, current); err != nil {
				return domain.Transaction{}, err
			}
		}

		current.Status = status
		return current, nil
	})
}

func (s *TransactionService) Update(ctx context.Context, id string, tx domain.Transaction) (domain.Transaction, error) {
	if err := tx.Validate(); err != nil {
		return domain.Transaction{}, err
	}

	logger.Info("transaction service update request", logger.Fields{
		"transactionId": id,
	})

	return s.transactionStore.Update(ctx, id, func(current domain.Transaction) (domain.Transaction, error) {
		if current.Status != domain.StatusRunning {
			return domain.Transaction{}, fmt.Errorf(
				"%w: only RUNNING transactions can be replaced", domain.ErrInvalidTransactionState)
		}

		tx.TransactionID = id
		tx.Status = current.Status
		if tx.Timestamp.IsZero() {
			tx.Timestamp = current.Timestamp
		}
		return tx, nil
	})
}

func (s *TransactionService) Delete(ctx context.Context, id string) error {
	logger.Info("transaction service delete request", logger.Fields{
		"transactionId": id,
	})

	return s.transactionStore.Delete(ctx, id)
}

// MarkSucceeded records SUCCESS on a RUNNING transaction without posting any
// balance effect. It exists for the combine path, which applies effects
// eagerly and must not post twice.
func (s *TransactionService) MarkSucceeded(ctx context.Context, id string) (domain.Transaction, error) {
	return s.transactionStore.Update(ctx, id, func(current domain.Transaction) (domain.Transaction, error) {
		if current.Status != domain.StatusRunning {
			return domain.Transaction{}, fmt.Errorf(
				"%w: cannot mark %s transaction succeeded", domain.ErrInvalidTransactionState, current.Status)
		}
		current.Status = domain.StatusSuccess
		return current, nil
	})
}

// MarkRefunded is the narrow SUCCESS-to-REFUNDED transition reserved for the
// compensation path. The reversal itself is a separate inverse transaction;
// this only stamps the original.
func (s *TransactionService) MarkRefunded(ctx context.Context, id string) (domain.Transaction, error) {
	return s.transactionStore.Update(ctx, id, func(current domain.Transaction) (domain.Transaction, error) {
		if current.Status != domain.StatusSuccess {
			return domain.Transaction{}, fmt.Errorf(
				"%w: cannot refund %s transaction", domain.ErrInvalidTransactionState, current.Status)
		}
		current.Status = domain.StatusRefunded
		return current, nil
	})
}
