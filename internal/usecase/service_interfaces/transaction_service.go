package service_interfaces

import (
	"context"

	"github.com/api-sage/ledger-core/internal/domain"
)

type TransactionService interface {
	Create(ctx context.Context, tx domain.Transaction) (domain.Transaction, error)
	Get(ctx context.Context, id string) (domain.Transaction, error)
	GetByAccount(ctx context.Context, accountNo string) ([]domain.Transaction, error)
	Query(ctx context.Context, filter *domain.TransactionFilter, page, size int) (domain.PageResponse[domain.Transaction], error)

	// UpdateStatus drives the RUNNING-gated state machine; a transition to
	// SUCCESS posts the balance effect inside the same critical section.
	UpdateStatus(ctx context.Context, id string, status domain.TransactionStatus) (domain.Transaction, error)

	Update(ctx context.Context, id string, tx domain.Transaction) (domain.Transaction, error)
	Delete(ctx context.Context, id string) error

	// MarkSucceeded and MarkRefunded are the coordinator-only transitions.
	// They write the status directly without posting any balance effect:
	// MarkSucceeded requires the record to be RUNNING, MarkRefunded requires
	// SUCCESS. Neither is reachable through the HTTP surface.
	MarkSucceeded(ctx context.Context, id string) (domain.Transaction, error)
	MarkRefunded(ctx context.Context, id string) (domain.Transaction, error)
}
