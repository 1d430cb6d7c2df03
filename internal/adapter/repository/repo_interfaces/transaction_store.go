package repo_interfaces

import (
	"context"

	"github.com/api-sage/ledger-core/internal/domain"
)

// TransactionStore holds transaction records keyed by identifier. Update runs
// its mutate callback inside the per-identifier critical section: the read,
// the callback and the write are one indivisible step, and a callback error
// leaves the stored record untouched.
type TransactionStore interface {
	Create(ctx context.Context, tx domain.Transaction) (domain.Transaction, error)
	Get(ctx context.Context, id string) (domain.Transaction, error)
	List(ctx context.Context, filter *domain.TransactionFilter) ([]domain.Transaction, error)
	Update(ctx context.Context, id string, mutate func(domain.Transaction) (domain.Transaction, error)) (domain.Transaction, error)
	Delete(ctx context.Context, id string) error
}
