package service_interfaces

import (
	"context"

	"github.com/api-sage/ledger-core/internal/domain"
)

type BusinessService interface {
	// Combine applies the batch in order and compensates every applied entry
	// when a later one fails, re-raising the original error.
	Combine(ctx context.Context, batch []domain.Transaction) error
}
