package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/api-sage/ledger-core/internal/domain"
)

type CombineRequest struct {
	Transactions []TransactionRequest `json:"transactions"`
}

func (r CombineRequest) Validate() error {
	if r.Transactions == nil {
		return errors.New("transactions is required")
	}

	var errs []string
	for i, tx := range r.Transactions {
		if err := tx.Validate(); err != nil {
			errs = append(errs, fmt.Sprintf("transactions[%d]: %s", i, err.Error()))
		}
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func (r CombineRequest) ToDomain() []domain.Transaction {
	batch := make([]domain.Transaction, 0, len(r.Transactions))
	for _, tx := range r.Transactions {
		batch = append(batch, tx.ToDomain())
	}
	return batch
}
