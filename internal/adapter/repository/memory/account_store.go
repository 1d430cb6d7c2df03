package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/api-sage/ledger-core/internal/domain"
	"github.com/shopspring/decimal"
)

type accountEntry struct {
	mu      sync.Mutex
	balance decimal.Decimal
	removed bool
}

// AccountStore is the in-memory balance map. The outer lock only guards the
// map structure (insert/remove/lookup); balance reads and writes take the
// per-entry mutex, so operations on distinct accounts never contend.
type AccountStore struct {
	mu       sync.RWMutex
	accounts map[string]*accountEntry
}

func NewAccountStore() *AccountStore {
	return &AccountStore{accounts: make(map[string]*accountEntry)}
}

func (s *AccountStore) Create(_ context.Context, accountNo string, initialBalance decimal.Decimal) error {
	if initialBalance.IsNegative() {
		return fmt.Errorf("%w: initial balance cannot be negative", domain.ErrInvalidArgument)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[accountNo]; ok {
		return fmt.Errorf("%w: %s", domain.ErrAccountAlreadyExists, accountNo)
	}
	s.accounts[accountNo] = &accountEntry{balance: initialBalance}

	return nil
}

func (s *AccountStore) Credit(_ context.Context, accountNo string, amount decimal.Decimal) (decimal.Decimal, error) {
	return s.compute(accountNo, func(balance decimal.Decimal) (decimal.Decimal, error) {
		return balance.Add(amount), nil
	})
}

func (s *AccountStore) Debit(_ context.Context, accountNo string, amount decimal.Decimal) (decimal.Decimal, error) {
	return s.compute(accountNo, func(balance decimal.Decimal) (decimal.Decimal, error) {
		if balance.LessThan(amount) {
			return balance, fmt.Errorf("%w: account %s requires %s, available %s",
				domain.ErrInsufficientBalance, accountNo, amount, balance)
		}
		return balance.Sub(amount), nil
	})
}

func (s *AccountStore) Balance(_ context.Context, accountNo string) (decimal.Decimal, error) {
	entry, err := s.entry(accountNo)
	if err != nil {
		return decimal.Zero, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.removed {
		return decimal.Zero, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, accountNo)
	}
	return entry.balance, nil
}

func (s *AccountStore) Delete(_ context.Context, accountNo string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.accounts[accountNo]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrAccountNotFound, accountNo)
	}

	// Mark the entry dead under its own lock so a caller that already
	// resolved the pointer observes the removal instead of mutating a
	// detached balance.
	entry.mu.Lock()
	entry.removed = true
	entry.mu.Unlock()

	delete(s.accounts, accountNo)

	return nil
}

// compute runs one atomic check-and-replace against a single account. The
// callback sees the committed balance and returns the replacement; an error
// aborts without mutation.
func (s *AccountStore) compute(accountNo string, apply func(decimal.Decimal) (decimal.Decimal, error)) (decimal.Decimal, error) {
	entry, err := s.entry(accountNo)
	if err != nil {
		return decimal.Zero, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.removed {
		return decimal.Zero, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, accountNo)
	}

	next, err := apply(entry.balance)
	if err != nil {
		return decimal.Zero, err
	}
	entry.balance = next

	return next, nil
}

func (s *AccountStore) entry(accountNo string) (*accountEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.accounts[accountNo]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, accountNo)
	}
	return entry, nil
}
