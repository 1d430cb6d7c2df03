package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/api-sage/ledger-core/internal/domain"
)

type transactionEntry struct {
	mu      sync.Mutex
	seq     uint64
	tx      domain.Transaction
	removed bool
}

// TransactionStore is the in-memory transaction log. Records are immutable
// except through Update, which holds the record's own mutex across the
// read-validate-write so concurrent status transitions on one identifier
// cannot interleave. Insertion order is tracked to break timestamp ties.
type TransactionStore struct {
	mu           sync.RWMutex
	transactions map[string]*transactionEntry
	nextSeq      uint64
}

func NewTransactionStore() *TransactionStore {
	return &TransactionStore{transactions: make(map[string]*transactionEntry)}
}

func (s *TransactionStore) Create(_ context.Context, tx domain.Transaction) (domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.transactions[tx.TransactionID]; ok {
		return domain.Transaction{}, fmt.Errorf("%w: %s", domain.ErrDuplicateTransaction, tx.TransactionID)
	}

	s.nextSeq++
	s.transactions[tx.TransactionID] = &transactionEntry{seq: s.nextSeq, tx: tx}

	return tx, nil
}

func (s *TransactionStore) Get(_ context.Context, id string) (domain.Transaction, error) {
	entry, err := s.entry(id)
	if err != nil {
		return domain.Transaction{}, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.removed {
		return domain.Transaction{}, fmt.Errorf("%w: %s", domain.ErrTransactionNotFound, id)
	}
	return entry.tx, nil
}

// List returns every matching record sorted by timestamp descending, with
// earlier insertions first among equal timestamps.
func (s *TransactionStore) List(_ context.Context, filter *domain.TransactionFilter) ([]domain.Transaction, error) {
	type row struct {
		seq uint64
		tx  domain.Transaction
	}

	s.mu.RLock()
	entries := make([]*transactionEntry, 0, len(s.transactions))
	for _, entry := range s.transactions {
		entries = append(entries, entry)
	}
	s.mu.RUnlock()

	rows := make([]row, 0, len(entries))
	for _, entry := range entries {
		entry.mu.Lock()
		r := row{seq: entry.seq, tx: entry.tx}
		removed := entry.removed
		entry.mu.Unlock()

		if removed || !filter.Matches(r.tx) {
			continue
		}
		rows = append(rows, r)
	}

	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].tx.Timestamp.Equal(rows[j].tx.Timestamp) {
			return rows[i].tx.Timestamp.After(rows[j].tx.Timestamp)
		}
		return rows[i].seq < rows[j].seq
	})

	out := make([]domain.Transaction, len(rows))
	for i, r := range rows {
		out[i] = r.tx
	}

	return out, nil
}

func (s *TransactionStore) Update(_ context.Context, id string, mutate func(domain.Transaction) (domain.Transaction, error)) (domain.Transaction, error) {
	entry, err := s.entry(id)
	if err != nil {
		return domain.Transaction{}, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.removed {
		return domain.Transaction{}, fmt.Errorf("%w: %s", domain.ErrTransactionNotFound, id)
	}

	next, err := mutate(entry.tx)
	if err != nil {
		return domain.Transaction{}, err
	}
	next.TransactionID = id
	entry.tx = next

	return next, nil
}

func (s *TransactionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.transactions[id]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrTransactionNotFound, id)
	}

	entry.mu.Lock()
	entry.removed = true
	entry.mu.Unlock()

	delete(s.transactions, id)

	return nil
}

func (s *TransactionStore) entry(id string) (*transactionEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.transactions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrTransactionNotFound, id)
	}
	return entry, nil
}
