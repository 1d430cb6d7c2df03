package services_test

import (
	"context"
	"testing"

	"github.com/api-sage/ledger-core/internal/adapter/repository/memory"
	"github.com/api-sage/ledger-core/internal/domain"
	"github.com/api-sage/ledger-core/internal/usecase/service_interfaces"
	"github.com/api-sage/ledger-core/internal/usecase/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombineAppliesWholeBatch(t *testing.T) {
	stack := newLedgerStack()
	ctx := context.Background()
	stack.mustCreateAccount(t, "ACC001", "1000.00")
	stack.mustCreateAccount(t, "ACC002", "500.00")

	batch := []domain.Transaction{
		debitTransaction("ACC001", "200.00"),
		creditTransaction("ACC002", "200.00"),
	}
	batch[0].TransactionID = "tx-out"
	batch[1].TransactionID = "tx-in"

	require.NoError(t, stack.business.Combine(ctx, batch))

	requireBalance(t, stack, "ACC001", "800.00")
	requireBalance(t, stack, "ACC002", "700.00")

	for _, id := range []string{"tx-out", "tx-in"} {
		tx, err := stack.transactions.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusSuccess, tx.Status)
	}
}

func TestCombineCompensatesAppliedEntriesOnFailure(t *testing.T) {
	stack := newLedgerStack()
	ctx := context.Background()
	stack.mustCreateAccount(t, "ACC001", "1000.00")
	stack.mustCreateAccount(t, "ACC002", "500.00")

	batch := []domain.Transaction{
		debitTransaction("ACC001", "100.00"),
		debitTransaction("ACC002", "1000.00"),
	}
	batch[0].TransactionID = "tx-first"
	batch[1].TransactionID = "tx-overdraw"

	err := stack.business.Combine(ctx, batch)
	require.ErrorIs(t, err, domain.ErrInsufficientBalance)

	var compErr *domain.CompensationError
	assert.NotErrorAs(t, err, &compErr, "a clean compensation must re-raise the original error only")

	// Both accounts are back at their pre-batch balances.
	requireBalance(t, stack, "ACC001", "1000.00")
	requireBalance(t, stack, "ACC002", "500.00")

	original, err := stack.transactions.Get(ctx, "tx-first")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRefunded, original.Status)

	// The failing member leaves no record behind.
	_, err = stack.transactions.Get(ctx, "tx-overdraw")
	assert.ErrorIs(t, err, domain.ErrTransactionNotFound)

	// A SUCCESS inverse credit exists for the compensated member.
	in := domain.DirectionIn
	success := domain.StatusSuccess
	page, err := stack.transactions.Query(ctx, &domain.TransactionFilter{
		AccountNo: "ACC001",
		Direction: &in,
		Status:    &success,
	}, 0, 10)
	require.NoError(t, err)
	require.Len(t, page.Content, 1)

	revert := page.Content[0]
	assert.True(t, revert.Amount.Equal(original.Amount))
	assert.Equal(t, "REVERT: "+original.Description, revert.Description)
	assert.NotEqual(t, original.TransactionID, revert.TransactionID)
}

func TestCombineCompensatesInReverseOrder(t *testing.T) {
	stack := newLedgerStack()
	ctx := context.Background()
	stack.mustCreateAccount(t, "ACC001", "300.00")
	stack.mustCreateAccount(t, "ACC002", "300.00")
	stack.mustCreateAccount(t, "ACC003", "0.00")

	batch := []domain.Transaction{
		debitTransaction("ACC001", "100.00"),
		debitTransaction("ACC002", "100.00"),
		debitTransaction("ACC003", "100.00"),
	}

	err := stack.business.Combine(ctx, batch)
	require.ErrorIs(t, err, domain.ErrInsufficientBalance)

	requireBalance(t, stack, "ACC001", "300.00")
	requireBalance(t, stack, "ACC002", "300.00")
	requireBalance(t, stack, "ACC003", "0.00")

	// Reverts are posted most-recent-first: ACC002's inverse precedes
	// ACC001's in insertion order.
	in := domain.DirectionIn
	rows, err := stack.transactions.GetByAccount(ctx, "ACC002")
	require.NoError(t, err)
	var acc2Revert, acc1Revert domain.Transaction
	for _, tx := range rows {
		if tx.Direction == in {
			acc2Revert = tx
		}
	}
	rows, err = stack.transactions.GetByAccount(ctx, "ACC001")
	require.NoError(t, err)
	for _, tx := range rows {
		if tx.Direction == in {
			acc1Revert = tx
		}
	}
	require.NotEmpty(t, acc2Revert.TransactionID)
	require.NotEmpty(t, acc1Revert.TransactionID)
	assert.False(t, acc1Revert.Timestamp.Before(acc2Revert.Timestamp))
}

func TestCombineNilBatch(t *testing.T) {
	stack := newLedgerStack()

	err := stack.business.Combine(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestCombineEmptyBatchIsNoOp(t *testing.T) {
	stack := newLedgerStack()

	require.NoError(t, stack.business.Combine(context.Background(), []domain.Transaction{}))
}

func TestCombineStopsAtFirstMissingAccount(t *testing.T) {
	stack := newLedgerStack()
	ctx := context.Background()
	stack.mustCreateAccount(t, "ACC001", "100.00")

	batch := []domain.Transaction{
		debitTransaction("ACC001", "50.00"),
		debitTransaction("NO-SUCH-ACCOUNT", "10.00"),
	}

	err := stack.business.Combine(ctx, batch)
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
	requireBalance(t, stack, "ACC001", "100.00")
}

// flakyAccountService fails Apply for the configured directions, letting the
// test force a failure inside the compensation pass itself.
type flakyAccountService struct {
	service_interfaces.AccountService
	failDirections map[domain.TransactionDirection]error
}

func (f *flakyAccountService) Apply(ctx context.Context, tx domain.Transaction) error {
	if err, ok := f.failDirections[tx.Direction]; ok && err != nil {
		return err
	}
	return f.AccountService.Apply(ctx, tx)
}

func TestCombineSurfacesCompensationFailure(t *testing.T) {
	accountStore := memory.NewAccountStore()
	transactionStore := memory.NewTransactionStore()

	accounts := services.NewAccountService(accountStore)
	transactions := services.NewTransactionService(transactionStore, accounts)

	ctx := context.Background()
	require.NoError(t, accountStore.Create(ctx, "ACC001", decimal.RequireFromString("100.00")))

	// The first debit applies, the second fails, and every inverse credit is
	// rejected: the coordinator must report both the original and the
	// secondary failure.
	flaky := &flakyAccountService{
		AccountService: accounts,
		failDirections: map[domain.TransactionDirection]error{
			domain.DirectionIn: domain.ErrAccountNotFound,
		},
	}
	business := services.NewBusinessService(flaky, transactions)

	batch := []domain.Transaction{
		debitTransaction("ACC001", "50.00"),
		debitTransaction("ACC001", "500.00"),
	}

	err := business.Combine(ctx, batch)

	var compErr *domain.CompensationError
	require.ErrorAs(t, err, &compErr)
	assert.ErrorIs(t, compErr.Original, domain.ErrInsufficientBalance)
	assert.ErrorIs(t, compErr.Compensation, domain.ErrAccountNotFound)

	// The applied debit was not undone; the ledger is left partially compensated.
	balance, err := accountStore.Balance(ctx, "ACC001")
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.RequireFromString("50.00")))
}
