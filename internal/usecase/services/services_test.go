package services_test

import (
	"context"
	"testing"

	"github.com/api-sage/ledger-core/internal/adapter/repository/memory"
	"github.com/api-sage/ledger-core/internal/usecase/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type ledgerStack struct {
	accounts     *services.AccountService
	transactions *services.TransactionService
	business     *services.BusinessService
	transfers    *services.TransferService
}

func newLedgerStack() *ledgerStack {
	accountStore := memory.NewAccountStore()
	transactionStore := memory.NewTransactionStore()

	accounts := services.NewAccountService(accountStore)
	transactions := services.NewTransactionService(transactionStore, accounts)

	return &ledgerStack{
		accounts:     accounts,
		transactions: transactions,
		business:     services.NewBusinessService(accounts, transactions),
		transfers:    services.NewTransferService(accounts, transactions),
	}
}

func (s *ledgerStack) mustCreateAccount(t *testing.T, accountNo, balance string) {
	t.Helper()
	_, err := s.accounts.CreateAccount(context.Background(), accountNo, decimal.RequireFromString(balance))
	require.NoError(t, err)
}

func (s *ledgerStack) balance(t *testing.T, accountNo string) decimal.Decimal {
	t.Helper()
	balance, err := s.accounts.GetBalance(context.Background(), accountNo)
	require.NoError(t, err)
	return balance
}

func requireBalance(t *testing.T, s *ledgerStack, accountNo, want string) {
	t.Helper()
	got := s.balance(t, accountNo)
	require.True(t, got.Equal(decimal.RequireFromString(want)),
		"account %s: expected balance %s, got %s", accountNo, want, got)
}
