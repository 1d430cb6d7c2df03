package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/api-sage/ledger-core/internal/domain"
	"github.com/shopspring/decimal"
)

func TestAccountServiceCreateAccountValidation(t *testing.T) {
	stack := newLedgerStack()
	ctx := context.Background()

	if _, err := stack.accounts.CreateAccount(ctx, "  ", decimal.NewFromInt(10)); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for blank account number, got %v", err)
	}

	if _, err := stack.accounts.CreateAccount(ctx, "ACC001", decimal.NewFromInt(-1)); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for negative balance, got %v", err)
	}
}

func TestAccountServiceDuplicateAccount(t *testing.T) {
	stack := newLedgerStack()
	ctx := context.Background()
	stack.mustCreateAccount(t, "ACC001", "100.00")

	if _, err := stack.accounts.CreateAccount(ctx, "ACC001", decimal.Zero); !errors.Is(err, domain.ErrAccountAlreadyExists) {
		t.Fatalf("expected ErrAccountAlreadyExists, got %v", err)
	}
}

func TestAccountServiceRejectsNonPositiveAmounts(t *testing.T) {
	stack := newLedgerStack()
	ctx := context.Background()
	stack.mustCreateAccount(t, "ACC001", "100.00")

	if _, err := stack.accounts.Credit(ctx, "ACC001", decimal.Zero); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for zero credit, got %v", err)
	}
	if _, err := stack.accounts.Debit(ctx, "ACC001", decimal.NewFromInt(-5)); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for negative debit, got %v", err)
	}
}

func TestAccountServiceApplyDispatchesOnDirection(t *testing.T) {
	stack := newLedgerStack()
	ctx := context.Background()
	stack.mustCreateAccount(t, "ACC001", "100.00")

	out := domain.Transaction{AccountNo: "ACC001", Amount: decimal.NewFromInt(30), Direction: domain.DirectionOut}
	if err := stack.accounts.Apply(ctx, out); err != nil {
		t.Fatalf("apply debit: %v", err)
	}
	requireBalance(t, stack, "ACC001", "70.00")

	in := domain.Transaction{AccountNo: "ACC001", Amount: decimal.NewFromInt(5), Direction: domain.DirectionIn}
	if err := stack.accounts.Apply(ctx, in); err != nil {
		t.Fatalf("apply credit: %v", err)
	}
	requireBalance(t, stack, "ACC001", "75.00")
}

func TestAccountServiceDeleteAccount(t *testing.T) {
	stack := newLedgerStack()
	ctx := context.Background()
	stack.mustCreateAccount(t, "ACC001", "100.00")

	if err := stack.accounts.DeleteAccount(ctx, "ACC001"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := stack.accounts.GetBalance(ctx, "ACC001"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound after delete, got %v", err)
	}
}
