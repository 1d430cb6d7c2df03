package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionDirection string

const (
	// DirectionIn increases the named account's balance (a credit).
	DirectionIn TransactionDirection = "IN"
	// DirectionOut decreases the named account's balance (a debit).
	DirectionOut TransactionDirection = "OUT"
)

func ParseDirection(raw string) (TransactionDirection, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "IN", "CREDIT":
		return DirectionIn, nil
	case "OUT", "DEBIT":
		return DirectionOut, nil
	}
	return "", fmt.Errorf("%w: unknown direction %q", ErrInvalidTransaction, raw)
}

// Opposite returns the reversing direction.
func (d TransactionDirection) Opposite() TransactionDirection {
	if d == DirectionIn {
		return DirectionOut
	}
	return DirectionIn
}

type TransactionStatus string

const (
	StatusRunning  TransactionStatus = "RUNNING"
	StatusSuccess  TransactionStatus = "SUCCESS"
	StatusFailed   TransactionStatus = "FAILED"
	StatusRefunded TransactionStatus = "REFUNDED"
)

func ParseStatus(raw string) (TransactionStatus, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "RUNNING":
		return StatusRunning, nil
	case "SUCCESS":
		return StatusSuccess, nil
	case "FAILED":
		return StatusFailed, nil
	case "REFUNDED":
		return StatusRefunded, nil
	}
	return "", fmt.Errorf("%w: unknown status %q", ErrInvalidArgument, raw)
}

func (s TransactionStatus) Terminal() bool {
	return s == StatusSuccess || s == StatusFailed || s == StatusRefunded
}

type Transaction struct {
	TransactionID string
	AccountNo     string
	Amount        decimal.Decimal
	Description   string
	Direction     TransactionDirection
	Status        TransactionStatus
	Timestamp     time.Time
}

// Validate checks the fields a transaction must carry before it can be
// stored: a target account, a strictly positive amount and a direction.
func (t Transaction) Validate() error {
	if strings.TrimSpace(t.AccountNo) == "" {
		return fmt.Errorf("%w: account number is required", ErrInvalidTransaction)
	}
	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: amount must be greater than zero", ErrInvalidTransaction)
	}
	if t.Direction != DirectionIn && t.Direction != DirectionOut {
		return fmt.Errorf("%w: direction is required", ErrInvalidTransaction)
	}
	return nil
}

// Revert builds the inverse transaction used by compensation: same account
// and amount, opposite direction, fresh identifier. The original record is
// left untouched so the audit trail keeps both sides.
func (t Transaction) Revert() Transaction {
	return Transaction{
		TransactionID: uuid.NewString(),
		AccountNo:     t.AccountNo,
		Amount:        t.Amount,
		Description:   "REVERT: " + t.Description,
		Direction:     t.Direction.Opposite(),
	}
}
