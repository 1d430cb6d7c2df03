package domain

import (
	"errors"
	"fmt"
)

var ErrAccountNotFound = errors.New("account not found")
var ErrAccountAlreadyExists = errors.New("account already exists")
var ErrInsufficientBalance = errors.New("insufficient balance")

var ErrTransactionNotFound = errors.New("transaction not found")
var ErrInvalidTransaction = errors.New("invalid transaction")
var ErrDuplicateTransaction = errors.New("duplicate transaction")
var ErrInvalidTransactionState = errors.New("invalid transaction state")

var ErrInvalidArgument = errors.New("invalid argument")

// CompensationError reports a failure that happened while reverting an
// already-applied batch. Original is the error that triggered compensation;
// Compensation is the secondary failure. The stores may be left partially
// compensated when this is returned.
type CompensationError struct {
	Original     error
	Compensation error
}

func (e *CompensationError) Error() string {
	return fmt.Sprintf("compensation failed: %v (original failure: %v)", e.Compensation, e.Original)
}

func (e *CompensationError) Unwrap() []error {
	return []error{e.Original, e.Compensation}
}
