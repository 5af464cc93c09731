package reconcile

import "errors"

var (
	ErrValidation = errors.New("invalid operation")

	// ErrInsufficientBalance rejects withdrawals beyond a fund's balance and
	// repayments beyond a debt's outstanding amount.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInconsistentState means a dual-entry write was only partially
	// applied and could not be rolled back cleanly. It should never happen;
	// when it does the stores need manual inspection.
	ErrInconsistentState = errors.New("stores are in an inconsistent state")
)
