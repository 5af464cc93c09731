package fund

import "errors"

var (
	ErrNotFound   = errors.New("fund not found")
	ErrValidation = errors.New("invalid fund")

	// ErrInconsistentHistory flags a fund whose stored balance no longer
	// matches its movement history.
	ErrInconsistentHistory = errors.New("fund history inconsistent")
)
