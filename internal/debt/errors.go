package debt

import "errors"

var (
	ErrNotFound   = errors.New("debt not found")
	ErrValidation = errors.New("invalid debt")
)
