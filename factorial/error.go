package factorial

import "errors"

var (
	// ErrNegative factorial is undefined for negative numbers
	ErrNegative = errors.New("factorial of negative number")

	// ErrTooLarge the argument does not fit in an int64
	ErrTooLarge = errors.New("factorial argument too large")
)
