package trampoline

import "errors"

var (
	// ErrStepNil Step is nil
	ErrStepNil = errors.New("step is nil")

	// ErrThunkNil More was given a nil thunk
	ErrThunkNil = errors.New("thunk is nil")

	// ErrIncomplete Result called on a Trampoline that has not completed
	ErrIncomplete = errors.New("trampoline is not complete")

	// ErrInvalidBounce a Step returned the zero Bounce, which is neither final nor deferred
	ErrInvalidBounce = errors.New("invalid bounce")

	// ErrStepLimit the number of bounces exceeded MaxSteps
	ErrStepLimit = errors.New("step limit exceeded")
)
