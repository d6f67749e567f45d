package trampoline

import (
	"fmt"
	"log/slog"
)

// Run evaluates step with state and keeps invoking deferred calls until a final value
// is produced. The stack depth stays constant however many bounces the computation takes.
//
// Errors returned by a step are returned unchanged.
func Run[S any, T any](step Step[S, T], state S, opts ...Option) (T, error) {
	o := newOption(opts...)
	value, bounces, err := run(step, state, o)
	if o.Logger != nil {
		if err != nil {
			o.Logger.Debug("trampoline failed", slog.Int("bounces", bounces), slog.Any("error", err))
		} else {
			o.Logger.Debug("trampoline done", slog.Int("bounces", bounces))
		}
	}
	return value, err
}

func run[S any, T any](step Step[S, T], state S, o *option) (T, int, error) {
	var zero T
	if step == nil {
		return zero, 0, ErrStepNil
	}
	current := step
	bounces := 0
	o.observe(StateRunning, bounces)
	b, err := current(state)
	for {
		if err != nil {
			return zero, bounces, err
		}
		switch b.kind {
		case KindFinal:
			o.observe(StateDone, bounces)
			return b.value, bounces, nil
		case KindDeferred:
			bounces++
			o.observe(StateDeferred, bounces)
			if o.MaxSteps > 0 && bounces > o.MaxSteps {
				return zero, bounces, fmt.Errorf("%w: %d", ErrStepLimit, o.MaxSteps)
			}
			if bounces%o.CheckEvery == 0 {
				if err := o.Context.Err(); err != nil {
					return zero, bounces, err
				}
			}
			if b.step != nil {
				current = b.step
			}
			o.observe(StateRunning, bounces)
			b, err = current(b.state)
		default:
			return zero, bounces, ErrInvalidBounce
		}
	}
}
