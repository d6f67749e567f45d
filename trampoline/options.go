package trampoline

import (
	"context"
	"log/slog"
)

const defaultCheckEvery = 1024

type option struct {
	Context    context.Context
	CheckEvery int
	MaxSteps   int
	Logger     *slog.Logger
	Observer   Observer
}

func newOption(opts ...Option) *option {
	o := &option{}
	for _, opt := range opts {
		opt(o)
	}
	if o.Context == nil {
		o.Context = context.Background()
	}
	if o.CheckEvery <= 0 {
		o.CheckEvery = defaultCheckEvery
	}
	return o
}

func (o *option) observe(state State, bounces int) {
	if o.Observer != nil {
		o.Observer(state, bounces)
	}
}

type Option func(*option)

// Context stops the loop with ctx.Err() once ctx is done.
// The context is polled every CheckEvery bounces.
func Context(ctx context.Context) Option {
	return func(o *option) {
		o.Context = ctx
	}
}

// CheckEvery sets how many bounces pass between context polls.
func CheckEvery(n int) Option {
	return func(o *option) {
		o.CheckEvery = n
	}
}

// MaxSteps bounds the number of bounces, zero means unbounded.
func MaxSteps(n int) Option {
	return func(o *option) {
		o.MaxSteps = n
	}
}

// Logger receives a debug record when a top-level call finishes.
func Logger(logger *slog.Logger) Option {
	return func(o *option) {
		o.Logger = logger
	}
}

// WithObserver registers an Observer for state transitions.
func WithObserver(observer Observer) Option {
	return func(o *option) {
		o.Observer = observer
	}
}
