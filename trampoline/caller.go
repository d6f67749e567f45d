package trampoline

// Caller wraps a base Step so that calling it runs the whole computation through Run.
//
// The base step is reachable through Base, so steps defer to it directly and the
// wrapper never re-enters itself.
type Caller[S any, T any] struct {
	step Step[S, T]
	opts []Option
}

// Wrap returns a Caller for step. opts apply to every call.
func Wrap[S any, T any](step Step[S, T], opts ...Option) *Caller[S, T] {
	return &Caller[S, T]{step: step, opts: opts}
}

// Call evaluates the base step with state and then bounces until a final value.
// opts are applied after the ones given to Wrap.
func (c *Caller[S, T]) Call(state S, opts ...Option) (T, error) {
	if len(opts) == 0 {
		return Run(c.step, state, c.opts...)
	}
	all := make([]Option, 0, len(c.opts)+len(opts))
	all = append(all, c.opts...)
	all = append(all, opts...)
	return Run(c.step, state, all...)
}

// Base returns the unwrapped step.
func (c *Caller[S, T]) Base() Step[S, T] {
	return c.step
}

// Func returns Call as a plain function value.
func (c *Caller[S, T]) Func() func(state S) (T, error) {
	return func(state S) (T, error) {
		return c.Call(state)
	}
}
