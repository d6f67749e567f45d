package trampoline

// Kind tells which variant a Bounce holds.
type Kind int

const (
	kindInvalid Kind = iota
	// KindFinal the computation produced its value.
	KindFinal
	// KindDeferred the computation asks for another step.
	KindDeferred
)

func (k Kind) String() string {
	switch k {
	case KindFinal:
		return "final"
	case KindDeferred:
		return "deferred"
	default:
		return "invalid"
	}
}

// Step is one step of a recursive computation over the state S.
// Instead of calling itself in tail position it returns a deferred Bounce.
type Step[S any, T any] func(state S) (Bounce[S, T], error)

// Bounce is the result of a Step: either a final value or a deferred call.
// The zero Bounce is neither and is rejected by Run.
type Bounce[S any, T any] struct {
	kind  Kind
	value T
	step  Step[S, T]
	state S
}

// Final returns a Bounce that ends the loop with value.
func Final[S any, T any](value T) Bounce[S, T] {
	return Bounce[S, T]{kind: KindFinal, value: value}
}

// Defer returns a Bounce that calls the current step again with state.
func Defer[S any, T any](state S) Bounce[S, T] {
	return Bounce[S, T]{kind: KindDeferred, state: state}
}

// DeferTo returns a Bounce that calls step with state.
// The step becomes the current step for later Defer bounces.
func DeferTo[S any, T any](step Step[S, T], state S) Bounce[S, T] {
	return Bounce[S, T]{kind: KindDeferred, step: step, state: state}
}

// Kind returns the variant of b.
func (b Bounce[S, T]) Kind() Kind {
	return b.kind
}

// Value returns the final value and whether b is final.
func (b Bounce[S, T]) Value() (T, bool) {
	return b.value, b.kind == KindFinal
}

// State returns the deferred state and whether b is deferred.
func (b Bounce[S, T]) State() (S, bool) {
	return b.state, b.kind == KindDeferred
}
