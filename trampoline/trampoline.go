package trampoline

// Trampoline pattern allows to define recursive algorithms by iterative loop.
//
// When get is called on the returned Trampoline, internally it will iterate calling ‘jump’
// on the returned Trampoline as long as the concrete instance returned is More,
// stopping once the returned instance is Done.
//
// Essential we convert looping via recursion into iteration,
// the key enabling mechanism is the fact that More is a lazy operation.
//
// T is type for returning result.
type Trampoline[T any] interface {
	// Get iterates until complete and returns the result.
	Get() T

	// Jump to next stage.
	Jump() Trampoline[T]

	// Result returns the value of a completed Trampoline, it panics if not complete.
	Result() T

	// Complete checks if complete.
	Complete() bool
}

// Done returns a completed Trampoline holding value.
func Done[T any](value T) Trampoline[T] {
	return done[T]{value: value}
}

// More returns a Trampoline whose next stage is produced lazily by next.
func More[T any](next func() Trampoline[T]) Trampoline[T] {
	if next == nil {
		panic(ErrThunkNil)
	}
	return more[T]{next: next}
}

type done[T any] struct {
	value T
}

func (d done[T]) Get() T {
	return d.value
}

func (d done[T]) Jump() Trampoline[T] {
	return d
}

func (d done[T]) Result() T {
	return d.value
}

func (d done[T]) Complete() bool {
	return true
}

type more[T any] struct {
	next func() Trampoline[T]
}

func (m more[T]) Get() T {
	var t Trampoline[T] = m
	for !t.Complete() {
		t = t.Jump()
	}
	return t.Result()
}

func (m more[T]) Jump() Trampoline[T] {
	return m.next()
}

func (m more[T]) Result() T {
	panic(ErrIncomplete)
}

func (m more[T]) Complete() bool {
	return false
}
