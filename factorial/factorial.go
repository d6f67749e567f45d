// Package factorial computes n! four ways: plain recursion, tail recursion,
// a thunk trampoline and a typed trampoline. Only the trampolines run in
// constant stack space, Go does not eliminate tail calls.
package factorial

import (
	"math"
	"math/big"

	"golang.org/x/exp/constraints"

	"github.com/go-leo/tailcall/trampoline"
)

// State is the fixed-shape argument of one factorial step.
type State struct {
	// N is the remaining count.
	N int64
	// Acc is the product so far, nil means 1.
	Acc *big.Int
}

// Step is one factorial step: it multiplies the accumulator by N and defers to N-1.
// A nil accumulator counts as 1.
func Step(s State) (trampoline.Bounce[State, *big.Int], error) {
	if s.Acc == nil {
		s.Acc = big.NewInt(1)
	}
	if s.N <= 1 {
		return trampoline.Final[State](s.Acc), nil
	}
	acc := new(big.Int).Mul(s.Acc, big.NewInt(s.N))
	return trampoline.Defer[State, *big.Int](State{N: s.N - 1, Acc: acc}), nil
}

// Fact is Step wrapped in a trampoline.
var Fact = trampoline.Wrap[State, *big.Int](Step)

// Trampolined returns n! evaluated by Fact.
func Trampolined(n int64, opts ...trampoline.Option) (*big.Int, error) {
	if n < 0 {
		return nil, ErrNegative
	}
	return Fact.Call(State{N: n, Acc: big.NewInt(1)}, opts...)
}

// Thunked returns n! evaluated by a thunk trampoline.
func Thunked(n int64) (*big.Int, error) {
	if n < 0 {
		return nil, ErrNegative
	}
	return thunk(n, big.NewInt(1)).Get(), nil
}

func thunk(n int64, acc *big.Int) trampoline.Trampoline[*big.Int] {
	if n <= 1 {
		return trampoline.Done(acc)
	}
	return trampoline.More(func() trampoline.Trampoline[*big.Int] {
		return thunk(n-1, new(big.Int).Mul(acc, big.NewInt(n)))
	})
}

// Naive returns n! by plain recursion. It needs one stack frame per unit of n.
func Naive(n int64) (*big.Int, error) {
	if n < 0 {
		return nil, ErrNegative
	}
	return naive(n), nil
}

func naive(n int64) *big.Int {
	if n <= 1 {
		return big.NewInt(1)
	}
	return new(big.Int).Mul(big.NewInt(n), naive(n-1))
}

// TailRecursive returns n! by tail recursion on an accumulator.
// The call is in tail position but the stack still grows with n.
func TailRecursive(n int64) (*big.Int, error) {
	if n < 0 {
		return nil, ErrNegative
	}
	return tailRecursive(n, big.NewInt(1)), nil
}

func tailRecursive(n int64, acc *big.Int) *big.Int {
	if n <= 1 {
		return acc
	}
	return tailRecursive(n-1, new(big.Int).Mul(acc, big.NewInt(n)))
}

// Of returns n! for any integer type, evaluated by Fact.
func Of[I constraints.Integer](n I) (*big.Int, error) {
	if n < 0 {
		return nil, ErrNegative
	}
	if uint64(n) > math.MaxInt64 {
		return nil, ErrTooLarge
	}
	return Trampolined(int64(n))
}
