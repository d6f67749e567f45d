package demo

import "errors"

var (
	// ErrStackOverflow the child process died of a stack overflow
	ErrStackOverflow = errors.New("stack overflow")

	// ErrChildSpec the child variant spec is malformed
	ErrChildSpec = errors.New("malformed child spec")
)
