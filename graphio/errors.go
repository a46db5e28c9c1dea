package graphio

import "errors"

var (
	// ErrMalformedHeader indicates a missing or non-integer node count.
	ErrMalformedHeader = errors.New("graphio: malformed header")

	// ErrMalformedEdge indicates an edge line that is not two integers.
	ErrMalformedEdge = errors.New("graphio: malformed edge")
)
