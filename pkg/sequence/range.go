package sequence

import (
	"golang.org/x/exp/constraints"

	"github.com/dmitrymomot/typekit/pkg/variant"
)

// Range is a bounded integer sequence over [start, end).
type Range[T constraints.Integer] struct {
	current T
	end     T
}

// NewRange returns a range starting at start (inclusive) and ending at end (exclusive).
// A range with end <= start is empty.
func NewRange[T constraints.Integer](start, end T) *Range[T] {
	return &Range[T]{current: start, end: end}
}

// Advance returns the current value and steps the cursor by one.
func (r *Range[T]) Advance() variant.Maybe[T] {
	if r.current >= r.end {
		return variant.None[T]()
	}
	v := r.current
	r.current++
	return variant.Some(v)
}

