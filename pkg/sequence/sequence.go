package sequence

import (
	"iter"

	"github.com/dmitrymomot/typekit/pkg/variant"
)

// Sequence yields items one at a time.
// Once Advance returns None it must keep returning None.
type Sequence[T any] interface {
	Advance() variant.Maybe[T]
}

// Func adapts a plain function to the Sequence interface.
type Func[T any] func() variant.Maybe[T]

func (f Func[T]) Advance() variant.Maybe[T] {
	return f()
}

// Count drains s and returns the number of items it produced.
func Count[T any](s Sequence[T]) int {
	n := 0
	for s.Advance().IsSome() {
		n++
	}
	return n
}

// Collect drains s into a slice.
func Collect[T any](s Sequence[T]) []T {
	var out []T
	for {
		v, ok := s.Advance().Get()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

// ForEach calls fn for every remaining item of s.
func ForEach[T any](s Sequence[T], fn func(T)) {
	for {
		v, ok := s.Advance().Get()
		if !ok {
			return
		}
		fn(v)
	}
}

// Seq exposes s as an iter.Seq so it can be used in a range loop.
// Breaking out of the loop leaves the remaining items in s.
func Seq[T any](s Sequence[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := s.Advance().Get()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
