package sequence

import "github.com/dmitrymomot/typekit/pkg/variant"

// FromSlice returns a sequence over a copy of items.
func FromSlice[T any](items []T) Sequence[T] {
	buf := make([]T, len(items))
	copy(buf, items)
	return &sliceSeq[T]{items: buf}
}

type sliceSeq[T any] struct {
	items []T
	pos   int
}

func (s *sliceSeq[T]) Advance() variant.Maybe[T] {
	if s.pos >= len(s.items) {
		return variant.None[T]()
	}
	v := s.items[s.pos]
	s.pos++
	return variant.Some(v)
}

// Fuse wraps s so that the first None is remembered and returned forever,
// even if s itself would produce more items later.
func Fuse[T any](s Sequence[T]) Sequence[T] {
	if f, ok := s.(*fused[T]); ok {
		return f
	}
	return &fused[T]{inner: s}
}

type fused[T any] struct {
	inner Sequence[T]
	done  bool
}

func (f *fused[T]) Advance() variant.Maybe[T] {
	if f.done {
		return variant.None[T]()
	}
	next := f.inner.Advance()
	if next.IsNone() {
		f.done = true
	}
	return next
}

// Take yields at most n items of s.
func Take[T any](s Sequence[T], n int) Sequence[T] {
	return &take[T]{inner: s, left: n}
}

type take[T any] struct {
	inner Sequence[T]
	left  int
}

func (t *take[T]) Advance() variant.Maybe[T] {
	if t.left <= 0 {
		return variant.None[T]()
	}
	next := t.inner.Advance()
	if next.IsNone() {
		t.left = 0
		return next
	}
	t.left--
	return next
}

// MapSeq lazily applies f to every item of s.
func MapSeq[T, U any](s Sequence[T], f func(T) U) Sequence[U] {
	return Func[U](func() variant.Maybe[U] {
		return variant.Map(s.Advance(), f)
	})
}
