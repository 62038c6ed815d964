package variant

import "fmt"

// Maybe holds either a value (Some) or nothing (None).
// The zero value is None, so Maybe fields can be embedded without initialization.
type Maybe[T any] struct {
	value T
	some  bool
}

// Some wraps value in a present Maybe.
func Some[T any](value T) Maybe[T] {
	return Maybe[T]{value: value, some: true}
}

// None returns an absent Maybe.
func None[T any]() Maybe[T] {
	return Maybe[T]{}
}

// FromOk builds a Maybe from Go's comma-ok idiom (map lookups, type assertions).
func FromOk[T any](value T, ok bool) Maybe[T] {
	if !ok {
		return None[T]()
	}
	return Some(value)
}

// FromPtr treats a nil pointer as None and dereferences anything else.
func FromPtr[T any](ptr *T) Maybe[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

// IsSome reports whether m holds a value.
func (m Maybe[T]) IsSome() bool {
	return m.some
}

// IsNone reports whether m is empty.
func (m Maybe[T]) IsNone() bool {
	return !m.some
}

// Unwrap returns the contained value.
// Panics with a *ContractViolation when m is None.
func (m Maybe[T]) Unwrap() T {
	if !m.some {
		Violate("Maybe.Unwrap", "called on None", nil)
	}
	return m.value
}

// UnwrapOr returns the contained value, or fallback when m is None.
func (m Maybe[T]) UnwrapOr(fallback T) T {
	if !m.some {
		return fallback
	}
	return m.value
}

// Get returns the value and whether it was present.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.some
}

// Ptr returns a pointer to a copy of the value, or nil for None.
func (m Maybe[T]) Ptr() *T {
	if !m.some {
		return nil
	}
	v := m.value
	return &v
}

// String formats m as Some(v) or None.
func (m Maybe[T]) String() string {
	if !m.some {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", m.value)
}

// Map applies f to the value of a Some and rewraps the result.
// None passes through without calling f.
func Map[T, U any](m Maybe[T], f func(T) U) Maybe[U] {
	if !m.some {
		return None[U]()
	}
	return Some(f(m.value))
}

// FlatMap chains lookups that may themselves be absent.
func FlatMap[T, U any](m Maybe[T], f func(T) Maybe[U]) Maybe[U] {
	if !m.some {
		return None[U]()
	}
	return f(m.value)
}

// Filter returns m when it is Some and pred holds, None otherwise.
func Filter[T any](m Maybe[T], pred func(T) bool) Maybe[T] {
	if !m.some || !pred(m.value) {
		return None[T]()
	}
	return m
}

// Match calls exactly one of onSome or onNone and returns its result.
// Both arms are required, which keeps handling of the two variants exhaustive.
func Match[T, R any](m Maybe[T], onSome func(T) R, onNone func() R) R {
	if m.some {
		return onSome(m.value)
	}
	return onNone()
}

// Equal reports whether a and b are both None or both Some with equal values.
func Equal[T comparable](a, b Maybe[T]) bool {
	if a.some != b.some {
		return false
	}
	return !a.some || a.value == b.value
}
