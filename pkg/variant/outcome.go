package variant

import "fmt"

// Unit is the empty payload for outcomes that carry no value on success.
type Unit struct{}

// Outcome holds either a success value (Ok) or a failure cause (Err).
// E is usually error, but any descriptive type works.
type Outcome[T, E any] struct {
	value T
	err   E
	isErr bool
}

// Ok wraps value in a successful Outcome.
func Ok[T, E any](value T) Outcome[T, E] {
	return Outcome[T, E]{value: value}
}

// Err wraps cause in a failed Outcome.
func Err[T, E any](cause E) Outcome[T, E] {
	return Outcome[T, E]{err: cause, isErr: true}
}

// Done is a successful Outcome with no payload.
func Done[E any]() Outcome[Unit, E] {
	return Ok[Unit, E](Unit{})
}

// Try converts a Go (value, error) pair. A non-nil err yields Err.
func Try[T any](value T, err error) Outcome[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](value)
}

// Into converts an error Outcome back into a Go (value, error) pair.
func Into[T any](o Outcome[T, error]) (T, error) {
	if o.isErr {
		var zero T
		return zero, o.err
	}
	return o.value, nil
}

// IsOk reports whether o is a success.
func (o Outcome[T, E]) IsOk() bool {
	return !o.isErr
}

// IsErr reports whether o is a failure.
func (o Outcome[T, E]) IsErr() bool {
	return o.isErr
}

// Unwrap returns the success value.
// Panics with a *ContractViolation carrying the error's description when o is Err.
func (o Outcome[T, E]) Unwrap() T {
	if o.isErr {
		cause, _ := any(o.err).(error)
		Violate("Outcome.Unwrap", fmt.Sprint(o.err), cause)
	}
	return o.value
}

// UnwrapErr returns the failure cause.
// Panics with a *ContractViolation when o is Ok.
func (o Outcome[T, E]) UnwrapErr() E {
	if !o.isErr {
		Violate("Outcome.UnwrapErr", fmt.Sprintf("called on Ok(%v)", o.value), nil)
	}
	return o.err
}

// UnwrapOr returns the success value, or fallback when o is Err.
func (o Outcome[T, E]) UnwrapOr(fallback T) T {
	if o.isErr {
		return fallback
	}
	return o.value
}

// Get returns the value, the cause and whether o is Ok.
func (o Outcome[T, E]) Get() (T, E, bool) {
	return o.value, o.err, !o.isErr
}

// Ok projects the success value into a Maybe, dropping the cause.
func (o Outcome[T, E]) Ok() Maybe[T] {
	if o.isErr {
		return None[T]()
	}
	return Some(o.value)
}

// Err projects the failure cause into a Maybe.
func (o Outcome[T, E]) Err() Maybe[E] {
	if !o.isErr {
		return None[E]()
	}
	return Some(o.err)
}

// String formats o as Ok(v) or Err(e).
func (o Outcome[T, E]) String() string {
	if o.isErr {
		return fmt.Sprintf("Err(%v)", o.err)
	}
	return fmt.Sprintf("Ok(%v)", o.value)
}

// MapOutcome transforms the success value and keeps the cause untouched.
func MapOutcome[T, U, E any](o Outcome[T, E], f func(T) U) Outcome[U, E] {
	if o.isErr {
		return Err[U](o.err)
	}
	return Ok[U, E](f(o.value))
}

// MapErr transforms the cause and keeps the success value untouched.
func MapErr[T, E, F any](o Outcome[T, E], f func(E) F) Outcome[T, F] {
	if o.isErr {
		return Err[T](f(o.err))
	}
	return Ok[T, F](o.value)
}

// AndThen chains operations that may fail. The first Err short-circuits.
func AndThen[T, U, E any](o Outcome[T, E], f func(T) Outcome[U, E]) Outcome[U, E] {
	if o.isErr {
		return Err[U](o.err)
	}
	return f(o.value)
}

// MatchOutcome calls exactly one of onOk or onErr and returns its result.
func MatchOutcome[T, E, R any](o Outcome[T, E], onOk func(T) R, onErr func(E) R) R {
	if o.isErr {
		return onErr(o.err)
	}
	return onOk(o.value)
}

// OkOr turns a Maybe into an Outcome, using cause for None.
func OkOr[T, E any](m Maybe[T], cause E) Outcome[T, E] {
	if !m.some {
		return Err[T](cause)
	}
	return Ok[T, E](m.value)
}
