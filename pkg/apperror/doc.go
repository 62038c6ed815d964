// Package apperror defines the recoverable application error used across the
// module. Every error has a Kind (NotFound, InvalidInput or IO), a bare human
// readable Message and an optional wrapped cause.
//
// Errors of the same kind match each other through errors.Is, so callers can
// branch on the category without string comparison:
//
//	if errors.Is(err, apperror.ErrInvalidInput) {
//	    // reject the request
//	}
//
// or with the predicates IsNotFound, IsInvalidInput and IsIO.
//
// These errors are always returned to the immediate caller. Nothing in this
// module retries on its own.
package apperror
