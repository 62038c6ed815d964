// Package validator provides small declarative validation rules.
//
// A Rule pairs a Check function with the ValidationError to report when the
// check fails. Apply evaluates every rule and aggregates failures into a
// ValidationErrors value that satisfies the error interface, so several
// field-level problems travel back in a single error return:
//
//	err := validator.Apply(
//	    validator.NoWhitespace("host", host),
//	    validator.Between("port", port, 1, 65535),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, f := range verrs.Fields() { ... }
//	}
//
// Rules hold no shared state and are safe to build from any goroutine.
package validator
