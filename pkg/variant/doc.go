// Package variant provides closed two-variant sum types for Go code that wants
// to keep absence and failure as values instead of nil pointers and sentinel
// zero values.
//
// Two types are provided:
//
//   - Maybe[T] is either Some(value) or None. It replaces nullable values.
//   - Outcome[T, E] is either Ok(value) or Err(cause). It replaces bare
//     (value, error) pairs when a result needs to travel as a single value.
//
// Both types are plain structs with unexported fields, so the only way to build
// one is through its constructors and the only way to read one is through the
// predicates, Get-style accessors or the Match functions. The zero value of
// Maybe is None; the zero value of Outcome is Ok holding the zero T.
//
// # Usage
//
//	port := variant.Some(uint16(8080))
//	next := variant.Map(port, func(p uint16) uint16 { return p + 1 })
//
//	res := variant.Try(strconv.Atoi(raw))
//	if res.IsErr() {
//	    return res.UnwrapErr()
//	}
//
// # Contract Violations
//
// Unwrap on a None Maybe or an Err Outcome is a programming error, not an
// expected runtime condition. It panics with a *ContractViolation describing
// the failed operation. Check IsSome/IsOk first, or use UnwrapOr/Get.
//
// Go methods cannot declare their own type parameters, so transforms that change
// the payload type (Map, FlatMap, MapOutcome, AndThen, Match) are package-level
// functions.
package variant
