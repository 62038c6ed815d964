// Package sequence implements a pull-based iteration protocol on top of
// variant.Maybe.
//
// A Sequence has a single operation, Advance, which returns Some(item) and
// moves the cursor forward by one position, or None once the sequence is
// exhausted. Exhaustion is a normal terminal value, not an error.
//
// Everything else is written once against the interface: Count, Collect,
// ForEach, Take, MapSeq, Fuse and the Seq bridge to Go's range-over-func.
// All of them consume the sequence they are given; a drained sequence cannot
// be restarted.
//
//	r := sequence.NewRange(0, 5)
//	n := sequence.Count[int](r) // 5
//
// Range is the concrete bounded integer sequence: it yields every value of the
// half-open interval [start, end) in ascending order.
package sequence
