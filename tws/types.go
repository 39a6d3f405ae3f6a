// Package tws implements the TimeWindowSegment (TWS) algebra: a compact,
// associative, O(1)-mergeable summary of the timing behavior of a
// contiguous run of client visits.
//
// A TWS never looks at a Route or a ProblemData directly; merging needs
// only the distance between the two segments' adjacent endpoints, supplied
// by the caller as a DistanceFunc. This keeps the algebra decoupled from
// everything above it in the module, the same way the teacher's dtw
// package computes a warp distance purely from two sequences and a cost
// function, with no notion of where the sequences came from.
package tws

// DistanceFunc returns the distance between two client indices. Route
// supplies this as a thin closure over problem.Data.Dist so that tws
// itself never imports package problem.
type DistanceFunc func(from, to int) int64

// TWS summarizes a contiguous client sequence [idxFirst..idxLast]. All
// fields are 64-bit, since a route's accumulated duration or warp can grow
// well past what a 32-bit accumulator safely holds even when every
// individual client field fits comfortably in 32 bits.
type TWS struct {
	// IdxFirst, IdxLast are the client indices at the two ends of the
	// segment, kept only for debugging/inspection; merge uses only the
	// distance between them, supplied externally.
	IdxFirst, IdxLast int

	// Duration is the total elapsed time from arrival at IdxFirst to
	// departure from IdxLast, absent any time-warp correction.
	Duration int64

	// TimeWarp is the amount of time warp already locked into this
	// segment.
	TimeWarp int64

	// TWEarly, TWLate bound the feasible service-start time at IdxFirst
	// that achieves this segment's stored TimeWarp.
	TWEarly, TWLate int64
}

// Singleton builds the TWS of a single client visit: zero duration beyond
// its own service time, zero time warp, and a feasible window equal to the
// client's own time window.
func Singleton(client int, twEarly, twLate, service int64) TWS {
	return TWS{
		IdxFirst: client,
		IdxLast:  client,
		Duration: service,
		TimeWarp: 0,
		TWEarly:  twEarly,
		TWLate:   twLate,
	}
}

// TotalTimeWarp returns the full time-warp contribution of this segment:
// the warp already folded into it, plus any warp implied by TWEarly
// exceeding TWLate (an infeasible window that can never be reconciled by
// further merging).
func (t TWS) TotalTimeWarp() int64 {
	extra := t.TWEarly - t.TWLate
	if extra < 0 {
		extra = 0
	}

	return t.TimeWarp + extra
}
