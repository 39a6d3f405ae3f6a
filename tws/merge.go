package tws

// Merge folds two adjacent segments A (earlier) and B (later) into the TWS
// of their concatenation, per the merge law:
//
//	delta    = A.Duration - A.TimeWarp + dist(A.IdxLast, B.IdxFirst)
//	deltaTW  = max(0, A.TWEarly + delta - B.TWLate)
//	deltaWT  = max(0, B.TWEarly - delta - A.TWLate)
//
//	new.Duration = A.Duration + B.Duration + dist(...) + deltaWT
//	new.TimeWarp = A.TimeWarp + B.TimeWarp + deltaTW
//	new.TWEarly  = max(B.TWEarly-delta, A.TWEarly) - deltaWT
//	new.TWLate   = min(B.TWLate-delta, A.TWLate)   + deltaTW
//
// Merge is associative, so folding a sequence of singletons left-to-right
// or via any other bracketing yields the same result; this is what makes
// Route's prefix/suffix TWS caches well-defined.
func Merge(a, b TWS, dist DistanceFunc) TWS {
	d := dist(a.IdxLast, b.IdxFirst)
	delta := a.Duration - a.TimeWarp + d

	deltaTW := a.TWEarly + delta - b.TWLate
	if deltaTW < 0 {
		deltaTW = 0
	}
	deltaWT := b.TWEarly - delta - a.TWLate
	if deltaWT < 0 {
		deltaWT = 0
	}

	newEarly := b.TWEarly - delta
	if a.TWEarly > newEarly {
		newEarly = a.TWEarly
	}
	newEarly -= deltaWT

	newLate := b.TWLate - delta
	if a.TWLate < newLate {
		newLate = a.TWLate
	}
	newLate += deltaTW

	return TWS{
		IdxFirst: a.IdxFirst,
		IdxLast:  b.IdxLast,
		Duration: a.Duration + b.Duration + d + deltaWT,
		TimeWarp: a.TimeWarp + b.TimeWarp + deltaTW,
		TWEarly:  newEarly,
		TWLate:   newLate,
	}
}

// MergeAll folds a sequence of two or more segments left-to-right via
// Merge. Callers with exactly two segments should prefer Merge directly to
// avoid the slice overhead; MergeAll exists for local-search moves that
// merge three to five segments in one delta evaluation.
func MergeAll(dist DistanceFunc, segments ...TWS) TWS {
	acc := segments[0]
	for _, s := range segments[1:] {
		acc = Merge(acc, s, dist)
	}

	return acc
}
