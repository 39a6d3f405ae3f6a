// Package localsearch implements the parametric Exchange<N,M> move operator
// and the driver loop that repeatedly evaluates and applies it against a
// route.Pool's working state.
//
// Exchange relocates N consecutive client visits starting at U into the
// position after V, optionally swapping them with M consecutive visits
// starting at V. (1,0) is pure relocate; (1,1) is pure swap; (2,1), (2,2),
// (3,3) generalize to segments. Go has no value-level generics over
// integers, so N and M are ordinary runtime struct fields rather than a
// template parameter pack; named constructors below cover the small,
// fixed set of (N,M) pairs a driver actually wants to try.
package localsearch

import (
	"github.com/solverkit/cvrptw/penalty"
	"github.com/solverkit/cvrptw/route"
)

// Exchange evaluates and applies the relocate/swap move that moves N
// consecutive nodes starting at U to directly after V, optionally trading
// them with M consecutive nodes starting at V. The zero value is invalid;
// build one with Relocate or Swap.
type Exchange struct {
	N, M int
}

// Relocate builds the pure-relocate operator that moves n consecutive
// nodes starting at U to directly after V. n must be at least 1.
func Relocate(n int) Exchange {
	if n < 1 {
		panic("localsearch: Relocate requires n >= 1")
	}

	return Exchange{N: n, M: 0}
}

// Swap builds the operator that trades n consecutive nodes starting at U
// for m consecutive nodes starting at V. Requires n >= m >= 1; when n == m
// the two segments trade slots exactly, and when n > m the extra n-m nodes
// are relocated to directly after V's segment as part of the same move.
func Swap(n, m int) Exchange {
	if m < 1 || n < m {
		panic("localsearch: Swap requires n >= m >= 1")
	}

	return Exchange{N: n, M: m}
}

// Relocate1, Relocate2, Relocate3 and the SwapNM family are the fixed set
// of (N,M) pairs named in the move-evaluation design: a hand-written
// specialization set stands in for the monomorphization a language with
// generics over integers would give each pair for free.
var (
	Relocate1 = Relocate(1)
	Relocate2 = Relocate(2)
	Relocate3 = Relocate(3)

	SwapOneOne = Swap(1, 1)
	Swap21     = Swap(2, 1)
	Swap22     = Swap(2, 2)
	Swap33     = Swap(3, 3)
)

// containsDepot reports whether the length-segLength segment starting at
// node would span the end-of-route depot sentinel.
func containsDepot(node *route.Node, segLength int) bool {
	if node.IsDepot() {
		return true
	}

	return node.Position+segLength-1 > node.Route().Size()
}

// overlap reports whether U's N-segment and V's M-segment intersect
// within the same route.
func (e Exchange) overlap(u, v *route.Node) bool {
	if u.Route() != v.Route() {
		return false
	}

	return u.Position <= v.Position+e.M-1 && v.Position <= u.Position+e.N-1
}

// adjacent reports whether U's N-segment and V's M-segment sit back to
// back within the same route, in either order.
func (e Exchange) adjacent(u, v *route.Node) bool {
	if u.Route() != v.Route() {
		return false
	}

	return u.Position+e.N == v.Position || v.Position+e.M == u.Position
}

// Evaluate returns the exact penalized-cost delta of applying this move to
// U and V, or 0 if the move is disallowed. A move that cannot improve the
// solution yields a non-negative value, which may be only a partial delta
// when evaluation stops early; any negative value is the exact delta.
// Evaluate never mutates route/Route or route/Node state.
func (e Exchange) Evaluate(u, v *route.Node, mgr *penalty.Manager) int64 {
	if containsDepot(u, e.N) || e.overlap(u, v) {
		return 0
	}
	if e.M > 0 && containsDepot(v, e.M) {
		return 0
	}

	if e.M == 0 {
		if u == v.Next() {
			return 0
		}

		return e.evalRelocateMove(u, v, mgr)
	}

	if e.N == e.M && u.Client >= v.Client {
		return 0
	}
	if e.adjacent(u, v) {
		return 0
	}

	return e.evalSwapMove(u, v, mgr)
}

// Apply performs the move Evaluate last scored for (U,V): the N-M "extra"
// U-nodes are spliced in immediately after the end of V's segment,
// working backwards from the tail of U's segment so the splice target
// stays fixed, and the remaining min(N,M) nodes are swapped pairwise.
// Callers must call Update on every route touched (U's and V's, which may
// be the same route) before querying it again.
func (e Exchange) Apply(u, v *route.Node) {
	uRoute := u.Route()
	endU := u
	if e.N > 1 {
		endU = uRoute.At(u.Position + e.N - 1)
	}

	var insertAfter *route.Node
	if e.M == 0 {
		insertAfter = v
	} else {
		vRoute := v.Route()
		endV := v
		if e.M > 1 {
			endV = vRoute.At(v.Position + e.M - 1)
		}
		insertAfter = endV
	}

	uToInsert := endU
	for count := 0; count != e.N-e.M; count++ {
		prev := uToInsert.Prev()
		route.MoveAfter(uToInsert, insertAfter)
		uToInsert = prev
	}

	minNM := e.N
	if e.M < minNM {
		minNM = e.M
	}
	for count := 0; count != minNM; count++ {
		nextU, nextV := u.Next(), v.Next()
		route.SwapWith(u, v)
		u, v = nextU, nextV
	}
}

// loadPenaltyDelta returns mgr.LoadPenalty applied to the excess over a
// route's vehicle capacity, given a candidate total load. penalty.Manager
// expects the excess already subtracted out (see package penalty), so
// every load-penalty call below goes through this helper rather than
// mgr.LoadPenalty directly.
func loadPenaltyDelta(mgr *penalty.Manager, capacity, load int64) int64 {
	return mgr.LoadPenalty(load - capacity)
}
