// Package route implements the mutable working representation of a
// CVRPTW solution: doubly-linked Route sequences of Node visits bracketed
// by depot sentinels, with O(1) cumulative-load and time-warp queries via
// prefix/suffix caches.
//
// Node and Route are owned by a Pool (one per local-search session, see
// package localsearch). A Node's Route back-reference is logically
// non-owning: Route exclusively owns the Nodes on its linked list, and
// Node.route merely resolves "which route am I currently on" without
// creating a reference cycle. In Go this needs no arena of raw indices to
// avoid dangling pointers or reference-counting cycles the way a non-GC
// target would — the garbage collector already handles that — but Pool
// still gives O(1) "find the Node for client c" and "find route slot k"
// lookups via flat, index-addressable slices, which is the part of that
// design that actually matters operationally.
package route

import (
	"github.com/solverkit/cvrptw/problem"
	"github.com/solverkit/cvrptw/tws"
)

// Node represents one visit: either a depot sentinel (Client == 0) or a
// client stop. Position is 1-based within its Route; 0 denotes the start
// depot sentinel and size+1 denotes the end depot sentinel. TWBefore and
// TWAfter cache the TWS of the prefix depot..Node and the suffix
// Node..depot respectively; both are only valid when the owning Route is
// not dirty.
type Node struct {
	Client   int
	Position int

	route *Route
	prev  *Node
	next  *Node

	TWBefore tws.TWS
	TWAfter  tws.TWS
}

// Route returns the Route this Node currently belongs to, or nil if it has
// never been placed on one. Remove leaves this back-reference unchanged,
// so after Remove it still names the route the Node was taken from.
func (n *Node) Route() *Route { return n.route }

// Prev returns the preceding Node, or the start depot sentinel if n is the
// first client visit.
func (n *Node) Prev() *Node { return n.prev }

// Next returns the following Node, or the end depot sentinel if n is the
// last client visit.
func (n *Node) Next() *Node { return n.next }

// IsDepot reports whether this Node is a depot sentinel.
func (n *Node) IsDepot() bool { return n.Client == 0 }

// Route is an ordered sequence of Nodes bracketed by two depot sentinels,
// with O(1) distBetween/loadBetween via prefix sums and O(1) twBefore/
// twAfter via prefix/suffix TWS caches.
type Route struct {
	data *problem.Data
	idx  int

	start *Node // depot sentinel at position 0
	end   *Node // depot sentinel at position size()+1

	// nodes[k] is the client Node at position k+1 (1-based positions).
	nodes []*Node

	// distPrefix[k] = Σ dist(nodes[i-1], nodes[i]) for the traversal
	// start..position k, i.e. distBetween(0, k). Length size()+2.
	distPrefix []int64
	// loadPrefix[k] = Σ demand over positions [1..k]. Length size()+2.
	loadPrefix []int64
	// twPrefix[k] = TWS of the segment [0..k] (start depot through
	// position k). Length size()+2.
	twPrefix []tws.TWS
	// twSuffix[k] = TWS of the segment [k..size()+1] (position k through
	// end depot). Length size()+2.
	twSuffix []tws.TWS

	dirty bool
}

// Idx returns this Route's slot index within its Pool (its vehicle slot).
func (r *Route) Idx() int { return r.idx }

// Size returns the number of client visits (excludes both depot
// sentinels).
func (r *Route) Size() int { return len(r.nodes) }

// IsDirty reports whether Update must be called before the next query.
func (r *Route) IsDirty() bool { return r.dirty }

// Data returns the shared, read-only ProblemData this route was built
// against.
func (r *Route) Data() *problem.Data { return r.data }

// Start returns the start depot sentinel (position 0).
func (r *Route) Start() *Node { return r.start }

// End returns the end depot sentinel (position size()+1).
func (r *Route) End() *Node { return r.end }

// At returns the Node at the given 1-based position, or the corresponding
// depot sentinel at 0 or size()+1.
func (r *Route) At(pos int) *Node {
	if pos == 0 {
		return r.start
	}
	if pos == len(r.nodes)+1 {
		return r.end
	}

	return r.nodes[pos-1]
}
