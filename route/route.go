package route

import (
	"github.com/solverkit/cvrptw/problem"
	"github.com/solverkit/cvrptw/tws"
)

// newRoute allocates an empty Route (just its two depot sentinels) bound
// to data and identified by idx within its Pool.
func newRoute(idx int, data *problem.Data) *Route {
	start := &Node{Client: 0, Position: 0}
	end := &Node{Client: 0, Position: 1}
	start.next, end.prev = end, start

	r := &Route{
		data:  data,
		idx:   idx,
		start: start,
		end:   end,
	}
	start.route, end.route = r, r
	r.dirty = true // force one Update before first query

	return r
}

// InsertAfter splices node into the linked list immediately after the Node
// currently at position afterPos, and marks the route dirty. node must not
// already belong to a route.
func (r *Route) InsertAfter(node *Node, afterPos int) {
	after := r.At(afterPos)
	next := after.next

	node.prev, node.next = after, next
	after.next = node
	next.prev = node
	node.route = r

	r.dirty = true
}

// Remove unlinks node from its route's linked list and marks the route
// dirty. node's own prev/next/route are left untouched until it is
// reinserted; callers must not query node's Position or TWBefore/TWAfter
// after Remove until it has been placed on a route and that route updated.
func (r *Route) Remove(node *Node) {
	node.prev.next = node.next
	node.next.prev = node.prev

	r.dirty = true
}

// SwapWith exchanges the positions of two client Nodes, which may belong
// to different routes. Both affected routes are marked dirty; depot
// sentinels must never be passed here.
func SwapWith(a, b *Node) {
	aPrev, aNext, aRoute := a.prev, a.next, a.route
	bPrev, bNext, bRoute := b.prev, b.next, b.route

	if aNext == b {
		// Adjacent, a immediately before b: splice b in a's old slot and
		// a in b's old slot without aliasing through a shared neighbor.
		aPrev.next, b.prev, b.next = b, aPrev, a
		a.prev, a.next, bNext.prev = b, bNext, a
	} else if bNext == a {
		bPrev.next, a.prev, a.next = a, bPrev, b
		b.prev, b.next, aNext.prev = a, aNext, b
	} else {
		aPrev.next, aNext.prev = b, b
		bPrev.next, bNext.prev = a, a
		a.prev, a.next, b.prev, b.next = bPrev, bNext, aPrev, aNext
	}

	a.route, b.route = bRoute, aRoute
	aRoute.dirty = true
	bRoute.dirty = true
}

// MoveAfter unlinks node from wherever it currently sits and splices it in
// immediately after after, which may belong to a different Route. Both the
// node's old and new routes are marked dirty. Unlike InsertAfter, MoveAfter
// takes the destination by Node reference rather than by position, so it
// remains correct to call repeatedly mid-sequence even while the positions
// cached on other nodes are stale — as local-search Apply sequences do.
func MoveAfter(node, after *Node) {
	oldRoute := node.route
	node.prev.next = node.next
	node.next.prev = node.prev
	oldRoute.dirty = true

	next := after.next
	node.prev, node.next = after, next
	after.next = node
	next.prev = node
	node.route = after.route
	after.route.dirty = true
}

// Update recomputes position indices and all prefix/suffix caches from the
// current linked-list order. O(size()). Must be called after any batch of
// InsertAfter/Remove/SwapWith mutations, and before the next query on this
// route: caches only become consistent again once Update has run.
func (r *Route) Update() {
	n := 0
	for cur := r.start.next; cur != r.end; cur = cur.next {
		n++
	}

	r.nodes = make([]*Node, n)
	r.distPrefix = make([]int64, n+2)
	r.loadPrefix = make([]int64, n+2)
	r.twPrefix = make([]tws.TWS, n+2)
	r.twSuffix = make([]tws.TWS, n+2)

	r.start.Position = 0
	r.end.Position = n + 1

	distFn := r.data.Dist

	r.twPrefix[0] = tws.Singleton(0, r.data.Clients[0].TWEarly, r.data.Clients[0].TWLate, r.data.Clients[0].Service)

	pos := 1
	prevClient := 0
	for cur := r.start.next; cur != r.end; cur = cur.next {
		cur.Position = pos
		r.nodes[pos-1] = cur

		c := r.data.Clients[cur.Client]
		r.distPrefix[pos] = r.distPrefix[pos-1] + r.data.Dist(prevClient, cur.Client)
		r.loadPrefix[pos] = r.loadPrefix[pos-1] + c.Demand
		r.twPrefix[pos] = tws.Merge(r.twPrefix[pos-1], tws.Singleton(cur.Client, c.TWEarly, c.TWLate, c.Service), distFn)

		prevClient = cur.Client
		pos++
	}
	r.distPrefix[n+1] = r.distPrefix[n] + r.data.Dist(prevClient, 0)
	r.loadPrefix[n+1] = r.loadPrefix[n]
	depotC := r.data.Clients[0]
	r.twPrefix[n+1] = tws.Merge(r.twPrefix[n], tws.Singleton(0, depotC.TWEarly, depotC.TWLate, depotC.Service), distFn)

	r.twSuffix[n+1] = tws.Singleton(0, depotC.TWEarly, depotC.TWLate, depotC.Service)
	for pos = n; pos >= 1; pos-- {
		cur := r.nodes[pos-1]
		c := r.data.Clients[cur.Client]
		r.twSuffix[pos] = tws.Merge(tws.Singleton(cur.Client, c.TWEarly, c.TWLate, c.Service), r.twSuffix[pos+1], distFn)
	}
	r.twSuffix[0] = tws.Merge(tws.Singleton(0, depotC.TWEarly, depotC.TWLate, depotC.Service), r.twSuffix[1], distFn)

	for _, node := range r.nodes {
		node.TWBefore = r.twPrefix[node.Position]
		node.TWAfter = r.twSuffix[node.Position]
	}
	r.start.TWBefore = r.twPrefix[0]
	r.start.TWAfter = r.twSuffix[0]
	r.end.TWBefore = r.twPrefix[n+1]
	r.end.TWAfter = r.twSuffix[n+1]

	r.dirty = false
}

// DistBetween returns Σ dist(prev,next) for positions [i, j] (i ≤ j), i.e.
// the distance traveled walking from position i to position j inclusive of
// intermediate hops. O(1) via prefix sums.
func (r *Route) DistBetween(i, j int) int64 {
	return r.distPrefix[j] - r.distPrefix[i]
}

// LoadBetween returns Σ demand for positions in [i, j]. O(1). Since the
// depot's own demand is always 0, LoadBetween(0, j) and LoadBetween(1, j)
// are equal; the i==0 case is handled separately only to avoid indexing
// loadPrefix at -1.
func (r *Route) LoadBetween(i, j int) int64 {
	if i == 0 {
		return r.loadPrefix[j]
	}

	return r.loadPrefix[j] - r.loadPrefix[i-1]
}

// TWBetween returns the TWS of the segment spanning positions [i, j],
// i ≤ j. When i==0 or j==size()+1 this is an O(1) prefix/suffix cache
// lookup. For a strictly interior range it folds the segment's singleton
// TWSes directly, which costs O(j-i+1): constant for the moved segments
// Exchange evaluates (at most three clients), but proportional to the gap
// for the stretch between two segments that same-route move evaluation
// also requests. There is no O(1) structure for interior ranges.
func (r *Route) TWBetween(i, j int) tws.TWS {
	if i == 0 {
		return r.twPrefix[j]
	}
	if j == len(r.nodes)+1 {
		return r.twSuffix[i]
	}

	distFn := r.data.Dist
	acc := nodeSingleton(r, r.At(i))
	for pos := i + 1; pos <= j; pos++ {
		acc = tws.Merge(acc, nodeSingleton(r, r.At(pos)), distFn)
	}

	return acc
}

func nodeSingleton(r *Route, n *Node) tws.TWS {
	c := r.data.Clients[n.Client]

	return tws.Singleton(n.Client, c.TWEarly, c.TWLate, c.Service)
}

// Load returns the route's total demand.
func (r *Route) Load() int64 {
	return r.loadPrefix[len(r.nodes)+1]
}

// TimeWarp returns the route's total time warp.
func (r *Route) TimeWarp() int64 {
	return r.twPrefix[len(r.nodes)+1].TotalTimeWarp()
}

// HasTimeWarp reports whether TimeWarp() > 0.
func (r *Route) HasTimeWarp() bool { return r.TimeWarp() > 0 }

// IsFeasible reports whether the route respects both capacity and all time
// windows.
func (r *Route) IsFeasible() bool {
	return r.Load() <= r.data.VehicleCapacity && !r.HasTimeWarp()
}

// Distance returns the route's total travel distance (depot to depot).
func (r *Route) Distance() int64 {
	return r.distPrefix[len(r.nodes)+1]
}

// Clients returns the ordered client ids visited by this route (excludes
// the depot).
func (r *Route) Clients() []int {
	out := make([]int, len(r.nodes))
	for i, n := range r.nodes {
		out[i] = n.Client
	}

	return out
}
