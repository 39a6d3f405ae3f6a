package route

import "github.com/solverkit/cvrptw/problem"

// Pool is the arena a local-search session uses to materialize an
// Individual's route lists into mutable Route/Node state, and to
// re-serialize them back. It owns every Node and Route it hands out; both
// are addressed in O(1) via flat, index-addressable slices (NodeOf by
// client id, RouteAt by vehicle slot).
type Pool struct {
	data   *problem.Data
	nodes  []*Node // indexed by client id, length NbClients()+1; nodes[0] unused
	routes []*Route
}

// NewPool allocates a Pool with data.NbVehicles empty routes and one Node
// per client (not yet attached to any route).
func NewPool(data *problem.Data) *Pool {
	p := &Pool{
		data:   data,
		nodes:  make([]*Node, data.NbClients()+1),
		routes: make([]*Route, data.NbVehicles),
	}
	for c := 1; c <= data.NbClients(); c++ {
		p.nodes[c] = &Node{Client: c}
	}
	for k := range p.routes {
		p.routes[k] = newRoute(k, data)
	}

	return p
}

// NodeOf returns the arena Node for the given client id (1-based; client 0
// has no standalone Node — depot sentinels belong to individual Routes).
func (p *Pool) NodeOf(client int) *Node { return p.nodes[client] }

// RouteAt returns the Route at the given vehicle slot.
func (p *Pool) RouteAt(idx int) *Route { return p.routes[idx] }

// NbRoutes returns the number of vehicle slots (== data.NbVehicles).
func (p *Pool) NbRoutes() int { return len(p.routes) }

// Data returns the shared ProblemData this pool was built against.
func (p *Pool) Data() *problem.Data { return p.data }

// Load materializes route lists (client ids in visiting order, one list
// per vehicle slot, as produced by individual.Individual.Routes()) into
// this pool's working Route/Node state, replacing whatever was there
// before. It calls Update on every affected route before returning, so
// the pool is immediately ready for querying. len(routeLists) must equal
// NbRoutes(); it is the caller's responsibility to have already
// canonicalized/validated the lists (e.g. via individual.New).
func (p *Pool) Load(routeLists [][]int) {
	for _, r := range p.routes {
		r.start.next, r.end.prev = r.end, r.start
	}

	for k, clients := range routeLists {
		r := p.routes[k]
		prev := r.start
		for _, c := range clients {
			node := p.nodes[c]
			node.prev, node.next, node.route = prev, r.end, r
			prev.next = node
			r.end.prev = node
			prev = node
		}
		r.dirty = true
		r.Update()
	}
}

// Dump reads the current working state of every route back into a
// list-of-lists of client ids, suitable for individual.New, so an
// Individual can be re-serialized from a session's working state once
// local search settles.
func (p *Pool) Dump() [][]int {
	out := make([][]int, len(p.routes))
	for k, r := range p.routes {
		out[k] = r.Clients()
	}

	return out
}
