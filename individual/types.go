// Package individual represents a complete candidate CVRPTW solution: an
// assignment of every client to an ordered route, together with its
// derived cost, feasibility flags and adjacency structure.
//
// An Individual is immutable once built. It never mutates the ProblemData
// or PenaltyManager it was built against, and never looks at working
// route.Pool state directly — see package route for the mutable
// representation local search operates on, and Pool.Dump/individual.New
// for the round trip between the two.
//
// Errors:
//
//	ErrTooManyRoutes - the caller supplied a route-list length that does
//	                    not match the instance's vehicle count.
package individual

import (
	"errors"

	"github.com/solverkit/cvrptw/problem"
)

// ErrTooManyRoutes is returned when the number of route lists passed to
// New does not equal the instance's NbVehicles. The name is inherited from
// the reference implementation this package is grounded on, which raises
// the same error whether the caller supplied too many or too few route
// slots (see New's doc comment for the exact rule and DESIGN.md for why no
// padding is performed).
var ErrTooManyRoutes = errors.New("individual: route list length does not match nbVehicles")

// Neighbours holds a client's predecessor and successor within its route.
// Depot adjacency and the unused-client sentinel are both represented as
// client id 0.
type Neighbours struct {
	Prev int
	Succ int
}

// Individual is a complete, immutable candidate solution: one ordered
// client list per vehicle, plus everything derived from it in a single
// construction pass.
type Individual struct {
	data *problem.Data

	routes [][]int

	// neighbours[c] holds client c's (predecessor, successor) pair.
	// neighbours[0] is always the zero value.
	neighbours []Neighbours

	numRoutes int

	distance          int64
	excessLoad        int64
	totalTimeWarp     int64
	hasExcessCapacity bool
	hasTimeWarp       bool
	isFeasible        bool

	cost int64
}

// Routes returns the ordered list of ordered client lists, one per
// vehicle, in canonical form (see New).
func (ind *Individual) Routes() [][]int { return ind.routes }

// NumRoutes returns the number of non-empty routes.
func (ind *Individual) NumRoutes() int { return ind.numRoutes }

// Neighbours returns client c's (predecessor, successor) pair, using 0 for
// depot adjacency. Neighbours(0) is always the zero value.
func (ind *Individual) Neighbours(c int) Neighbours { return ind.neighbours[c] }

// Distance returns the total travel distance summed over all routes.
func (ind *Individual) Distance() int64 { return ind.distance }

// ExcessLoad returns Σ max(0, load(route) - vehicleCapacity) over all
// routes.
func (ind *Individual) ExcessLoad() int64 { return ind.excessLoad }

// TotalTimeWarp returns Σ route time warp over all routes.
func (ind *Individual) TotalTimeWarp() int64 { return ind.totalTimeWarp }

// HasExcessCapacity reports whether any route exceeds vehicle capacity.
func (ind *Individual) HasExcessCapacity() bool { return ind.hasExcessCapacity }

// HasTimeWarp reports whether any route has non-zero time warp.
func (ind *Individual) HasTimeWarp() bool { return ind.hasTimeWarp }

// IsFeasible reports whether the solution has neither excess capacity nor
// time warp.
func (ind *Individual) IsFeasible() bool { return ind.isFeasible }

// Cost returns the penalized objective: Distance() plus the load penalty
// on ExcessLoad() plus the time-warp penalty on TotalTimeWarp(), both
// evaluated against the penalty.Manager passed to New.
func (ind *Individual) Cost() int64 { return ind.cost }

// Data returns the shared, read-only ProblemData this Individual was
// built against.
func (ind *Individual) Data() *problem.Data { return ind.data }
