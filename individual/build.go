package individual

import (
	"fmt"

	"github.com/solverkit/cvrptw/penalty"
	"github.com/solverkit/cvrptw/problem"
	"github.com/solverkit/cvrptw/tws"
)

// New builds an Individual from routes, a list-of-lists of client ids in
// visiting order, one entry per vehicle. len(routes) must equal
// data.NbVehicles exactly; New neither pads nor trims the outer list — a
// caller must supply exactly one entry per vehicle slot, empty or not
// (see DESIGN.md for why this departs from a literal reading of "pad if
// fewer" in favor of the reference implementation's actual behavior).
//
// The stored routes are canonicalized: empty routes are stably partitioned
// to the tail, preserving the relative order of non-empty routes. New then
// computes, in one pass, per-route distance/load/time-warp and the
// resulting neighbours table, feasibility flags and penalized cost.
//
// New does not validate that every client appears exactly once; a client
// appearing zero or multiple times is accepted here and left to a
// higher-level collaborator, per the caller contract this package assumes.
func New(data *problem.Data, mgr *penalty.Manager, routes [][]int) (*Individual, error) {
	if len(routes) != data.NbVehicles {
		return nil, fmt.Errorf("%w: got %d route lists, want %d", ErrTooManyRoutes, len(routes), data.NbVehicles)
	}

	canonical := canonicalize(routes)

	ind := &Individual{
		data:       data,
		routes:     canonical,
		neighbours: make([]Neighbours, len(data.Clients)),
	}

	var totalDistance, totalExcessLoad, totalTimeWarp int64
	for _, r := range canonical {
		if len(r) == 0 {
			continue
		}
		ind.numRoutes++

		dist := routeDistance(data, r)
		load := routeLoad(data, r)
		warp := routeTimeWarp(data, r)

		totalDistance += dist
		if load > data.VehicleCapacity {
			totalExcessLoad += load - data.VehicleCapacity
		}
		totalTimeWarp += warp

		recordNeighbours(ind.neighbours, r)
	}

	ind.distance = totalDistance
	ind.excessLoad = totalExcessLoad
	ind.totalTimeWarp = totalTimeWarp
	ind.hasExcessCapacity = totalExcessLoad > 0
	ind.hasTimeWarp = totalTimeWarp > 0
	ind.isFeasible = !ind.hasExcessCapacity && !ind.hasTimeWarp

	ind.cost = totalDistance
	if mgr != nil {
		ind.cost += mgr.LoadPenalty(totalExcessLoad)
		ind.cost += mgr.TimeWarpPenalty(totalTimeWarp)
	}

	return ind, nil
}

// canonicalize copies routes and stably partitions empty entries to the
// tail, preserving the relative order of non-empty entries.
func canonicalize(routes [][]int) [][]int {
	out := make([][]int, 0, len(routes))
	for _, r := range routes {
		if len(r) > 0 {
			cp := make([]int, len(r))
			copy(cp, r)
			out = append(out, cp)
		}
	}
	for len(out) < len(routes) {
		out = append(out, []int{})
	}

	return out
}

func routeDistance(data *problem.Data, r []int) int64 {
	var total int64
	prev := 0
	for _, c := range r {
		total += data.Dist(prev, c)
		prev = c
	}
	total += data.Dist(prev, 0)

	return total
}

func routeLoad(data *problem.Data, r []int) int64 {
	var total int64
	for _, c := range r {
		total += data.Clients[c].Demand
	}

	return total
}

func routeTimeWarp(data *problem.Data, r []int) int64 {
	depot := data.Clients[0]
	acc := tws.Singleton(0, depot.TWEarly, depot.TWLate, depot.Service)
	for _, c := range r {
		cl := data.Clients[c]
		acc = tws.Merge(acc, tws.Singleton(c, cl.TWEarly, cl.TWLate, cl.Service), data.Dist)
	}
	acc = tws.Merge(acc, tws.Singleton(0, depot.TWEarly, depot.TWLate, depot.Service), data.Dist)

	return acc.TotalTimeWarp()
}

func recordNeighbours(neighbours []Neighbours, r []int) {
	for i, c := range r {
		prev := 0
		if i > 0 {
			prev = r[i-1]
		}
		succ := 0
		if i < len(r)-1 {
			succ = r[i+1]
		}
		neighbours[c] = Neighbours{Prev: prev, Succ: succ}
	}
}
