// Package problem defines the immutable CVRPTW instance: clients, the
// dense distance matrix, fleet size and capacity.
//
// A Data value is built once (via New or Load) and never mutated afterwards;
// every other package in this module (penalty, tws, route, individual,
// localsearch) treats *Data as a read-only, freely shareable dependency.
//
// Errors:
//
//	ErrInvalidInstance - malformed client attributes or matrix/client-count
//	                      mismatch, detected at load/construction time.
package problem

import "errors"

// ErrInvalidInstance wraps any violation detected while constructing or
// loading a Data value: negative demand, malformed time window, a distance
// matrix whose dimensions disagree with the client count, a negative or
// asymmetric distance entry.
var ErrInvalidInstance = errors.New("problem: invalid instance")

// Client is one stop on the map, identified by its index into Data.Clients.
// Index 0 is always the depot. Clients are immutable once an instance is
// loaded.
type Client struct {
	// X, Y are planar coordinates, used only to derive the distance matrix
	// when one is not supplied directly (see New and deriveEuclidean).
	X, Y int

	// Demand is the non-negative quantity this client consumes from the
	// vehicle's capacity. The depot's demand is always 0.
	Demand int64

	// Service is the non-negative duration spent serving this client once
	// the vehicle has arrived and any waiting has elapsed.
	Service int64

	// TWEarly, TWLate bound the feasible service start time. Service
	// starting outside [TWEarly, TWLate] either waits (before TWEarly) or
	// accrues time warp (after TWLate); see package tws.
	TWEarly, TWLate int64

	// Release is the earliest time this client may be visited at all,
	// independent of its time window (e.g. it has not yet been dropped off
	// at the depot by an earlier process). Carried for completeness with
	// the instance format; the TWS algebra in package tws operates purely
	// on TWEarly/TWLate, so Release does not feed into time-warp accounting
	// here.
	Release int64
}

// Data is the immutable CVRPTW instance: the client vector (index 0 is the
// depot), the dense symmetric distance matrix, the fleet size and the
// homogeneous vehicle capacity.
type Data struct {
	Clients         []Client
	NbVehicles      int
	VehicleCapacity int64

	dist DistanceMatrix
}

// NbClients returns the number of non-depot clients (len(Clients)-1).
func (d *Data) NbClients() int {
	return len(d.Clients) - 1
}

// Dist returns the distance between two client indices.
func (d *Data) Dist(a, b int) int64 {
	return d.dist.at(a, b)
}

// DistPath returns Σ Dist(path[i-1], path[i]) over a variadic path of two or
// more client indices, mirroring ProblemData's variadic dist(c0,c1,...,ck)
// contract from the specification.
func (d *Data) DistPath(path ...int) int64 {
	var total int64
	for i := 1; i < len(path); i++ {
		total += d.Dist(path[i-1], path[i])
	}

	return total
}
