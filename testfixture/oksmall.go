// Package testfixture provides the small reference CVRPTW instance used
// throughout this module's tests, modeled on the "OkSmall" fixture from
// the HGS-CVRP reference implementation's test suite
// (_examples/original_source/hgs/test/test_Individual.cpp). Every number
// below was chosen so the worked time-warp example
// ("15'600 + 360 + 1'427 − 15'300") holds exactly against this matrix.
package testfixture

import "github.com/solverkit/cvrptw/problem"

// OkSmall returns a fresh four-client, three-vehicle, capacity-10 instance.
// Client 0 is the depot. Demands are {5, 5, 3, 5} (total 18, so a single
// route carrying all four clients has excess load 8 over the capacity of
// 10). Distances are given directly (not derived from coordinates) so that
// dist(0,1)=1544 and dist(1,3)=1427 hold exactly, as required by the
// worked time-warp example above.
func OkSmall() *problem.Data {
	clients := []problem.Client{
		{X: 0, Y: 0, Demand: 0, Service: 0, TWEarly: 0, TWLate: 45000},
		{X: 0, Y: 0, Demand: 5, Service: 360, TWEarly: 15600, TWLate: 22500},
		{X: 0, Y: 0, Demand: 5, Service: 360, TWEarly: 12000, TWLate: 19500},
		{X: 0, Y: 0, Demand: 3, Service: 360, TWEarly: 8400, TWLate: 15300},
		{X: 0, Y: 0, Demand: 5, Service: 360, TWEarly: 8400, TWLate: 15300},
	}

	dist := [][]int64{
		{0, 1544, 1944, 1931, 1476},
		{1544, 0, 1336, 1427, 1593},
		{1944, 1336, 0, 1226, 1742},
		{1931, 1427, 1226, 0, 1979},
		{1476, 1593, 1742, 1979, 0},
	}

	data, err := problem.New(clients, dist, 3, 10)
	if err != nil {
		// The fixture is a compile-time constant; any error here is a bug
		// in this file, not caller input.
		panic(err)
	}

	return data
}
