package localsearch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solverkit/cvrptw/individual"
	"github.com/solverkit/cvrptw/localsearch"
	"github.com/solverkit/cvrptw/penalty"
	"github.com/solverkit/cvrptw/problem"
	"github.com/solverkit/cvrptw/route"
	"github.com/solverkit/cvrptw/testfixture"
)

// crossingLine builds a single-vehicle instance whose four clients sit on
// a line through the depot at x = {10, 20, -10, -20} (client ids 1..4
// respectively), wide-open time windows and trivial demand/capacity, so
// every scenario below is a pure-distance TSP on five collinear points
// with no time-warp or load-penalty interaction. The global optimum for
// such an instance is the well known 2*(rightmost + |leftmost|) = 80,
// achieved by sweeping each side of the depot in order and crossing once;
// the starting order below (1,3,2,4) costs 120, 40 above that optimum.
func crossingLine(t *testing.T) *problem.Data {
	t.Helper()

	clients := []problem.Client{
		{X: 0, Y: 0, Demand: 0, Service: 0, TWEarly: 0, TWLate: 1_000_000},
		{X: 10, Y: 0, Demand: 1, Service: 0, TWEarly: 0, TWLate: 1_000_000},
		{X: 20, Y: 0, Demand: 1, Service: 0, TWEarly: 0, TWLate: 1_000_000},
		{X: -10, Y: 0, Demand: 1, Service: 0, TWEarly: 0, TWLate: 1_000_000},
		{X: -20, Y: 0, Demand: 1, Service: 0, TWEarly: 0, TWLate: 1_000_000},
	}

	data, err := problem.NewEuclidean(clients, 1, 100)
	require.NoError(t, err)

	return data
}

func costOf(t *testing.T, data *problem.Data, mgr *penalty.Manager, pool *route.Pool) int64 {
	t.Helper()

	ind, err := individual.New(data, mgr, pool.Dump())
	require.NoError(t, err)

	return ind.Cost()
}

func TestEvaluateApply_RelocateFixesCrossing(t *testing.T) {
	data := crossingLine(t)
	mgr := penalty.New(10, 1)

	pool := route.NewPool(data)
	pool.Load([][]int{{1, 3, 2, 4}})

	before := costOf(t, data, mgr, pool)
	require.Equal(t, int64(120), before)

	// Client 2 currently sits at position 3; relocating it to directly
	// after client 1 (position 1) produces the optimal order 1,2,3,4.
	u := pool.NodeOf(2)
	v := pool.NodeOf(1)

	delta := localsearch.Relocate1.Evaluate(u, v, mgr)
	require.Less(t, delta, int64(0), "expected relocating client 2 after client 1 to improve cost")
	assert.Equal(t, int64(-40), delta)

	r := u.Route()
	localsearch.Relocate1.Apply(u, v)
	r.Update()

	after := costOf(t, data, mgr, pool)
	assert.Equal(t, before+delta, after)
	assert.Equal(t, int64(80), after)
	assert.Equal(t, []int{1, 2, 3, 4}, r.Clients())
}

func TestEvaluate_ContainsDepotGuard(t *testing.T) {
	data := testfixture.OkSmall()
	mgr := penalty.New(10, 1)

	pool := route.NewPool(data)
	pool.Load([][]int{{1, 2, 3, 4}, {}, {}})

	r := pool.RouteAt(0)
	depot := r.Start()
	v := pool.NodeOf(2)

	assert.Equal(t, int64(0), localsearch.Relocate1.Evaluate(depot, v, mgr))
}

func TestEvaluate_OverlapGuard(t *testing.T) {
	data := testfixture.OkSmall()
	mgr := penalty.New(10, 1)

	pool := route.NewPool(data)
	pool.Load([][]int{{1, 2, 3, 4}, {}, {}})

	u := pool.NodeOf(1) // position 1
	v := pool.NodeOf(2) // position 2, inside U's length-2 segment

	assert.Equal(t, int64(0), localsearch.Relocate2.Evaluate(u, v, mgr))
}

func TestEvaluate_NullMoveGuard(t *testing.T) {
	data := testfixture.OkSmall()
	mgr := penalty.New(10, 1)

	pool := route.NewPool(data)
	pool.Load([][]int{{1, 2, 3, 4}, {}, {}})

	v := pool.NodeOf(2)
	u := pool.NodeOf(3) // already v.Next()

	assert.Equal(t, int64(0), localsearch.Relocate1.Evaluate(u, v, mgr))
}

func TestEvaluate_AdjacentSwapGuard(t *testing.T) {
	data := testfixture.OkSmall()
	mgr := penalty.New(10, 1)

	pool := route.NewPool(data)
	pool.Load([][]int{{1, 2, 3, 4}, {}, {}})

	u := pool.NodeOf(2) // position 2
	v := pool.NodeOf(3) // position 3, adjacent to U's length-1 segment

	assert.Equal(t, int64(0), localsearch.SwapOneOne.Evaluate(u, v, mgr))
}

func TestEvaluate_SymmetricSwapGuard(t *testing.T) {
	data := testfixture.OkSmall()
	mgr := penalty.New(10, 1)

	pool := route.NewPool(data)
	pool.Load([][]int{{1, 2, 3, 4}, {}, {}})

	u := pool.NodeOf(4) // client id 4 >= client id 1
	v := pool.NodeOf(1)

	assert.Equal(t, int64(0), localsearch.SwapOneOne.Evaluate(u, v, mgr))
}

func TestApply_CrossRouteRelocate_RoundTrip(t *testing.T) {
	data := testfixture.OkSmall()
	mgr := penalty.New(10, 1)

	pool := route.NewPool(data)
	pool.Load([][]int{{1, 2, 3}, {4}, {}})

	before := costOf(t, data, mgr, pool)

	u := pool.NodeOf(3)
	v := pool.NodeOf(4)

	delta := localsearch.Relocate1.Evaluate(u, v, mgr)

	uRoute, vRoute := u.Route(), v.Route()
	localsearch.Relocate1.Apply(u, v)
	uRoute.Update()
	vRoute.Update()

	after := costOf(t, data, mgr, pool)
	assert.Equal(t, before+delta, after)
}
