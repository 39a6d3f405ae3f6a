package localsearch_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solverkit/cvrptw/localsearch"
	"github.com/solverkit/cvrptw/penalty"
	"github.com/solverkit/cvrptw/route"
)

// TestSession_Run_ConvergesToGlobalOptimum exercises the full driver loop
// against the crossingLine fixture from exchange_test.go, whose starting
// order (1,3,2,4) costs 120 against a provable global optimum of 80 (see
// crossingLine's doc comment). Since no single-vehicle tour over these
// five collinear points can cost less than 80, and the relocate move
// exercised directly in TestEvaluateApply_RelocateFixesCrossing already
// reaches exactly 80 in one move, the first sweep's best-improvement
// choice must also land on a delta of exactly -40 (any larger improvement
// would break the 80 lower bound, and a smaller one would contradict
// "best"): the session converges in exactly one improving sweep followed
// by one empty, confirming, sweep.
func TestSession_Run_ConvergesToGlobalOptimum(t *testing.T) {
	data := crossingLine(t)
	mgr := penalty.New(10, 1)

	pool := route.NewPool(data)
	pool.Load([][]int{{1, 3, 2, 4}})

	before := costOf(t, data, mgr, pool)
	require.Equal(t, int64(120), before)

	sess := localsearch.NewSession(pool, mgr, []localsearch.Exchange{
		localsearch.Relocate1,
		localsearch.Relocate2,
		localsearch.SwapOneOne,
	}, nil)

	report := sess.Run(context.Background(), nil)

	assert.Equal(t, int64(80), report.FinalCost)
	assert.Equal(t, 2, report.Sweeps)
	assert.Equal(t, int64(1), report.MovesApplied)
	assert.NotEmpty(t, sess.ID)

	assert.Equal(t, int64(80), costOf(t, data, mgr, pool))
}

// TestSession_Run_StopFuncHaltsImmediately checks that a stop predicate
// returning true halts Run before any move is applied, even when an
// improving move is available.
func TestSession_Run_StopFuncHaltsImmediately(t *testing.T) {
	data := crossingLine(t)
	mgr := penalty.New(10, 1)

	pool := route.NewPool(data)
	pool.Load([][]int{{1, 3, 2, 4}})

	sess := localsearch.NewSession(pool, mgr, []localsearch.Exchange{
		localsearch.Relocate1,
	}, nil)

	report := sess.Run(context.Background(), func() bool { return true })

	assert.Equal(t, int64(0), report.MovesApplied)
	assert.Equal(t, int64(120), report.FinalCost)
}
