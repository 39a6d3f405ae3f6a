package tws_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solverkit/cvrptw/tws"
)

// fixtureDist mirrors testfixture.OkSmall's distance matrix, duplicated
// here (rather than imported) to keep package tws independent of package
// problem, matching its documented decoupling from ProblemData.
func fixtureDist(a, b int) int64 {
	m := [][]int64{
		{0, 1544, 1944, 1931, 1476},
		{1544, 0, 1336, 1427, 1593},
		{1944, 1336, 0, 1226, 1742},
		{1931, 1427, 1226, 0, 1979},
		{1476, 1593, 1742, 1979, 0},
	}

	return m[a][b]
}

func TestMerge_RouteOneTimeWarp(t *testing.T) {
	// Route [1,3] on the OkSmall fixture: depot -> 1 -> 3 -> depot.
	depot := tws.Singleton(0, 0, 45000, 0)
	c1 := tws.Singleton(1, 15600, 22500, 360)
	c3 := tws.Singleton(3, 8400, 15300, 360)

	full := tws.MergeAll(fixtureDist, depot, c1, c3, depot)

	// Worked by hand: twR1 = 15'600 + 360 + 1'427 - 15'300.
	want := int64(15600 + 360 + 1427 - 15300)
	assert.Equal(t, want, full.TotalTimeWarp())
}

func TestMerge_RouteTwoNoTimeWarp(t *testing.T) {
	depot := tws.Singleton(0, 0, 45000, 0)
	c2 := tws.Singleton(2, 12000, 19500, 360)
	c4 := tws.Singleton(4, 8400, 15300, 360)

	full := tws.MergeAll(fixtureDist, depot, c2, c4, depot)
	assert.Equal(t, int64(0), full.TotalTimeWarp())
}

func TestMerge_Associativity(t *testing.T) {
	a := tws.Singleton(1, 15600, 22500, 360)
	b := tws.Singleton(2, 12000, 19500, 360)
	c := tws.Singleton(3, 8400, 15300, 360)

	left := tws.Merge(tws.Merge(a, b, fixtureDist), c, fixtureDist)
	right := tws.Merge(a, tws.Merge(b, c, fixtureDist), fixtureDist)

	assert.Equal(t, left, right)
}

func TestTotalTimeWarp_InfeasibleWindowAlone(t *testing.T) {
	// A segment whose own TWEarly already exceeds TWLate (e.g. after a
	// merge locked in an unreachable window) reports the gap as warp even
	// with TimeWarp == 0.
	s := tws.TWS{TWEarly: 100, TWLate: 40}
	assert.Equal(t, int64(60), s.TotalTimeWarp())
}

func TestSingleton_ZeroTimeWarp(t *testing.T) {
	s := tws.Singleton(7, 10, 20, 5)
	assert.Equal(t, int64(0), s.TotalTimeWarp())
	assert.Equal(t, int64(5), s.Duration)
}
