package penalty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solverkit/cvrptw/penalty"
)

func TestLoadPenalty(t *testing.T) {
	m := penalty.New(20, 6)

	assert.Equal(t, int64(0), m.LoadPenalty(0))
	assert.Equal(t, int64(0), m.LoadPenalty(-5))
	assert.Equal(t, int64(160), m.LoadPenalty(8))
}

func TestTimeWarpPenalty(t *testing.T) {
	m := penalty.New(20, 6)

	assert.Equal(t, int64(0), m.TimeWarpPenalty(0))
	assert.Equal(t, int64(12522), m.TimeWarpPenalty(2087))
}

func TestSetCoeff_Retunes(t *testing.T) {
	m := penalty.New(1, 1)
	m.SetCapacityCoeff(100)
	m.SetTimeWarpCoeff(50)

	assert.Equal(t, int64(100), m.CapacityCoeff())
	assert.Equal(t, int64(50), m.TimeWarpCoeff())
	assert.Equal(t, int64(200), m.LoadPenalty(2))
}

func TestNew_ClampsNonPositiveCoefficients(t *testing.T) {
	m := penalty.New(0, -3)

	assert.Equal(t, int64(1), m.CapacityCoeff())
	assert.Equal(t, int64(1), m.TimeWarpCoeff())
}

func TestOverflowSafety_WideAccumulator(t *testing.T) {
	// Large warps multiplied by a large coefficient must not overflow a
	// 64-bit accumulator.
	m := penalty.New(1_000_000, 1_000_000)
	got := m.TimeWarpPenalty(1_000_000_000)
	assert.Equal(t, int64(1_000_000_000_000_000), got)
}
