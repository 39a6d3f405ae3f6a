package problem_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solverkit/cvrptw/problem"
	"github.com/solverkit/cvrptw/testfixture"
)

func TestDistPath(t *testing.T) {
	data := testfixture.OkSmall()

	assert.Equal(t, int64(1544+1336), data.DistPath(0, 1, 2))
	assert.Equal(t, data.Dist(0, 1), data.DistPath(0, 1))
}

func TestNbClients(t *testing.T) {
	data := testfixture.OkSmall()
	assert.Equal(t, 4, data.NbClients())
}

func TestNew_RejectsAsymmetricMatrix(t *testing.T) {
	clients := []problem.Client{{}, {Demand: 1}}
	dist := [][]int64{{0, 1}, {2, 0}}

	_, err := problem.New(clients, dist, 1, 10)
	require.ErrorIs(t, err, problem.ErrInvalidInstance)
}

func TestNew_RejectsNegativeDemand(t *testing.T) {
	clients := []problem.Client{{}, {Demand: -1}}
	dist := [][]int64{{0, 1}, {1, 0}}

	_, err := problem.New(clients, dist, 1, 10)
	require.ErrorIs(t, err, problem.ErrInvalidInstance)
}

func TestNew_RejectsMalformedWindow(t *testing.T) {
	clients := []problem.Client{{}, {TWEarly: 100, TWLate: 50}}
	dist := [][]int64{{0, 1}, {1, 0}}

	_, err := problem.New(clients, dist, 1, 10)
	require.ErrorIs(t, err, problem.ErrInvalidInstance)
}

func TestNew_RejectsDimensionMismatch(t *testing.T) {
	clients := []problem.Client{{}, {}}
	dist := [][]int64{{0, 1, 2}, {1, 0, 3}, {2, 3, 0}}

	_, err := problem.New(clients, dist, 1, 10)
	require.ErrorIs(t, err, problem.ErrInvalidInstance)
}

func TestLoad_ParsesPlainTextInstance(t *testing.T) {
	text := `
# nbClients nbVehicles vehicleCapacity
2 1 10
0 0 0 0 0 1000 0 0
1 10 0 3 0 500 5 0
2 0 10 4 0 500 5 0
`
	data, err := problem.Load(strings.NewReader(text))
	require.NoError(t, err)
	assert.Equal(t, 2, data.NbClients())
	assert.Equal(t, int64(10), data.Dist(0, 1))
	assert.Equal(t, int64(10), data.Dist(0, 2))
}

func TestLoad_RejectsBadHeader(t *testing.T) {
	_, err := problem.Load(strings.NewReader("not a header\n"))
	require.ErrorIs(t, err, problem.ErrInvalidInstance)
}

func TestGenerateInstance_Deterministic(t *testing.T) {
	a, err := problem.GenerateInstance(20, 4, 50, problem.WithSeed(42))
	require.NoError(t, err)
	b, err := problem.GenerateInstance(20, 4, 50, problem.WithSeed(42))
	require.NoError(t, err)

	assert.Equal(t, a.Clients, b.Clients)
	for i := 0; i <= 20; i++ {
		for j := 0; j <= 20; j++ {
			assert.Equal(t, a.Dist(i, j), b.Dist(i, j))
		}
	}
}
