package problem

import "math"

// DistanceMatrix is a flat, row-major n×n matrix of non-negative int64
// distances, grounded on the teacher's matrix.Dense (same flat-slice,
// row-major storage, without its bound-checked accessors), adapted to the integer
// domain the specification requires: distances, demands and time fields
// are 32-bit-safe integers, never float64, so there is no NaN/Inf policy
// to carry over from the original.
type DistanceMatrix struct {
	n    int
	data []int64
}

// newDistanceMatrix allocates an n×n matrix of zeros.
func newDistanceMatrix(n int) DistanceMatrix {
	return DistanceMatrix{n: n, data: make([]int64, n*n)}
}

func (m *DistanceMatrix) at(i, j int) int64 {
	return m.data[i*m.n+j]
}

func (m *DistanceMatrix) set(i, j int, v int64) {
	m.data[i*m.n+j] = v
}

// validateSymmetricNonNegative checks the matrix is square (handled by
// construction), symmetric and non-negative. It is the integer analogue of
// the teacher's matrix validators.go symmetry/non-negativity checks.
func (m *DistanceMatrix) validateSymmetricNonNegative() error {
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			v := m.at(i, j)
			if v < 0 {
				return ErrInvalidInstance
			}
			if v != m.at(j, i) {
				return ErrInvalidInstance
			}
		}
		if m.at(i, i) != 0 {
			return ErrInvalidInstance
		}
	}

	return nil
}

// deriveEuclidean fills an n×n DistanceMatrix from client coordinates using
// rounded Euclidean distance, for instances that supply coordinates but no
// explicit matrix.
func deriveEuclidean(clients []Client) DistanceMatrix {
	n := len(clients)
	m := newDistanceMatrix(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dx := float64(clients[i].X - clients[j].X)
			dy := float64(clients[i].Y - clients[j].Y)
			d := int64(math.Round(math.Hypot(dx, dy)))
			m.set(i, j, d)
			m.set(j, i, d)
		}
	}

	return m
}
