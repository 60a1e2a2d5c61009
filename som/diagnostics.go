package som

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvsom/lattice"
	"github.com/pointlander/kmeans"
	"gonum.org/v1/gonum/mat"
)

// QuantizationError returns the mean Euclidean distance between each row of
// X and its BMU prototype. Lower is a tighter fit.
//
// Errors: ErrNotTrained, ErrInvalidInput (see Predict).
// Complexity: O(n · R·C·D).
func (m *Map) QuantizationError(X mat.Matrix) (float64, error) {
	if !m.Trained() {
		return 0, opErrorf(opQE, ErrNotTrained)
	}
	rows, err := Rows(X, m.grid.Dim)
	if err != nil {
		return 0, opErrorf(opQE, err)
	}
	var sum float64
	for _, x := range rows {
		_, d2 := m.grid.nearest(x)
		sum += math.Sqrt(d2)
	}

	return sum / float64(len(rows)), nil
}

// TopographicError returns the share of rows of X whose best and second-best
// matching units are not 8-adjacent on the lattice. A single-cell map has
// topographic error 0.
//
// Errors: ErrNotTrained, ErrInvalidInput (see Predict).
// Complexity: O(n · R·C·D).
func (m *Map) TopographicError(X mat.Matrix) (float64, error) {
	if !m.Trained() {
		return 0, opErrorf(opTE, ErrNotTrained)
	}
	rows, err := Rows(X, m.grid.Dim)
	if err != nil {
		return 0, opErrorf(opTE, err)
	}
	if m.shape.Size() < 2 {
		return 0, nil
	}
	bad := 0
	for _, x := range rows {
		first, second := m.grid.nearestTwo(x)
		if !lattice.Adjacent(first, second, lattice.Conn8) {
			bad++
		}
	}

	return float64(bad) / float64(len(rows)), nil
}

// Cluster groups the trained prototypes into k clusters with k-means and
// returns one label per cell in row-major order. Feed the labels to
// lattice.Shape.Regions to find contiguous clusters on the map.
//
// seed drives the k-means initialization only. It is independent of the
// map's own generator, which Cluster never draws from, so clustering leaves
// later training and sampling unchanged. Equal seeds give equal labels.
//
// Errors:
//   - ErrNotTrained before the first Fit.
//   - ErrInvalidInput if k is not in [1, Rows·Cols].
//
// Complexity: dominated by k-means over R·C points of dimension D.
func (m *Map) Cluster(k int, seed int64) ([]int, error) {
	if !m.Trained() {
		return nil, opErrorf(opCluster, ErrNotTrained)
	}
	n := m.shape.Size()
	if k < 1 || k > n {
		return nil, opErrorf(opCluster, fmt.Errorf("k=%d outside [1,%d]: %w", k, n, ErrInvalidInput))
	}
	points := make([][]float64, n)
	for i := 0; i < n; i++ {
		c := m.shape.Coordinate(i)
		p := make([]float64, m.grid.Dim)
		copy(p, m.grid.Prototype(c.Row, c.Col))
		points[i] = p
	}
	labels, _, err := kmeans.Kmeans(seed, points, k, kmeans.SquaredEuclideanDistance, -1)
	if err != nil {
		return nil, opErrorf(opCluster, err)
	}

	return labels, nil
}
