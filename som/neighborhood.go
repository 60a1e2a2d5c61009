package som

import (
	"math"

	"github.com/katalvlaran/lvsom/lattice"
)

// Schedule returns the effective learning rate and neighborhood radius at
// global iteration t of a run lasting total iterations:
//
//	lr(t) = lr0 · exp(−t/total)
//	σ(t)  = σ0  · exp(−t/total)
//
// Both decrease strictly with t and stay above zero for t ≤ total.
// A non-positive total yields the initial values.
// Complexity: O(1).
func (m *Map) Schedule(t, total int) (lr, sigma float64) {
	decay := 1.0
	if total > 0 {
		decay = math.Exp(-float64(t) / float64(total))
	}

	return m.opts.LearningRate * decay, m.opts.Sigma * decay
}

// NeighborhoodWeight is the Gaussian influence exp(−d²/(2σ²)) of a BMU on a
// cell at squared lattice distance d2.
func NeighborhoodWeight(d2, sigma float64) float64 {
	return math.Exp(-d2 / (2 * sigma * sigma))
}

// cutoffRadius returns the largest lattice radius whose Gaussian weight is at
// least eps: floor(sqrt(−2σ²·ln eps)). A non-positive eps means unbounded.
func cutoffRadius(sigma, eps float64, shape lattice.Shape) int {
	full := shape.Rows
	if shape.Cols > full {
		full = shape.Cols
	}
	if eps <= 0 {
		return full
	}
	r := math.Sqrt(-2 * sigma * sigma * math.Log(eps))
	if r >= float64(full) {
		return full
	}
	return int(r)
}

// update pulls every prototype in the neighborhood window of bmu towards x:
//
//	w += lr · h(cell) · (x − w)
//
// With a zero cutoff the window spans the whole lattice and the update is
// dense; otherwise cells beyond cutoffRadius are left untouched.
//
// Complexity: O(W*D), W = window cell count.
func (m *Map) update(x []float64, bmu lattice.Cell, lr, sigma float64) {
	s := m.grid.Shape()
	radius := cutoffRadius(sigma, m.opts.NeighborhoodCutoff, s)
	r0, r1, c0, c1 := s.Window(bmu, radius)
	twoSigma2 := 2 * sigma * sigma
	dim := m.grid.Dim

	var r, c, k int
	for r = r0; r <= r1; r++ {
		for c = c0; c <= c1; c++ {
			d2 := lattice.SquaredDistance(lattice.Cell{Row: r, Col: c}, bmu)
			step := lr * math.Exp(-d2/twoSigma2)
			off := (r*s.Cols + c) * dim
			w := m.grid.Data[off : off+dim]
			for k = 0; k < dim; k++ {
				w[k] += step * (x[k] - w[k])
			}
		}
	}
}
