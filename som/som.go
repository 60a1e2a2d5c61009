package som

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvsom/lattice"
	"gonum.org/v1/gonum/mat"
)

// Map is a self-organizing map: a fixed Rows×Cols lattice of prototype
// vectors trained by competitive online learning.
//
// The grid is created lazily by the first successful Fit and never resized.
// A Map is not safe for concurrent use.
type Map struct {
	shape lattice.Shape
	opts  Options
	rng   *rand.Rand
	grid  Grid  // zero until the first Fit
	state State // Untrained → Trained
}

// New constructs an untrained rows×cols map.
//
// Returns:
//   - ErrInvalidInput if rows or cols is not positive.
//   - ErrOptionViolation if any option is invalid.
//
// Complexity: O(1); the grid itself is allocated by the first Fit.
func New(rows, cols int, opts ...Option) (*Map, error) {
	shape, err := lattice.NewShape(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("som.New: %w: %w", ErrInvalidInput, err)
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Map{shape: shape, opts: o, rng: NewRand(o)}, nil
}

// Shape returns the lattice shape.
func (m *Map) Shape() lattice.Shape { return m.shape }

// InputDim returns the fixed feature count, or 0 if it is not known yet.
func (m *Map) InputDim() int {
	if m.grid.Dim > 0 {
		return m.grid.Dim
	}
	return m.opts.InputDim
}

// State reports whether the map has been trained.
func (m *Map) State() State { return m.state }

// Trained is shorthand for State() == Trained.
func (m *Map) Trained() bool { return m.state == Trained }

// Options returns a copy of the map's options.
func (m *Map) Options() Options { return m.opts }

// initWeights allocates the grid and fills it with 0.1·N(0,1) draws in
// row-major (row, col, feature) order. Runs once per Map.
func (m *Map) initWeights(dim int) {
	m.grid = newGrid(m.shape.Rows, m.shape.Cols, dim)
	for i := range m.grid.Data {
		m.grid.Data[i] = m.rng.NormFloat64() * initScale
	}
}

// Fit trains the map on X (n_samples × input_dim) for the given number of
// epochs.
//
// Algorithm:
//  1. Validate X and epochs; nothing is mutated on failure.
//  2. On the first Fit, initialize the grid from the map's generator.
//  3. For each epoch draw a random permutation of row indices and, for the
//     row at position i:
//     t = epoch·n + i, T = epochs·n
//     bmu = argmin_cell ‖x − w_cell‖²
//     lr, σ = Schedule(t, T)
//     w_cell += lr · exp(−d²_lattice(cell, bmu)/(2σ²)) · (x − w_cell)
//  4. Mark the map Trained.
//
// When verbose is true a progress record is logged every 10 epochs.
//
// Errors:
//   - ErrInvalidInput: nil/empty X, feature-count mismatch, NaN/Inf, epochs < 1.
//
// Complexity: O(epochs · n · R·C·D) time, O(n·D) extra memory.
func (m *Map) Fit(X mat.Matrix, epochs int, verbose bool) error {
	rows, err := Rows(X, m.InputDim())
	if err != nil {
		return opErrorf(opFit, err)
	}
	if epochs < 1 {
		return opErrorf(opFit, fmt.Errorf("epochs must be >= 1 (%d): %w", epochs, ErrInvalidInput))
	}
	if m.grid.Data == nil {
		m.initWeights(len(rows[0]))
	}

	n := len(rows)
	total := epochs * n
	perm := make([]int, n)
	var e, i int
	for e = 0; e < epochs; e++ {
		permInto(perm, m.rng)
		for i = 0; i < n; i++ {
			x := rows[perm[i]]
			bmu, _ := m.grid.nearest(x)
			lr, sigma := m.Schedule(e*n+i, total)
			m.update(x, bmu, lr, sigma)
		}
		m.opts.OnEpoch(e+1, epochs)
		if verbose && (e+1)%verboseEvery == 0 {
			m.opts.Logger.Info("som: epoch completed", "epoch", e+1, "epochs", epochs)
		}
	}
	m.state = Trained

	return nil
}

// Predict returns the BMU of every row of X.
//
// Errors:
//   - ErrNotTrained before the first Fit.
//   - ErrInvalidInput for nil/empty X, feature-count mismatch or NaN/Inf.
//
// Complexity: O(n · R·C·D).
func (m *Map) Predict(X mat.Matrix) ([]lattice.Cell, error) {
	if !m.Trained() {
		return nil, opErrorf(opPredict, ErrNotTrained)
	}
	rows, err := Rows(X, m.grid.Dim)
	if err != nil {
		return nil, opErrorf(opPredict, err)
	}
	out := make([]lattice.Cell, len(rows))
	for i, x := range rows {
		out[i], _ = m.grid.nearest(x)
	}

	return out, nil
}

// BMU returns the best matching unit of a single sample.
// Errors: ErrNotTrained before the first Fit, ErrInvalidInput on a length mismatch.
func (m *Map) BMU(x []float64) (lattice.Cell, error) {
	if !m.Trained() {
		return lattice.Cell{}, opErrorf("BMU", ErrNotTrained)
	}
	return m.grid.BMU(x)
}

// Weights returns an independent copy of the prototype grid, shaped
// (Rows, Cols, InputDim). Returns ErrNotTrained before the first Fit.
// Complexity: O(R·C·D).
func (m *Map) Weights() (Grid, error) {
	if !m.Trained() {
		return Grid{}, opErrorf("Weights", ErrNotTrained)
	}
	return m.grid.Clone(), nil
}

// Reconstruct maps lattice cells back to feature space: row i of the result
// is the prototype currently stored at cells[i]. It is the inverse of Predict.
//
// Errors:
//   - ErrNotTrained before the first Fit.
//   - ErrInvalidInput for an empty cell list or a cell outside the lattice.
//
// Complexity: O(len(cells) · D).
func (m *Map) Reconstruct(cells []lattice.Cell) (*mat.Dense, error) {
	if !m.Trained() {
		return nil, opErrorf(opReconstruct, ErrNotTrained)
	}
	if len(cells) == 0 {
		return nil, opErrorf(opReconstruct, fmt.Errorf("no cells: %w", ErrInvalidInput))
	}
	out := mat.NewDense(len(cells), m.grid.Dim, nil)
	for i, c := range cells {
		w, err := m.grid.At(c)
		if err != nil {
			return nil, opErrorf(opReconstruct, err)
		}
		out.SetRow(i, w)
	}

	return out, nil
}
