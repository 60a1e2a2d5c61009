package som

import (
	"fmt"

	"github.com/katalvlaran/lvsom/lattice"
)

// Grid is a Rows×Cols lattice of Dim-length prototype vectors.
// Data holds Rows*Cols*Dim values in row-major (row, col, feature) order:
// the prototype of cell (r,c) starts at offset (r*Cols + c)*Dim.
type Grid struct {
	Rows, Cols, Dim int
	Data            []float64
}

// newGrid allocates a zero-filled grid.
// Complexity: O(R*C*D) time and memory.
func newGrid(rows, cols, dim int) Grid {
	return Grid{Rows: rows, Cols: cols, Dim: dim, Data: make([]float64, rows*cols*dim)}
}

// Shape returns the lattice the grid is laid out on.
func (g Grid) Shape() lattice.Shape {
	return lattice.Shape{Rows: g.Rows, Cols: g.Cols}
}

// Prototype returns the prototype stored at (row, col) as a sub-slice of Data.
// Writes through the slice mutate the grid.
// Complexity: O(1).
func (g Grid) Prototype(row, col int) []float64 {
	off := (row*g.Cols + col) * g.Dim
	return g.Data[off : off+g.Dim : off+g.Dim]
}

// At returns the prototype at c, or ErrInvalidInput if c is outside the lattice.
func (g Grid) At(c lattice.Cell) ([]float64, error) {
	if !g.Shape().Contains(c) {
		return nil, fmt.Errorf("Grid.At(%d,%d): %w", c.Row, c.Col, ErrInvalidInput)
	}
	return g.Prototype(c.Row, c.Col), nil
}

// Clone returns a deep copy of the grid.
// Complexity: O(R*C*D) time and memory.
func (g Grid) Clone() Grid {
	out := g
	out.Data = make([]float64, len(g.Data))
	copy(out.Data, g.Data)

	return out
}

// BMU returns the best matching unit for x: the cell whose prototype has the
// smallest squared Euclidean distance to x. Ties go to the first cell in
// row-major order.
//
// Returns ErrInvalidInput if len(x) != Dim or the grid is empty.
// Complexity: O(R*C*D).
func (g Grid) BMU(x []float64) (lattice.Cell, error) {
	if len(g.Data) == 0 {
		return lattice.Cell{}, fmt.Errorf("Grid.BMU: empty grid: %w", ErrInvalidInput)
	}
	if len(x) != g.Dim {
		return lattice.Cell{}, fmt.Errorf("Grid.BMU: got %d features, want %d: %w", len(x), g.Dim, ErrInvalidInput)
	}
	c, _ := g.nearest(x)

	return c, nil
}

// nearest scans cells in row-major order and keeps the first strict minimum.
// Callers guarantee len(x) == g.Dim and a non-empty grid.
func (g Grid) nearest(x []float64) (lattice.Cell, float64) {
	best, bestD := 0, sqDist(g.Data[:g.Dim], x)
	n := g.Rows * g.Cols
	for i := 1; i < n; i++ {
		off := i * g.Dim
		if d := sqDist(g.Data[off:off+g.Dim], x); d < bestD {
			best, bestD = i, d
		}
	}

	return g.Shape().Coordinate(best), bestD
}

// nearestTwo returns the best and second-best cells for x.
// On a single-cell grid both results are that cell.
func (g Grid) nearestTwo(x []float64) (first, second lattice.Cell) {
	n := g.Rows * g.Cols
	b1, b2 := 0, -1
	d1, d2 := sqDist(g.Data[:g.Dim], x), 0.0
	for i := 1; i < n; i++ {
		off := i * g.Dim
		d := sqDist(g.Data[off:off+g.Dim], x)
		switch {
		case d < d1:
			b2, d2 = b1, d1
			b1, d1 = i, d
		case b2 < 0 || d < d2:
			b2, d2 = i, d
		}
	}
	if b2 < 0 {
		b2 = b1
	}
	s := g.Shape()

	return s.Coordinate(b1), s.Coordinate(b2)
}

// sqDist returns the squared Euclidean distance between equal-length vectors.
func sqDist(a, b []float64) float64 {
	var s float64
	for k := range a {
		d := a[k] - b[k]
		s += d * d
	}
	return s
}
