package dataset

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Normalize returns X scaled to zero mean and unit variance per column,
// together with the parameters needed to undo it. Columns with zero
// population std are only centered.
//
// Errors: ErrEmpty for a nil or empty X.
//
// Complexity: O(r·c).
func Normalize(X mat.Matrix) (*mat.Dense, Params, error) {
	r, c, err := dims(X)
	if err != nil {
		return nil, Params{}, fmt.Errorf("dataset.Normalize: %w", err)
	}
	p := Params{Mean: make([]float64, c), Std: make([]float64, c)}
	col := make([]float64, r)
	out := mat.NewDense(r, c, nil)
	for j := 0; j < c; j++ {
		mat.Col(col, j, X)
		p.Mean[j], p.Std[j] = stat.PopMeanStdDev(col, nil)
		if p.Std[j] == 0 {
			p.Std[j] = 1
		}
		for i := 0; i < r; i++ {
			out.Set(i, j, (col[i]-p.Mean[j])/p.Std[j])
		}
	}

	return out, p, nil
}

// Dim returns the number of columns p was computed on.
func (p Params) Dim() int { return len(p.Mean) }

// Denormalize maps Y back to the original scale: Y·std + mean per column.
// An empty Y yields an empty matrix.
//
// Errors: ErrDimensionMismatch if Y does not have p.Dim() columns.
func (p Params) Denormalize(Y mat.Matrix) (*mat.Dense, error) {
	if Y == nil {
		return &mat.Dense{}, nil
	}
	r, c := Y.Dims()
	if r == 0 || c == 0 {
		return &mat.Dense{}, nil
	}
	if c != p.Dim() {
		return nil, fmt.Errorf("dataset.Denormalize: %d columns, want %d: %w", c, p.Dim(), ErrDimensionMismatch)
	}
	out := mat.NewDense(r, c, nil)
	out.Apply(func(i, j int, v float64) float64 {
		return v*p.Std[j] + p.Mean[j]
	}, Y)

	return out, nil
}

// dims validates X and returns its shape.
func dims(X mat.Matrix) (int, int, error) {
	if X == nil {
		return 0, 0, ErrEmpty
	}
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return 0, 0, ErrEmpty
	}
	return r, c, nil
}
