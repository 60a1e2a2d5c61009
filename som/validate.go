package som

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Operation name constants for unified error wrapping.
const (
	opFit         = "Fit"
	opPredict     = "Predict"
	opReconstruct = "Reconstruct"
	opQE          = "QuantizationError"
	opTE          = "TopographicError"
	opCluster     = "Cluster"
)

// Rows copies X into one slice per row, rejecting nil or empty matrices,
// a column count different from dim (when dim > 0), and NaN/±Inf values.
// All failures wrap ErrInvalidInput.
//
// Complexity: O(r*c) time and memory.
func Rows(X mat.Matrix, dim int) ([][]float64, error) {
	if X == nil {
		return nil, fmt.Errorf("nil matrix: %w", ErrInvalidInput)
	}
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("empty %d×%d matrix: %w", r, c, ErrInvalidInput)
	}
	if dim > 0 && c != dim {
		return nil, fmt.Errorf("got %d features, want %d: %w", c, dim, ErrInvalidInput)
	}

	out := make([][]float64, r)
	backing := make([]float64, r*c)
	var i, j int
	for i = 0; i < r; i++ {
		row := backing[i*c : (i+1)*c : (i+1)*c]
		mat.Row(row, i, X)
		for j = 0; j < c; j++ {
			if math.IsNaN(row[j]) || math.IsInf(row[j], 0) {
				return nil, fmt.Errorf("non-finite value at (%d,%d): %w", i, j, ErrInvalidInput)
			}
		}
		out[i] = row
	}

	return out, nil
}

// opErrorf attaches a Map method name to err.
func opErrorf(op string, err error) error {
	return fmt.Errorf("Map.%s: %w", op, err)
}
