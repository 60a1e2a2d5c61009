package dataset

import "errors"

// Sentinel errors.
var (
	// ErrEmpty is returned for nil matrices or matrices without rows or columns.
	ErrEmpty = errors.New("dataset: empty matrix")

	// ErrDimensionMismatch is returned when a matrix does not have the
	// expected number of columns.
	ErrDimensionMismatch = errors.New("dataset: dimension mismatch")

	// ErrFormat is returned for malformed files.
	ErrFormat = errors.New("dataset: malformed data")
)

// Params holds the per-column statistics used by Normalize.
type Params struct {
	Mean []float64
	Std  []float64 // population std; zero entries replaced by 1
}

// Stats summarizes a matrix column by column.
type Stats struct {
	Samples  int
	Features int
	Mean     []float64
	Std      []float64 // population std
	Min      []float64
	Max      []float64
}
