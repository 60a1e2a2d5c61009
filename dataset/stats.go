package dataset

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Describe computes per-column mean, population std, min and max of X.
//
// Errors: ErrEmpty for a nil or empty X.
//
// Complexity: O(r·c).
func Describe(X mat.Matrix) (Stats, error) {
	r, c, err := dims(X)
	if err != nil {
		return Stats{}, fmt.Errorf("dataset.Describe: %w", err)
	}
	s := Stats{
		Samples:  r,
		Features: c,
		Mean:     make([]float64, c),
		Std:      make([]float64, c),
		Min:      make([]float64, c),
		Max:      make([]float64, c),
	}
	col := make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(col, j, X)
		s.Mean[j], s.Std[j] = stat.PopMeanStdDev(col, nil)
		s.Min[j] = floats.Min(col)
		s.Max[j] = floats.Max(col)
	}

	return s, nil
}

// Fprint writes a human-readable report of s to w.
func (s Stats) Fprint(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"Data Statistics:\n  Samples: %d\n  Features: %d\n  Mean: %s\n  Std: %s\n  Min: %s\n  Max: %s\n",
		s.Samples, s.Features, vec(s.Mean), vec(s.Std), vec(s.Min), vec(s.Max))
	return err
}

// vec formats v as "[a b c]" with 4 significant digits.
func vec(v []float64) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range v {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatFloat(x, 'g', 4, 64))
	}
	b.WriteByte(']')
	return b.String()
}
