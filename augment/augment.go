package augment

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/lvsom/som"
	"gonum.org/v1/gonum/mat"
)

// Augmenter generates synthetic samples from a trained som.Map.
// It is not safe for concurrent use.
type Augmenter struct {
	m        *som.Map
	rng      *rand.Rand  // shared with m
	retained [][]float64 // snapshot of the last fitted matrix
}

// New constructs an Augmenter around a fresh rows×cols som.Map configured with
// opts (typically som.WithSeed). The Augmenter owns the map's generator: any
// som.WithRand among opts is honored, otherwise one is built from the seed.
//
// Errors: the som.New errors (ErrInvalidInput, som.ErrOptionViolation).
func New(rows, cols int, opts ...som.Option) (*Augmenter, error) {
	o := som.DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	rng := som.NewRand(o)
	all := make([]som.Option, 0, len(opts)+1)
	all = append(all, opts...)
	all = append(all, som.WithRand(rng))
	m, err := som.New(rows, cols, all...)
	if err != nil {
		return nil, fmt.Errorf("augment.New: %w", err)
	}

	return &Augmenter{m: m, rng: rng}, nil
}

// Map returns the underlying map. Training it directly bypasses the retained
// snapshot used by Perturb.
func (a *Augmenter) Map() *som.Map { return a.m }

// Trained reports whether the underlying map has been fitted.
func (a *Augmenter) Trained() bool { return a.m.Trained() }

// Retained returns a copy of the retained training set, or nil before Fit.
func (a *Augmenter) Retained() *mat.Dense {
	if len(a.retained) == 0 {
		return nil
	}
	return fromRows(a.retained, len(a.retained[0]))
}

// Fit trains the underlying map on X and replaces the retained training set
// with an independent copy of X. A failed Fit leaves both untouched.
func (a *Augmenter) Fit(X mat.Matrix, epochs int, verbose bool) error {
	if err := a.m.Fit(X, epochs, verbose); err != nil {
		return err
	}
	rows, err := som.Rows(X, a.m.InputDim())
	if err != nil {
		return err
	}
	a.retained = rows

	return nil
}

// Generate returns up to n synthetic rows (InputDim columns each) drawn with
// method. A zero n yields an empty matrix.
//
// Interpolate picks its base cell from rows [0,Rows−1) and cols [0,Cols−1) and
// re-checks the partner cell against the lattice bounds, skipping the draw if it
// falls outside; on any lattice with at least 2 rows and 2 columns every draw
// lands inside, so exactly n rows are returned. Lattices with a single row or
// column have no forward pair and are rejected.
//
// Errors:
//   - ErrNotTrained before Fit.
//   - ErrUnknownMethod for an unrecognized method.
//   - ErrInvalidInput for n < 0, or Interpolate on a lattice thinner than 2×2.
//
// Complexity: O(n·D) for Interpolate and SampleNeurons, O(n·R·C·D) for Perturb.
func (a *Augmenter) Generate(n int, method Method) (*mat.Dense, error) {
	if !a.m.Trained() {
		return nil, fmt.Errorf("augment.Generate: %w", ErrNotTrained)
	}
	if method < 0 || method >= methodCount {
		return nil, fmt.Errorf("augment.Generate: %w: %v", ErrUnknownMethod, method)
	}
	if n < 0 {
		return nil, fmt.Errorf("augment.Generate: n=%d: %w", n, ErrInvalidInput)
	}
	g, err := a.m.Weights()
	if err != nil {
		return nil, err
	}

	var rows [][]float64
	switch method {
	case Interpolate:
		rows, err = a.interpolate(g, n)
	case SampleNeurons:
		rows = a.sampleNeurons(g, n)
	case Perturb:
		rows, err = a.perturb(g, n)
	}
	if err != nil {
		return nil, fmt.Errorf("augment.Generate(%v): %w", method, err)
	}

	return fromRows(rows, g.Dim), nil
}

// GenerateByName is Generate with the method given by its canonical name.
func (a *Augmenter) GenerateByName(n int, name string) (*mat.Dense, error) {
	if !a.m.Trained() {
		return nil, fmt.Errorf("augment.Generate: %w", ErrNotTrained)
	}
	method, err := ParseMethod(name)
	if err != nil {
		return nil, fmt.Errorf("augment.Generate: %w", err)
	}
	return a.Generate(n, method)
}

// Augment returns X followed by floor(rows(X)·factor) synthetic rows drawn
// with method. Original rows keep their order and come first; synthetic rows
// follow in generation order.
//
// Errors:
//   - ErrInvalidInput for an invalid X (see som.Rows) or a negative/NaN factor.
//   - any Generate error.
func (a *Augmenter) Augment(X mat.Matrix, factor float64, method Method) (*mat.Dense, error) {
	if math.IsNaN(factor) || math.IsInf(factor, 0) || factor < 0 {
		return nil, fmt.Errorf("augment.Augment: factor=%g: %w", factor, ErrInvalidInput)
	}
	if _, err := som.Rows(X, a.m.InputDim()); err != nil {
		return nil, fmt.Errorf("augment.Augment: %w", err)
	}
	r, c := X.Dims()
	n := int(math.Floor(float64(r) * factor))
	synth, err := a.Generate(n, method)
	if err != nil {
		return nil, err
	}
	if synth.IsEmpty() {
		return mat.DenseCopyOf(X), nil
	}
	sr, _ := synth.Dims()
	out := mat.NewDense(r+sr, c, nil)
	out.Stack(X, synth)

	return out, nil
}

// fromRows packs equal-length rows into a Dense; no rows yields an empty Dense.
func fromRows(rows [][]float64, dim int) *mat.Dense {
	if len(rows) == 0 || dim == 0 {
		return &mat.Dense{}
	}
	out := mat.NewDense(len(rows), dim, nil)
	for i, row := range rows {
		out.SetRow(i, row)
	}
	return out
}
