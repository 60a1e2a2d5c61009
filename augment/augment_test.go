package augment_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvsom/augment"
	"github.com/katalvlaran/lvsom/lattice"
	"github.com/katalvlaran/lvsom/som"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// twoClusters builds n rows (n even) around (2,2) and (-2,-2) with σ=0.5.
func twoClusters(n int, seed int64) *mat.Dense {
	rng := rand.New(rand.NewSource(seed))
	X := mat.NewDense(n, 2, nil)
	for i := 0; i < n; i++ {
		center := 2.0
		if i%2 == 1 {
			center = -2.0
		}
		X.Set(i, 0, center+0.5*rng.NormFloat64())
		X.Set(i, 1, center+0.5*rng.NormFloat64())
	}
	return X
}

// trained returns an Augmenter fitted on X.
func trained(t *testing.T, rows, cols int, X mat.Matrix, epochs int, seed int64) *augment.Augmenter {
	t.Helper()
	a, err := augment.New(rows, cols, som.WithSeed(seed))
	require.NoError(t, err)
	require.NoError(t, a.Fit(X, epochs, false))
	return a
}

// minDist returns the smallest Euclidean distance from x to any prototype.
func minDist(g som.Grid, x []float64) float64 {
	best := math.Inf(1)
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			w := g.Prototype(r, c)
			var s float64
			for k := range w {
				d := w[k] - x[k]
				s += d * d
			}
			best = math.Min(best, math.Sqrt(s))
		}
	}
	return best
}

//----------------------------------------------------------------------------//
// Methods
//----------------------------------------------------------------------------//

// TestParseMethod round-trips canonical names.
func TestParseMethod(t *testing.T) {
	for _, m := range augment.Methods() {
		got, err := augment.ParseMethod(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	for _, name := range []string{"bogus", "", " sample_neurons", "Sample_Neurons", "PERTURB", "interpolate\n"} {
		_, err := augment.ParseMethod(name)
		assert.ErrorIs(t, err, augment.ErrUnknownMethod, "%q", name)
	}
	assert.Equal(t, "Method(9)", augment.Method(9).String())
}

//----------------------------------------------------------------------------//
// Error conditions
//----------------------------------------------------------------------------//

// TestGenerate_NotTrained covers every method on an unfitted Augmenter.
func TestGenerate_NotTrained(t *testing.T) {
	a, err := augment.New(3, 3, som.WithSeed(1))
	require.NoError(t, err)

	_, err = a.GenerateByName(1, "perturb")
	require.ErrorIs(t, err, augment.ErrNotTrained)
	require.ErrorIs(t, err, som.ErrNotTrained)
	for _, m := range augment.Methods() {
		_, err = a.Generate(1, m)
		assert.ErrorIs(t, err, augment.ErrNotTrained, "method %v", m)
	}
	_, err = a.Augment(twoClusters(4, 1), 0.5, augment.Interpolate)
	assert.ErrorIs(t, err, augment.ErrNotTrained)
	assert.Nil(t, a.Retained())
}

// TestGenerate_UnknownMethod leaves the grid untouched.
func TestGenerate_UnknownMethod(t *testing.T) {
	a := trained(t, 3, 3, twoClusters(10, 1), 3, 1)
	before, err := a.Map().Weights()
	require.NoError(t, err)

	_, err = a.GenerateByName(5, "bogus")
	require.ErrorIs(t, err, augment.ErrUnknownMethod)
	_, err = a.Generate(5, augment.Method(-1))
	require.ErrorIs(t, err, augment.ErrUnknownMethod)

	after, err := a.Map().Weights()
	require.NoError(t, err)
	assert.Equal(t, before.Data, after.Data)
}

// TestGenerate_InvalidInput covers negative counts and thin lattices.
func TestGenerate_InvalidInput(t *testing.T) {
	a := trained(t, 1, 4, twoClusters(10, 1), 2, 1)
	_, err := a.Generate(-1, augment.SampleNeurons)
	assert.ErrorIs(t, err, augment.ErrInvalidInput)

	_, err = a.Generate(3, augment.Interpolate)
	assert.ErrorIs(t, err, augment.ErrInvalidInput, "a single-row lattice has no forward pairs")

	out, err := a.Generate(3, augment.SampleNeurons)
	require.NoError(t, err)
	r, c := out.Dims()
	assert.Equal(t, []int{3, 2}, []int{r, c})
}

// TestGenerate_Zero returns an empty matrix.
func TestGenerate_Zero(t *testing.T) {
	a := trained(t, 2, 2, twoClusters(6, 1), 2, 1)
	for _, m := range augment.Methods() {
		out, err := a.Generate(0, m)
		require.NoError(t, err)
		assert.True(t, out.IsEmpty(), "method %v", m)
	}
}

//----------------------------------------------------------------------------//
// Strategies
//----------------------------------------------------------------------------//

// TestSampleNeurons_Scenario: 2 features, 50 rows, 5×5, seed 42, 20 epochs,
// 10 samples; each row lies within 3×0.1 of some prototype.
//
// The noise is 0.1·N(0,1) per feature, so 3×0.1 is a per-feature 3σ bound.
// Over 2 features the Euclidean distance of a row within that per-feature
// bound is at most 3·0.1·√2; a plain Euclidean 0.3 is exceeded by about 1%
// of draws (P = exp(−4.5) for χ with 2 degrees of freedom).
func TestSampleNeurons_Scenario(t *testing.T) {
	a := trained(t, 5, 5, twoClusters(50, 42), 20, 42)
	out, err := a.GenerateByName(10, "sample_neurons")
	require.NoError(t, err)
	r, c := out.Dims()
	require.Equal(t, 10, r)
	require.Equal(t, 2, c)

	g, err := a.Map().Weights()
	require.NoError(t, err)
	bound := 3 * 0.1 * math.Sqrt(2)
	for i := 0; i < r; i++ {
		assert.LessOrEqual(t, minDist(g, mat.Row(nil, i, out)), bound, "row %d", i)
	}
}

// TestInterpolate_OnSegment checks that each row lies on a segment between
// forward-adjacent prototypes.
func TestInterpolate_OnSegment(t *testing.T) {
	a := trained(t, 4, 5, twoClusters(30, 3), 5, 3)
	out, err := a.Generate(40, augment.Interpolate)
	require.NoError(t, err)
	r, _ := out.Dims()
	require.Equal(t, 40, r, "every draw lands inside a lattice of at least 2×2")

	g, _ := a.Map().Weights()
	for i := 0; i < r; i++ {
		x := mat.Row(nil, i, out)
		found := false
		for rr := 0; rr < g.Rows-1 && !found; rr++ {
			for cc := 0; cc < g.Cols-1 && !found; cc++ {
				for _, d := range [][2]int{{0, 1}, {1, 0}, {1, 1}} {
					if onSegment(x, g.Prototype(rr, cc), g.Prototype(rr+d[0], cc+d[1])) {
						found = true
						break
					}
				}
			}
		}
		assert.True(t, found, "row %d is not between forward neighbors", i)
	}
}

// onSegment reports whether x = α·p + (1−α)·q for some α in [0,1].
func onSegment(x, p, q []float64) bool {
	alpha := math.NaN()
	for k := range x {
		den := p[k] - q[k]
		if math.Abs(den) < 1e-12 {
			if math.Abs(x[k]-q[k]) > 1e-9 {
				return false
			}
			continue
		}
		a := (x[k] - q[k]) / den
		if math.IsNaN(alpha) {
			alpha = a
		} else if math.Abs(alpha-a) > 1e-6 {
			return false
		}
	}
	return math.IsNaN(alpha) || (alpha >= -1e-9 && alpha <= 1+1e-9)
}

// TestPerturb_StaysNearOriginals checks the mixing bound against retained rows.
func TestPerturb_StaysNearOriginals(t *testing.T) {
	X := twoClusters(20, 5)
	a := trained(t, 3, 3, X, 10, 5)
	out, err := a.Generate(25, augment.Perturb)
	require.NoError(t, err)
	r, _ := out.Dims()
	require.Equal(t, 25, r)

	g, _ := a.Map().Weights()
	// each output is x + (1−α)(w − x) with 1−α ≤ 0.3
	for i := 0; i < r; i++ {
		y := mat.Row(nil, i, out)
		ok := false
		for j := 0; j < 20 && !ok; j++ {
			x := mat.Row(nil, j, X)
			bmu, err := g.BMU(x)
			require.NoError(t, err)
			for _, c := range g.Shape().Block(bmu, 1) {
				if mixedWithin(y, x, g.Prototype(c.Row, c.Col)) {
					ok = true
					break
				}
			}
		}
		assert.True(t, ok, "row %d is not a 0.7–0.9 mix of a retained row and a BMU-block prototype", i)
	}
}

// mixedWithin reports whether y = α·x + (1−α)·w for α in [0.7, 0.9].
func mixedWithin(y, x, w []float64) bool {
	for k := range y {
		den := x[k] - w[k]
		if math.Abs(den) < 1e-12 {
			continue
		}
		a := (y[k] - w[k]) / den
		if a < 0.7-1e-9 || a > 0.9+1e-9 {
			return false
		}
	}
	return true
}

// TestGenerate_SeedReproducible runs each method twice with the same seed.
func TestGenerate_SeedReproducible(t *testing.T) {
	X := twoClusters(24, 7)
	for _, m := range augment.Methods() {
		a1 := trained(t, 4, 4, X, 5, 99)
		a2 := trained(t, 4, 4, X, 5, 99)
		o1, err := a1.Generate(15, m)
		require.NoError(t, err)
		o2, err := a2.Generate(15, m)
		require.NoError(t, err)
		assert.True(t, mat.Equal(o1, o2), "method %v", m)
	}
}

//----------------------------------------------------------------------------//
// Fit and Augment
//----------------------------------------------------------------------------//

// TestFit_RetainsIndependentCopy mutates the caller's matrix after Fit.
func TestFit_RetainsIndependentCopy(t *testing.T) {
	X := twoClusters(8, 2)
	a := trained(t, 2, 2, X, 2, 2)
	want := mat.DenseCopyOf(X)
	X.Set(0, 0, 1e6)

	assert.True(t, mat.Equal(want, a.Retained()))

	// A new fit replaces the snapshot wholesale; a failed one keeps it.
	Y := twoClusters(6, 3)
	require.NoError(t, a.Fit(Y, 1, false))
	assert.True(t, mat.Equal(Y, a.Retained()))
	require.ErrorIs(t, a.Fit(mat.NewDense(1, 3, nil), 1, false), augment.ErrInvalidInput)
	assert.True(t, mat.Equal(Y, a.Retained()))
}

// TestAugment_RowCountLaw checks N + floor(N·f) rows with originals first.
func TestAugment_RowCountLaw(t *testing.T) {
	X := twoClusters(30, 4)
	a := trained(t, 4, 4, X, 4, 4)
	cases := []struct {
		factor float64
		want   int
	}{
		{0, 30},
		{0.5, 45},
		{0.33, 39},
		{1, 60},
		{2.5, 105},
	}
	for _, m := range augment.Methods() {
		for _, tc := range cases {
			out, err := a.Augment(X, tc.factor, m)
			require.NoError(t, err)
			r, c := out.Dims()
			require.Equal(t, tc.want, r, "method %v factor %g", m, tc.factor)
			require.Equal(t, 2, c)
			head := out.Slice(0, 30, 0, 2)
			require.True(t, mat.Equal(X, head), "originals must come first")
		}
	}
}

// TestAugment_InvalidInput covers bad factors and matrices.
func TestAugment_InvalidInput(t *testing.T) {
	a := trained(t, 2, 2, twoClusters(6, 1), 2, 1)
	for _, f := range []float64{-0.1, math.NaN(), math.Inf(1)} {
		_, err := a.Augment(twoClusters(6, 1), f, augment.Perturb)
		assert.ErrorIs(t, err, augment.ErrInvalidInput)
	}
	_, err := a.Augment(mat.NewDense(2, 3, nil), 1, augment.Perturb)
	assert.ErrorIs(t, err, augment.ErrInvalidInput)
}

// TestPerturb_NeedsRetainedSet trains the map directly, bypassing Fit.
func TestPerturb_NeedsRetainedSet(t *testing.T) {
	a, err := augment.New(2, 2, som.WithSeed(1))
	require.NoError(t, err)
	require.NoError(t, a.Map().Fit(twoClusters(4, 1), 1, false))

	_, err = a.Generate(2, augment.Perturb)
	assert.ErrorIs(t, err, augment.ErrNotTrained)
	_, err = a.Generate(2, augment.SampleNeurons)
	assert.NoError(t, err)
}

// TestNew_PropagatesErrors surfaces som construction errors.
func TestNew_PropagatesErrors(t *testing.T) {
	_, err := augment.New(0, 2)
	assert.ErrorIs(t, err, augment.ErrInvalidInput)
	_, err = augment.New(2, 2, som.WithSigma(-1))
	assert.ErrorIs(t, err, som.ErrOptionViolation)

	a, err := augment.New(3, 2, som.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, lattice.Shape{Rows: 3, Cols: 2}, a.Map().Shape())
	assert.False(t, a.Trained())
}
