package augment

import (
	"fmt"

	"github.com/katalvlaran/lvsom/som"
)

// interpolate draws, per sample: a base cell (r,c) with r < Rows−1 and
// c < Cols−1, one of the forward offsets {(0,1),(1,0),(1,1)}, and α ~ U[0,1),
// then emits α·w(r,c) + (1−α)·w(partner). Draws whose partner falls outside
// the lattice are skipped.
func (a *Augmenter) interpolate(g som.Grid, n int) ([][]float64, error) {
	if g.Rows < 2 || g.Cols < 2 {
		return nil, fmt.Errorf("%d×%d lattice has no forward neighbor pairs: %w", g.Rows, g.Cols, ErrInvalidInput)
	}
	s := g.Shape()
	out := make([][]float64, 0, n)
	for i := 0; i < n; i++ {
		r := a.rng.Intn(g.Rows - 1)
		c := a.rng.Intn(g.Cols - 1)
		d := forwardOffsets[a.rng.Intn(len(forwardOffsets))]
		r2, c2 := r+d[0], c+d[1]
		if !s.InBounds(r2, c2) {
			continue
		}
		alpha := a.rng.Float64()
		w1, w2 := g.Prototype(r, c), g.Prototype(r2, c2)
		row := make([]float64, g.Dim)
		for k := range row {
			row[k] = alpha*w1[k] + (1-alpha)*w2[k]
		}
		out = append(out, row)
	}

	return out, nil
}

// sampleNeurons picks a uniformly random cell per sample and adds
// independent 0.1·N(0,1) noise to each feature of its prototype.
func (a *Augmenter) sampleNeurons(g som.Grid, n int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		r := a.rng.Intn(g.Rows)
		c := a.rng.Intn(g.Cols)
		w := g.Prototype(r, c)
		row := make([]float64, g.Dim)
		for k := range row {
			row[k] = w[k] + a.rng.NormFloat64()*neuronNoise
		}
		out[i] = row
	}

	return out
}

// perturb draws n retained rows with replacement (all indices first), then
// for each finds its BMU, picks one prototype uniformly from the BMU's
// in-bounds 3×3 block (BMU included) and emits α·x + (1−α)·w with
// α ~ U[0.7,0.9). A row with no candidate prototype is emitted unchanged.
func (a *Augmenter) perturb(g som.Grid, n int) ([][]float64, error) {
	if len(a.retained) == 0 {
		return nil, fmt.Errorf("no retained training set: %w", ErrNotTrained)
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = a.rng.Intn(len(a.retained))
	}
	s := g.Shape()
	out := make([][]float64, n)
	for i, j := range idx {
		x := a.retained[j]
		row := make([]float64, len(x))
		copy(row, x)
		bmu, err := g.BMU(x)
		if err == nil {
			if block := s.Block(bmu, 1); len(block) > 0 {
				pick := block[a.rng.Intn(len(block))]
				alpha := perturbAlphaLo + (perturbAlphaHi-perturbAlphaLo)*a.rng.Float64()
				w := g.Prototype(pick.Row, pick.Col)
				for k := range row {
					row[k] = alpha*x[k] + (1-alpha)*w[k]
				}
			}
		}
		out[i] = row
	}

	return out, nil
}
