package render

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/katalvlaran/lvsom/som"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Sentinel errors.
var (
	// ErrEmptyGrid is returned when the grid holds no prototypes.
	ErrEmptyGrid = errors.New("render: empty grid")

	// ErrFeature is returned when a projected feature is out of range.
	ErrFeature = errors.New("render: feature index out of range")

	// ErrOptionViolation is returned when an option is invalid.
	ErrOptionViolation = errors.New("render: invalid option")
)

// Options configures Lattice.
type Options struct {
	Title string
	Size  vg.Length // square canvas side
	X, Y  int       // projected feature indices

	err error
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions projects features 0 and 1 onto an 8-inch canvas.
func DefaultOptions() Options {
	return Options{Title: "SOM lattice", Size: 8 * vg.Inch, X: 0, Y: 1}
}

// WithTitle sets the plot title.
func WithTitle(title string) Option {
	return func(o *Options) { o.Title = title }
}

// WithSize sets the canvas side; it must be positive.
func WithSize(size vg.Length) Option {
	return func(o *Options) {
		if size <= 0 {
			o.err = fmt.Errorf("%w: size must be positive, got %v", ErrOptionViolation, size)
			return
		}
		o.Size = size
	}
}

// WithFeatures selects the two features drawn on the x and y axes.
func WithFeatures(x, y int) Option {
	return func(o *Options) {
		if x < 0 || y < 0 {
			o.err = fmt.Errorf("%w: negative feature index (%d, %d)", ErrOptionViolation, x, y)
			return
		}
		o.X, o.Y = x, y
	}
}

var (
	dataColor  = color.RGBA{R: 120, G: 120, B: 120, A: 160}
	protoColor = color.RGBA{R: 200, G: 30, B: 30, A: 255}
	edgeColor  = color.RGBA{R: 30, G: 30, B: 200, A: 255}
)

// Lattice saves a plot of data (may be nil) and of g's prototypes joined by
// their 4-neighbor lattice edges to path.
//
// Errors:
//   - ErrEmptyGrid for a grid without prototypes.
//   - ErrFeature if a projected feature is not below g.Dim, or data has a
//     different column count than g.Dim.
//   - ErrOptionViolation for invalid options; plotter and file errors are wrapped.
//
// Complexity: O(n + R·C).
func Lattice(path string, data mat.Matrix, g som.Grid, opts ...Option) error {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return o.err
	}
	if g.Rows == 0 || g.Cols == 0 || g.Dim == 0 {
		return ErrEmptyGrid
	}
	if o.X >= g.Dim || o.Y >= g.Dim {
		return fmt.Errorf("render.Lattice: features (%d, %d) with dim %d: %w", o.X, o.Y, g.Dim, ErrFeature)
	}

	p := plot.New()
	p.Title.Text = o.Title
	p.X.Label.Text = fmt.Sprintf("feature %d", o.X)
	p.Y.Label.Text = fmt.Sprintf("feature %d", o.Y)

	if data != nil {
		r, c := data.Dims()
		if r > 0 && c != g.Dim {
			return fmt.Errorf("render.Lattice: data has %d columns, grid %d: %w", c, g.Dim, ErrFeature)
		}
		if r > 0 {
			pts := make(plotter.XYs, r)
			for i := range pts {
				pts[i] = plotter.XY{X: data.At(i, o.X), Y: data.At(i, o.Y)}
			}
			scatter, err := plotter.NewScatter(pts)
			if err != nil {
				return fmt.Errorf("render.Lattice: %w", err)
			}
			scatter.GlyphStyle.Color = dataColor
			scatter.GlyphStyle.Radius = vg.Length(1)
			scatter.GlyphStyle.Shape = draw.CircleGlyph{}
			p.Add(scatter)
			p.Legend.Add("data", scatter)
		}
	}

	// One polyline per lattice row and per lattice column covers every
	// 4-neighbor edge exactly once.
	for _, line := range edges(g, o.X, o.Y) {
		if len(line) < 2 {
			continue
		}
		l, err := plotter.NewLine(line)
		if err != nil {
			return fmt.Errorf("render.Lattice: %w", err)
		}
		l.LineStyle.Color = edgeColor
		l.LineStyle.Width = vg.Points(0.5)
		p.Add(l)
	}

	protos := make(plotter.XYs, 0, g.Rows*g.Cols)
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			w := g.Prototype(r, c)
			protos = append(protos, plotter.XY{X: w[o.X], Y: w[o.Y]})
		}
	}
	scatter, err := plotter.NewScatter(protos)
	if err != nil {
		return fmt.Errorf("render.Lattice: %w", err)
	}
	scatter.GlyphStyle.Color = protoColor
	scatter.GlyphStyle.Radius = vg.Length(2)
	scatter.GlyphStyle.Shape = draw.SquareGlyph{}
	p.Add(scatter)
	p.Legend.Add("prototypes", scatter)

	if err = p.Save(o.Size, o.Size, path); err != nil {
		return fmt.Errorf("render.Lattice: %w", err)
	}
	return nil
}

// edges returns the lattice polylines: Rows horizontal then Cols vertical,
// projected onto features x and y.
func edges(g som.Grid, x, y int) []plotter.XYs {
	out := make([]plotter.XYs, 0, g.Rows+g.Cols)
	for r := 0; r < g.Rows; r++ {
		line := make(plotter.XYs, g.Cols)
		for c := range line {
			w := g.Prototype(r, c)
			line[c] = plotter.XY{X: w[x], Y: w[y]}
		}
		out = append(out, line)
	}
	for c := 0; c < g.Cols; c++ {
		line := make(plotter.XYs, g.Rows)
		for r := range line {
			w := g.Prototype(r, c)
			line[r] = plotter.XY{X: w[x], Y: w[y]}
		}
		out = append(out, line)
	}
	return out
}
