// Package som provides tunable options, the prototype grid type, and error
// definitions for training a self-organizing map.
package som

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
)

// Sentinel errors for map construction, training and queries.
var (
	// ErrNotTrained is returned by queries issued before a successful Fit.
	ErrNotTrained = errors.New("som: map is not trained")

	// ErrInvalidInput is returned for empty matrices, feature-count mismatches,
	// non-finite values, out-of-range cells and non-positive epoch counts.
	ErrInvalidInput = errors.New("som: invalid input")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("som: invalid option supplied")
)

// Defaults used by DefaultOptions.
const (
	DefaultLearningRate = 0.5
	DefaultSigma        = 1.0

	// initScale scales the N(0,1) draws used to seed prototypes near the origin.
	initScale = 0.1

	// verboseEvery is the epoch stride of verbose progress records.
	verboseEvery = 10

	// MaxNeighborhoodCutoff is the largest accepted NeighborhoodCutoff. Cells
	// skipped at this weight move by at most lr·1e-6·|x−w| per step, which
	// keeps the bounded update numerically equivalent to the dense one.
	MaxNeighborhoodCutoff = 1e-6
)

// State is the training state of a Map. The only transition is
// Untrained → Trained, taken when Fit completes.
type State int

const (
	// Untrained is the state of a freshly constructed map.
	Untrained State = iota
	// Trained is entered after the first successful Fit.
	Trained
)

// String implements fmt.Stringer.
func (s State) String() string {
	if s == Trained {
		return "trained"
	}
	return "untrained"
}

// Option configures a Map via functional arguments.
// If an Option is invalid (e.g. negative sigma), it is recorded internally
// and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the hyperparameters and hooks of a Map.
type Options struct {
	// InputDim, if > 0, fixes the feature count before the first Fit.
	InputDim int

	// LearningRate is the initial learning rate lr0.
	LearningRate float64

	// Sigma is the initial neighborhood radius σ0, in lattice units.
	Sigma float64

	// Seed makes the training trajectory reproducible when Seeded is true.
	Seed   int64
	Seeded bool

	// Rand, if set, is used instead of a generator built from Seed.
	// Collaborators sharing it draw from the same stream.
	Rand *rand.Rand

	// NeighborhoodCutoff, if > 0, restricts each update to the bounding box of
	// cells whose Gaussian weight is at least this value. 0 updates every cell.
	// At most MaxNeighborhoodCutoff.
	NeighborhoodCutoff float64

	// Logger receives verbose progress records.
	Logger *slog.Logger

	// OnEpoch is called after every completed epoch with a 1-based index.
	OnEpoch func(epoch, epochs int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - LearningRate 0.5, Sigma 1.0
//   - unseeded generator, dense neighborhood update
//   - slog.Default() logger, no-op OnEpoch hook.
func DefaultOptions() Options {
	return Options{
		LearningRate: DefaultLearningRate,
		Sigma:        DefaultSigma,
		Logger:       slog.Default(),
		OnEpoch:      func(int, int) {},
	}
}

// WithInputDim fixes the feature count up front; the first Fit must match it.
func WithInputDim(d int) Option {
	return func(o *Options) {
		if d <= 0 {
			o.err = fmt.Errorf("%w: InputDim must be > 0 (%d)", ErrOptionViolation, d)
			return
		}
		o.InputDim = d
	}
}

// WithLearningRate sets the initial learning rate (must be finite and > 0).
func WithLearningRate(lr float64) Option {
	return func(o *Options) {
		if !positiveFinite(lr) {
			o.err = fmt.Errorf("%w: LearningRate must be finite and > 0 (%g)", ErrOptionViolation, lr)
			return
		}
		o.LearningRate = lr
	}
}

// WithSigma sets the initial neighborhood radius (must be finite and > 0).
func WithSigma(sigma float64) Option {
	return func(o *Options) {
		if !positiveFinite(sigma) {
			o.err = fmt.Errorf("%w: Sigma must be finite and > 0 (%g)", ErrOptionViolation, sigma)
			return
		}
		o.Sigma = sigma
	}
}

// WithSeed makes initialization, shuffling and every draw on the map's
// generator reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
		o.Seeded = true
	}
}

// WithRand injects a caller-owned generator. It takes precedence over WithSeed.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithNeighborhoodCutoff skips cells outside the bounding box where the
// Gaussian weight drops below eps.
//
//	eps == 0: dense update of every cell
//	0 < eps ≤ MaxNeighborhoodCutoff: bounded update, equal to the dense one
//	                                 within floating-point tolerance
//	otherwise: invalid option → ErrOptionViolation
func WithNeighborhoodCutoff(eps float64) Option {
	return func(o *Options) {
		if math.IsNaN(eps) || eps < 0 || eps > MaxNeighborhoodCutoff {
			o.err = fmt.Errorf("%w: NeighborhoodCutoff must be in [0,%g] (%g)", ErrOptionViolation, MaxNeighborhoodCutoff, eps)
			return
		}
		o.NeighborhoodCutoff = eps
	}
}

// WithLogger sets the logger used for verbose progress.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnEpoch registers a callback run after every epoch.
func WithOnEpoch(fn func(epoch, epochs int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEpoch = fn
		}
	}
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
