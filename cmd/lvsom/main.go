// Command lvsom augments a dataset with synthetic rows drawn from a
// self-organizing map trained on it.
//
// Usage:
//
//	lvsom -mode sample -samples 500 -augment 0.5
//	lvsom -mode file -input data.csv -augment 1.0 -output augmented.csv
//	lvsom -mode iris -method perturb -rows 6 -cols 6 -plot iris.png
//
// Files ending in .csv are read and written as CSV; anything else uses the
// gonum binary matrix encoding.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/katalvlaran/lvsom/augment"
	"github.com/katalvlaran/lvsom/dataset"
	"github.com/katalvlaran/lvsom/render"
	"github.com/katalvlaran/lvsom/som"
	"gonum.org/v1/gonum/mat"
)

// errUsage marks command-line errors.
var errUsage = errors.New("lvsom: usage")

// config is the parsed command line.
type config struct {
	mode    string
	input   string
	output  string
	samples int
	factor  float64
	method  augment.Method
	rows    int
	cols    int
	epochs  int
	seed    int64
	seeded  bool
	verbose bool
	plot    string
}

// parseFlags parses args (without the program name).
func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	var method string
	fs := flag.NewFlagSet("lvsom", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.mode, "mode", "sample", "data mode: sample (generate), iris, or file (load -input)")
	fs.StringVar(&cfg.input, "input", "", "input file, required for -mode file")
	fs.StringVar(&cfg.output, "output", "augmented_data.bin", "output file for the augmented data")
	fs.IntVar(&cfg.samples, "samples", 1000, "number of rows to generate in sample mode")
	fs.Float64Var(&cfg.factor, "augment", 0.5, "ratio of synthetic to original rows")
	fs.StringVar(&method, "method", augment.Interpolate.String(), "augmentation method: interpolate, sample_neurons or perturb")
	fs.IntVar(&cfg.rows, "rows", 10, "lattice rows")
	fs.IntVar(&cfg.cols, "cols", 10, "lattice columns")
	fs.IntVar(&cfg.epochs, "epochs", 100, "training epochs")
	fs.Int64Var(&cfg.seed, "seed", 0, "random seed; unset means seeded from the clock")
	fs.BoolVar(&cfg.verbose, "verbose", false, "log training progress")
	fs.StringVar(&cfg.plot, "plot", "", "if set, save a lattice plot to this file")
	if err := fs.Parse(args); err != nil {
		return cfg, fmt.Errorf("%w: %w", errUsage, err)
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			cfg.seeded = true
		}
	})

	m, err := augment.ParseMethod(method)
	if err != nil {
		return cfg, fmt.Errorf("%w: %w", errUsage, err)
	}
	cfg.method = m
	switch cfg.mode {
	case "sample", "iris":
	case "file":
		if cfg.input == "" {
			return cfg, fmt.Errorf("%w: -input is required for -mode file", errUsage)
		}
	default:
		return cfg, fmt.Errorf("%w: unknown -mode %q", errUsage, cfg.mode)
	}
	return cfg, nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err = run(cfg, os.Stdout, logger); err != nil {
		logger.Error("lvsom failed", "err", err)
		os.Exit(1)
	}
}

// run executes the load → normalize → fit → generate → save pipeline.
func run(cfg config, out io.Writer, logger *slog.Logger) error {
	seed := cfg.seed
	if !cfg.seeded {
		seed = time.Now().UnixNano()
	}

	data, err := load(cfg, seed, out)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "\nOriginal Data:")
	if err = describe(out, data); err != nil {
		return err
	}

	fmt.Fprintln(out, "\nNormalizing data...")
	norm, params, err := dataset.Normalize(data)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nTraining SOM with grid size (%d, %d)...\n", cfg.rows, cfg.cols)
	aug, err := augment.New(cfg.rows, cfg.cols, som.WithSeed(seed), som.WithLogger(logger))
	if err != nil {
		return err
	}
	if err = aug.Fit(norm, cfg.epochs, cfg.verbose); err != nil {
		return err
	}
	fmt.Fprintln(out, "Training completed!")
	qe, err := aug.Map().QuantizationError(norm)
	if err != nil {
		return err
	}
	te, err := aug.Map().TopographicError(norm)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Quantization error: %.4f, topographic error: %.4f\n", qe, te)

	r, _ := data.Dims()
	n := int(float64(r) * cfg.factor)
	fmt.Fprintf(out, "\nGenerating synthetic samples (factor: %g, method: %v)...\n", cfg.factor, cfg.method)
	fmt.Fprintf(out, "Creating %d synthetic samples...\n", n)
	synthNorm, err := aug.Generate(n, cfg.method)
	if err != nil {
		return err
	}
	synth, err := params.Denormalize(synthNorm)
	if err != nil {
		return err
	}
	all := mat.DenseCopyOf(data)
	sr, _ := synth.Dims()
	if sr > 0 {
		all = &mat.Dense{}
		all.Stack(data, synth)
	}

	fmt.Fprintln(out, "\nAugmented Data:")
	if err = describe(out, all); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nSaving augmented data to %s...\n", cfg.output)
	if err = save(cfg.output, all); err != nil {
		return err
	}
	total, _ := all.Dims()
	fmt.Fprintf(out, "Original samples: %d\nSynthetic samples: %d\nTotal samples: %d\n", r, sr, total)

	// The plot comes last so a rendering failure never loses the saved data.
	if cfg.plot != "" {
		g, err := aug.Map().Weights()
		if err != nil {
			return err
		}
		if err = render.Lattice(cfg.plot, norm, g); err != nil {
			return fmt.Errorf("augmented data saved to %s; plot failed: %w", cfg.output, err)
		}
		fmt.Fprintf(out, "\nLattice plot saved to %s\n", cfg.plot)
	}
	fmt.Fprintln(out, "\nAugmentation completed successfully!")

	return nil
}

// load produces the input matrix for cfg.mode.
func load(cfg config, seed int64, out io.Writer) (*mat.Dense, error) {
	switch cfg.mode {
	case "file":
		fmt.Fprintf(out, "Loading data from %s...\n", cfg.input)
		if isCSV(cfg.input) {
			return dataset.LoadCSV(cfg.input)
		}
		return dataset.Load(cfg.input)
	case "iris":
		fmt.Fprintln(out, "Loading Fisher's iris measures...")
		X, _, err := dataset.Iris()
		return X, err
	default:
		fmt.Fprintf(out, "Generating %d sample data points...\n", cfg.samples)
		X := dataset.TwoClusters(cfg.samples, rand.New(rand.NewSource(seed)))
		if X.IsEmpty() {
			return nil, fmt.Errorf("%w: -samples must be at least 2", errUsage)
		}
		return X, nil
	}
}

// save writes X to path, as CSV when the extension says so.
func save(path string, X *mat.Dense) error {
	if isCSV(path) {
		return dataset.SaveCSV(path, X)
	}
	return dataset.Save(path, X)
}

func isCSV(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".csv")
}

func describe(w io.Writer, X mat.Matrix) error {
	s, err := dataset.Describe(X)
	if err != nil {
		return err
	}
	return s.Fprint(w)
}
