package augment

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvsom/som"
)

// Sentinel errors. ErrNotTrained and ErrInvalidInput alias the som sentinels
// so errors.Is matches against either package.
var (
	// ErrNotTrained is returned when generating before a successful Fit.
	ErrNotTrained = som.ErrNotTrained

	// ErrInvalidInput is returned for invalid matrices, counts and factors.
	ErrInvalidInput = som.ErrInvalidInput

	// ErrUnknownMethod is returned for an unrecognized generation method.
	ErrUnknownMethod = errors.New("augment: unknown method")
)

// Method selects a synthetic-sample generation strategy.
type Method int

const (
	// Interpolate blends two forward-neighboring prototypes.
	Interpolate Method = iota
	// SampleNeurons adds Gaussian noise to a random prototype.
	SampleNeurons
	// Perturb mixes a retained training row with a prototype near its BMU.
	Perturb

	methodCount
)

var methodNames = [...]string{
	Interpolate:   "interpolate",
	SampleNeurons: "sample_neurons",
	Perturb:       "perturb",
}

// String returns the canonical method name.
func (m Method) String() string {
	if m < 0 || m >= methodCount {
		return fmt.Sprintf("Method(%d)", int(m))
	}
	return methodNames[m]
}

// Methods lists every recognized method in declaration order.
func Methods() []Method {
	return []Method{Interpolate, SampleNeurons, Perturb}
}

// ParseMethod maps a canonical name ("interpolate", "sample_neurons" or
// "perturb") to its Method. Names match exactly; anything else, including a
// different case or surrounding space, is ErrUnknownMethod.
func ParseMethod(name string) (Method, error) {
	for i, n := range methodNames {
		if n == name {
			return Method(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}

// Constants of the generation strategies.
const (
	// neuronNoise scales the N(0,1) noise added by SampleNeurons.
	neuronNoise = 0.1
	// perturbAlphaLo and perturbAlphaHi bound the weight kept on the original row.
	perturbAlphaLo = 0.7
	perturbAlphaHi = 0.9
)

// forwardOffsets are the (row, col) steps to an Interpolate partner cell.
var forwardOffsets = [3][2]int{{0, 1}, {1, 0}, {1, 1}}
