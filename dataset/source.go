package dataset

import (
	"fmt"
	"math/rand"

	"github.com/pointlander/datum/iris"
	"gonum.org/v1/gonum/mat"
)

// Centers and spread of the TwoClusters blobs.
const (
	clusterCenter = 2.0
	clusterSpread = 0.5
)

// TwoClusters returns 2·⌊n/2⌋ two-dimensional rows: half drawn around
// (2, 2) and half around (−2, −2), each feature N(center, 0.5²), with the
// rows shuffled. All draws come from rng, so a seeded rng reproduces the set.
//
// Complexity: O(n).
func TwoClusters(n int, rng *rand.Rand) *mat.Dense {
	half := n / 2
	if half <= 0 {
		return &mat.Dense{}
	}
	X := mat.NewDense(2*half, 2, nil)
	for i := 0; i < 2*half; i++ {
		center := clusterCenter
		if i >= half {
			center = -clusterCenter
		}
		X.Set(i, 0, rng.NormFloat64()*clusterSpread+center)
		X.Set(i, 1, rng.NormFloat64()*clusterSpread+center)
	}
	rng.Shuffle(2*half, func(i, j int) {
		ri, rj := X.RawRowView(i), X.RawRowView(j)
		ri[0], rj[0] = rj[0], ri[0]
		ri[1], rj[1] = rj[1], ri[1]
	})

	return X
}

// Iris returns Fisher's iris measures (150×4: sepal length, sepal width,
// petal length, petal width) and the species label of every row.
func Iris() (*mat.Dense, []string, error) {
	set, err := iris.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("dataset.Iris: %w", err)
	}
	if len(set.Fisher) == 0 {
		return nil, nil, fmt.Errorf("dataset.Iris: %w", ErrEmpty)
	}
	c := len(set.Fisher[0].Measures)
	X := mat.NewDense(len(set.Fisher), c, nil)
	labels := make([]string, len(set.Fisher))
	for i, row := range set.Fisher {
		if len(row.Measures) != c {
			return nil, nil, fmt.Errorf("dataset.Iris: row %d has %d measures: %w", i, len(row.Measures), ErrFormat)
		}
		X.SetRow(i, row.Measures)
		labels[i] = row.Label
	}

	return X, labels, nil
}
