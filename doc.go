// Package lvsom trains self-organizing maps and uses them to augment
// tabular datasets with synthetic rows.
//
// The module is organized as small packages:
//
//	lattice/  rectangular lattice geometry: cells, distances, blocks, regions
//	som/      the map: training, prediction, reconstruction, diagnostics
//	augment/  synthetic sample generation on top of a trained map
//	dataset/  normalization, statistics, sample data and persistence
//	render/   lattice plots with gonum/plot
//	cmd/lvsom command-line pipeline
//
// Quick start:
//
//	a, _ := augment.New(10, 10, som.WithSeed(42))
//	_ = a.Fit(X, 100, false)
//	out, _ := a.Augment(X, 0.5, augment.Interpolate)
//
// Maps and augmenters own their random generator and are not safe for
// concurrent use.
package lvsom
