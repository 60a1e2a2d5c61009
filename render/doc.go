// Package render draws a trained self-organizing map with gonum/plot.
//
// Lattice produces a scatter of two chosen features of the training data,
// the prototypes on top of it, and the 4-neighbor lattice edges joining
// prototypes. The output format follows the file extension understood by
// plot.Save (png, svg, pdf, ...).
package render
