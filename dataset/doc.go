// Package dataset provides the data plumbing around a self-organizing map:
// column-wise z-score normalization and its inverse, synthetic and reference
// datasets, summary statistics, and matrix persistence.
//
// Matrices are gonum *mat.Dense values with one sample per row. Inputs are
// never modified; every transform returns a fresh matrix.
//
// Persistence comes in two flavors:
//   - Save/Load: gonum's binary matrix encoding (compact, exact).
//   - SaveCSV/LoadCSV: one comma-separated row per sample, no header.
//
// Complexity: every operation is O(r·c) in the matrix size.
package dataset
