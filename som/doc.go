// Package som trains Self-Organizing Maps (Kohonen networks): a fixed 2D
// lattice of prototype vectors that learns a topology-preserving picture of a
// high-dimensional input distribution.
//
// 🚀 What is a SOM?
//
//	Every lattice cell owns a prototype. For each training sample the cell
//	with the closest prototype (the best matching unit, BMU) wins, and it
//	drags itself and its lattice neighbors towards the sample, weighted by a
//	Gaussian over lattice distance. Learning rate and radius shrink over
//	time: coarse ordering first, fine refinement later. Samples close in
//	input space end up on nearby cells.
//
// ✨ Key features:
//   - online update rule with exponential decay of learning rate and radius
//   - explicit, seedable generator per Map (WithSeed / WithRand)
//   - optional bounded neighborhood update (WithNeighborhoodCutoff)
//   - Predict / Reconstruct to move between feature space and the lattice
//   - diagnostics: quantization and topographic error, k-means clustering
//
// ⚙️ Usage:
//
//	m, err := som.New(10, 10, som.WithSeed(42), som.WithSigma(1.5))
//	if err != nil { ... }
//	if err = m.Fit(X, 100, false); err != nil { ... }
//	cells, _ := m.Predict(X)
//	approx, _ := m.Reconstruct(cells)
//
// Errors:
//   - ErrNotTrained: query before the first successful Fit.
//   - ErrInvalidInput: empty matrix, feature mismatch, NaN/Inf, bad epochs.
//   - ErrOptionViolation: invalid hyperparameter option.
//
// Performance:
//
//   - Fit: O(epochs · n · R·C·D) time, dense update; the cutoff option
//     shrinks the per-step window once σ has decayed.
//   - Predict: O(n · R·C·D).
package som
