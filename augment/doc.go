// Package augment synthesizes new data points from the learned lattice of a
// self-organizing map.
//
// An Augmenter owns a som.Map and a snapshot of the data it was fitted on.
// Once trained it produces synthetic rows in the same (possibly normalized)
// feature space with one of three strategies:
//
//   - Interpolate: blend two forward-adjacent prototypes with α ~ U[0,1).
//   - SampleNeurons: a random prototype plus 0.1·N(0, I) noise.
//   - Perturb: a real training row pulled slightly (α ~ U[0.7,0.9))
//     towards a random prototype from its BMU's 3×3 block.
//
// Augment appends floor(n·factor) synthetic rows to a dataset.
//
// All randomness comes from a single generator owned by the Augmenter and
// shared with its map, so a seeded Augmenter reproduces training and sampling
// bit-for-bit.
//
// Errors:
//   - ErrNotTrained: generation before Fit.
//   - ErrUnknownMethod: unrecognized strategy; nothing is drawn or mutated.
//   - ErrInvalidInput: invalid matrices, counts, factors or lattice shapes.
package augment
