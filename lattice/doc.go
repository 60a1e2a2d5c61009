// Package lattice describes the rectangular 2D lattice that a self-organizing
// map is laid out on, and the geometry helpers the trainer and the samplers
// share.
//
// What:
//
//   - Shape wraps a Rows×Cols rectangle; cells are addressed as Cell{Row, Col}
//     and flattened in row-major order (Index/Coordinate).
//   - SquaredDistance measures lattice-space distance between two cells
//     (used by the Gaussian neighborhood function, never feature space).
//   - Neighbors enumerates the 4- or 8-connected cells around a cell.
//   - Block enumerates the square window of a given radius around a cell,
//     center included, in row-major order.
//   - Regions groups equal-labelled cells into contiguous areas (BFS).
//
// Why:
//
//   - Neighborhood updates: bounding boxes for non-negligible Gaussian weight.
//   - Sampling: forward-neighbor interpolation and BMU-neighborhood mixing.
//   - Inspection: contiguous clusters on a labelled map.
//
// Complexity:
//
//   - InBounds, Index, Coordinate, SquaredDistance: O(1).
//   - Neighbors: O(d), d = 4 or 8.  Block: O((2r+1)²).
//   - Regions: O(R×C×d) time, O(R×C) memory.
//
// Errors:
//
//   - ErrBadShape: rows or cols is not positive.
//   - ErrLabelCount: label slice length does not match the lattice size.
package lattice
