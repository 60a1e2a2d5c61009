// Package lattice defines core types, connectivity modes, and sentinel errors
// for the lattice subpackage of github.com/katalvlaran/lvsom.
package lattice

import (
	"errors"
)

// Sentinel errors for lattice operations.
var (
	// ErrBadShape indicates a lattice with no rows or no columns.
	ErrBadShape = errors.New("lattice: rows and cols must be > 0")
	// ErrLabelCount indicates a label slice whose length differs from Rows*Cols.
	ErrLabelCount = errors.New("lattice: label count does not match lattice size")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Offsets in (row, col) order.
var (
	conn4Offsets = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	conn8Offsets = [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
)

// Cell addresses a single lattice cell.
type Cell struct {
	Row, Col int
}

// Shape is an immutable Rows×Cols rectangular lattice.
type Shape struct {
	Rows, Cols int
}
