package lattice

import "fmt"

// NewShape validates and returns a Rows×Cols lattice.
// Returns ErrBadShape if rows or cols is not positive.
// Complexity: O(1).
func NewShape(rows, cols int) (Shape, error) {
	if rows <= 0 || cols <= 0 {
		return Shape{}, fmt.Errorf("NewShape(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return Shape{Rows: rows, Cols: cols}, nil
}

// Size returns the number of cells, Rows*Cols.
func (s Shape) Size() int {
	return s.Rows * s.Cols
}

// InBounds reports whether (row,col) lies within the lattice.
// Complexity: O(1).
func (s Shape) InBounds(row, col int) bool {
	return row >= 0 && row < s.Rows && col >= 0 && col < s.Cols
}

// Contains reports whether c lies within the lattice.
func (s Shape) Contains(c Cell) bool {
	return s.InBounds(c.Row, c.Col)
}

// Index maps c to its row-major index: Row*Cols + Col.
// Complexity: O(1).
func (s Shape) Index(c Cell) int {
	return c.Row*s.Cols + c.Col
}

// Coordinate converts a row-major index back to a Cell.
// Complexity: O(1).
func (s Shape) Coordinate(idx int) Cell {
	return Cell{Row: idx / s.Cols, Col: idx % s.Cols}
}

// SquaredDistance returns the squared Euclidean distance between a and b in
// lattice coordinates.
// Complexity: O(1).
func SquaredDistance(a, b Cell) float64 {
	dr := float64(a.Row - b.Row)
	dc := float64(a.Col - b.Col)

	return dr*dr + dc*dc
}

// Offsets returns the (row, col) neighbor offsets for conn.
// The returned slice is shared; callers must not modify it.
func Offsets(conn Connectivity) [][2]int {
	if conn == Conn8 {
		return conn8Offsets
	}
	return conn4Offsets
}

// Neighbors returns the in-bounds cells adjacent to c under conn,
// in the fixed order of Offsets(conn).
// Complexity: O(d), d = 4 or 8.
func (s Shape) Neighbors(c Cell, conn Connectivity) []Cell {
	offsets := Offsets(conn)
	out := make([]Cell, 0, len(offsets))
	for _, d := range offsets {
		r, q := c.Row+d[0], c.Col+d[1]
		if s.InBounds(r, q) {
			out = append(out, Cell{Row: r, Col: q})
		}
	}

	return out
}

// Adjacent reports whether a and b are distinct cells touching under conn.
func Adjacent(a, b Cell, conn Connectivity) bool {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	if dr == 0 && dc == 0 {
		return false
	}
	if conn == Conn8 {
		return abs(dr) <= 1 && abs(dc) <= 1
	}
	return abs(dr)+abs(dc) == 1
}

// Block returns the in-bounds cells of the square window of the given radius
// centered on c, center included, scanning rows top to bottom and columns
// left to right. A negative radius yields no cells.
// Complexity: O((2·radius+1)²).
func (s Shape) Block(c Cell, radius int) []Cell {
	if radius < 0 {
		return nil
	}
	side := 2*radius + 1
	out := make([]Cell, 0, side*side)
	for dr := -radius; dr <= radius; dr++ {
		for dc := -radius; dc <= radius; dc++ {
			r, q := c.Row+dr, c.Col+dc
			if s.InBounds(r, q) {
				out = append(out, Cell{Row: r, Col: q})
			}
		}
	}

	return out
}

// Window returns the clamped row and column ranges [r0,r1]×[c0,c1] covered by
// a square of the given radius around c.
// Complexity: O(1).
func (s Shape) Window(c Cell, radius int) (r0, r1, c0, c1 int) {
	r0, r1 = clamp(c.Row-radius, 0, s.Rows-1), clamp(c.Row+radius, 0, s.Rows-1)
	c0, c1 = clamp(c.Col-radius, 0, s.Cols-1), clamp(c.Col+radius, 0, s.Cols-1)

	return r0, r1, c0, c1
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func clamp(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
