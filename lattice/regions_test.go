package lattice_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/lvsom/lattice"
	"github.com/stretchr/testify/require"
)

// TestRegions_Conn4 splits a labelled 3×4 lattice into contiguous areas.
//
// Labels:
//
//	0 0 1 1
//	0 2 2 1
//	0 2 0 0
//
// Expected: label 0 forms two areas (left column block and bottom-right pair),
// labels 1 and 2 one area each.
func TestRegions_Conn4(t *testing.T) {
	s := lattice.Shape{Rows: 3, Cols: 4}
	labels := []int{
		0, 0, 1, 1,
		0, 2, 2, 1,
		0, 2, 0, 0,
	}
	regions, err := s.Regions(labels, lattice.Conn4)
	require.NoError(t, err)
	require.Len(t, regions, 4)

	sizes := make([]int, len(regions))
	for i, r := range regions {
		sizes[i] = len(r)
	}
	sort.Ints(sizes)
	require.Equal(t, []int{2, 3, 3, 4}, sizes)

	// regions are ordered by their first cell in row-major scan
	require.Equal(t, 0, regions[0][0])
	require.Equal(t, 2, regions[1][0])
}

// TestRegions_Conn8 joins diagonal contacts.
func TestRegions_Conn8(t *testing.T) {
	s := lattice.Shape{Rows: 2, Cols: 2}
	labels := []int{
		1, 0,
		0, 1,
	}
	r4, err := s.Regions(labels, lattice.Conn4)
	require.NoError(t, err)
	require.Len(t, r4, 4)

	r8, err := s.Regions(labels, lattice.Conn8)
	require.NoError(t, err)
	require.Len(t, r8, 2)
}

// TestRegions_SkipsNegativeAndRejectsBadLength covers the edge cases.
func TestRegions_SkipsNegativeAndRejectsBadLength(t *testing.T) {
	s := lattice.Shape{Rows: 1, Cols: 3}
	regions, err := s.Regions([]int{-1, 4, -1}, lattice.Conn4)
	require.NoError(t, err)
	require.Equal(t, [][]int{{1}}, regions)

	_, err = s.Regions([]int{1, 2}, lattice.Conn4)
	require.ErrorIs(t, err, lattice.ErrLabelCount)
}
