package lattice

import "fmt"

// Regions groups cells carrying the same label into contiguous areas,
// according to conn. labels holds one label per cell in row-major order;
// cells with a negative label are skipped.
// Returns one slice of row-major indices per region, regions ordered by their
// first cell in row-major scan, cells ordered by BFS discovery.
//
// Returns ErrLabelCount if len(labels) != s.Size().
//
// Time:   O(R·C·d), where d = 4 or 8.
// Memory: O(R·C) for visited flags and output.
func (s Shape) Regions(labels []int, conn Connectivity) ([][]int, error) {
	total := s.Size()
	if len(labels) != total {
		return nil, fmt.Errorf("Regions: got %d labels for %d cells: %w", len(labels), total, ErrLabelCount)
	}
	seen := make([]bool, total)
	offsets := Offsets(conn)
	var regions [][]int

	for i0 := 0; i0 < total; i0++ {
		if seen[i0] || labels[i0] < 0 {
			continue
		}
		label := labels[i0]
		// BFS to collect region
		queue := []int{i0}
		seen[i0] = true
		var region []int

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			region = append(region, u)
			uc := s.Coordinate(u)
			for _, d := range offsets {
				vr, vc := uc.Row+d[0], uc.Col+d[1]
				if !s.InBounds(vr, vc) {
					continue
				}
				vi := s.Index(Cell{Row: vr, Col: vc})
				if !seen[vi] && labels[vi] == label {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		regions = append(regions, region)
	}

	return regions, nil
}
