package extract

import (
	"maps"
	"slices"
)

// Grid is extracted tabular data: rows of string cells.
type Grid [][]string

// Dict is key/value data. It iterates in key order.
type Dict map[string]string

// Keys returns the keys of d sorted lexicographically.
func (d Dict) Keys() []string {
	return slices.Sorted(maps.Keys(d))
}

// Project flattens d into key, value, key, value... in key order and chunks the
// result into rows of 2*groupSize cells. The last row is shorter when the pair
// count is not a multiple of groupSize.
func Project(d Dict, groupSize int) Grid {
	if groupSize < 1 {
		groupSize = 1
	}
	flat := make([]string, 0, len(d)*2)
	for _, k := range d.Keys() {
		flat = append(flat, k, d[k])
	}

	width := groupSize * 2
	var grid Grid
	for start := 0; start < len(flat); start += width {
		end := min(start+width, len(flat))
		grid = append(grid, flat[start:end:end])
	}
	return grid
}
