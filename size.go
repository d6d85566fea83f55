// Copyright ©2026 The hexbin-generator Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hexbin

import (
	"math"
	"sort"
)

// HexAreaFromShortDiagonal returns the area of a regular hexagon whose
// short diagonal, the distance between two parallel sides, is d.
func HexAreaFromShortDiagonal(d float64) (float64, error) {
	if !(d > 0) || math.IsInf(d, 1) {
		return 0, ErrInvalidDimension
	}
	side := d / math.Sqrt(3)
	return 1.5 * math.Sqrt(3) * side * side, nil
}

// HexAreaForRegion returns a hexagon area suited to a region whose
// features have the given extent dimensions. The dimensions are sorted,
// Winsorized to their quartiles and averaged; the mean is used as the
// short diagonal of the hexagon. dims is not modified.
func HexAreaForRegion(dims []float64) (float64, error) {
	sorted := make([]float64, len(dims))
	copy(sorted, dims)
	sort.Float64s(sorted)

	w, err := Winsorize(sorted)
	if err != nil {
		return 0, err
	}
	mean, err := Mean(w)
	if err != nil {
		return 0, err
	}
	return HexAreaFromShortDiagonal(mean)
}

// HexRadius returns the circumradius, equal to the side length, of a
// regular hexagon with the given area.
func HexRadius(area float64) float64 {
	return math.Sqrt(2 * area / (3 * math.Sqrt(3)))
}

// ShortDiagonal returns the short diagonal of a regular hexagon with
// the given area. It is the inverse of HexAreaFromShortDiagonal.
func ShortDiagonal(area float64) float64 {
	return math.Sqrt(3) * HexRadius(area)
}
