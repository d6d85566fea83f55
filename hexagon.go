// Copyright ©2026 The hexbin-generator Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hexbin

import (
	"fmt"
	"math"
	"strconv"

	"github.com/ctessum/geom"
)

// ShapeType is the cell shape of a tessellation.
type ShapeType int

const (
	// Hexagon cells are flat-topped regular hexagons.
	Hexagon ShapeType = iota + 1
)

func (s ShapeType) String() string {
	switch s {
	case Hexagon:
		return "HEXAGON"
	default:
		return "ShapeType(" + strconv.Itoa(int(s)) + ")"
	}
}

// DefaultMaxCells is the largest tessellation Tessellate will build.
const DefaultMaxCells = 10000000

// Hex represents an individual hexagonal cell in a tessellation.
type Hex struct {
	// Point is the geometric center of this hexagon.
	geom.Point

	// Col and Row locate the cell in the tessellation. Odd columns
	// are shifted up by half a cell.
	Col, Row int

	// r is the radius of the hexagon.
	r float64
}

// Bounds returns the bounds of the hexagon.
func (h *Hex) Bounds() *geom.Bounds {
	dy := h.r / 2 * math.Sqrt(3)
	return &geom.Bounds{
		Max: geom.Point{X: h.Point.X + h.r, Y: h.Point.Y + dy},
		Min: geom.Point{X: h.Point.X - h.r, Y: h.Point.Y - dy},
	}
}

// Geom returns the geometry of the receiver as a closed,
// counter-clockwise ring.
func (h *Hex) Geom() geom.Polygon {
	ring := make([]geom.Point, 7)
	for i := 0; i < 6; i++ {
		ring[i] = geom.Point{
			X: h.Point.X + h.r*math.Cos(math.Pi*2/6*float64(i)),
			Y: h.Point.Y + h.r*math.Sin(math.Pi*2/6*float64(i)),
		}
	}
	ring[6] = ring[0]
	return geom.Polygon{ring}
}

// ID returns the grid label of the receiver: spreadsheet-style column
// letters followed by the 1-based row, e.g. "A-1" or "AB-12".
func (h *Hex) ID() string {
	return columnLabel(h.Col) + "-" + strconv.Itoa(h.Row+1)
}

func columnLabel(i int) string {
	var s []byte
	for i++; i > 0; i = (i - 1) / 26 {
		s = append([]byte{byte('A' + (i-1)%26)}, s...)
	}
	return string(s)
}

// Tessellate returns the hexagons of the given area that together cover
// the rectangle b. Columns start at b.Min.X and rows at b.Min.Y.
// maxCells limits the size of the result; zero means DefaultMaxCells.
func Tessellate(b *geom.Bounds, area float64, maxCells int) ([]*Hex, error) {
	if !(area > 0) || math.IsInf(area, 1) {
		return nil, ErrInvalidDimension
	}
	if b == nil || !(b.Max.X >= b.Min.X && b.Max.Y >= b.Min.Y) ||
		math.IsInf(b.Max.X-b.Min.X, 0) || math.IsInf(b.Max.Y-b.Min.Y, 0) {
		return nil, fmt.Errorf("hexbin: invalid tessellation extent %v", b)
	}
	if maxCells <= 0 {
		maxCells = DefaultMaxCells
	}
	r := HexRadius(area)
	dx := 1.5 * r
	dy := r * math.Sqrt(3)

	cols := math.Floor((b.Max.X-b.Min.X+r)/dx) + 1
	rows := math.Floor((b.Max.Y-b.Min.Y+dy/2)/dy) + 1
	if n := cols * rows; math.IsNaN(n) || math.IsInf(n, 0) || n > float64(maxCells) {
		return nil, fmt.Errorf("hexbin: tessellation of %.0f×%.0f cells exceeds limit of %d", cols, rows, maxCells)
	}

	var hexes []*Hex
	for col := 0; ; col++ {
		x := b.Min.X + float64(col)*dx
		if x-r >= b.Max.X {
			break
		}
		ymin := b.Min.Y
		if col%2 == 1 {
			ymin += dy / 2
		}
		for row := 0; ; row++ {
			y := ymin + float64(row)*dy
			if y-dy/2 >= b.Max.Y {
				break
			}
			hexes = append(hexes, &Hex{
				Point: geom.Point{X: x, Y: y},
				Col:   col,
				Row:   row,
				r:     r,
			})
		}
	}
	return hexes, nil
}

// hexLayer converts hexes into a layer in spatial reference sr.
func hexLayer(hexes []*Hex, sr string) *Layer {
	l := &Layer{
		Features:         make([]*Feature, len(hexes)),
		SpatialReference: sr,
	}
	for i, h := range hexes {
		l.Features[i] = &Feature{Polygonal: h.Geom(), ID: h.ID()}
	}
	return l
}
