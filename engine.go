// Copyright ©2026 The hexbin-generator Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hexbin

import (
	"math"
	"path/filepath"
	"strings"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/index/rtree"
)

// GeometrySource reads polygon feature layers.
type GeometrySource interface {
	Read(path string) (*Layer, error)
}

// Store reads and writes polygon feature layers.
type Store interface {
	GeometrySource
	Write(path string, l *Layer) error
}

// TessellationRequest holds the parameters of a tessellation.
type TessellationRequest struct {
	// Output is the path the tessellation is written to.
	Output string

	// Extent is the rectangle to cover.
	Extent *geom.Bounds

	Shape ShapeType

	// Size is the area of each cell.
	Size float64

	SpatialReference string
}

// TessellationEngine generates tessellations and edits feature layers.
type TessellationEngine interface {
	// GenerateTessellation writes a tessellation covering req.Extent
	// to req.Output.
	GenerateTessellation(req TessellationRequest) error

	// SelectByLocation returns the features of in that intersect any
	// feature of sel, or that intersect none of them if invert is true.
	SelectByLocation(in, sel *Layer, invert bool) (*Layer, error)

	// DeleteFeatures removes the features in del from the layer stored
	// at path and returns the number of features that remain.
	DeleteFeatures(path string, del *Layer) (int, error)
}

// Engine is a TessellationEngine that builds tessellations in process
// and persists them through Store.
type Engine struct {
	Store Store

	// MaxCells limits the size of generated tessellations.
	// Zero means DefaultMaxCells.
	MaxCells int
}

// GenerateTessellation implements the TessellationEngine interface.
func (e *Engine) GenerateTessellation(req TessellationRequest) error {
	const op = "generate tessellation"
	if req.Shape != Hexagon {
		return external(op, req.Output, ErrUnsupportedShape)
	}
	hexes, err := Tessellate(req.Extent, req.Size, e.MaxCells)
	if err != nil {
		return external(op, req.Output, err)
	}
	if err := e.Store.Write(req.Output, hexLayer(hexes, req.SpatialReference)); err != nil {
		return external(op, req.Output, err)
	}
	return nil
}

// SelectByLocation implements the TessellationEngine interface. Features
// intersect when they share at least one point, so features that only
// touch along an edge or at a corner intersect.
func (e *Engine) SelectByLocation(in, sel *Layer, invert bool) (*Layer, error) {
	index := rtree.NewTree(25, 50)
	for _, f := range sel.Features {
		index.Insert(f)
	}
	o := &Layer{SpatialReference: in.SpatialReference}
	for _, f := range in.Features {
		hit := false
		for _, c := range index.SearchIntersect(f.Bounds()) {
			if intersects(f, c.(*Feature)) {
				hit = true
				break
			}
		}
		if hit != invert {
			o.Features = append(o.Features, f)
		}
	}
	return o, nil
}

// DeleteFeatures implements the TessellationEngine interface.
func (e *Engine) DeleteFeatures(path string, del *Layer) (int, error) {
	const op = "delete features"
	l, err := e.Store.Read(path)
	if err != nil {
		return 0, external(op, path, err)
	}
	keep := l.without(del)
	if err := e.Store.Write(path, keep); err != nil {
		return 0, external(op, path, err)
	}
	return keep.Len(), nil
}

// intersects reports whether a and b share at least one point.
func intersects(a, b geom.Polygonal) bool {
	if !overlaps(a.Bounds(), b.Bounds()) {
		return false
	}
	for _, pa := range a.Polygons() {
		for _, pb := range b.Polygons() {
			if polygonsIntersect(pa, pb) {
				return true
			}
		}
	}
	return false
}

func polygonsIntersect(a, b geom.Polygon) bool {
	if !overlaps(a.Bounds(), b.Bounds()) {
		return false
	}
	for _, ra := range a {
		for _, rb := range b {
			if ringsCross(ra, rb) {
				return true
			}
		}
	}
	// The boundaries are disjoint, so either one polygon lies inside
	// the other or they do not meet at all.
	return anyWithin(a, b) || anyWithin(b, a)
}

// anyWithin reports whether the first vertex of a lies in or on b.
func anyWithin(a, b geom.Polygon) bool {
	for _, r := range a {
		if len(r) > 0 {
			return r[0].Within(b) != geom.Outside
		}
	}
	return false
}

// ringsCross reports whether any edge of ring a touches any edge of
// ring b. Rings may be open or closed.
func ringsCross(a, b []geom.Point) bool {
	for i := range a {
		a1, a2 := a[i], a[(i+1)%len(a)]
		for j := range b {
			if segmentsTouch(a1, a2, b[j], b[(j+1)%len(b)]) {
				return true
			}
		}
	}
	return false
}

// segmentsTouch reports whether segments p1p2 and q1q2 share a point.
func segmentsTouch(p1, p2, q1, q2 geom.Point) bool {
	d1 := orientation(q1, q2, p1)
	d2 := orientation(q1, q2, p2)
	d3 := orientation(p1, p2, q1)
	d4 := orientation(p1, p2, q2)
	if d1*d2 < 0 && d3*d4 < 0 {
		return true
	}
	return d1 == 0 && onSegment(q1, q2, p1) ||
		d2 == 0 && onSegment(q1, q2, p2) ||
		d3 == 0 && onSegment(p1, p2, q1) ||
		d4 == 0 && onSegment(p1, p2, q2)
}

// orientation returns the sign of the cross product (b-a)×(c-a).
func orientation(a, b, c geom.Point) int {
	v := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// onSegment reports whether c, collinear with ab, lies within its bounds.
func onSegment(a, b, c geom.Point) bool {
	return math.Min(a.X, b.X) <= c.X && c.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= c.Y && c.Y <= math.Max(a.Y, b.Y)
}

func overlaps(a, b *geom.Bounds) bool {
	return a.Min.X <= b.Max.X && b.Min.X <= a.Max.X &&
		a.Min.Y <= b.Max.Y && b.Min.Y <= a.Max.Y
}

// Dispatch is a Store that routes each path to the Store registered for
// its lower-case file extension, such as ".shp".
type Dispatch map[string]Store

func (d Dispatch) store(path string) (Store, error) {
	s, ok := d[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, external("open", path, ErrUnsupportedFormat)
	}
	return s, nil
}

// Read implements the GeometrySource interface.
func (d Dispatch) Read(path string) (*Layer, error) {
	s, err := d.store(path)
	if err != nil {
		return nil, err
	}
	return s.Read(path)
}

// Write implements the Store interface.
func (d Dispatch) Write(path string, l *Layer) error {
	s, err := d.store(path)
	if err != nil {
		return err
	}
	return s.Write(path, l)
}
