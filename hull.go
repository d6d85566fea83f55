// Copyright ©2026 The hexbin-generator Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hexbin

import (
	"fmt"
	"math"

	"github.com/ctessum/geom"
)

type empty struct{}

// hull represents the outline of a set of edge-sharing polygons.
type hull struct {
	// graph holds the directed edges of the outline.
	// The index of the first map is the starting point of each segment
	// and the index of the second map is the ending point.
	graph map[geom.Point]map[geom.Point]empty

	// vertices holds every point that has been added, bucketed by
	// tolerance-sized grid cell, so that new points within tolerance of
	// one of them can be snapped to it.
	vertices map[gridCell][]geom.Point

	tolerance float64
}

type gridCell struct{ i, j int64 }

// Footprint dissolves the features of l into the rings of their outline.
// Edges shared by two features cancel, so a tessellation clipped to an
// area of interest yields its outer boundary plus any holes. tolerance
// is the distance two vertices can be apart while still being
// considered the same point; a quarter of the hexagon radius works
// for hexbins.
func Footprint(l *Layer, tolerance float64) (geom.Polygon, error) {
	h := hull{
		graph:     make(map[geom.Point]map[geom.Point]empty),
		vertices:  make(map[gridCell][]geom.Point),
		tolerance: tolerance,
	}
	for _, f := range l.Features {
		for _, poly := range f.Polygons() {
			for _, r := range poly {
				if len(r) == 0 {
					continue
				}
				for i := 0; i < len(r)-1; i++ {
					h.addToGraph(segment{start: r[i], end: r[i+1]})
				}
				if r[0] != r[len(r)-1] {
					// close the ring
					h.addToGraph(segment{start: r[len(r)-1], end: r[0]})
				}
			}
		}
	}
	return h.Polygon()
}

// snap returns the existing vertex within tolerance of p, or p itself
// after recording it. Only the grid cells around p are searched.
func (h *hull) snap(p geom.Point) geom.Point {
	if !(h.tolerance > 0) {
		return p
	}
	c := h.cell(p)
	for di := int64(-1); di <= 1; di++ {
		for dj := int64(-1); dj <= 1; dj++ {
			for _, v := range h.vertices[gridCell{c.i + di, c.j + dj}] {
				if math.Hypot(v.X-p.X, v.Y-p.Y) < h.tolerance {
					return v
				}
			}
		}
	}
	h.vertices[c] = append(h.vertices[c], p)
	return p
}

func (h *hull) cell(p geom.Point) gridCell {
	return gridCell{
		i: int64(math.Floor(p.X / h.tolerance)),
		j: int64(math.Floor(p.Y / h.tolerance)),
	}
}

// addToGraph adds a segment to the graph, removing it instead if the
// graph already holds it in either direction.
func (h *hull) addToGraph(seg segment) {
	seg.start = h.snap(seg.start)
	seg.end = h.snap(seg.end)
	if seg.start.Equals(seg.end) {
		// The starting and ending points are the same, so this is
		// not in fact a segment.
		return
	}

	if _, ok := h.graph[seg.end][seg.start]; ok {
		// The reverse segment is shared with a neighbor and is
		// interior to the outline.
		h.remove(seg.end, seg.start)
		return
	}
	if _, ok := h.graph[seg.start][seg.end]; ok {
		// Overlapping duplicate; neither copy is on the outline.
		h.remove(seg.start, seg.end)
		return
	}

	if _, ok := h.graph[seg.start]; !ok {
		h.graph[seg.start] = make(map[geom.Point]empty)
	}
	h.graph[seg.start][seg.end] = empty{}
}

func (h *hull) remove(start, end geom.Point) {
	delete(h.graph[start], end)
	if len(h.graph[start]) == 0 {
		delete(h.graph, start)
	}
}

// Used to represent an edge of a polygon.
type segment struct {
	start, end geom.Point
}

// Polygon returns the rings of the outline. It consumes the graph.
func (h *hull) Polygon() (geom.Polygon, error) {
	var p geom.Polygon
	for len(h.graph) > 0 {
		r, err := h.ring()
		if err != nil {
			return nil, err
		}
		p = append(p, r)
	}
	return p, nil
}

func (h *hull) ring() ([]geom.Point, error) {
	var p geom.Point
	for p = range h.graph { // get first point
		break
	}
	r := []geom.Point{p}
	for {
		if len(h.graph[p]) != 1 {
			return nil, fmt.Errorf("hexbin: footprint vertex %v has %d outgoing edges", p, len(h.graph[p]))
		}
		var next geom.Point
		for next = range h.graph[p] {
			break
		}
		h.remove(p, next)
		r = append(r, next)
		p = next
		if r[0] == r[len(r)-1] {
			return r, nil
		}
	}
}
