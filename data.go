// Copyright ©2026 The hexbin-generator Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hexbin

import (
	"strconv"

	"github.com/ctessum/geom"
)

// Feature is an individual polygon in a Layer, such as a census
// block group or a hexbin.
type Feature struct {
	geom.Polygonal

	// ID identifies the feature within its layer. Block groups
	// typically use their GEOID and hexbins their grid cell label.
	ID string
}

// Layer is a collection of polygon features that share a
// spatial reference.
type Layer struct {
	Features []*Feature

	// SpatialReference is the coordinate system definition of the
	// features, as WKT or a PROJ.4 string. It may be empty.
	SpatialReference string
}

// NewLayer creates a layer holding polygons p in the spatial reference sr.
// The features are given sequential IDs.
func NewLayer(sr string, p ...geom.Polygonal) *Layer {
	l := &Layer{SpatialReference: sr}
	for i, pp := range p {
		l.Features = append(l.Features, &Feature{Polygonal: pp, ID: strconv.Itoa(i + 1)})
	}
	return l
}

// Len returns the number of features in the receiver.
func (l *Layer) Len() int { return len(l.Features) }

// Extent returns the bounding box of all features in the receiver.
// ok is false if the layer holds no features.
func (l *Layer) Extent() (b *geom.Bounds, ok bool) {
	b = geom.NewBounds()
	for _, f := range l.Features {
		b.Extend(f.Bounds())
		ok = true
	}
	return b, ok
}

// Polygons returns the geometry of every feature in the receiver.
func (l *Layer) Polygons() []geom.Polygonal {
	o := make([]geom.Polygonal, len(l.Features))
	for i, f := range l.Features {
		o[i] = f.Polygonal
	}
	return o
}

// without returns a copy of the receiver lacking the features whose
// IDs appear in del.
func (l *Layer) without(del *Layer) *Layer {
	drop := make(map[string]struct{}, del.Len())
	for _, f := range del.Features {
		drop[f.ID] = struct{}{}
	}
	o := &Layer{SpatialReference: l.SpatialReference}
	for _, f := range l.Features {
		if _, ok := drop[f.ID]; ok {
			continue
		}
		o.Features = append(o.Features, f)
	}
	return o
}
