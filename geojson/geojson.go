// Copyright ©2026 The hexbin-generator Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package geojson reads and writes hexbin layers as GeoJSON feature
// collections. The spatial reference is kept in the collection's
// "crs" member as a named CRS.
package geojson

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ctessum/geom"
	"github.com/paulmach/orb"
	orbjson "github.com/paulmach/orb/geojson"

	hexbin "github.com/knu2xs/hexbin-generator"
)

// IDProperty is the feature property holding the feature ID.
const IDProperty = "ID"

// Store is a hexbin.Store backed by GeoJSON files on disk.
type Store struct{}

// Read implements the hexbin.GeometrySource interface. Only Polygon and
// MultiPolygon features are accepted. A feature's ID is taken from its
// ID property, then its GeoJSON id, and otherwise its position.
func (Store) Read(path string) (*hexbin.Layer, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("geojson: %w", err)
	}
	fc, err := orbjson.UnmarshalFeatureCollection(b)
	if err != nil {
		return nil, fmt.Errorf("geojson: decode %s: %w", path, err)
	}
	l := &hexbin.Layer{SpatialReference: crsName(fc.ExtraMembers)}
	for i, f := range fc.Features {
		p, err := fromOrb(f.Geometry)
		if err != nil {
			return nil, fmt.Errorf("geojson: feature %d: %w", i, err)
		}
		var id string
		if v := f.Properties[IDProperty]; v != nil {
			id = fmt.Sprint(v)
		}
		if id == "" && f.ID != nil {
			id = fmt.Sprint(f.ID)
		}
		if id == "" {
			id = strconv.Itoa(i + 1)
		}
		l.Features = append(l.Features, &hexbin.Feature{Polygonal: p, ID: id})
	}
	return l, nil
}

// Write implements the hexbin.Store interface.
func (Store) Write(path string, l *hexbin.Layer) error {
	fc := orbjson.NewFeatureCollection()
	for _, f := range l.Features {
		of := orbjson.NewFeature(toOrb(f.Polygonal))
		of.Properties[IDProperty] = f.ID
		fc.Append(of)
	}
	if l.SpatialReference != "" {
		fc.ExtraMembers = orbjson.Properties{
			"crs": map[string]interface{}{
				"type":       "name",
				"properties": map[string]interface{}{"name": l.SpatialReference},
			},
		}
	}
	b, err := json.Marshal(fc)
	if err != nil {
		return fmt.Errorf("geojson: encode: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("geojson: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("geojson: %w", err)
	}
	return nil
}

// crsName returns the name of a named CRS member, or "".
func crsName(members orbjson.Properties) string {
	crs, ok := members["crs"].(map[string]interface{})
	if !ok {
		return ""
	}
	props, ok := crs["properties"].(map[string]interface{})
	if !ok {
		return ""
	}
	name, _ := props["name"].(string)
	return name
}

func fromOrb(g orb.Geometry) (geom.Polygonal, error) {
	switch g := g.(type) {
	case orb.Polygon:
		return polygonFromOrb(g), nil
	case orb.MultiPolygon:
		mp := make(geom.MultiPolygon, len(g))
		for i, p := range g {
			mp[i] = polygonFromOrb(p)
		}
		return mp, nil
	case nil:
		return nil, fmt.Errorf("missing geometry")
	default:
		return nil, fmt.Errorf("unsupported geometry type %s", g.GeoJSONType())
	}
}

func polygonFromOrb(p orb.Polygon) geom.Polygon {
	o := make(geom.Polygon, len(p))
	for i, r := range p {
		o[i] = make([]geom.Point, len(r))
		for j, pt := range r {
			o[i][j] = geom.Point{X: pt[0], Y: pt[1]}
		}
	}
	return o
}

func toOrb(p geom.Polygonal) orb.Geometry {
	polys := p.Polygons()
	if len(polys) == 1 {
		return polygonToOrb(polys[0])
	}
	mp := make(orb.MultiPolygon, len(polys))
	for i, pp := range polys {
		mp[i] = polygonToOrb(pp)
	}
	return mp
}

func polygonToOrb(p geom.Polygon) orb.Polygon {
	o := make(orb.Polygon, len(p))
	for i, r := range p {
		ring := make(orb.Ring, len(r))
		for j, pt := range r {
			ring[j] = orb.Point{pt.X, pt.Y}
		}
		if len(ring) > 0 && !ring.Closed() {
			ring = append(ring, ring[0])
		}
		o[i] = ring
	}
	return o
}
