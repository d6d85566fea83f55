// Copyright ©2026 The hexbin-generator Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package shapefile reads and writes hexbin layers as ESRI shapefiles.
// The spatial reference of a layer is kept in the .prj file next to
// the .shp file.
package shapefile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/encoding/shp"
	"github.com/ctessum/geom/proj"

	hexbin "github.com/knu2xs/hexbin-generator"
)

// record is the attribute layout of written shapefiles.
type record struct {
	geom.Polygon
	ID string `shp:"ID"`
}

// Store is a hexbin.Store backed by shapefiles on disk.
type Store struct{}

// Read implements the hexbin.GeometrySource interface. A feature's ID is
// taken from its ID attribute, then its GEOID attribute, and otherwise
// its position in the file.
func (Store) Read(path string) (*hexbin.Layer, error) {
	d, err := shp.NewDecoder(path)
	if err != nil {
		return nil, fmt.Errorf("shapefile: open %s: %w", path, err)
	}
	defer d.Close()

	l := new(hexbin.Layer)
	for {
		var rec struct {
			geom.Polygonal
			ID    string `shp:"ID"`
			GEOID string `shp:"GEOID"`
		}
		if more := d.DecodeRow(&rec); !more {
			break
		}
		if rec.Polygonal == nil {
			continue
		}
		// DBF character fields come back padded to their width.
		id := strings.TrimSpace(rec.ID)
		if id == "" {
			id = strings.TrimSpace(rec.GEOID)
		}
		if id == "" {
			id = strconv.Itoa(len(l.Features) + 1)
		}
		l.Features = append(l.Features, &hexbin.Feature{Polygonal: rec.Polygonal, ID: id})
	}
	if err := d.Error(); err != nil {
		return nil, fmt.Errorf("shapefile: read %s: %w", path, err)
	}

	sr, err := os.ReadFile(prjPath(path))
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("shapefile: read spatial reference: %w", err)
	default:
		l.SpatialReference = strings.TrimSpace(string(sr))
	}
	return l, nil
}

// Write implements the hexbin.Store interface. The spatial reference of
// l, if any, must be parseable; it is written to the .prj file.
func (Store) Write(path string, l *hexbin.Layer) error {
	if l.SpatialReference != "" {
		if _, err := proj.Parse(l.SpatialReference); err != nil {
			return fmt.Errorf("shapefile: invalid spatial reference: %w", err)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("shapefile: %w", err)
	}

	e, err := shp.NewEncoder(path, record{})
	if err != nil {
		return fmt.Errorf("shapefile: create %s: %w", path, err)
	}
	for _, f := range l.Features {
		if err := e.Encode(record{Polygon: flatten(f.Polygonal), ID: f.ID}); err != nil {
			e.Close()
			return fmt.Errorf("shapefile: write feature %s: %w", f.ID, err)
		}
	}
	e.Close()

	prj := prjPath(path)
	if l.SpatialReference == "" {
		if err := os.Remove(prj); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("shapefile: %w", err)
		}
		return nil
	}
	if err := os.WriteFile(prj, []byte(l.SpatialReference), 0o644); err != nil {
		return fmt.Errorf("shapefile: write spatial reference: %w", err)
	}
	return nil
}

// flatten returns the rings of every polygon in p as a single polygon,
// which is how shapefiles store multi-part shapes.
func flatten(p geom.Polygonal) geom.Polygon {
	var o geom.Polygon
	for _, pp := range p.Polygons() {
		o = append(o, pp...)
	}
	return o
}

func prjPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".prj"
}
