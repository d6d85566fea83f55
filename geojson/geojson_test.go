// Copyright ©2026 The hexbin-generator Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package geojson

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ctessum/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hexbin "github.com/knu2xs/hexbin-generator"
)

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hexbins.geojson")
	l := &hexbin.Layer{
		SpatialReference: "urn:ogc:def:crs:EPSG::3857",
		Features: []*hexbin.Feature{
			{Polygonal: geom.Polygon{{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}}, ID: "A-1"},
			{
				Polygonal: geom.MultiPolygon{
					{{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6}, {X: 5, Y: 5}}},
					{{{X: 8, Y: 8}, {X: 9, Y: 8}, {X: 9, Y: 9}, {X: 8, Y: 9}, {X: 8, Y: 8}}},
				},
				ID: "B-1",
			},
		},
	}
	var s Store
	require.NoError(t, s.Write(path, l))

	got, err := s.Read(path)
	require.NoError(t, err)
	require.Equal(t, 2, got.Len())
	assert.Equal(t, "urn:ogc:def:crs:EPSG::3857", got.SpatialReference)
	assert.Equal(t, "A-1", got.Features[0].ID)
	assert.Equal(t, "B-1", got.Features[1].ID)

	// Open rings are closed on write.
	p := got.Features[0].Polygons()
	require.Len(t, p, 1)
	require.Len(t, p[0][0], 5)
	assert.Equal(t, p[0][0][0], p[0][0][4])

	assert.Len(t, got.Features[1].Polygons(), 2)
	assert.Equal(t, []float64{2, 2, 4, 4}, hexbin.ExtentDimensions(got))
}

func TestRead(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bg.json")
	const doc = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "id": 7, "properties": {"NAME": "a"},
     "geometry": {"type": "Polygon", "coordinates": [[[0,0],[1,0],[1,3],[0,3],[0,0]]]}},
    {"type": "Feature", "properties": null,
     "geometry": {"type": "Polygon", "coordinates": [[[0,0],[1,0],[1,1],[0,1],[0,0]]]}}
  ]
}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	got, err := Store{}.Read(path)
	require.NoError(t, err)
	require.Equal(t, 2, got.Len())
	assert.Equal(t, "7", got.Features[0].ID)
	assert.Equal(t, "2", got.Features[1].ID)
	assert.Empty(t, got.SpatialReference)
	assert.Equal(t, []float64{3, 1, 1, 1}, hexbin.ExtentDimensions(got))
}

func TestReadErrors(t *testing.T) {
	dir := t.TempDir()
	tests := map[string]string{
		"point.geojson": `{"type":"FeatureCollection","features":[{"type":"Feature","properties":{},"geometry":{"type":"Point","coordinates":[1,2]}}]}`,
		"bad.geojson":   `{"type":"Feature"}`,
	}
	for name, doc := range tests {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
		_, err := Store{}.Read(path)
		assert.Error(t, err, name)
	}
	_, err := Store{}.Read(filepath.Join(dir, "missing.geojson"))
	assert.Error(t, err)
}
