// Copyright ©2026 The hexbin-generator Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hexbin

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"
)

// BlockGroupPath is the location of the block group data set relative
// to a base data directory.
var BlockGroupPath = filepath.Join("Data", "Demographic Data", "esri_bg.bds")

// DefaultBlockGroupPath returns the location of the block group data set
// under the base data directory dataDir.
func DefaultBlockGroupPath(dataDir string) string {
	return filepath.Join(dataDir, BlockGroupPath)
}

// Generator creates hexbins sized to the block groups of an area of
// interest. Every step must succeed before the next begins; the first
// error is returned as is.
type Generator struct {
	// Source reads block groups and generated hexbins.
	Source GeometrySource

	Engine TessellationEngine

	// Logger receives progress messages. It may be nil.
	Logger *zap.Logger
}

// NewGenerator returns a Generator that reads and writes layers through s
// using an in-process Engine.
func NewGenerator(s Store, logger *zap.Logger) *Generator {
	return &Generator{
		Source: s,
		Engine: &Engine{Store: s},
		Logger: logger,
	}
}

func (g *Generator) log() *zap.Logger {
	if g.Logger == nil {
		return zap.NewNop()
	}
	return g.Logger
}

// HexArea returns the hexagon area for block groups bg, calculated from
// the Winsorized heights and widths of their extents.
func (g *Generator) HexArea(bg *Layer) (float64, error) {
	area, err := HexAreaForRegion(ExtentDimensions(bg))
	if err != nil {
		return 0, fmt.Errorf("hexbin: sizing %d block groups: %w", bg.Len(), err)
	}
	g.log().Debug("calculated hexagon area",
		zap.Int("features", bg.Len()),
		zap.Float64("area", area),
		zap.Float64("short_diagonal", ShortDiagonal(area)))
	return area, nil
}

// FullExtent writes hexbins covering the full rectangular extent of
// block groups bg to output and returns output. The hexbins share the
// spatial reference of bg.
func (g *Generator) FullExtent(bg *Layer, output string) (string, error) {
	area, err := g.HexArea(bg)
	if err != nil {
		return "", err
	}
	extent, _ := bg.Extent()
	req := TessellationRequest{
		Output:           output,
		Extent:           extent,
		Shape:            Hexagon,
		Size:             area,
		SpatialReference: bg.SpatialReference,
	}
	if err := g.Engine.GenerateTessellation(req); err != nil {
		return "", external("generate tessellation", output, err)
	}
	g.log().Info("generated tessellation", zap.String("path", output), zap.Float64("area", area))
	return output, nil
}

// FromBlockGroups writes hexbins covering the area of interest defined
// by block groups bg to output and returns output. Hexbins that do not
// intersect any block group are removed.
func (g *Generator) FromBlockGroups(bg *Layer, output string) (string, error) {
	if _, err := g.FullExtent(bg, output); err != nil {
		return "", err
	}
	hexbins, err := g.Source.Read(output)
	if err != nil {
		return "", external("read", output, err)
	}
	outside, err := g.Engine.SelectByLocation(hexbins, bg, true)
	if err != nil {
		return "", external("select by location", output, err)
	}
	n, err := g.Engine.DeleteFeatures(output, outside)
	if err != nil {
		return "", external("delete features", output, err)
	}
	g.log().Info("clipped hexbins to block groups",
		zap.String("path", output),
		zap.Int("deleted", outside.Len()),
		zap.Int("cells", n))
	return output, nil
}

// ByRegion reads the block groups at blockGroupPath, selects those that
// intersect region, and writes hexbins covering them to output.
// A typical region is a single Core-Based Statistical Area.
func (g *Generator) ByRegion(blockGroupPath string, region *Layer, output string) (string, error) {
	all, err := g.Source.Read(blockGroupPath)
	if err != nil {
		return "", external("read", blockGroupPath, err)
	}
	bg, err := g.Engine.SelectByLocation(all, region, false)
	if err != nil {
		return "", external("select by location", blockGroupPath, err)
	}
	g.log().Debug("selected block groups in region",
		zap.String("path", blockGroupPath),
		zap.Int("features", bg.Len()),
		zap.Int("of", all.Len()))
	return g.FromBlockGroups(bg, output)
}
