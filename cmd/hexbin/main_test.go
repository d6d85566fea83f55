// Copyright ©2026 The hexbin-generator Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/ctessum/geom"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hexbin "github.com/knu2xs/hexbin-generator"
	"github.com/knu2xs/hexbin-generator/geojson"
)

func square(x, y float64) geom.Polygon {
	return geom.Polygon{{
		{X: x, Y: y}, {X: x + 1000, Y: y}, {X: x + 1000, Y: y + 1000}, {X: x, Y: y + 1000}, {X: x, Y: y},
	}}
}

// run executes the root command with args and returns its output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags restores every flag of c and its subcommands to its default
// and clears its Changed state.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func writeBlockGroups(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "bg.geojson")
	bg := hexbin.NewLayer("EPSG:26910",
		square(0, 0), square(1000, 0), square(2000, 0), square(0, 1000), square(0, 2000))
	require.NoError(t, geojson.Store{}.Write(path, bg))
	return path
}

func TestSizeCommand(t *testing.T) {
	bg := writeBlockGroups(t, t.TempDir())
	out, err := run(t, "size", bg)
	require.NoError(t, err)
	assert.Contains(t, out, "area: 866025.4")
	assert.Contains(t, out, "short_diagonal: ")
}

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()
	bg := writeBlockGroups(t, dir)
	hexPath := filepath.Join(dir, "hexbins.geojson")
	fpPath := filepath.Join(dir, "footprint.geojson")

	out, err := run(t, "generate", bg, hexPath, "--footprint", fpPath)
	require.NoError(t, err)
	assert.Contains(t, out, hexPath)

	hexbins, err := geojson.Store{}.Read(hexPath)
	require.NoError(t, err)
	assert.NotZero(t, hexbins.Len())
	assert.Equal(t, "EPSG:26910", hexbins.SpatialReference)

	fp, err := geojson.Store{}.Read(fpPath)
	require.NoError(t, err)
	assert.Equal(t, 1, fp.Len())
}

func TestRegionCommand(t *testing.T) {
	dir := t.TempDir()
	bg := writeBlockGroups(t, dir)
	region := filepath.Join(dir, "cbsa.geojson")
	require.NoError(t, geojson.Store{}.Write(region, hexbin.NewLayer("",
		geom.Polygon{{{X: 100, Y: 100}, {X: 1900, Y: 100}, {X: 1900, Y: 900}, {X: 100, Y: 900}, {X: 100, Y: 100}}})))
	hexPath := filepath.Join(dir, "region.geojson")

	_, err := run(t, "region", region, hexPath, "--block-groups", bg)
	require.NoError(t, err)
	hexbins, err := geojson.Store{}.Read(hexPath)
	require.NoError(t, err)
	assert.NotZero(t, hexbins.Len())
}

func TestUnsupportedFormat(t *testing.T) {
	_, err := run(t, "size", filepath.Join(t.TempDir(), "esri_bg.bds"))
	assert.ErrorIs(t, err, hexbin.ErrUnsupportedFormat)
}

func TestFlagsDoNotLeak(t *testing.T) {
	_, err := run(t, "config", "show", "--data-dir", "/srv/ba")
	require.NoError(t, err)

	out, err := run(t, "config", "show")
	require.NoError(t, err)
	assert.NotContains(t, out, "/srv/ba")
	assert.False(t, rootCmd.PersistentFlags().Changed("data-dir"))
}

func TestConfigShow(t *testing.T) {
	out, err := run(t, "config", "show", "--data-dir", "/srv/ba")
	require.NoError(t, err)
	assert.Contains(t, out, "data_dir: /srv/ba")
	assert.Contains(t, out, filepath.Join("/srv/ba", "Data", "Demographic Data", "esri_bg.bds"))
}
