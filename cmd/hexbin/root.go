// Copyright ©2026 The hexbin-generator Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	hexbin "github.com/knu2xs/hexbin-generator"
	"github.com/knu2xs/hexbin-generator/geojson"
	cfgpkg "github.com/knu2xs/hexbin-generator/internal/config"
	"github.com/knu2xs/hexbin-generator/shapefile"
)

var (
	cfgFile     string
	verbose     bool
	flagDataDir string

	// Loaded configuration
	cfg *cfgpkg.Global

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "hexbin",
	Short: "Generate hexbins sized to census block groups",
	Long: `hexbin derives a hexagon size from the Winsorized mean of the extent
heights and widths of a set of block groups, tessellates their extent
with hexagons of that size, and removes the hexagons that do not
intersect the block groups.

Layers are read and written as shapefiles (.shp) or GeoJSON (.geojson, .json).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose || (cfg != nil && cfg.Verbose) {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.hexbin/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "base data directory (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: fall back to defaults
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		c = &cfgpkg.Global{FootprintTolerance: 0.25}
	}
	cfg = c
	if rootCmd.PersistentFlags().Changed("data-dir") {
		cfg.DataDir = flagDataDir
	}
}

// store routes layer paths to the shapefile or GeoJSON store.
func store() hexbin.Store {
	return hexbin.Dispatch{
		".shp":     shapefile.Store{},
		".geojson": geojson.Store{},
		".json":    geojson.Store{},
	}
}

func newGenerator() *hexbin.Generator {
	s := store()
	return &hexbin.Generator{
		Source: s,
		Engine: &hexbin.Engine{Store: s, MaxCells: cfg.MaxCells},
		Logger: logger,
	}
}
