// Copyright ©2026 The hexbin-generator Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package config loads hexbin settings from flags, the environment and
// an optional YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	hexbin "github.com/knu2xs/hexbin-generator"
)

// Global configuration structure.
type Global struct {
	// DataDir is the base data directory that holds the demographic
	// data sets.
	DataDir string `mapstructure:"data_dir" yaml:"data_dir"`
	// BlockGroups overrides the block group path derived from DataDir.
	BlockGroups string `mapstructure:"block_groups" yaml:"block_groups"`
	// FootprintTolerance is the vertex snapping distance used when
	// dissolving hexbins, as a fraction of the hexagon radius.
	FootprintTolerance float64 `mapstructure:"footprint_tolerance" yaml:"footprint_tolerance"`
	// MaxCells limits the size of generated tessellations.
	MaxCells int  `mapstructure:"max_cells" yaml:"max_cells"`
	Verbose  bool `mapstructure:"verbose" yaml:"verbose"`
}

// BlockGroupPath returns the block group data set to use when selecting
// by region.
func (c *Global) BlockGroupPath() string {
	if c.BlockGroups != "" {
		return c.BlockGroups
	}
	return hexbin.DefaultBlockGroupPath(c.DataDir)
}

// Dir returns the default configuration directory, ~/.hexbin.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".hexbin"), nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.hexbin/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	path := cfgFile
	if path == "" {
		dir, err := Dir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("HEXBIN")
	v.AutomaticEnv()

	v.SetDefault("data_dir", "")
	v.SetDefault("block_groups", "")
	v.SetDefault("footprint_tolerance", 0.25)
	v.SetDefault("max_cells", hexbin.DefaultMaxCells)
	v.SetDefault("verbose", false)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		dir, err := Dir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// optional read
		_ = v.ReadInConfig()
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.DataDir == "" {
		dir, err := Dir()
		if err != nil {
			return nil, err
		}
		c.DataDir = filepath.Join(dir, "data")
	}
	return &c, nil
}
