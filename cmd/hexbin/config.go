// Copyright ©2026 The hexbin-generator Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cfgpkg "github.com/knu2xs/hexbin-generator/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set hexbin configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "data_dir: %s\n", cfg.DataDir)
		fmt.Fprintf(out, "block_groups: %s\n", cfg.BlockGroupPath())
		fmt.Fprintf(out, "footprint_tolerance: %.3f\n", cfg.FootprintTolerance)
		fmt.Fprintf(out, "max_cells: %d\n", cfg.MaxCells)
		fmt.Fprintf(out, "verbose: %t\n", cfg.Verbose)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		switch key {
		case "data_dir":
			cfg.DataDir = val
		case "block_groups":
			cfg.BlockGroups = val
		case "footprint_tolerance":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return fmt.Errorf("invalid footprint_tolerance: %w", err)
			}
			cfg.FootprintTolerance = f
		case "max_cells":
			n, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("invalid max_cells: %w", err)
			}
			cfg.MaxCells = n
		case "verbose":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("invalid verbose: %w", err)
			}
			cfg.Verbose = b
		default:
			return fmt.Errorf("unknown key %q", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", key)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd, configSetCmd)
	rootCmd.AddCommand(configCmd)
}
