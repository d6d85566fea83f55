// Copyright ©2026 The hexbin-generator Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	hexbin "github.com/knu2xs/hexbin-generator"
)

var (
	flagFullExtent bool
	flagFootprint  string
)

var generateCmd = &cobra.Command{
	Use:   "generate <block-groups> <output>",
	Short: "Generate hexbins covering a set of block groups",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		g := newGenerator()
		bg, err := g.Source.Read(args[0])
		if err != nil {
			return err
		}
		var out string
		if flagFullExtent {
			out, err = g.FullExtent(bg, args[1])
		} else {
			out, err = g.FromBlockGroups(bg, args[1])
		}
		if err != nil {
			return err
		}
		if err := writeFootprint(g, bg, out); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

var regionCmd = &cobra.Command{
	Use:   "region <region> <output>",
	Short: "Generate hexbins for the block groups intersecting a region",
	Long: `region selects the block groups that intersect the features of the
region layer, typically a single Core-Based Statistical Area, and
generates hexbins covering them. Block groups are read from
--block-groups, or from the block_groups config key, or from
<data_dir>/Data/Demographic Data/esri_bg.bds.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		g := newGenerator()
		region, err := g.Source.Read(args[0])
		if err != nil {
			return err
		}
		bgPath := cfg.BlockGroupPath()
		if cmd.Flags().Changed("block-groups") {
			bgPath = flagBlockGroups
		}
		out, err := g.ByRegion(bgPath, region, args[1])
		if err != nil {
			return err
		}
		if flagFootprint != "" {
			bg, err := g.Source.Read(bgPath)
			if err != nil {
				return err
			}
			if bg, err = g.Engine.SelectByLocation(bg, region, false); err != nil {
				return err
			}
			if err := writeFootprint(g, bg, out); err != nil {
				return err
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

var flagBlockGroups string

// writeFootprint writes the dissolved outline of the hexbins at hexbins
// to --footprint, if it was given.
func writeFootprint(g *hexbin.Generator, bg *hexbin.Layer, hexbins string) error {
	if flagFootprint == "" {
		return nil
	}
	area, err := g.HexArea(bg)
	if err != nil {
		return err
	}
	l, err := g.Source.Read(hexbins)
	if err != nil {
		return err
	}
	fp, err := hexbin.Footprint(l, cfg.FootprintTolerance*hexbin.HexRadius(area))
	if err != nil {
		return err
	}
	if err := store().Write(flagFootprint, hexbin.NewLayer(l.SpatialReference, fp)); err != nil {
		return err
	}
	logger.Info("wrote footprint", zap.String("path", flagFootprint), zap.Int("rings", len(fp)))
	return nil
}

func init() {
	generateCmd.Flags().BoolVar(&flagFullExtent, "full-extent", false, "keep hexbins covering the full rectangular extent")
	for _, c := range []*cobra.Command{generateCmd, regionCmd} {
		c.Flags().StringVar(&flagFootprint, "footprint", "", "also write the dissolved outline of the hexbins to this path")
	}
	regionCmd.Flags().StringVar(&flagBlockGroups, "block-groups", "", "block group layer (overrides config)")
	rootCmd.AddCommand(generateCmd, regionCmd)
}
