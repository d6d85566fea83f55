// Copyright ©2026 The hexbin-generator Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	hexbin "github.com/knu2xs/hexbin-generator"
)

var sizeCmd = &cobra.Command{
	Use:   "size <block-groups>",
	Short: "Print the hexagon area for a set of block groups",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g := newGenerator()
		bg, err := g.Source.Read(args[0])
		if err != nil {
			return err
		}
		area, err := g.HexArea(bg)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "area: %g\n", area)
		fmt.Fprintf(out, "short_diagonal: %g\n", hexbin.ShortDiagonal(area))
		fmt.Fprintf(out, "radius: %g\n", hexbin.HexRadius(area))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sizeCmd)
}
