// Copyright ©2026 The hexbin-generator Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package hexbin contains functions for creating hexbins: regular
// hexagonal tessellations whose cell size is derived from the census
// block groups they cover.
// The hexagon area is calculated from the Winsorized mean of the block
// group extent heights and widths, so that a typical hexbin is about the
// size of a typical block group. Hexbins that do not intersect any block
// group are removed from the output.
package hexbin
