// Copyright ©2026 The hexbin-generator Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command hexbin sizes and generates hexbin tessellations for areas of
// interest delineated by census block groups.
package main

func main() {
	Execute()
}
