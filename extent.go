// Copyright ©2026 The hexbin-generator Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hexbin

// ExtentDimensions returns the bounding box height and then width of
// every feature in l, in feature order.
func ExtentDimensions(l *Layer) []float64 {
	o := make([]float64, 0, 2*l.Len())
	for _, f := range l.Features {
		b := f.Bounds()
		o = append(o, b.Max.Y-b.Min.Y, b.Max.X-b.Min.X)
	}
	return o
}
