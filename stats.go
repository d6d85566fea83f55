// Copyright ©2026 The hexbin-generator Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hexbin

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// QuartilePair holds the lower and upper quartiles of a set of values.
type QuartilePair struct {
	Lower, Upper float64
}

// Mean returns the arithmetic mean of values. The sum is accumulated
// with compensated summation to limit rounding error.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}
	return floats.SumCompensated(values) / float64(len(values)), nil
}

// Median returns the median of sorted, which must be in ascending order.
// For an even number of values it returns the lower of the two middle
// values rather than their average.
func Median(sorted []float64) (float64, error) {
	n := len(sorted)
	if n == 0 {
		return 0, ErrEmptyInput
	}
	if n%2 == 0 {
		return sorted[n/2-1], nil
	}
	return sorted[n/2], nil
}

// Quartiles returns the lower and upper quartiles of sorted, which must be
// in ascending order and hold at least 4 values.
//
// The lower quartile is interpolated between the values at 1-based
// positions j and j+1, where j = floor(n/4 + 5/12) and the weight
// h is the fractional part of n/4 + 5/12. The upper quartile mirrors
// that position from the top of the list. This is the median-unbiased
// estimator (Hyndman and Fan type 8).
func Quartiles(sorted []float64) (QuartilePair, error) {
	n := len(sorted)
	if n < 4 {
		return QuartilePair{}, ErrInsufficientData
	}
	pos := float64(n)/4 + 5.0/12
	j := int(math.Floor(pos))
	h := pos - float64(j)

	// 0-based: positions j and j+1 are sorted[j-1] and sorted[j].
	lower := (1-h)*sorted[j-1] + h*sorted[j]

	// k is the 1-based position mirroring j.
	k := n - j + 1
	upper := (1-h)*sorted[k-1] + h*sorted[k-2]
	return QuartilePair{Lower: lower, Upper: upper}, nil
}

// WinsorizeValue clamps x into the closed interval [q.Lower, q.Upper].
func WinsorizeValue(x float64, q QuartilePair) float64 {
	switch {
	case x < q.Lower:
		return q.Lower
	case x > q.Upper:
		return q.Upper
	default:
		return x
	}
}

// Winsorize returns a copy of sorted with every value clamped to the
// quartiles of sorted. The quartiles are computed once, before any value
// is changed, so order and length are preserved.
func Winsorize(sorted []float64) ([]float64, error) {
	q, err := Quartiles(sorted)
	if err != nil {
		return nil, err
	}
	o := make([]float64, len(sorted))
	for i, v := range sorted {
		o[i] = WinsorizeValue(v, q)
	}
	return o, nil
}
