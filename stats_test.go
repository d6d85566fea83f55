// Copyright ©2026 The hexbin-generator Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hexbin

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMean(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{name: "single", values: []float64{4.25}, want: 4.25},
		{name: "one to five", values: []float64{1, 2, 3, 4, 5}, want: 3},
		{name: "unsorted", values: []float64{10, 0, 5}, want: 5},
		// A naive running sum loses the 1 entirely.
		{name: "compensated", values: []float64{1e16, 1, -1e16}, want: 1.0 / 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Mean(tt.values)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}

	_, err := Mean(nil)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestMedian(t *testing.T) {
	tests := []struct {
		values []float64
		want   float64
	}{
		{values: []float64{7}, want: 7},
		{values: []float64{1, 2}, want: 1},
		{values: []float64{1, 2, 3, 4}, want: 2},
		{values: []float64{1, 2, 3, 4, 5}, want: 3},
		{values: []float64{1, 2, 3, 4, 5, 6, 7}, want: 4},
	}
	for _, tt := range tests {
		got, err := Median(tt.values)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "median of %v", tt.values)
	}

	_, err := Median([]float64{})
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestQuartiles(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   QuartilePair
	}{
		{
			name:   "four values",
			values: []float64{1, 2, 3, 4},
			want:   QuartilePair{Lower: 17.0 / 12, Upper: 43.0 / 12},
		},
		{
			name:   "one to ten",
			values: []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
			want:   QuartilePair{Lower: 35.0 / 12, Upper: 97.0 / 12},
		},
		{
			name:   "constant",
			values: []float64{2, 2, 2, 2, 2},
			want:   QuartilePair{Lower: 2, Upper: 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Quartiles(tt.values)
			require.NoError(t, err)
			assert.InDelta(t, tt.want.Lower, got.Lower, 1e-12)
			assert.InDelta(t, tt.want.Upper, got.Upper, 1e-12)
		})
	}
}

func TestQuartilesInsufficientData(t *testing.T) {
	for n := 0; n < 4; n++ {
		_, err := Quartiles(make([]float64, n))
		assert.ErrorIs(t, err, ErrInsufficientData, "n=%d", n)
	}
}

// quantile8 is a direct implementation of the Hyndman and Fan type 8
// sample quantile.
func quantile8(sorted []float64, p float64) float64 {
	n := float64(len(sorted))
	m := (n+1.0/3)*p + 1.0/3
	j := math.Floor(m)
	g := m - j
	switch {
	case j < 1:
		return sorted[0]
	case int(j) >= len(sorted):
		return sorted[len(sorted)-1]
	}
	return sorted[int(j)-1] + g*(sorted[int(j)]-sorted[int(j)-1])
}

func TestQuartilesMatchType8(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for n := 4; n <= 60; n++ {
		values := make([]float64, n)
		for i := range values {
			values[i] = rnd.ExpFloat64() * 1000
		}
		sort.Float64s(values)
		q, err := Quartiles(values)
		require.NoError(t, err)
		assert.InDelta(t, quantile8(values, 0.25), q.Lower, 1e-9, "lower, n=%d", n)
		assert.InDelta(t, quantile8(values, 0.75), q.Upper, 1e-9, "upper, n=%d", n)
		assert.LessOrEqual(t, q.Lower, q.Upper, "n=%d", n)
	}
}

func TestWinsorizeValue(t *testing.T) {
	q := QuartilePair{Lower: 2, Upper: 8}
	tests := []struct{ x, want float64 }{
		{x: -1, want: 2},
		{x: 2, want: 2},
		{x: 5, want: 5},
		{x: 8, want: 8},
		{x: 100, want: 8},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, WinsorizeValue(tt.x, q), "x=%g", tt.x)
	}
}

func TestWinsorize(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	lower, upper := 35.0/12, 97.0/12
	want := []float64{lower, lower, 3, 4, 5, 6, 7, 8, upper, upper}

	got, err := Winsorize(values)
	require.NoError(t, err)
	require.Len(t, got, len(want))
	assert.InDeltaSlice(t, want, got, 1e-12)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, values, "input modified")

	// Clamping again to the quartiles of the original list changes nothing.
	q, err := Quartiles(values)
	require.NoError(t, err)
	for i, v := range got {
		assert.Equal(t, v, WinsorizeValue(v, q), "index %d", i)
	}

	_, err = Winsorize([]float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrInsufficientData)
}
