// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgress(t *testing.T) {
	tests := []struct {
		pts      int64
		den      int
		offset   float64
		duration float64
		want     float32
	}{
		{0, 1, 0, 1, 0},
		{1, 1, 0, 1, 1},
		{2, 1, 0, 1, 1}, // clamped past the end
		{-5, 1, 0, 1, 0},
		{500, 1000, 0, 1, 0.5},
		{30, 30, 0, 2, 0.5},
		{3, 1, 2, 1, 1},    // offset shifts the window
		{2, 1, 2, 1, 0},    // exactly at offset
		{1, 1, 2, 1, 0},    // before offset
		{5, 1, 1, 8, 0.5},
	}
	for _, test := range tests {
		got := Progress(test.pts, test.den, test.offset, test.duration)
		assert.InDelta(t, test.want, got, 1e-6, "pts=%d den=%d offset=%g duration=%g", test.pts, test.den, test.offset, test.duration)
	}
}

func TestProgressMonotonic(t *testing.T) {
	prev := float32(0)
	for pts := int64(-100); pts <= 300; pts++ {
		p := Progress(pts, 25, 1.5, 4)
		assert.GreaterOrEqual(t, p, prev, "pts=%d", pts)
		prev = p
	}
}

func TestProgressRange(t *testing.T) {
	for _, pts := range []int64{-1 << 40, -1000, -1, 0, 1, 1000, 1 << 40} {
		p := Progress(pts, 90000, 0.5, 2)
		assert.GreaterOrEqual(t, p, float32(0), "pts=%d", pts)
		assert.LessOrEqual(t, p, float32(1), "pts=%d", pts)
	}
}

func TestProgressZeroDuration(t *testing.T) {
	// zero or negative duration treated as already complete,
	// not a division by zero
	assert.Equal(t, float32(1), Progress(0, 1, 0, 0))
	assert.Equal(t, float32(1), Progress(-10, 1, 0, 0))
	assert.Equal(t, float32(1), Progress(5, 1, 0, -2))
}
