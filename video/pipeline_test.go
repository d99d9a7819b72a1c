// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package video

import (
	"fmt"
	"image"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// invertStage is a CPU stage that inverts every pixel, for testing the
// pipeline without a GPU.
type invertStage struct {
	size     image.Point
	inits    int
	releases int
	initErr  error
}

func (st *invertStage) Init(size image.Point) error {
	st.inits++
	if st.initErr != nil {
		return st.initErr
	}
	st.size = size
	return nil
}

func (st *invertStage) Process(in *Frame) (*Frame, error) {
	out := NewFrame(in.Size())
	out.CopyMetaFrom(in)
	for i, p := range in.Pix {
		out.Pix[i] = 255 - p
	}
	return out, nil
}

func (st *invertStage) Release() {
	st.releases++
}

// sliceSource yields a fixed set of frames.
type sliceSource struct {
	frames []*Frame
	next   int
}

func (ss *sliceSource) Size() image.Point {
	if len(ss.frames) == 0 {
		return image.Point{}
	}
	return ss.frames[0].Size()
}

func (ss *sliceSource) Frame() (*Frame, error) {
	if ss.next >= len(ss.frames) {
		return nil, io.EOF
	}
	fr := ss.frames[ss.next]
	ss.next++
	return fr, nil
}

func testFrames(n int, size image.Point) []*Frame {
	frs := make([]*Frame, n)
	for i := range frs {
		fr := NewFrame(size)
		fr.PTS = int64(i)
		fr.TimeBaseDen = 25
		for j := range fr.Pix {
			fr.Pix[j] = uint8(i * 40)
		}
		frs[i] = fr
	}
	return frs
}

func TestPipelineRun(t *testing.T) {
	sz := image.Point{8, 6}
	src := &sliceSource{frames: testFrames(3, sz)}
	st := &invertStage{}
	pl := NewPipeline(st)

	var got []*Frame
	require.NoError(t, pl.Run(src, func(fr *Frame) error {
		got = append(got, fr)
		return nil
	}))

	require.Equal(t, 3, len(got))
	assert.Equal(t, 1, st.inits)
	assert.Equal(t, sz, st.size)
	assert.Equal(t, 1, st.releases)
	for i, fr := range got {
		assert.Equal(t, int64(i), fr.PTS)
		assert.Equal(t, 25, fr.TimeBaseDen)
		assert.Equal(t, uint8(255-i*40), fr.Pix[0])
	}
}

func TestPipelineStageOrder(t *testing.T) {
	sz := image.Point{4, 4}
	src := &sliceSource{frames: testFrames(1, sz)}
	// two inversions cancel out
	pl := NewPipeline(&invertStage{}, &invertStage{})
	var out *Frame
	require.NoError(t, pl.Run(src, func(fr *Frame) error {
		out = fr
		return nil
	}))
	require.NotNil(t, out)
	assert.Equal(t, uint8(0), out.Pix[0])
}

func TestPipelineGeometryChange(t *testing.T) {
	frames := testFrames(2, image.Point{8, 6})
	frames[1] = NewFrame(image.Point{4, 4})
	src := &sliceSource{frames: frames}
	st := &invertStage{}
	pl := NewPipeline(st)
	err := pl.Run(src, func(fr *Frame) error { return nil })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "geometry")
	assert.Equal(t, 1, st.releases)
}

func TestPipelineInitError(t *testing.T) {
	src := &sliceSource{frames: testFrames(1, image.Point{8, 6})}
	ok := &invertStage{}
	bad := &invertStage{initErr: fmt.Errorf("no GPU")}
	pl := NewPipeline(ok, bad)
	err := pl.Run(src, func(fr *Frame) error { return nil })
	require.Error(t, err)
	// the stage that did initialize is released; the failed one is not
	assert.Equal(t, 1, ok.releases)
	assert.Equal(t, 0, bad.releases)
}

func TestPipelineSinkError(t *testing.T) {
	src := &sliceSource{frames: testFrames(3, image.Point{8, 6})}
	st := &invertStage{}
	pl := NewPipeline(st)
	stop := fmt.Errorf("stop")
	err := pl.Run(src, func(fr *Frame) error { return stop })
	assert.Equal(t, stop, err)
	assert.Equal(t, 1, st.releases)
}
