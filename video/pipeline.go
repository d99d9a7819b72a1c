// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package video

import (
	"fmt"
	"image"
	"io"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/logx"
)

// Stage is one frame-processing stage in a [Pipeline]. A stage is
// invoked synchronously, once per frame, on the goroutine driving the
// pipeline; stages that hold GPU state additionally require that
// goroutine to be locked to one OS thread.
type Stage interface {
	// Init is called exactly once, when the frame geometry becomes
	// known from the first frame. All stage resources are created here;
	// geometry is fixed for the stage's lifetime.
	Init(size image.Point) error

	// Process transforms one input frame into one output frame
	// carrying the input's timing metadata.
	Process(in *Frame) (*Frame, error)

	// Release frees everything Init created. It is called exactly
	// once, and must be safe after a failed Init.
	Release()
}

// Source supplies a sequence of frames, returning io.EOF when the
// stream is exhausted.
type Source interface {
	// Size returns the frame dimensions, known before the first frame.
	Size() image.Point

	// Frame returns the next frame, or io.EOF at end of stream.
	Frame() (*Frame, error)
}

// Pipeline runs a sequence of stages over a stream of frames. The
// frame geometry is fixed by the first frame: a later frame with
// different dimensions is an explicit error, not undefined behavior.
type Pipeline struct {
	// Stages are run in order, each consuming the previous output.
	Stages []Stage

	size   image.Point
	ninit  int // number of stages successfully initialized
	inited bool
}

// NewPipeline returns a new pipeline running the given stages in order.
func NewPipeline(stages ...Stage) *Pipeline {
	return &Pipeline{Stages: stages}
}

// Do runs a single frame through all stages, initializing them to the
// frame's geometry on first use. A failed initialization releases the
// stages already initialized and is fatal to the pipeline.
func (pl *Pipeline) Do(fr *Frame) (*Frame, error) {
	sz := fr.Size()
	if !pl.inited {
		logx.PrintlnDebug("video Pipeline: configuring", len(pl.Stages), "stages for", sz)
		for _, st := range pl.Stages {
			if err := st.Init(sz); err != nil {
				pl.Release()
				return nil, err
			}
			pl.ninit++
		}
		pl.size = sz
		pl.inited = true
	} else if sz != pl.size {
		return nil, errors.Log(fmt.Errorf("video Pipeline: frame geometry changed from %v to %v; geometry is fixed by the first frame", pl.size, sz))
	}
	cur := fr
	for _, st := range pl.Stages {
		out, err := st.Process(cur)
		if err != nil {
			return nil, err
		}
		cur = out
	}
	return cur, nil
}

// Run pulls frames from the source until io.EOF, passing each through
// all stages in order and handing each result to the sink function.
// Stages are released when Run returns, whether or not it errors.
func (pl *Pipeline) Run(src Source, sink func(*Frame) error) error {
	defer pl.Release()
	for {
		fr, err := src.Frame()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		out, err := pl.Do(fr)
		if err != nil {
			return err
		}
		if err := sink(out); err != nil {
			return err
		}
	}
}

// Release releases the stages that were initialized, exactly once.
func (pl *Pipeline) Release() {
	for i := range pl.ninit {
		pl.Stages[i].Release()
	}
	pl.ninit = 0
	pl.inited = false
}
