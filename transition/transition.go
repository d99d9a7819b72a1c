// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transition

import (
	"fmt"
	"image"

	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/glfx/glgpu"
	"github.com/cogentcore/glfx/video"
)

// Filter renders a fragment-shader transition onto each frame it
// processes, implementing [video.Stage]. All GPU state is owned
// exclusively by one Filter: running this stage twice concurrently
// means two fully independent Filters, each on its own OS thread.
//
// Set the option fields before Init; they are not read again after.
type Filter struct {

	// Duration is the length of the transition in seconds.
	Duration float64 `default:"1"`

	// Offset is the delay in seconds before the transition starts.
	Offset float64 `default:"0"`

	// Source is an optional path to a GLSL file defining
	// vec4 transition(vec2 uv). If empty, the built-in passthrough
	// transition is used.
	Source string

	// FragSource is the composed fragment shader source,
	// set once at Init.
	FragSource string

	ctx      *glgpu.Context
	program  *glgpu.Program
	quad     *glgpu.VectorsBuffer
	frameTex *glgpu.Texture2D
	fbo      *glgpu.Framebuffer
	progress int32 // progress uniform location
	size     image.Point
}

var _ video.Stage = (*Filter)(nil)

// NewFilter returns a new transition filter with default options.
func NewFilter() *Filter {
	return &Filter{Duration: 1}
}

// quadVectors covers normalized device space [-1,1]^2 with two
// triangles, 6 vertices, so the fragment shader runs once per output
// pixel.
var quadVectors = []float32{
	-1, -1, 1, -1, -1, 1,
	-1, 1, 1, -1, 1, 1,
}

// Init builds all GPU state for the given frame geometry, which is
// fixed for the Filter's lifetime: the offscreen context, the composed
// and linked shader program, the quad buffer, the frame texture, and
// the readback framebuffer. Any failure releases whatever was already
// created and is fatal: the error stems from static configuration (bad
// shader text, bad path, no GPU), so there is no retry.
//
// glgpu.Init must have been called, and the calling goroutine must be
// locked to an OS thread, which must make all subsequent calls.
func (fl *Filter) Init(size image.Point) error {
	ctx, err := glgpu.NewContext(size)
	if err != nil {
		return err
	}
	fl.ctx = ctx
	fl.size = size
	if err := fl.config(); err != nil {
		fl.Release()
		return err
	}
	return nil
}

// config compiles the shader program and allocates the static
// geometry, texture, and framebuffer. Context must be current.
func (fl *Filter) config() error {
	body := DefaultTransition
	if fl.Source != "" {
		b, err := ReadSource(fl.Source)
		if err != nil {
			return err
		}
		body = b
	}
	fl.FragSource = ComposeSource(body)

	pr := glgpu.NewProgram("transition")
	fl.program = pr
	if _, err := pr.AddShader(glgpu.VertexShader, "quad", VertexSource); err != nil {
		return err
	}
	if _, err := pr.AddShader(glgpu.FragmentShader, "transition", fl.FragSource); err != nil {
		return err
	}
	if err := pr.Link(); err != nil {
		return err
	}
	pr.Activate()

	pos, err := pr.AttribLocation("position")
	if err != nil {
		return err
	}
	fl.quad = &glgpu.VectorsBuffer{}
	fl.quad.SetVectors(quadVectors)
	fl.quad.Activate()
	fl.quad.Transfer()
	fl.quad.SetAttrib(pos, 2)

	fl.frameTex = glgpu.NewTexture2D("frame", fl.size)
	fl.frameTex.Activate(0)

	fl.fbo = glgpu.NewFramebuffer("transition", fl.size)
	if err := fl.fbo.Activate(); err != nil {
		return err
	}

	// a transition that does not reference progress or resolution is
	// fine: the locations come back -1 and the sets are no-ops.
	pr.SetUniform1i(pr.UniformLocation("to"), 0)
	pr.SetUniform2f(pr.UniformLocation("resolution"), float32(fl.size.X), float32(fl.size.Y))
	fl.progress = pr.UniformLocation("progress")
	pr.SetUniform1f(fl.progress, 0)

	return glgpu.ErrCheck("transition config")
}

// Process renders the transition onto the given frame, returning a new
// output frame with the same timing metadata and the rendered pixels.
// The progress uniform is computed from the frame's timestamp by
// [Progress]. The frame must have the geometry given to Init. The
// draw and readback block until the GPU completes; the GL binding
// state is left as set, since this Filter owns its context exclusively.
func (fl *Filter) Process(in *video.Frame) (*video.Frame, error) {
	if in.Size() != fl.size {
		return nil, errors.Log(fmt.Errorf("transition Filter: frame is %v but geometry was fixed at %v by Init", in.Size(), fl.size))
	}
	out := video.NewFrame(fl.size)
	out.CopyMetaFrom(in)

	fl.ctx.Activate()
	fl.program.Activate()
	fl.quad.Activate()

	fl.frameTex.Activate(0)
	if err := fl.frameTex.Transfer(in.Pix); err != nil {
		return nil, err
	}
	fl.program.SetUniform1f(fl.progress, Progress(in.PTS, in.TimeBaseDen, fl.Offset, fl.Duration))

	if err := fl.fbo.Activate(); err != nil {
		return nil, err
	}
	glgpu.DrawTriangles(0, 6)
	if err := fl.fbo.ReadPixels(out.Pix); err != nil {
		return nil, err
	}
	// GPU state after a failed draw is not guaranteed consistent,
	// so any GL error here is fatal to this Filter.
	if err := glgpu.ErrCheck("transition render"); err != nil {
		return nil, err
	}
	return out, nil
}

// Release frees all GPU resources that were created, exactly once, and
// is safe on a partially initialized Filter after an Init error.
func (fl *Filter) Release() {
	if fl.ctx == nil {
		return
	}
	fl.ctx.Activate()
	if fl.fbo != nil {
		fl.fbo.Release()
		fl.fbo = nil
	}
	if fl.frameTex != nil {
		fl.frameTex.Release()
		fl.frameTex = nil
	}
	if fl.quad != nil {
		fl.quad.Release()
		fl.quad = nil
	}
	if fl.program != nil {
		fl.program.Release()
		fl.program = nil
	}
	fl.ctx.Release()
	fl.ctx = nil
}
