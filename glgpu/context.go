// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"image"

	"cogentcore.org/core/base/errors"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Context is a hidden, offscreen-capable GLFW window that exclusively
// owns all GL state for one user of this package. Its size is fixed at
// creation: there is no mechanism to resize it later.
//
// The context must be made current via Activate before any other GL
// call, and all calls must stay on the thread holding it current.
type Context struct {
	init   bool
	window *glfw.Window
	size   image.Point
}

// NewContext returns a new hidden window context of the given size,
// makes it current on the calling thread, and loads the GL function
// pointers for it. Init must have been called previously.
func NewContext(size image.Point) (*Context, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	win, err := glfw.CreateWindow(size.X, size.Y, "glgpu offscreen", nil, nil)
	if err != nil {
		return nil, errors.Log(fmt.Errorf("glgpu.NewContext: failed to create offscreen window: %w", err))
	}
	ctx := &Context{init: true, window: win, size: size}
	ctx.Activate()
	if err := gl.Init(); err != nil {
		ctx.Release()
		return nil, errors.Log(fmt.Errorf("glgpu.NewContext: failed to initialize GL: %w", err))
	}
	gl.Viewport(0, 0, int32(size.X), int32(size.Y))
	return ctx, nil
}

// Activate makes this context current on the calling thread.
// It must be called before issuing any other GL call, including
// before every per-frame render.
func (ctx *Context) Activate() {
	if !ctx.init {
		return
	}
	ctx.window.MakeContextCurrent()
}

// Size returns the fixed size of the context's render surface.
func (ctx *Context) Size() image.Point {
	return ctx.size
}

// Release destroys the underlying window, if it was created.
func (ctx *Context) Release() {
	if !ctx.init {
		return
	}
	ctx.window.Destroy()
	ctx.window = nil
	ctx.init = false
}
