// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"image"

	"cogentcore.org/core/base/errors"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Framebuffer is an offscreen render target with an RGB color texture
// attachment, sized at creation, whose rendered contents can be read
// back into CPU memory with ReadPixels.
type Framebuffer struct {
	init   bool
	handle uint32
	name   string
	size   image.Point
	cTex   *Texture2D
}

// NewFramebuffer returns a new framebuffer of the given unique name
// and fixed size.
func NewFramebuffer(name string, size image.Point) *Framebuffer {
	return &Framebuffer{name: name, size: size}
}

// Name returns the name of the framebuffer.
func (fb *Framebuffer) Name() string {
	return fb.name
}

// Size returns the fixed size of the framebuffer.
func (fb *Framebuffer) Size() image.Point {
	return fb.size
}

// Activate establishes the GPU resources for the framebuffer and its
// color texture (if not already done), sets it as the current render
// target, and sets the viewport to its size. Fails if the driver
// reports the framebuffer incomplete.
func (fb *Framebuffer) Activate() error {
	if !fb.init {
		gl.GenFramebuffers(1, &fb.handle)
		gl.BindFramebuffer(gl.FRAMEBUFFER, fb.handle)
		fb.cTex = NewTexture2D(fb.name+"-color", fb.size)
		fb.cTex.Activate(0)
		gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, fb.cTex.Handle(), 0)
		fb.init = true
	} else {
		gl.BindFramebuffer(gl.FRAMEBUFFER, fb.handle)
	}
	if gl.CheckFramebufferStatus(gl.FRAMEBUFFER) != gl.FRAMEBUFFER_COMPLETE {
		return errors.Log(fmt.Errorf("glgpu Framebuffer %s: not complete", fb.name))
	}
	gl.Viewport(0, 0, int32(fb.size.X), int32(fb.size.Y))
	return nil
}

// Texture returns the color texture that rendering targets.
// Returns nil if not yet Activate'd.
func (fb *Framebuffer) Texture() *Texture2D {
	return fb.cTex
}

// Handle returns the GPU handle for the framebuffer -- only valid
// after Activate.
func (fb *Framebuffer) Handle() uint32 {
	return fb.handle
}

// ReadPixels reads the rendered RGB contents back into pix, which must
// hold exactly 3 bytes per pixel at the framebuffer's size. This is a
// synchronizing operation: it blocks until the GPU has completed all
// rendering to the framebuffer. Must be called with the framebuffer
// Activate'd, on the context thread.
func (fb *Framebuffer) ReadPixels(pix []byte) error {
	sz := fb.size.X * fb.size.Y * 3
	if len(pix) != sz {
		return errors.Log(fmt.Errorf("glgpu Framebuffer %s: pixel buffer is %d bytes but framebuffer is %dx%dx3 = %d", fb.name, len(pix), fb.size.X, fb.size.Y, sz))
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(fb.size.X), int32(fb.size.Y), gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	return nil
}

// Release deletes the framebuffer and its color texture, if created.
func (fb *Framebuffer) Release() {
	if !fb.init {
		return
	}
	fb.cTex.Release()
	fb.cTex = nil
	gl.DeleteFramebuffers(1, &fb.handle)
	fb.handle = 0
	fb.init = false
}
