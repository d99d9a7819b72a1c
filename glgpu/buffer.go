// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// VectorsBuffer manages a buffer of float32 vertex data, along with the
// vertex array object that binds it to a vertex attribute (core profile
// rendering requires a bound vertex array).
type VectorsBuffer struct {
	init   bool
	handle uint32
	vao    uint32
	vecs   []float32
}

// SetVectors sets the vertex data to be transferred to the GPU.
func (vb *VectorsBuffer) SetVectors(vecs []float32) {
	vb.vecs = vecs
}

// Vectors returns the current vertex data.
func (vb *VectorsBuffer) Vectors() []float32 {
	return vb.vecs
}

// Activate establishes the vertex array and buffer on the GPU (if not
// already done) and binds them as the active ones.
func (vb *VectorsBuffer) Activate() {
	if !vb.init {
		gl.GenVertexArrays(1, &vb.vao)
		gl.GenBuffers(1, &vb.handle)
		vb.init = true
	}
	gl.BindVertexArray(vb.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vb.handle)
}

// Handle returns the handle for the buffer -- only valid after Activate.
func (vb *VectorsBuffer) Handle() uint32 {
	return vb.handle
}

// Transfer transfers the vertex data to the GPU as static draw data.
// Activate must have been called with no other buffer activated since.
func (vb *VectorsBuffer) Transfer() {
	gl.BufferData(gl.ARRAY_BUFFER, len(vb.vecs)*4, gl.Ptr(vb.vecs), gl.STATIC_DRAW)
}

// SetAttrib binds the buffer as the data source for the given vertex
// attribute location, with size components per vertex, tightly packed.
// The binding is recorded in the vertex array, so it persists across
// frames as long as the vertex array is bound at draw time.
func (vb *VectorsBuffer) SetAttrib(loc uint32, size int32) {
	gl.EnableVertexAttribArray(loc)
	gl.VertexAttribPointerWithOffset(loc, size, gl.FLOAT, false, 0, 0)
}

// Release deletes the GPU buffer and vertex array, if created.
func (vb *VectorsBuffer) Release() {
	if !vb.init {
		return
	}
	gl.DeleteBuffers(1, &vb.handle)
	gl.DeleteVertexArrays(1, &vb.vao)
	vb.handle = 0
	vb.vao = 0
	vb.init = false
}
