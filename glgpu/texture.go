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

// Texture2D manages a 2D texture in the fixed 3-byte-per-pixel RGB
// format, with dimensions fixed at creation for the lifetime of the
// texture.
type Texture2D struct {
	init   bool
	handle uint32
	name   string
	size   image.Point
}

// NewTexture2D returns a new texture of the given unique name and
// fixed size.
func NewTexture2D(name string, size image.Point) *Texture2D {
	return &Texture2D{name: name, size: size}
}

// Name returns the name of the texture.
func (tx *Texture2D) Name() string {
	return tx.name
}

// Size returns the fixed size of the texture.
func (tx *Texture2D) Size() image.Point {
	return tx.size
}

// Activate establishes the texture on the GPU if not yet done,
// allocating RGB storage at the fixed size with edge-clamped linear
// sampling, and binds it to the given texture unit (0-31 range).
func (tx *Texture2D) Activate(texNo int) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(texNo))
	if !tx.init {
		gl.GenTextures(1, &tx.handle)
		gl.BindTexture(gl.TEXTURE_2D, tx.handle)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
		// 3-byte pixels: rows are not 4-byte aligned in general
		gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB8, int32(tx.size.X), int32(tx.size.Y), 0, gl.RGB, gl.UNSIGNED_BYTE, nil)
		tx.init = true
	} else {
		gl.BindTexture(gl.TEXTURE_2D, tx.handle)
	}
}

// Transfer uploads the given RGB pixel data (3 bytes per pixel, rows
// packed top-to-bottom with no padding) into the texture. The data
// must exactly match the fixed size: a mismatch is a hard failure, not
// undefined behavior. The texture must be Activate'd.
func (tx *Texture2D) Transfer(pix []byte) error {
	sz := tx.size.X * tx.size.Y * 3
	if len(pix) != sz {
		return errors.Log(fmt.Errorf("glgpu Texture2D %s: pixel data is %d bytes but texture is %dx%dx3 = %d", tx.name, len(pix), tx.size.X, tx.size.Y, sz))
	}
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB8, int32(tx.size.X), int32(tx.size.Y), 0, gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	return nil
}

// Handle returns the GPU handle for the texture -- only valid after
// Activate.
func (tx *Texture2D) Handle() uint32 {
	return tx.handle
}

// Release deletes the GPU texture, if created.
func (tx *Texture2D) Release() {
	if !tx.init {
		return
	}
	gl.DeleteTextures(1, &tx.handle)
	tx.handle = 0
	tx.init = false
}
