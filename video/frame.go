// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package video supplies the host-pipeline collaborators for per-frame
// video processing stages: the RGB Frame type with stream timing
// metadata, the Stage interface and Pipeline runner, and a media file
// frame source based on the ffmpeg-backed reisen decoder.
package video

import (
	"fmt"
	"image"
	"image/color"

	"cogentcore.org/core/base/errors"
)

// Frame is one video frame in the fixed 3-byte-per-pixel RGB layout
// used throughout the pipeline, together with its stream timing.
type Frame struct {
	// Pix is the RGB pixel data, 3 bytes per pixel, rows packed
	// top-to-bottom with no padding (stride = 3 * Width).
	Pix []uint8

	// Width and Height are the frame dimensions in pixels.
	Width, Height int

	// PTS is the presentation timestamp in stream time-base units.
	PTS int64

	// TimeBaseDen is the number of stream time-base units per second.
	TimeBaseDen int
}

// NewFrame returns a new frame with pixel storage allocated for the
// given size.
func NewFrame(size image.Point) *Frame {
	return &Frame{Pix: make([]uint8, size.X*size.Y*3), Width: size.X, Height: size.Y}
}

// Size returns the frame dimensions.
func (fr *Frame) Size() image.Point {
	return image.Point{fr.Width, fr.Height}
}

// Time returns the presentation time in seconds.
func (fr *Frame) Time() float64 {
	if fr.TimeBaseDen == 0 {
		return 0
	}
	return float64(fr.PTS) / float64(fr.TimeBaseDen)
}

// CopyMetaFrom copies the timing metadata from the given frame,
// leaving pixel content untouched.
func (fr *Frame) CopyMetaFrom(src *Frame) {
	fr.PTS = src.PTS
	fr.TimeBaseDen = src.TimeBaseDen
}

// SetRGBA sets the frame pixels from the given image, dropping alpha.
// The image must have the same dimensions as the frame.
func (fr *Frame) SetRGBA(img *image.RGBA) error {
	sz := img.Bounds().Size()
	if sz.X != fr.Width || sz.Y != fr.Height {
		return errors.Log(fmt.Errorf("video Frame SetRGBA: image is %v but frame is %v", sz, fr.Size()))
	}
	for y := range fr.Height {
		si := img.PixOffset(img.Bounds().Min.X, img.Bounds().Min.Y+y)
		di := y * fr.Width * 3
		for x := range fr.Width {
			fr.Pix[di+x*3] = img.Pix[si+x*4]
			fr.Pix[di+x*3+1] = img.Pix[si+x*4+1]
			fr.Pix[di+x*3+2] = img.Pix[si+x*4+2]
		}
	}
	return nil
}

// RGBA returns the frame as a new fully opaque image.
func (fr *Frame) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fr.Width, fr.Height))
	for y := range fr.Height {
		si := y * fr.Width * 3
		di := img.PixOffset(0, y)
		for x := range fr.Width {
			img.Pix[di+x*4] = fr.Pix[si+x*3]
			img.Pix[di+x*4+1] = fr.Pix[si+x*3+1]
			img.Pix[di+x*4+2] = fr.Pix[si+x*3+2]
			img.Pix[di+x*4+3] = 0xff
		}
	}
	return img
}

// At returns the color of the pixel at (x, y), for tests and tools;
// use Pix directly for bulk access.
func (fr *Frame) At(x, y int) color.RGBA {
	i := (y*fr.Width + x) * 3
	return color.RGBA{fr.Pix[i], fr.Pix[i+1], fr.Pix[i+2], 0xff}
}
