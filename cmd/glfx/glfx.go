// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command glfx renders a GLSL transition onto the frames of a video
// file on the GPU, writing the result as a numbered PNG frame sequence.
package main

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"runtime"

	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/cli"
	"github.com/cogentcore/glfx/glgpu"
	"github.com/cogentcore/glfx/transition"
	"github.com/cogentcore/glfx/video"
)

func init() {
	// all GL calls must stay on the main thread
	runtime.LockOSThread()
}

// Config is the configuration information for the glfx cli.
type Config struct {

	// Input is the video file to process.
	Input string `posarg:"0"`

	// Output is the directory to write the rendered PNG frames into.
	Output string `flag:"o,output" default:"frames"`

	// Duration is the length of the transition in seconds.
	Duration float64 `default:"1"`

	// Offset is the delay in seconds before the transition starts.
	Offset float64 `default:"0"`

	// Source is an optional path to a GLSL file defining
	// vec4 transition(vec2 uv). The default transition samples the
	// frame unchanged.
	Source string

	// MaxFrames stops after rendering this many frames, if positive.
	MaxFrames int
}

func main() {
	opts := cli.DefaultOptions("glfx", "glfx renders GLSL transitions onto video frames on the GPU.")
	cli.Run(opts, &Config{}, Render)
}

// Render runs the transition filter over the input video.
func Render(c *Config) error { //cli:cmd -root
	if err := glgpu.Init(); err != nil {
		return err
	}
	defer glgpu.Terminate()

	src, err := video.OpenMedia(c.Input)
	if err != nil {
		return err
	}
	defer src.Close()
	logx.PrintlnInfo("glfx: rendering", c.Input, "at", src.Size(), "fps:", src.FPS())

	if err := os.MkdirAll(c.Output, 0750); err != nil {
		return err
	}

	fl := transition.NewFilter()
	fl.Duration = c.Duration
	fl.Offset = c.Offset
	fl.Source = c.Source

	n := 0
	pl := video.NewPipeline(fl)
	err = pl.Run(src, func(fr *video.Frame) error {
		fp := filepath.Join(c.Output, fmt.Sprintf("frame%06d.png", n))
		n++
		if err := writePNG(fp, fr); err != nil {
			return err
		}
		if c.MaxFrames > 0 && n >= c.MaxFrames {
			return errDone
		}
		return nil
	})
	if err == errDone {
		err = nil
	}
	if err == nil {
		logx.PrintlnInfo("glfx: wrote", n, "frames to", c.Output)
	}
	return err
}

// errDone stops the pipeline early when MaxFrames is reached.
var errDone = fmt.Errorf("done")

func writePNG(path string, fr *video.Frame) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, fr.RGBA())
}
