// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package video

import (
	"fmt"
	"image"
	"io"

	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/reisen"
)

// MediaSource decodes the first video stream of a media file into RGB
// frames, using the ffmpeg-based reisen decoder. It implements
// [Source]. PTS is the decoded frame index, with TimeBaseDen equal to
// the stream frame rate, so Frame.Time is the presentation time in
// seconds.
type MediaSource struct {
	media  *reisen.Media
	stream *reisen.VideoStream
	fps    int
	size   image.Point
	index  int64
	open   bool
}

// OpenMedia opens the given media file and its first video stream for
// decoding.
func OpenMedia(path string) (*MediaSource, error) {
	media, err := reisen.NewMedia(path)
	if err != nil {
		return nil, errors.Log(fmt.Errorf("video: failed to open media %q: %w", path, err))
	}
	if err := media.OpenDecode(); err != nil {
		return nil, errors.Log(fmt.Errorf("video: failed to open decode for %q: %w", path, err))
	}
	streams := media.VideoStreams()
	if len(streams) == 0 {
		media.CloseDecode()
		return nil, errors.Log(fmt.Errorf("video: no video streams in %q", path))
	}
	vs := streams[0]
	if err := vs.Open(); err != nil {
		media.CloseDecode()
		return nil, errors.Log(fmt.Errorf("video: failed to open video stream in %q: %w", path, err))
	}
	fps, _ := vs.FrameRate()
	if fps <= 0 {
		fps = 30
	}
	ms := &MediaSource{media: media, stream: vs, fps: fps, open: true}
	ms.size = image.Point{int(vs.Width()), int(vs.Height())}
	return ms, nil
}

// Size returns the video frame dimensions.
func (ms *MediaSource) Size() image.Point {
	return ms.size
}

// FPS returns the stream frame rate, which is also the time base
// denominator of the frames this source produces.
func (ms *MediaSource) FPS() int {
	return ms.fps
}

// Frame decodes and returns the next video frame, or io.EOF when the
// stream is exhausted. Packets belonging to other streams (e.g. audio)
// are skipped.
func (ms *MediaSource) Frame() (*Frame, error) {
	for {
		packet, gotPacket, err := ms.media.ReadPacket()
		if err != nil {
			return nil, errors.Log(fmt.Errorf("video: failed to read packet: %w", err))
		}
		if !gotPacket {
			return nil, io.EOF
		}
		if packet.Type() != reisen.StreamVideo {
			continue
		}
		s, ok := ms.media.Streams()[packet.StreamIndex()].(*reisen.VideoStream)
		if !ok || s != ms.stream {
			continue
		}
		videoFrame, gotFrame, err := s.ReadVideoFrame()
		if err != nil {
			return nil, errors.Log(fmt.Errorf("video: failed to decode frame: %w", err))
		}
		if !gotFrame {
			return nil, io.EOF
		}
		if videoFrame == nil {
			continue
		}
		fr := NewFrame(ms.size)
		if err := fr.SetRGBA(videoFrame.Image()); err != nil {
			return nil, err
		}
		fr.PTS = ms.index
		fr.TimeBaseDen = ms.fps
		ms.index++
		return fr, nil
	}
}

// Close closes the video stream and decoding state, once.
func (ms *MediaSource) Close() {
	if !ms.open {
		return
	}
	ms.stream.Close()
	ms.media.CloseDecode()
	ms.open = false
}
