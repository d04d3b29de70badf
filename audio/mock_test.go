// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"time"
)

// fakeSource produces totalFrames frames from a per-sample generator. When
// failAfter is positive, the read that would cross that many frames returns
// readErr instead.
type fakeSource struct {
	sampleRate  int
	channels    int
	totalFrames int
	produced    int
	bufSize     int
	duration    time.Duration
	gen         func(frame, channel int) float32

	failAfter int
	readErr   error
	closed    bool
}

func newFakeSource(sampleRate, channels, totalFrames int, gen func(frame, channel int) float32) *fakeSource {
	return &fakeSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		bufSize:     4096,
		gen:         gen,
	}
}

func newSilentSource(sampleRate, channels, totalFrames int) *fakeSource {
	return newFakeSource(sampleRate, channels, totalFrames, func(int, int) float32 { return 0 })
}

func newConstantSource(sampleRate, channels, totalFrames int, value float32) *fakeSource {
	return newFakeSource(sampleRate, channels, totalFrames, func(int, int) float32 { return value })
}

func (s *fakeSource) SampleRate() int { return s.sampleRate }
func (s *fakeSource) Channels() int   { return s.channels }
func (s *fakeSource) BufSize() int    { return s.bufSize }

func (s *fakeSource) Close() error {
	s.closed = true
	return nil
}

func (s *fakeSource) ReadSamples(dst []float32) (int, error) {
	if s.produced >= s.totalFrames {
		return 0, io.EOF
	}

	frames := min(len(dst)/s.channels, s.totalFrames-s.produced)
	if s.failAfter > 0 && s.produced+frames > s.failAfter {
		return 0, s.readErr
	}

	for f := range frames {
		for ch := range s.channels {
			dst[f*s.channels+ch] = s.gen(s.produced+f, ch)
		}
	}
	s.produced += frames

	if s.produced >= s.totalFrames {
		return frames * s.channels, io.EOF
	}
	return frames * s.channels, nil
}

// timedSource adds a known duration to a fakeSource.
type timedSource struct {
	*fakeSource
}

func (s timedSource) Duration() time.Duration { return s.duration }

// stalledSource never produces samples and never ends.
type stalledSource struct{}

func (stalledSource) SampleRate() int                    { return 8000 }
func (stalledSource) Channels() int                      { return 1 }
func (stalledSource) BufSize() int                       { return 64 }
func (stalledSource) Close() error                       { return nil }
func (stalledSource) ReadSamples([]float32) (int, error) { return 0, nil }
