// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"
	"time"

	"github.com/ik5/audwave/audio"
	"github.com/jfreymuth/oggvorbis"
)

// oggReader is the part of oggvorbis.Reader a source needs.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
	duration   time.Duration
	frameBuf   []float32
}

func (s *source) SampleRate() int         { return s.sampleRate }
func (s *source) Channels() int           { return s.channels }
func (s *source) Duration() time.Duration { return s.duration }
func (s *source) Close() error            { return nil }
func (s *source) BufSize() int            { return cap(s.frameBuf) }

func (s *source) ReadSamples(dst []float32) (int, error) {
	// oggvorbis only hands out whole frames
	want := len(dst) - len(dst)%s.channels
	if want == 0 {
		return 0, nil
	}

	if cap(s.frameBuf) < want {
		s.frameBuf = make([]float32, want)
	}
	s.frameBuf = s.frameBuf[:want]

	n, err := s.dec.Read(s.frameBuf)
	if n == 0 {
		return 0, err
	}

	copy(dst, s.frameBuf[:n])

	return n, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if dec.Channels() < 1 || dec.SampleRate() < 1 {
		return nil, ErrInvalidStream
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
		duration:   lengthToDuration(dec.Length(), dec.SampleRate()),
		frameBuf:   make([]float32, 4096),
	}, nil
}

// lengthToDuration converts a length in frames, as reported by
// oggvorbis.Reader.Length, to a duration. A length of 0 means the stream
// was not seekable.
func lengthToDuration(frames int64, sampleRate int) time.Duration {
	if frames <= 0 || sampleRate <= 0 {
		return 0
	}
	return time.Duration(frames) * time.Second / time.Duration(sampleRate)
}
