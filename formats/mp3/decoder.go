// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"
	"time"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/audwave/audio"
)

// go-mp3 always produces 16-bit stereo.
const (
	channels      = 2
	bytesPerFrame = 4
)

// mp3Reader is the part of gomp3.Decoder a source needs.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	duration   time.Duration
	buf        []byte
}

func (s *source) SampleRate() int         { return s.sampleRate }
func (s *source) Channels() int           { return channels }
func (s *source) Duration() time.Duration { return s.duration }
func (s *source) Close() error            { return nil }
func (s *source) BufSize() int            { return cap(s.buf) / 2 }

func (s *source) ReadSamples(dst []float32) (int, error) {
	bytesNeeded := len(dst) * 2
	if cap(s.buf) < bytesNeeded {
		s.buf = make([]byte, bytesNeeded)
	}
	s.buf = s.buf[:bytesNeeded]

	n, err := s.dec.Read(s.buf)
	if n == 0 {
		return 0, err
	}

	samples := n / 2
	for i := range samples {
		dst[i] = float32(int16(binary.LittleEndian.Uint16(s.buf[2*i:]))) / 32768.0
	}

	return samples, err
}

type Decoder struct{}

// Decode opens an MP3 stream. The duration is only known when r is an
// io.Seeker, since go-mp3 has to scan the frames to learn the length.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		duration:   lengthToDuration(dec.Length(), dec.SampleRate()),
		buf:        make([]byte, 8192),
	}, nil
}

func lengthToDuration(length int64, sampleRate int) time.Duration {
	if length <= 0 || sampleRate <= 0 {
		return 0
	}

	frames := length / bytesPerFrame
	return time.Duration(frames) * time.Second / time.Duration(sampleRate)
}
