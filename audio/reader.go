// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/ik5/audwave/utils"
)

// BytesPerSample is the width of one sample in a PCM block.
const BytesPerSample = 2

// maxEmptyReads bounds how many consecutive empty reads a source may return
// before the stream is considered stuck.
const maxEmptyReads = 100

// Status is the lifecycle state of a Reader.
type Status int

const (
	StatusUnknown Status = iota
	StatusReading
	StatusCompleted
	StatusFailed
	StatusCancelled
)

func (s Status) String() string {
	switch s {
	case StatusReading:
		return "reading"
	case StatusCompleted:
		return "completed"
	case StatusFailed:
		return "failed"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// TrackMetadata describes the audio track behind a Reader.
type TrackMetadata struct {
	Channels   int
	SampleRate float64
	Duration   time.Duration
}

// TotalSamples estimates the number of interleaved samples in the track.
// The estimate comes from container metadata and may differ slightly from
// what the decoder actually produces.
func (m TrackMetadata) TotalSamples() int {
	return int(m.SampleRate*m.Duration.Seconds()) * m.Channels
}

// Reader yields blocks of interleaved signed 16-bit little-endian PCM.
type Reader interface {
	Metadata() TrackMetadata
	// NextBlock returns the next PCM block. The returned slice is only valid
	// until the next call. At the end of the stream it returns io.EOF; any
	// other error means the reader stopped early and Status tells why.
	NextBlock() ([]byte, error)
	Status() Status
	// Err returns the error that stopped the reader, if any.
	Err() error
	Close() error
}

// StreamReader adapts a Source into a Reader.
type StreamReader struct {
	ctx  context.Context
	src  Source
	meta TrackMetadata

	floats []float32
	block  []byte

	eof        bool
	emptyReads int
	status     Status
	err        error
}

// NewStreamReader wraps src. Cancelling ctx stops the stream on the next
// call to NextBlock with StatusCancelled.
func NewStreamReader(ctx context.Context, src Source) (*StreamReader, error) {
	channels := src.Channels()
	if channels < 1 || src.SampleRate() < 1 {
		return nil, fmt.Errorf("%w: %d channels at %d Hz", ErrNoAudioTrack, channels, src.SampleRate())
	}

	var duration time.Duration
	if d, ok := src.(Durationer); ok {
		duration = d.Duration()
	}

	size := src.BufSize()
	if size < channels {
		size = 4096
	}
	// keep whole frames in every block
	size -= size % channels
	if size == 0 {
		size = channels
	}

	return &StreamReader{
		ctx: ctx,
		src: src,
		meta: TrackMetadata{
			Channels:   channels,
			SampleRate: float64(src.SampleRate()),
			Duration:   duration,
		},
		floats: make([]float32, size),
		block:  make([]byte, size*BytesPerSample),
		status: StatusReading,
	}, nil
}

func (r *StreamReader) Metadata() TrackMetadata { return r.meta }
func (r *StreamReader) Status() Status          { return r.status }
func (r *StreamReader) Err() error              { return r.err }

func (r *StreamReader) finish(status Status, err error) {
	r.status = status
	r.err = err
}

func (r *StreamReader) NextBlock() ([]byte, error) {
	switch r.status {
	case StatusReading:
	case StatusCompleted:
		return nil, io.EOF
	default:
		return nil, r.err
	}

	if err := r.ctx.Err(); err != nil {
		r.finish(StatusCancelled, err)
		return nil, err
	}

	if r.eof {
		r.finish(StatusCompleted, nil)
		return nil, io.EOF
	}

	n, err := r.src.ReadSamples(r.floats)
	if err != nil {
		if !errors.Is(err, io.EOF) {
			r.finish(StatusFailed, fmt.Errorf("%w", err))
			return nil, r.err
		}
		r.eof = true
	}

	if n == 0 {
		if r.eof {
			r.finish(StatusCompleted, nil)
			return nil, io.EOF
		}

		r.emptyReads++
		if r.emptyReads >= maxEmptyReads {
			r.finish(StatusFailed, io.ErrNoProgress)
			return nil, r.err
		}
		return r.block[:0], nil
	}
	r.emptyReads = 0

	for i, v := range r.floats[:n] {
		binary.LittleEndian.PutUint16(r.block[i*BytesPerSample:], uint16(utils.Float32ToInt16(v)))
	}

	return r.block[:n*BytesPerSample], nil
}

// Close releases the source. Closing a reader that is still reading marks
// it as cancelled.
func (r *StreamReader) Close() error {
	if r.status == StatusReading {
		r.finish(StatusCancelled, context.Canceled)
	}

	err := r.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
