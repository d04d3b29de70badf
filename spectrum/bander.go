// SPDX-License-Identifier: EPL-2.0

package spectrum

import (
	"fmt"

	"github.com/ik5/audwave/audio"
	"github.com/ik5/audwave/internal/pcmbuf"
)

// Bander turns a stream of 16-bit PCM blocks into banded spectral frames,
// one per complete FFT-sized chunk. Samples are taken in stream order,
// interleaved channels included.
type Bander struct {
	fft   *FFT
	bands int
	buf   *pcmbuf.Buffer
	chunk []float64
}

func NewBander(size, bands int, sampleRate float64) (*Bander, error) {
	if bands <= 0 {
		return nil, fmt.Errorf("%w: %d bands", audio.ErrInvalidInput, bands)
	}

	fft, err := NewFFT(size, sampleRate)
	if err != nil {
		return nil, err
	}

	return &Bander{
		fft:   fft,
		bands: bands,
		buf:   pcmbuf.New(size * pcmbuf.SampleSize * 2),
		chunk: make([]float64, size),
	}, nil
}

// Write buffers block and returns the frames completed by it. A partial
// chunk is kept for the next call.
func (b *Bander) Write(block []byte) []Frame {
	b.buf.Write(block)

	var frames []Frame
	size := b.fft.Size()
	for b.buf.Samples() >= size {
		for i := range b.chunk {
			b.chunk[i] = float64(b.buf.Sample(i)) / 32768
		}
		b.buf.Discard(size * pcmbuf.SampleSize)

		frame := b.fft.Forward(b.chunk)
		frame.LinearBands(0, frame.Nyquist(), b.bands)
		frames = append(frames, frame)
	}

	return frames
}

// Pending is the number of buffered samples not yet part of a frame.
func (b *Bander) Pending() int { return b.buf.Samples() }
