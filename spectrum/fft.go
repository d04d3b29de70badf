// SPDX-License-Identifier: EPL-2.0

package spectrum

import (
	"fmt"
	"math/cmplx"

	"github.com/ik5/audwave/audio"
	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/dsp/window"
	"gonum.org/v1/gonum/floats"
)

// DefaultSize is the FFT length used for banding, about 100ms at 44.1kHz.
const DefaultSize = 4096

// FFT runs a Hann-windowed forward real FFT of a fixed power-of-two size.
// An FFT is not safe for concurrent use.
type FFT struct {
	size       int
	sampleRate float64

	fft    *fourier.FFT
	window []float64
	seq    []float64
	coeffs []complex128
}

func NewFFT(size int, sampleRate float64) (*FFT, error) {
	if size < 2 || size&(size-1) != 0 {
		return nil, fmt.Errorf("%w: FFT size %d is not a power of two", audio.ErrExtraction, size)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate %v", audio.ErrInvalidInput, sampleRate)
	}

	w := make([]float64, size)
	for i := range w {
		w[i] = 1
	}
	window.Hann(w)

	return &FFT{
		size:       size,
		sampleRate: sampleRate,
		fft:        fourier.NewFFT(size),
		window:     w,
		seq:        make([]float64, size),
		coeffs:     make([]complex128, size/2+1),
	}, nil
}

func (f *FFT) Size() int { return f.size }

// Forward transforms samples, zero-padding or truncating them to Size, and
// returns the squared magnitudes of the first Size/2 bins.
func (f *FFT) Forward(samples []float64) Frame {
	n := copy(f.seq, samples)
	clear(f.seq[n:])
	floats.Mul(f.seq, f.window)

	f.coeffs = f.fft.Coefficients(f.coeffs, f.seq)

	mags := make([]float32, f.size/2)
	for i := range mags {
		a := cmplx.Abs(f.coeffs[i])
		mags[i] = float32(a * a)
	}

	return Frame{
		Magnitudes: mags,
		SampleRate: float32(f.sampleRate),
		Size:       f.size,
	}
}
