// SPDX-License-Identifier: EPL-2.0

package envelope

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/ik5/audwave/audio"
	"github.com/ik5/audwave/internal/pcmbuf"
	"github.com/ik5/audwave/spectrum"
)

// DefaultNoiseFloor is the level in dB treated as silence.
const DefaultNoiseFloor = -50.0

const maxAmplitude = 32767.0

// initialBufferSize is the starting arena size in bytes. It grows to the
// largest block the reader hands out and no further.
const initialBufferSize = 8 << 10

// Analysis is an envelope plus the optional spectral frames computed from
// the same stream.
type Analysis struct {
	Samples []float32
	Frames  []spectrum.Frame
}

// Extractor downsamples a PCM stream into a normalized envelope where 0 is
// full scale and 1 is the noise floor. The zero value uses
// DefaultNoiseFloor. An Extractor holds no state between calls.
type Extractor struct {
	// NoiseFloor in dB, negative. Zero selects DefaultNoiseFloor.
	NoiseFloor float64
}

func (e Extractor) floor() (float64, error) {
	if e.NoiseFloor == 0 {
		return DefaultNoiseFloor, nil
	}
	if e.NoiseFloor > 0 || math.IsNaN(e.NoiseFloor) || math.IsInf(e.NoiseFloor, 0) {
		return 0, fmt.Errorf("%w: noise floor %v dB", audio.ErrInvalidInput, e.NoiseFloor)
	}
	return e.NoiseFloor, nil
}

// Extract returns exactly count envelope values for the stream behind r,
// sizing the downsampling stride from the track metadata.
func (e Extractor) Extract(r audio.Reader, count int) ([]float32, error) {
	if err := checkCount(count); err != nil {
		return nil, err
	}
	a, err := e.run(r, r.Metadata().TotalSamples(), count, 0)
	if err != nil {
		return nil, err
	}
	return a.Samples, nil
}

// Downsample is Extract with an explicit estimate of the total number of
// interleaved samples in the stream.
func (e Extractor) Downsample(r audio.Reader, totalSamples, count int) ([]float32, error) {
	if err := checkCount(count); err != nil {
		return nil, err
	}
	a, err := e.run(r, totalSamples, count, 0)
	if err != nil {
		return nil, err
	}
	return a.Samples, nil
}

// Analyze extracts the envelope and, when bands > 0, one banded spectral
// frame per spectrum.DefaultSize samples.
func (e Extractor) Analyze(r audio.Reader, count, bands int) (*Analysis, error) {
	if err := checkCount(count); err != nil {
		return nil, err
	}
	return e.run(r, r.Metadata().TotalSamples(), count, bands)
}

func checkCount(count int) error {
	if count <= 0 {
		return fmt.Errorf("%w: sample count %d", audio.ErrInvalidInput, count)
	}
	return nil
}

// run expects a validated count.
func (e Extractor) run(r audio.Reader, totalSamples, count, bands int) (*Analysis, error) {
	floor, err := e.floor()
	if err != nil {
		return nil, err
	}

	var bander *spectrum.Bander
	if bands > 0 {
		bander, err = spectrum.NewBander(spectrum.DefaultSize, bands, r.Metadata().SampleRate)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", audio.ErrExtraction, err)
		}
	}

	samplesPerPixel := max(1, totalSamples/count)
	d := &downsampler{
		floor:           floor,
		samplesPerPixel: samplesPerPixel,
		count:           count,
		buf:             pcmbuf.New(initialBufferSize),
		out:             make([]float32, 0, count),
	}

	var frames []spectrum.Frame
	for {
		block, err := r.NextBlock()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, readerError(r, err)
		}
		if len(block) == 0 {
			continue
		}

		d.write(block)
		if bander != nil {
			frames = append(frames, bander.Write(block)...)
		}
	}

	if status := r.Status(); status != audio.StatusCompleted {
		return nil, &audio.ReaderError{Status: status, Err: r.Err()}
	}

	return &Analysis{
		Samples: d.finish(),
		Frames:  frames,
	}, nil
}

func readerError(r audio.Reader, err error) error {
	status := r.Status()
	if status == audio.StatusReading || status == audio.StatusCompleted {
		status = audio.StatusUnknown
	}
	return &audio.ReaderError{Status: status, Err: err}
}

// downsampler holds the state of one extraction pass. Samples are folded
// into a running window sum as they arrive, so only a trailing partial
// sample stays buffered between blocks.
type downsampler struct {
	floor           float64
	samplesPerPixel int
	count           int
	buf             *pcmbuf.Buffer
	out             []float32

	sum    float64
	filled int
}

func (d *downsampler) write(block []byte) {
	// enough output already; the rest of the stream only has to be drained
	if len(d.out) >= d.count {
		return
	}
	d.buf.Write(block)
	d.process()
}

// process folds every complete sample in the buffer into the current
// window and discards the consumed bytes.
func (d *downsampler) process() {
	n := d.buf.Samples()
	for i := 0; i < n && len(d.out) < d.count; i++ {
		d.sum += d.decibels(d.buf.Sample(i))
		d.filled++
		if d.filled == d.samplesPerPixel {
			d.out = append(d.out, float32(d.sum/float64(d.samplesPerPixel)))
			d.sum, d.filled = 0, 0
		}
	}
	d.buf.Discard(n * pcmbuf.SampleSize)
}

// decibels converts a sample to dB relative to full scale, clipped to
// [floor, 0].
func (d *downsampler) decibels(s int16) float64 {
	if s == 0 {
		return d.floor
	}
	db := 20 * math.Log10(math.Abs(float64(s))/maxAmplitude)
	return min(0, max(d.floor, db))
}

// finish fills the missing windows with silence, then normalizes.
func (d *downsampler) finish() []float32 {
	// a trailing odd byte becomes one sample
	d.buf.Pad(0)
	d.process()

	if len(d.out) < d.count && d.filled > 0 {
		d.sum += float64(d.samplesPerPixel-d.filled) * d.floor
		d.out = append(d.out, float32(d.sum/float64(d.samplesPerPixel)))
		d.sum, d.filled = 0, 0
	}
	for len(d.out) < d.count {
		d.out = append(d.out, float32(d.floor))
	}

	out := d.out[:d.count]
	for i, v := range out {
		out[i] = max(0, min(1, float32(float64(v)/d.floor)))
	}

	return out
}
