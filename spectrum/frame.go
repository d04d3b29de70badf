// SPDX-License-Identifier: EPL-2.0

package spectrum

import "math"

const dbEpsilon = 1e-12

// Frame is the spectrum of one FFT-sized chunk.
type Frame struct {
	// Magnitudes holds Size/2 squared bin magnitudes.
	Magnitudes []float32
	// BandMagnitudes and BandFrequencies are filled by LinearBands.
	BandMagnitudes  []float32
	BandFrequencies []float32
	SampleRate      float32
	Size            int
}

func (f *Frame) Nyquist() float32 { return f.SampleRate / 2 }

// Bandwidth is the width in Hz of one magnitude bin.
func (f *Frame) Bandwidth() float32 {
	if len(f.Magnitudes) == 0 {
		return 0
	}
	return f.Nyquist() / float32(len(f.Magnitudes))
}

func (f *Frame) magIndex(freq float32) int {
	return int(float32(len(f.Magnitudes)) * freq / f.Nyquist())
}

// LinearBands reduces the magnitudes between minFreq and maxFreq into
// bands equal-width ranges, averaging the bins of each range. maxFreq is
// capped at the Nyquist frequency.
func (f *Frame) LinearBands(minFreq, maxFreq float32, bands int) {
	f.BandMagnitudes = nil
	f.BandFrequencies = nil
	if bands <= 0 || len(f.Magnitudes) == 0 {
		return
	}

	maxFreq = min(maxFreq, f.Nyquist())
	minFreq = max(0, min(minFreq, maxFreq))

	lower := f.magIndex(minFreq)
	upper := f.magIndex(maxFreq)
	ratio := float32(upper-lower) / float32(bands)
	last := len(f.Magnitudes) - 1
	bandwidth := f.Bandwidth()

	f.BandMagnitudes = make([]float32, bands)
	f.BandFrequencies = make([]float32, bands)

	for i := range bands {
		start := int(math.Floor(float64(float32(i)*ratio))) + lower
		end := int(math.Floor(float64(float32(i+1)*ratio))) + lower

		var avg float32
		if end <= start {
			avg = f.Magnitudes[min(start, last)]
		} else {
			var sum float32
			for _, m := range f.Magnitudes[start:min(end, len(f.Magnitudes))] {
				sum += m
			}
			avg = sum / float32(end-start)
		}

		f.BandMagnitudes[i] = avg
		f.BandFrequencies[i] = bandwidth * float32(start+end) / 2
	}
}

// MagnitudeAtFrequency returns the bin magnitude covering freq.
func (f *Frame) MagnitudeAtFrequency(freq float32) float32 {
	if len(f.Magnitudes) == 0 || freq < 0 {
		return 0
	}
	i := int(freq / f.Bandwidth())
	return f.Magnitudes[min(i, len(f.Magnitudes)-1)]
}

// MinFrequency is the center of the lowest band, or 0 before LinearBands.
func (f *Frame) MinFrequency() float32 {
	if len(f.BandFrequencies) == 0 {
		return 0
	}
	return f.BandFrequencies[0]
}

// MaxFrequency is the center of the highest band, or 0 before LinearBands.
func (f *Frame) MaxFrequency() float32 {
	if len(f.BandFrequencies) == 0 {
		return 0
	}
	return f.BandFrequencies[len(f.BandFrequencies)-1]
}

// ToDB converts a squared magnitude to decibels, flooring it first so that
// silence gives -120 dB instead of -Inf.
func ToDB(magnitude float32) float32 {
	return float32(10 * math.Log10(max(float64(magnitude), dbEpsilon)))
}
