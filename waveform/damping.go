// SPDX-License-Identifier: EPL-2.0

package waveform

import "fmt"

// Sides selects which edges of the waveform are tapered.
type Sides int

const (
	SidesBoth Sides = iota
	SidesLeft
	SidesRight
)

func (s Sides) String() string {
	switch s {
	case SidesLeft:
		return "left"
	case SidesRight:
		return "right"
	default:
		return "both"
	}
}

// Easing maps [0,1] onto [0,1].
type Easing func(x float64) float64

// EaseQuadratic is x².
func EaseQuadratic(x float64) float64 { return x * x }

// DefaultDampingPercentage tapers the outer eighth of each side.
const DefaultDampingPercentage = 0.125

// Damping tapers the amplitude near the edges of a waveform. The zero value
// disables it.
type Damping struct {
	Percentage float64
	Sides      Sides
	Easing     Easing
}

type DampingOption func(*Damping)

func WithPercentage(p float64) DampingOption { return func(d *Damping) { d.Percentage = p } }
func WithSides(s Sides) DampingOption        { return func(d *Damping) { d.Sides = s } }
func WithEasing(e Easing) DampingOption      { return func(d *Damping) { d.Easing = e } }

// NewDamping returns a validated Damping. Without options it tapers both
// sides over 12.5% of the samples with EaseQuadratic.
func NewDamping(opts ...DampingOption) (Damping, error) {
	d := Damping{
		Percentage: DefaultDampingPercentage,
		Sides:      SidesBoth,
		Easing:     EaseQuadratic,
	}
	for _, opt := range opts {
		opt(&d)
	}

	if err := d.validate(); err != nil {
		return Damping{}, err
	}
	return d, nil
}

// Enabled reports whether d changes any sample.
func (d Damping) Enabled() bool { return d.Percentage > 0 }

func (d Damping) validate() error {
	// NaN fails both comparisons
	if !(d.Percentage > 0 && d.Percentage <= 0.5) {
		return fmt.Errorf("%w: got %v", ErrInvalidDamping, d.Percentage)
	}
	return nil
}

func (d Damping) ease(x float64) float64 {
	if d.Easing == nil {
		return EaseQuadratic(x)
	}
	return d.Easing(x)
}

// Factor returns the scale applied to the sample at index x of count
// samples. Indexes outside the tapered regions get 1.
func (d Damping) Factor(x, count float64) float64 {
	if !d.Enabled() {
		return 1
	}

	width := count * d.Percentage
	rightStart := (1/d.Percentage - 1) * width

	switch {
	case d.Sides != SidesRight && x < width:
		return d.ease(x / width)
	case d.Sides != SidesLeft && x > rightStart:
		return d.ease(1 - (x-rightStart)/width)
	default:
		return 1
	}
}

// Dampen returns a copy of samples with each value's distance from silence
// scaled by d.Factor. Silence is 1.
func Dampen(samples []float32, d Damping) []float32 {
	out := make([]float32, len(samples))
	count := float64(len(samples))

	for i, v := range samples {
		out[i] = float32(1 - (1-float64(v))*d.Factor(float64(i), count))
	}
	return out
}
