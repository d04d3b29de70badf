// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"fmt"
	"image/color"
	"math"
)

// Size is a width and height in points.
type Size struct {
	Width, Height float64
}

// Configuration describes how samples become an image. It is a value: use
// With to derive a modified copy.
type Configuration struct {
	Size       Size
	Background color.Color
	Style      Style
	Damping    Damping
	// Scale is the number of pixels per point.
	Scale float64
	// VerticalScalingFactor is the tallest amplitude relative to the height.
	// Values above 1 let loud samples clip.
	VerticalScalingFactor float64
	Antialias             bool
}

type Option func(*Configuration)

func WithSize(width, height float64) Option {
	return func(c *Configuration) { c.Size = Size{Width: width, Height: height} }
}

func WithBackground(bg color.Color) Option { return func(c *Configuration) { c.Background = bg } }
func WithStyle(s Style) Option            { return func(c *Configuration) { c.Style = s } }
func WithDamping(d Damping) Option        { return func(c *Configuration) { c.Damping = d } }
func WithoutDamping() Option              { return func(c *Configuration) { c.Damping = Damping{} } }
func WithScale(s float64) Option          { return func(c *Configuration) { c.Scale = s } }
func WithAntialias(on bool) Option        { return func(c *Configuration) { c.Antialias = on } }

func WithVerticalScalingFactor(f float64) Option {
	return func(c *Configuration) { c.VerticalScalingFactor = f }
}

// DefaultGradient is the default style: black fading to gray.
func DefaultGradient() Gradient {
	return Gradient{Colors: []color.Color{color.Black, color.Gray{Y: 0x80}}}
}

// NewConfiguration applies opts over the defaults and validates the result.
// Defaults: zero size, transparent background, DefaultGradient, no damping,
// scale 1, vertical scaling factor 0.95, no antialiasing.
func NewConfiguration(opts ...Option) (Configuration, error) {
	c := Configuration{
		Background:            color.Transparent,
		Style:                 DefaultGradient(),
		Scale:                 1,
		VerticalScalingFactor: 0.95,
	}
	return c.With(opts...)
}

// DefaultLiveConfiguration is NewConfiguration with the default Damping, as
// used for scrolling views.
func DefaultLiveConfiguration(opts ...Option) (Configuration, error) {
	d, err := NewDamping()
	if err != nil {
		return Configuration{}, err
	}
	return NewConfiguration(append([]Option{WithDamping(d)}, opts...)...)
}

// With returns a validated copy of c with opts applied. c is unchanged.
func (c Configuration) With(opts ...Option) (Configuration, error) {
	for _, opt := range opts {
		opt(&c)
	}

	if err := c.Validate(); err != nil {
		return Configuration{}, err
	}
	return c, nil
}

func (c Configuration) Validate() error {
	if !(c.VerticalScalingFactor > 0) || math.IsInf(c.VerticalScalingFactor, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidScalingFactor, c.VerticalScalingFactor)
	}
	if !(c.Scale > 0) || math.IsInf(c.Scale, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidScale, c.Scale)
	}
	if !(c.Size.Width >= 0 && c.Size.Height >= 0) {
		return fmt.Errorf("%w: %vx%v", ErrInvalidSize, c.Size.Width, c.Size.Height)
	}
	if c.Background == nil {
		return ErrMissingBackgroundColor
	}
	if err := validateStyle(c.Style); err != nil {
		return err
	}
	if s, ok := c.Style.(Striped); ok {
		if int(c.Scale) < 1 || stripeBucket(s, c.Scale) < 1 {
			return fmt.Errorf("%w: width %v, spacing %v at scale %v", ErrInvalidStripe, s.Width, s.Spacing, c.Scale)
		}
	}
	// zero percentage means no damping
	if c.Damping.Percentage != 0 {
		if err := c.Damping.validate(); err != nil {
			return err
		}
	}
	return nil
}

// ShouldDamp reports whether rendering tapers the edges.
func (c Configuration) ShouldDamp() bool { return c.Damping.Enabled() }

// SamplesNeeded is the number of samples that cover the width, one per
// pixel column.
func (c Configuration) SamplesNeeded() int {
	return int(c.Size.Width * c.Scale)
}

// StripeBucket is the distance in samples between two stripes, or 0 when
// the style is not Striped.
func (c Configuration) StripeBucket() int {
	if s, ok := c.Style.(Striped); ok {
		return stripeBucket(s, c.Scale)
	}
	return 0
}

func stripeBucket(s Striped, scale float64) int {
	return int(s.Width+s.Spacing) * int(scale)
}
