// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"fmt"
	"image/color"

	"github.com/ik5/audwave/canvas"
)

// Style selects how a waveform path is painted. The set of styles is closed:
// Filled, Outlined, Gradient, GradientOutlined and Striped.
type Style interface {
	isStyle()
}

// Filled paints the enclosed area with one color.
type Filled struct {
	Color color.Color
}

// Outlined strokes the envelope with a round cap.
type Outlined struct {
	Color color.Color
	Width float64
}

// Gradient fills the envelope with a top to bottom gradient.
type Gradient struct {
	Colors []color.Color
}

// GradientOutlined strokes the envelope and paints the stroke with a
// gradient.
type GradientOutlined struct {
	Colors []color.Color
	Width  float64
}

// Striped draws one vertical line every Width+Spacing points.
type Striped struct {
	Color   color.Color
	Width   float64
	Spacing float64
	Cap     canvas.LineCap
}

func (Filled) isStyle()           {}
func (Outlined) isStyle()         {}
func (Gradient) isStyle()         {}
func (GradientOutlined) isStyle() {}
func (Striped) isStyle()          {}

// DefaultStripe is a 1 point wide round stripe every 6 points.
func DefaultStripe(c color.Color) Striped {
	return Striped{Color: c, Width: 1, Spacing: 5, Cap: canvas.CapRound}
}

func validateStyle(s Style) error {
	switch s := s.(type) {
	case Filled:
		if s.Color == nil {
			return fmt.Errorf("%w: filled color is nil", ErrInvalidStyle)
		}
	case Outlined:
		if s.Color == nil || s.Width <= 0 {
			return fmt.Errorf("%w: outline needs a color and a positive width", ErrInvalidStyle)
		}
	case Gradient:
		return validateColors(s.Colors)
	case GradientOutlined:
		if s.Width <= 0 {
			return fmt.Errorf("%w: outline width %v", ErrInvalidStyle, s.Width)
		}
		return validateColors(s.Colors)
	case Striped:
		if s.Color == nil || s.Width <= 0 || s.Spacing < 0 {
			return fmt.Errorf("%w: stripe needs a color, a positive width and a non-negative spacing", ErrInvalidStyle)
		}
	default:
		return fmt.Errorf("%w: %T", ErrInvalidStyle, s)
	}
	return nil
}

func validateColors(colors []color.Color) error {
	if len(colors) == 0 {
		return fmt.Errorf("%w: gradient has no colors", ErrInvalidStyle)
	}
	for i, c := range colors {
		if c == nil {
			return fmt.Errorf("%w: gradient color %d is nil", ErrInvalidStyle, i)
		}
	}
	return nil
}
