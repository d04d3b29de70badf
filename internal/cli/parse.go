// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/ik5/audwave/canvas"
	"github.com/ik5/audwave/waveform"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	ErrUnknownColor    = errors.New("unknown color")
	ErrUnknownStyle    = errors.New("unknown style")
	ErrUnknownRenderer = errors.New("unknown renderer")
	ErrUnknownPosition = errors.New("unknown position")
	ErrUnknownCap      = errors.New("unknown line cap")
	ErrUnknownSides    = errors.New("unknown damping sides")
)

var namedColors = map[string]color.Color{
	"transparent": color.Transparent,
	"none":        color.Transparent,
	"black":       color.Black,
	"white":       color.White,
}

// ParseColor accepts "#rgb", "#rrggbb", "#rrggbbaa" and a few names.
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}

	alpha := uint8(0xff)
	if len(s) == 9 && s[0] == '#' {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColor, s)
		}
		alpha = uint8(a)
		s = s[:7]
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnknownColor, err)
	}

	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

// ParseColors parses every entry of list.
func ParseColors(list []string) ([]color.Color, error) {
	out := make([]color.Color, 0, len(list))
	for _, s := range list {
		c, err := ParseColor(s)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// ParseCap maps butt, round and square to a canvas.LineCap.
func ParseCap(s string) (canvas.LineCap, error) {
	for _, c := range []canvas.LineCap{canvas.CapButt, canvas.CapRound, canvas.CapSquare} {
		if strings.EqualFold(s, c.String()) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCap, s)
}

// StyleFlags is the flag group shared by every command that draws.
type StyleFlags struct {
	Style   string   `help:"Drawing style: filled, outlined, gradient, gradient-outlined or striped." enum:"filled,outlined,gradient,gradient-outlined,striped" default:"gradient"`
	Colors  []string `help:"Colors for the style (#rrggbb, #rrggbbaa, black, white)." default:"#000000,#808080"`
	Width   float64  `name:"line-width" help:"Line or stripe width in points." default:"1"`
	Spacing float64  `name:"stripe-spacing" help:"Space between stripes in points." default:"5"`
	Cap     string   `name:"stripe-cap" help:"Stripe line cap: butt, round or square." default:"round"`
}

// Build turns the flags into a waveform.Style. Single-color styles use the
// first color.
func (f StyleFlags) Build() (waveform.Style, error) {
	colors, err := ParseColors(f.Colors)
	if err != nil {
		return nil, err
	}
	if len(colors) == 0 {
		colors = []color.Color{color.Black}
	}

	switch f.Style {
	case "filled":
		return waveform.Filled{Color: colors[0]}, nil
	case "outlined":
		return waveform.Outlined{Color: colors[0], Width: f.Width}, nil
	case "gradient":
		return waveform.Gradient{Colors: colors}, nil
	case "gradient-outlined":
		return waveform.GradientOutlined{Colors: colors, Width: f.Width}, nil
	case "striped":
		lineCap, err := ParseCap(f.Cap)
		if err != nil {
			return nil, err
		}
		return waveform.Striped{Color: colors[0], Width: f.Width, Spacing: f.Spacing, Cap: lineCap}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, f.Style)
}

// ParseRenderer maps linear, circular, ring and stereo to a renderer.
// hollowness only applies to ring.
func ParseRenderer(name string, hollowness float64) (waveform.Renderer, error) {
	switch strings.ToLower(name) {
	case "linear", "":
		return waveform.Linear{}, nil
	case "circular":
		return waveform.Circular{}, nil
	case "ring":
		return waveform.Ring{Hollowness: hollowness}, nil
	case "stereo":
		return waveform.Stereo{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownRenderer, name)
}

// ParsePosition accepts top, middle, bottom or a number in [0,1].
func ParsePosition(s string) (waveform.Position, error) {
	switch strings.ToLower(s) {
	case "top":
		return waveform.Top, nil
	case "middle", "":
		return waveform.Middle, nil
	case "bottom":
		return waveform.Bottom, nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPosition, s)
	}
	return waveform.CustomPosition(v), nil
}

// ParseSides accepts both, left or right.
func ParseSides(s string) (waveform.Sides, error) {
	for _, sides := range []waveform.Sides{waveform.SidesBoth, waveform.SidesLeft, waveform.SidesRight} {
		if strings.EqualFold(s, sides.String()) {
			return sides, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSides, s)
}

// DampingFlags configures edge dampening. A zero percentage disables it.
// The default comes from the "damping" kong variable, 0 when unset.
type DampingFlags struct {
	Damping      float64 `help:"Fraction of each edge to fade, 0 disables, at most 0.5." default:"${damping=0}"`
	DampingSides string  `help:"Edges to fade: both, left or right." default:"both"`
}

// Build returns the configured damping.
func (f DampingFlags) Build() (waveform.Damping, error) {
	if f.Damping == 0 {
		return waveform.Damping{}, nil
	}

	sides, err := ParseSides(f.DampingSides)
	if err != nil {
		return waveform.Damping{}, err
	}
	return waveform.NewDamping(waveform.WithPercentage(f.Damping), waveform.WithSides(sides))
}

// CanvasFlags sizes the drawing surface.
type CanvasFlags struct {
	Width         float64 `help:"Image width in points." default:"800"`
	Height        float64 `help:"Image height in points." default:"200"`
	Scale         float64 `help:"Pixels per point." default:"1"`
	VerticalScale float64 `help:"Fraction of the height the loudest sample reaches." default:"0.95"`
	Background    string  `help:"Background color." default:"transparent"`
	Antialias     bool    `help:"Smooth path edges."`
	Position      string  `short:"p" help:"Silence line: top, middle, bottom or a fraction." default:"middle"`
	Hollowness    float64 `help:"Inner radius of the ring renderer as a fraction of the outer one." default:"0.5"`
}

// Options returns the configuration options the flags describe.
func (f CanvasFlags) Options() ([]waveform.Option, error) {
	bg, err := ParseColor(f.Background)
	if err != nil {
		return nil, err
	}
	return []waveform.Option{
		waveform.WithSize(f.Width, f.Height),
		waveform.WithScale(f.Scale),
		waveform.WithVerticalScalingFactor(f.VerticalScale),
		waveform.WithBackground(bg),
		waveform.WithAntialias(f.Antialias),
	}, nil
}

// Configure builds a configuration with newConfig from every flag group.
func Configure(
	newConfig func(...waveform.Option) (waveform.Configuration, error),
	c CanvasFlags, s StyleFlags, d DampingFlags,
) (waveform.Configuration, error) {
	opts, err := c.Options()
	if err != nil {
		return waveform.Configuration{}, err
	}
	style, err := s.Build()
	if err != nil {
		return waveform.Configuration{}, err
	}
	damping, err := d.Build()
	if err != nil {
		return waveform.Configuration{}, err
	}
	return newConfig(append(opts, waveform.WithStyle(style), waveform.WithDamping(damping))...)
}
