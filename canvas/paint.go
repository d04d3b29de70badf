// SPDX-License-Identifier: EPL-2.0

package canvas

import (
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Solid paints every pixel with c.
func Solid(c color.Color) image.Image {
	return image.NewUniform(c)
}

var infiniteRect = image.Rect(-1e9, -1e9, 1e9, 1e9)

// Gradient is a top to bottom linear gradient with evenly spaced color
// stops. Rows above 0 take the first color and rows below Height take the
// last one.
type Gradient struct {
	Colors []color.Color
	Height float64

	rows []color.NRGBA
}

// NewVerticalGradient spans colors over height points.
func NewVerticalGradient(colors []color.Color, height float64) *Gradient {
	g := &Gradient{Colors: colors, Height: height}
	g.build()
	return g
}

// Scaled returns the same gradient laid out over height*s.
func (g *Gradient) Scaled(s float64) *Gradient {
	return NewVerticalGradient(g.Colors, g.Height*s)
}

type stop struct {
	c     colorful.Color
	alpha float64
}

func makeStop(c color.Color) stop {
	_, _, _, a := c.RGBA()
	if a == 0 {
		return stop{}
	}
	cf, _ := colorful.MakeColor(c)
	return stop{c: cf, alpha: float64(a) / 0xffff}
}

func (g *Gradient) build() {
	n := max(1, int(math.Ceil(g.Height)))
	g.rows = make([]color.NRGBA, n)

	if len(g.Colors) == 0 {
		return
	}

	stops := make([]stop, len(g.Colors))
	for i, c := range g.Colors {
		stops[i] = makeStop(c)
	}

	for y := range n {
		t := 0.0
		if g.Height > 0 {
			t = min(1, max(0, (float64(y)+0.5)/g.Height))
		}
		g.rows[y] = sample(stops, t)
	}
}

func sample(stops []stop, t float64) color.NRGBA {
	if len(stops) == 1 {
		return toNRGBA(stops[0].c, stops[0].alpha)
	}

	pos := t * float64(len(stops)-1)
	i := min(int(pos), len(stops)-2)
	local := pos - float64(i)

	a, b := stops[i], stops[i+1]
	return toNRGBA(a.c.BlendRgb(b.c, local), a.alpha+(b.alpha-a.alpha)*local)
}

func toNRGBA(c colorful.Color, alpha float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(alpha * 0xff))}
}

func (g *Gradient) ColorModel() color.Model { return color.NRGBAModel }
func (g *Gradient) Bounds() image.Rectangle  { return infiniteRect }

func (g *Gradient) At(_, y int) color.Color {
	switch {
	case y < 0:
		return g.rows[0]
	case y >= len(g.rows):
		return g.rows[len(g.rows)-1]
	default:
		return g.rows[y]
	}
}
