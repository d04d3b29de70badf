// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"math"

	"github.com/ik5/audwave/canvas"
)

// Circular draws the envelope around the center of the canvas, one sample
// per angle step. Silence collapses onto the center point.
type Circular struct{}

// Ring is Circular with the envelope pushed out into an annulus.
// Hollowness is the inner radius as a fraction of the outer one.
type Ring struct {
	Hollowness float64
}

func geometry(cfg Configuration) (center canvas.Point, maxRadius float64) {
	w, h := cfg.Size.Width, cfg.Size.Height
	return canvas.Point{X: w / 2, Y: h / 2}, min(w, h) / 2 * cfg.VerticalScalingFactor
}

func angleOf(index, count int) float64 {
	return 2 * math.Pi * float64(index) / float64(count)
}

func (Circular) Path(samples []float32, cfg Configuration, lastOffset int, _ Position) *canvas.Path {
	center, maxRadius := geometry(cfg)
	striped := isStriped(cfg)

	p := canvas.NewPath()
	p.MoveTo(center.X, center.Y)

	for i, sample := range samples {
		if striped && skipStripe(cfg, i+lastOffset) {
			p.LineTo(center.X, center.Y)
			continue
		}

		a := angleOf(i, len(samples))
		r := maxRadius * invert(sample)
		p.LineTo(center.X+r*math.Cos(a), center.Y+r*math.Sin(a))
	}

	p.Close()
	return p
}

func (c Circular) Render(dst canvas.Surface, samples []float32, cfg Configuration, lastOffset int, pos Position) {
	DefaultStyle(dst, c.Path(samples, cfg, lastOffset, pos), cfg)
}

func (r Ring) Path(samples []float32, cfg Configuration, lastOffset int, _ Position) *canvas.Path {
	center, maxRadius := geometry(cfg)
	inner := maxRadius * min(1, max(0, r.Hollowness))
	striped := isStriped(cfg)

	p := canvas.NewPath()
	p.MoveTo(center.X+inner, center.Y)

	for i, sample := range samples {
		a := angleOf(i, len(samples))
		cos, sin := math.Cos(a), math.Sin(a)

		if striped && skipStripe(cfg, i+lastOffset) {
			p.MoveTo(center.X+inner*cos, center.Y+inner*sin)
			continue
		}

		radius := inner + (maxRadius-inner)*invert(sample)
		p.LineTo(center.X+radius*cos, center.Y+radius*sin)
	}

	p.Close()
	return p
}

func (r Ring) Render(dst canvas.Surface, samples []float32, cfg Configuration, lastOffset int, pos Position) {
	DefaultStyle(dst, r.Path(samples, cfg, lastOffset, pos), cfg)
}
