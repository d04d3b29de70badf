// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"github.com/ik5/audwave/canvas"
)

// Linear draws the envelope left to right, mirrored around the position
// anchor. With a Striped style it emits one vertical segment per stripe.
type Linear struct{}

type side int

const (
	sideUp side = iota
	sideDown
	sideBoth
)

func (Linear) Path(samples []float32, cfg Configuration, lastOffset int, pos Position) *canvas.Path {
	center := pos.Offset() * cfg.Size.Height
	p := canvas.NewPath()
	p.MoveTo(0, center)

	if isStriped(cfg) {
		drawLinear(p, samples, cfg, lastOffset, sideBoth, center)
	} else {
		drawLinear(p, samples, cfg, lastOffset, sideUp, center)
		drawLinear(p, samples, cfg, lastOffset, sideDown, center)
	}

	p.Close()
	return p
}

func (l Linear) Render(dst canvas.Surface, samples []float32, cfg Configuration, lastOffset int, pos Position) {
	DefaultStyle(dst, l.Path(samples, cfg, lastOffset, pos), cfg)
}

// drawLinear appends one side of the envelope to p. sideDown walks the
// samples right to left so the outline closes on itself.
func drawLinear(p *canvas.Path, samples []float32, cfg Configuration, lastOffset int, s side, center float64) {
	n := len(samples)
	mapping := cfg.Size.Height * cfg.VerticalScalingFactor
	// silence still shows as a one pixel line
	minAmplitude := 1 / cfg.Scale
	// fewer samples than columns are drawn flush right
	xOffset := float64(cfg.SamplesNeeded()-n) / cfg.Scale

	var halfStripe int
	if st, ok := cfg.Style.(Striped); ok {
		// keeps the first stripe inside the left edge
		halfStripe = int(st.Width / 2 * cfg.Scale)
	}

	var lastX float64
	for i := range n {
		index := i
		if s == sideDown {
			index = n - 1 - i
		}

		x := index + lastOffset
		if s == sideBoth {
			if skipStripe(cfg, x) {
				continue
			}
			x += halfStripe
		}

		xPos := float64(x-lastOffset)/cfg.Scale + xOffset
		amplitude := max(minAmplitude, invert(samples[index])*mapping)
		lastX = xPos

		switch s {
		case sideUp:
			p.LineTo(xPos, center-amplitude)
		case sideDown:
			p.LineTo(xPos, center+amplitude)
		case sideBoth:
			p.MoveTo(xPos, center-amplitude)
			p.LineTo(xPos, center+amplitude)
		}
	}

	if s == sideBoth {
		p.MoveTo(lastX, center)
	}
}
