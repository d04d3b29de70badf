// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"image"
	"image/color"
	"testing"

	"github.com/ik5/audwave/canvas"
)

type paintCall struct {
	stroke bool
	path   *canvas.Path
	style  canvas.Stroke
	src    image.Image
}

// recordingSurface remembers every call instead of drawing.
type recordingSurface struct {
	w, h       float64
	background color.Color
	calls      []paintCall
}

func (s *recordingSurface) Size() (float64, float64)     { return s.w, s.h }
func (s *recordingSurface) FillBackground(c color.Color) { s.background = c }

func (s *recordingSurface) Fill(p *canvas.Path, src image.Image) {
	s.calls = append(s.calls, paintCall{path: p, src: src})
}

func (s *recordingSurface) Stroke(p *canvas.Path, st canvas.Stroke, src image.Image) {
	s.calls = append(s.calls, paintCall{stroke: true, path: p, style: st, src: src})
}

func fill(n int, v float32) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func mustConfig(t testing.TB, opts ...Option) Configuration {
	t.Helper()

	cfg, err := NewConfiguration(opts...)
	if err != nil {
		t.Fatalf("NewConfiguration: %v", err)
	}
	return cfg
}

// stripeXs returns the x of every stripe segment in a striped linear path.
func stripeXs(p *canvas.Path) []float64 {
	var xs []float64
	for _, s := range p.Subpaths() {
		if len(s.Points) == 2 && s.Points[0].X == s.Points[1].X {
			xs = append(xs, s.Points[0].X)
		}
	}
	return xs
}
