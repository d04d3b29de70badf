// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"github.com/ik5/audwave/canvas"
)

// Renderer turns normalized samples into a path. Samples are in [0,1] with
// 0 as the loudest value and 1 as the noise floor.
//
// lastOffset is only needed for live rendering, where it keeps stripes in
// place while samples scroll through the view. Pass 0 otherwise.
type Renderer interface {
	Path(samples []float32, cfg Configuration, lastOffset int, pos Position) *canvas.Path
	Render(dst canvas.Surface, samples []float32, cfg Configuration, lastOffset int, pos Position)
}

// SampleCounter is implemented by renderers that consume a different number
// of samples than one per pixel column.
type SampleCounter interface {
	SamplesFor(cfg Configuration) int
}

// SamplesFor returns how many samples r draws for cfg.
func SamplesFor(r Renderer, cfg Configuration) int {
	if sc, ok := r.(SampleCounter); ok {
		return sc.SamplesFor(cfg)
	}
	return cfg.SamplesNeeded()
}

// DefaultStyle paints p onto dst according to cfg.Style.
func DefaultStyle(dst canvas.Surface, p *canvas.Path, cfg Configuration) {
	switch s := cfg.Style.(type) {
	case Filled:
		dst.Fill(p, canvas.Solid(s.Color))

	case Outlined:
		dst.Stroke(p, canvas.Stroke{Width: s.Width, Cap: canvas.CapRound}, canvas.Solid(s.Color))

	case Striped:
		dst.Stroke(p, canvas.Stroke{Width: s.Width, Cap: s.Cap}, canvas.Solid(s.Color))

	case Gradient:
		dst.Fill(p, canvas.NewVerticalGradient(s.Colors, cfg.Size.Height))

	case GradientOutlined:
		dst.Stroke(p, canvas.Stroke{Width: s.Width, Cap: canvas.CapRound},
			canvas.NewVerticalGradient(s.Colors, cfg.Size.Height))
	}
}

// invert flips a normalized sample so that loud values are large.
func invert(sample float32) float64 {
	return 1 - float64(sample)
}

func isStriped(cfg Configuration) bool {
	_, ok := cfg.Style.(Striped)
	return ok
}

// skipStripe reports whether column x falls between stripes.
func skipStripe(cfg Configuration, x int) bool {
	bucket := cfg.StripeBucket()
	scale := int(cfg.Scale)
	if bucket < 1 || scale < 1 {
		return false
	}
	return x%scale != 0 || x%bucket != 0
}
