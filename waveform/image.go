// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"fmt"
	"image"

	"github.com/ik5/audwave/canvas"
)

// Image renders samples into a new bitmap of cfg.Size at cfg.Scale. The
// sample count must match SamplesFor(r, cfg). A nil renderer means Linear.
func Image(samples []float32, cfg Configuration, r Renderer, pos Position) (*image.RGBA, error) {
	if r == nil {
		r = Linear{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.SamplesNeeded() < 1 || int(cfg.Size.Height*cfg.Scale) < 1 {
		return nil, fmt.Errorf("%w: %vx%v at scale %v", ErrEmptyCanvas, cfg.Size.Width, cfg.Size.Height, cfg.Scale)
	}
	if want := SamplesFor(r, cfg); len(samples) != want {
		return nil, fmt.Errorf("%w: got %d samples, want %d", ErrSampleCountMismatch, len(samples), want)
	}

	if cfg.ShouldDamp() {
		samples = Dampen(samples, cfg.Damping)
	}

	dst := canvas.NewImage(cfg.Size.Width, cfg.Size.Height, cfg.Scale, cfg.Antialias)
	dst.FillBackground(cfg.Background)
	r.Render(dst, samples, cfg, 0, pos)

	return dst.RGBA(), nil
}
