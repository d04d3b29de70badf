// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"github.com/ik5/audwave/canvas"
)

// Stereo draws two channels laid out as [left..., right...]. The left
// channel grows up from the middle line and the right one grows down from it.
type Stereo struct{}

// SamplesFor is two samples per pixel column, one for each channel.
func (Stereo) SamplesFor(cfg Configuration) int {
	return 2 * cfg.SamplesNeeded()
}

func (Stereo) Path(samples []float32, cfg Configuration, lastOffset int, _ Position) *canvas.Path {
	p := canvas.NewPath()

	half := len(samples) / 2
	if half == 0 {
		return p
	}

	halfCfg := cfg
	halfCfg.Size.Height = cfg.Size.Height / 2

	p.AddPath(Linear{}.Path(samples[:half], halfCfg, lastOffset, Bottom))
	p.AddPath(Linear{}.Path(samples[half:], halfCfg, lastOffset, Top).Translate(0, halfCfg.Size.Height))

	return p
}

func (s Stereo) Render(dst canvas.Surface, samples []float32, cfg Configuration, lastOffset int, pos Position) {
	DefaultStyle(dst, s.Path(samples, cfg, lastOffset, pos), cfg)
}
