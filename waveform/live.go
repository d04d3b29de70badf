// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"math"

	"github.com/ik5/audwave/canvas"
)

// LiveState is the continuity carried between redraws of a growing sample
// buffer.
type LiveState struct {
	LastOffset      int
	LastSampleCount int
}

// Advance computes the state and visible window for the next redraw of
// samples, the whole buffer recorded so far. A buffer shorter than the
// previous one starts a new session. With silencePadding the window is
// always SamplesNeeded long, padded on the left with silence.
func (s LiveState) Advance(samples []float32, cfg Configuration, silencePadding bool) (LiveState, []float32) {
	count := len(samples)
	needed := cfg.SamplesNeeded()

	added := count - s.LastSampleCount
	if s.LastSampleCount > count {
		added = count
	}

	next := LiveState{LastOffset: s.LastOffset, LastSampleCount: count}
	if added == count {
		next.LastOffset = 0
	}

	if bucket := cfg.StripeBucket(); bucket > 0 {
		switch {
		case silencePadding:
			next.LastOffset = (next.LastOffset + added) % bucket
		case count >= needed:
			next.LastOffset = (next.LastOffset + min(added, count-needed)) % bucket
		}
	}

	window := samples[max(0, count-needed):]
	if cfg.ShouldDamp() {
		window = Dampen(window, cfg.Damping)
	}

	if silencePadding && len(window) < needed {
		padded := make([]float32, needed)
		pad := needed - len(window)
		for i := range pad {
			padded[i] = 1
		}
		copy(padded[pad:], window)
		return next, padded
	}

	return next, append([]float32(nil), window...)
}

// LiveDrawer redraws a growing sample buffer, keeping stripes steady as
// the waveform scrolls. It is not safe for concurrent use.
type LiveDrawer struct {
	Renderer       Renderer
	Position       Position
	SilencePadding bool

	state LiveState
}

func NewLiveDrawer(r Renderer, pos Position, silencePadding bool) *LiveDrawer {
	if r == nil {
		r = Linear{}
	}
	return &LiveDrawer{Renderer: r, Position: pos, SilencePadding: silencePadding}
}

// Draw paints the background and the most recent window of samples onto
// dst. Nothing is drawn for an empty buffer unless silence padding is on.
func (d *LiveDrawer) Draw(dst canvas.Surface, samples []float32, cfg Configuration) {
	if len(samples) == 0 && !d.SilencePadding {
		return
	}

	var window []float32
	d.state, window = d.state.Advance(samples, cfg, d.SilencePadding)

	dst.FillBackground(cfg.Background)
	d.Renderer.Render(dst, window, cfg, d.state.LastOffset, d.Position)
}

func (d *LiveDrawer) State() LiveState { return d.state }
func (d *LiveDrawer) Reset()           { d.state = LiveState{} }

// AmplitudeFromPower converts a power reading in dB into a normalized
// sample: 0 dB is 0 and silence approaches 1.
func AmplitudeFromPower(db float64) float32 {
	if math.IsNaN(db) {
		return 1
	}
	return float32(min(1, max(0, 1-math.Pow(10, db/20))))
}
