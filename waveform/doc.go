// SPDX-License-Identifier: EPL-2.0

// Package waveform renders normalized amplitude envelopes.
//
// Samples are float32 values in [0,1] where 0 is the loudest level and 1 is
// the noise floor, as produced by the envelope package. Renderers invert
// them so loud samples draw tall.
//
// # Layouts
//
//   - Linear: mirrored around a Position anchor, optionally striped
//   - Circular: one sample per angle step around the center
//   - Ring: Circular pushed into an annulus
//   - Stereo: [left..., right...] split into two half-height Linear layouts
//
// Renderer is the extension point. A custom layout only needs Path and can
// call DefaultStyle from Render.
//
// # Live views
//
// LiveDrawer redraws a growing sample buffer. It keeps a LiveState so that
// stripes stay in place while the waveform scrolls to the left:
//
//	d := waveform.NewLiveDrawer(waveform.Linear{}, waveform.Middle, true)
//	for samples := range updates {
//	    surface := canvas.NewImage(w, h, scale, false)
//	    d.Draw(surface, samples, cfg)
//	}
package waveform
