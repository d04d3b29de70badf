// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"image/png"
	"math"
	"os"

	"github.com/ik5/audwave/canvas"
	"github.com/ik5/audwave/waveform"
)

// minDecibels is reported for a buffer of digital silence.
const minDecibels = -160

// rmsDecibels returns the RMS level of buf in dBFS.
func rmsDecibels(buf []float32) float64 {
	if len(buf) == 0 {
		return minDecibels
	}

	var sum float64
	for _, s := range buf {
		sum += float64(s) * float64(s)
	}
	rms := math.Sqrt(sum / float64(len(buf)))
	if rms == 0 {
		return minDecibels
	}
	return max(minDecibels, 20*math.Log10(rms))
}

// recorder turns power readings into samples and keeps the live image
// current. It is owned by a single goroutine.
type recorder struct {
	cfg     waveform.Configuration
	drawer  *waveform.LiveDrawer
	surface *canvas.Image
	samples []float32
}

func newRecorder(cfg waveform.Configuration, drawer *waveform.LiveDrawer) *recorder {
	return &recorder{
		cfg:     cfg,
		drawer:  drawer,
		surface: canvas.NewImage(cfg.Size.Width, cfg.Size.Height, cfg.Scale, cfg.Antialias),
	}
}

// push records one reading and redraws.
func (r *recorder) push(db float64) {
	r.samples = append(r.samples, waveform.AmplitudeFromPower(db))
	r.drawer.Draw(r.surface, r.samples, r.cfg)
}

func (r *recorder) count() int { return len(r.samples) }

// save writes the current image to path through a temporary file, so a
// viewer never sees a partial PNG.
func (r *recorder) save(path string) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("creating %s: %w", tmp, err)
	}
	if err := png.Encode(f, r.surface.RGBA()); err != nil {
		_ = f.Close()
		return fmt.Errorf("encoding %s: %w", tmp, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
