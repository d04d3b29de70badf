// SPDX-License-Identifier: EPL-2.0

package waveform

import "math"

// Position is where amplitude 0 sits, as a fraction of the height from the
// top. Middle mirrors the envelope up and down.
type Position float64

const (
	Top    Position = 0
	Middle Position = 0.5
	Bottom Position = 1
)

// CustomPosition clamps v into [0,1]. NaN maps to Middle.
func CustomPosition(v float64) Position {
	if math.IsNaN(v) {
		return Middle
	}
	return Position(min(1, max(0, v)))
}

func (p Position) Offset() float64 { return float64(p) }
