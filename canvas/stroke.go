// SPDX-License-Identifier: EPL-2.0

package canvas

import "github.com/srwiley/rasterx"

// LineCap is the shape drawn at the open ends of a stroked subpath.
type LineCap int

const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

func (c LineCap) String() string {
	switch c {
	case CapRound:
		return "round"
	case CapSquare:
		return "square"
	default:
		return "butt"
	}
}

func (c LineCap) capFunc() rasterx.CapFunc {
	switch c {
	case CapRound:
		return rasterx.RoundCap
	case CapSquare:
		return rasterx.SquareCap
	default:
		return rasterx.ButtCap
	}
}

// Stroke describes how a path outline is drawn. Joins are always round.
type Stroke struct {
	Width float64
	Cap   LineCap
}
