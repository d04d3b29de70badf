// SPDX-License-Identifier: EPL-2.0

package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// Surface is the drawing target of the waveform renderers. Sizes and path
// coordinates are in points.
type Surface interface {
	Size() (width, height float64)
	FillBackground(c color.Color)
	// Fill paints src through the area enclosed by p, using the nonzero rule.
	Fill(p *Path, src image.Image)
	// Stroke paints src through the outline of p.
	Stroke(p *Path, s Stroke, src image.Image)
}

// Image is a raster Surface. Points are mapped to pixels by Scale.
type Image struct {
	width, height float64
	scale         float64
	antialias     bool

	rgba *image.RGBA
	mask *image.Alpha
}

// NewImage creates a transparent surface of width x height points with
// ceil(width*scale) x ceil(height*scale) pixels. With antialias off, edge
// coverage is snapped to fully on or off.
func NewImage(width, height, scale float64, antialias bool) *Image {
	if scale <= 0 {
		scale = 1
	}
	pw := int(math.Ceil(width * scale))
	ph := int(math.Ceil(height * scale))
	bounds := image.Rect(0, 0, max(0, pw), max(0, ph))

	return &Image{
		width:     width,
		height:    height,
		scale:     scale,
		antialias: antialias,
		rgba:      image.NewRGBA(bounds),
		mask:      image.NewAlpha(bounds),
	}
}

func (m *Image) Size() (float64, float64) { return m.width, m.height }
func (m *Image) Scale() float64            { return m.scale }

// RGBA returns the backing bitmap.
func (m *Image) RGBA() *image.RGBA { return m.rgba }

func (m *Image) FillBackground(c color.Color) {
	draw.Draw(m.rgba, m.rgba.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

func (m *Image) Fill(p *Path, src image.Image) {
	if p == nil || p.Len() == 0 || m.rgba.Bounds().Empty() {
		return
	}

	b := m.rgba.Bounds()
	f := rasterx.NewFiller(b.Dx(), b.Dy(), m.scanner(src))
	f.SetWinding(true)
	m.trace(f, p, false)
	f.Draw()
	m.composite(src)
}

func (m *Image) Stroke(p *Path, s Stroke, src image.Image) {
	if p == nil || p.Len() == 0 || s.Width <= 0 || m.rgba.Bounds().Empty() {
		return
	}

	b := m.rgba.Bounds()
	lineCap := s.Cap.capFunc()
	st := rasterx.NewStroker(b.Dx(), b.Dy(), m.scanner(src))
	st.SetWinding(true)
	st.SetStroke(toFixed(s.Width*m.scale), toFixed(4), lineCap, lineCap, rasterx.RoundGap, rasterx.Round)
	m.trace(st, p, true)
	st.Draw()
	m.composite(src)
}

// scanner returns a scanner painting src straight into the bitmap, or,
// without antialiasing, one that records opaque coverage into m.mask.
func (m *Image) scanner(src image.Image) *rasterx.ScannerGV {
	b := m.rgba.Bounds()
	if !m.antialias {
		clear(m.mask.Pix)
		s := rasterx.NewScannerGV(b.Dx(), b.Dy(), m.mask, b)
		s.SetColor(color.Opaque)
		return s
	}

	s := rasterx.NewScannerGV(b.Dx(), b.Dy(), m.rgba, b)
	s.SetColor(m.paint(src))
	return s
}

// paint converts src into a rasterx color: a plain color.Color for uniform
// paints and a per-pixel function otherwise.
func (m *Image) paint(src image.Image) any {
	switch s := src.(type) {
	case *image.Uniform:
		return s.C
	case *Gradient:
		return rasterx.ColorFunc(s.Scaled(m.scale).At)
	}
	return rasterx.ColorFunc(src.At)
}

// composite snaps the recorded coverage and paints src through it. It is a
// no-op for antialiased surfaces, whose scanner already painted.
func (m *Image) composite(src image.Image) {
	if m.antialias {
		return
	}

	for i, a := range m.mask.Pix {
		if a >= 0x80 {
			m.mask.Pix[i] = 0xff
		} else {
			m.mask.Pix[i] = 0
		}
	}
	if g, ok := src.(*Gradient); ok {
		src = g.Scaled(m.scale)
	}
	draw.DrawMask(m.rgba, m.rgba.Bounds(), src, image.Point{}, m.mask, image.Point{}, draw.Over)
}

// trace feeds every subpath of p to a, in pixels. Repeated points are
// dropped; a stroked closed subpath ends with a join instead of caps.
func (m *Image) trace(a rasterx.Adder, p *Path, stroke bool) {
	for _, sub := range p.Subpaths() {
		pts := dedupe(sub.Points)
		if sub.Closed && len(pts) > 2 && pts[0] == pts[len(pts)-1] {
			pts = pts[:len(pts)-1]
		}
		if len(pts) < 2 {
			continue
		}

		a.Start(m.point(pts[0]))
		for _, pt := range pts[1:] {
			a.Line(m.point(pt))
		}
		a.Stop(sub.Closed || !stroke)
	}
}

func (m *Image) point(p Point) fixed.Point26_6 {
	return fixed.Point26_6{X: toFixed(p.X * m.scale), Y: toFixed(p.Y * m.scale)}
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

func dedupe(pts []Point) []Point {
	out := make([]Point, 0, len(pts))
	for _, p := range pts {
		if n := len(out); n > 0 && out[n-1] == p {
			continue
		}
		out = append(out, p)
	}
	return out
}
