// SPDX-License-Identifier: EPL-2.0

package canvas

import "math"

// Point is a position in points. The surface scale maps points to pixels.
type Point struct {
	X, Y float64
}

// Rect is an axis aligned bounding box.
type Rect struct {
	Min, Max Point
}

func (r Rect) Dx() float64 { return r.Max.X - r.Min.X }
func (r Rect) Dy() float64 { return r.Max.Y - r.Min.Y }

// Empty reports whether r encloses no area.
func (r Rect) Empty() bool { return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y }

// Subpath is one connected run of a Path.
type Subpath struct {
	Points []Point
	Closed bool
}

// Path is a sequence of subpaths built with MoveTo, LineTo and Close.
// A LineTo without a preceding MoveTo starts at the origin.
type Path struct {
	subs []Subpath
}

func NewPath() *Path {
	return &Path{}
}

func (p *Path) MoveTo(x, y float64) {
	p.subs = append(p.subs, Subpath{Points: []Point{{x, y}}})
}

func (p *Path) LineTo(x, y float64) {
	if len(p.subs) == 0 || p.subs[len(p.subs)-1].Closed {
		start := Point{}
		if n := len(p.subs); n > 0 {
			start = p.subs[n-1].Points[0]
		}
		p.subs = append(p.subs, Subpath{Points: []Point{start}})
	}

	last := &p.subs[len(p.subs)-1]
	last.Points = append(last.Points, Point{x, y})
}

// Close ends the current subpath with a segment back to its first point.
// The pen returns to that point.
func (p *Path) Close() {
	if len(p.subs) == 0 {
		return
	}
	p.subs[len(p.subs)-1].Closed = true
}

// AddPath appends copies of every subpath of o.
func (p *Path) AddPath(o *Path) {
	if o == nil {
		return
	}
	for _, s := range o.subs {
		p.subs = append(p.subs, Subpath{
			Points: append([]Point(nil), s.Points...),
			Closed: s.Closed,
		})
	}
}

// Translate moves every point of p by (dx, dy) in place and returns p.
func (p *Path) Translate(dx, dy float64) *Path {
	for i := range p.subs {
		for j := range p.subs[i].Points {
			p.subs[i].Points[j].X += dx
			p.subs[i].Points[j].Y += dy
		}
	}
	return p
}

// Bounds returns the smallest Rect holding every point. An empty path has a
// zero Rect.
func (p *Path) Bounds() Rect {
	if p.Len() == 0 {
		return Rect{}
	}

	r := Rect{
		Min: Point{math.Inf(1), math.Inf(1)},
		Max: Point{math.Inf(-1), math.Inf(-1)},
	}
	for _, s := range p.subs {
		for _, pt := range s.Points {
			r.Min.X = min(r.Min.X, pt.X)
			r.Min.Y = min(r.Min.Y, pt.Y)
			r.Max.X = max(r.Max.X, pt.X)
			r.Max.Y = max(r.Max.Y, pt.Y)
		}
	}
	return r
}

// Subpaths exposes the subpaths of p. Callers must not modify them.
func (p *Path) Subpaths() []Subpath { return p.subs }

// Len returns the total number of points.
func (p *Path) Len() int {
	n := 0
	for _, s := range p.subs {
		n += len(s.Points)
	}
	return n
}
