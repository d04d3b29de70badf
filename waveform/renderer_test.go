// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/ik5/audwave/canvas"
)

func TestLinear_MirroredPath(t *testing.T) {
	t.Parallel()

	cfg := mustConfig(t, WithSize(4, 10), WithVerticalScalingFactor(1), WithStyle(Filled{Color: color.Black}))
	samples := []float32{0, 0.5, 1, 0.8}

	p := Linear{}.Path(samples, cfg, 0, Middle)
	subs := p.Subpaths()
	if len(subs) != 1 || !subs[0].Closed {
		t.Fatalf("got %d subpaths", len(subs))
	}

	want := []canvas.Point{
		{X: 0, Y: 5},
		{X: 0, Y: -5}, {X: 1, Y: 0}, {X: 2, Y: 4}, {X: 3, Y: 3},
		{X: 3, Y: 7}, {X: 2, Y: 6}, {X: 1, Y: 10}, {X: 0, Y: 15},
	}
	got := subs[0].Points
	if len(got) != len(want) {
		t.Fatalf("got %d points, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i].X-want[i].X) > 1e-9 || math.Abs(got[i].Y-want[i].Y) > 1e-6 {
			t.Errorf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLinear_SilenceIsHairline(t *testing.T) {
	t.Parallel()

	cfg := mustConfig(t, WithSize(2, 10), WithScale(2), WithStyle(Filled{Color: color.Black}))
	b := Linear{}.Path(fill(4, 1), cfg, 0, Middle).Bounds()

	if b.Min.Y != 4.5 || b.Max.Y != 5.5 {
		t.Errorf("silence spans y [%v, %v], want [4.5, 5.5]", b.Min.Y, b.Max.Y)
	}
}

func TestLinear_ShortInputIsFlushRight(t *testing.T) {
	t.Parallel()

	cfg := mustConfig(t, WithSize(10, 10), WithStyle(Filled{Color: color.Black}))
	p := Linear{}.Path(fill(4, 0), cfg, 0, Middle)

	if x := p.Subpaths()[0].Points[1].X; x != 6 {
		t.Errorf("first sample x = %v, want 6", x)
	}
}

func TestLinear_Position(t *testing.T) {
	t.Parallel()

	cfg := mustConfig(t, WithSize(4, 10), WithStyle(Filled{Color: color.Black}))
	for _, tt := range []struct {
		pos  Position
		want float64
	}{{Top, 0}, {Middle, 5}, {Bottom, 10}, {CustomPosition(0.2), 2}} {
		p := Linear{}.Path(fill(4, 1), cfg, 0, tt.pos)
		if y := p.Subpaths()[0].Points[0].Y; y != tt.want {
			t.Errorf("anchor for %v = %v, want %v", tt.pos, y, tt.want)
		}
	}
}

func TestLinear_Stripes(t *testing.T) {
	t.Parallel()

	cfg := mustConfig(t, WithSize(20, 10), WithStyle(DefaultStripe(color.Black)))
	xs := stripeXs(Linear{}.Path(fill(20, 0), cfg, 0, Middle))

	want := []float64{0, 6, 12, 18}
	if len(xs) != len(want) {
		t.Fatalf("stripes at %v, want %v", xs, want)
	}
	for i := range want {
		if xs[i] != want[i] {
			t.Errorf("stripe %d at %v, want %v", i, xs[i], want[i])
		}
	}
}

func TestLinear_StripePhaseContinuity(t *testing.T) {
	t.Parallel()

	cfg := mustConfig(t, WithSize(20, 10), WithStyle(DefaultStripe(color.Black)))
	bucket := cfg.StripeBucket()

	const k, n = 2, 3
	buffer := fill(30+n, 0.5)

	first := LiveState{LastOffset: k, LastSampleCount: 27}
	state, window := first.Advance(buffer[:30], cfg, true)
	if state.LastOffset != (k+n)%bucket {
		t.Fatalf("LastOffset = %d, want %d", state.LastOffset, (k+n)%bucket)
	}
	before := stripeXs(Linear{}.Path(window, cfg, state.LastOffset, Middle))

	next, window := state.Advance(buffer, cfg, true)
	if next.LastOffset != (k+2*n)%bucket {
		t.Fatalf("LastOffset = %d, want %d", next.LastOffset, (k+2*n)%bucket)
	}
	after := stripeXs(Linear{}.Path(window, cfg, next.LastOffset, Middle))

	// every stripe still on screen moved left by exactly n columns
	onScreen := make(map[float64]bool, len(after))
	for _, x := range after {
		onScreen[x] = true
	}
	for _, x := range before {
		if x-n < 0 {
			continue
		}
		if !onScreen[x-n] {
			t.Errorf("stripe at %v did not move to %v; after = %v", x, x-n, after)
		}
	}
	for _, x := range after {
		if m := math.Mod(x+n, float64(bucket)); m != math.Mod(before[0], float64(bucket)) {
			t.Errorf("stripe %v is out of phase", x)
		}
	}
}

func TestCircular_SingleSample(t *testing.T) {
	t.Parallel()

	cfg := mustConfig(t, WithSize(10, 10), WithVerticalScalingFactor(1))
	p := Circular{}.Path([]float32{0}, cfg, 0, Middle)

	subs := p.Subpaths()
	if len(subs) != 1 || !subs[0].Closed {
		t.Fatalf("subpaths = %+v", subs)
	}
	for _, pt := range subs[0].Points {
		if math.IsNaN(pt.X) || math.IsNaN(pt.Y) {
			t.Fatalf("NaN point %v", pt)
		}
	}
	if got := subs[0].Points[1]; got != (canvas.Point{X: 10, Y: 5}) {
		t.Errorf("sample point = %v, want (10, 5)", got)
	}
}

func TestCircular_SilenceCollapses(t *testing.T) {
	t.Parallel()

	cfg := mustConfig(t, WithSize(10, 10))
	b := Circular{}.Path(fill(16, 1), cfg, 0, Middle).Bounds()

	if b.Min != (canvas.Point{X: 5, Y: 5}) || b.Max != b.Min {
		t.Errorf("Bounds() = %+v, want the center", b)
	}
}

func TestRing_Annulus(t *testing.T) {
	t.Parallel()

	cfg := mustConfig(t, WithSize(10, 10), WithVerticalScalingFactor(1))

	quiet := Ring{Hollowness: 0.5}.Path(fill(4, 1), cfg, 0, Middle)
	if got := quiet.Subpaths()[0].Points[1]; got != (canvas.Point{X: 7.5, Y: 5}) {
		t.Errorf("silent point = %v, want (7.5, 5)", got)
	}

	loud := Ring{Hollowness: 0.5}.Path(fill(4, 0), cfg, 0, Middle)
	if got := loud.Subpaths()[0].Points[1]; got != (canvas.Point{X: 10, Y: 5}) {
		t.Errorf("loud point = %v, want (10, 5)", got)
	}
}

func TestRing_StripesBreakThePath(t *testing.T) {
	t.Parallel()

	cfg := mustConfig(t, WithSize(12, 12), WithStyle(DefaultStripe(color.Black)))
	p := Ring{Hollowness: 0.3}.Path(fill(12, 0), cfg, 0, Middle)

	// indexes 0 and 6 are drawn, every other one starts a new subpath
	if n := len(p.Subpaths()); n != 11 {
		t.Errorf("got %d subpaths, want 11", n)
	}
}

func TestStereo_Split(t *testing.T) {
	t.Parallel()

	cfg := mustConfig(t, WithSize(4, 20), WithVerticalScalingFactor(1), WithStyle(Filled{Color: color.Black}))
	samples := append(fill(4, 0), fill(4, 1)...)

	p := Stereo{}.Path(samples, cfg, 0, Middle)
	subs := p.Subpaths()
	if len(subs) != 2 {
		t.Fatalf("got %d subpaths, want 2", len(subs))
	}

	if y := subs[0].Points[0].Y; y != 10 {
		t.Errorf("left anchor = %v, want 10", y)
	}
	if y := subs[0].Points[1].Y; y != 0 {
		t.Errorf("loud left peak = %v, want 0", y)
	}

	for _, pt := range subs[1].Points {
		if pt.Y < 9 || pt.Y > 11 {
			t.Errorf("quiet right point %v outside [9, 11]", pt)
		}
	}

	if got := (Stereo{}).SamplesFor(cfg); got != 8 {
		t.Errorf("SamplesFor() = %d, want 8", got)
	}
	if n := (Stereo{}).Path([]float32{0}, cfg, 0, Middle).Len(); n != 0 {
		t.Errorf("single sample produced %d points", n)
	}
}

func TestDefaultStyle_Dispatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		style  Style
		stroke bool
		width  float64
		cap    canvas.LineCap
	}{
		{"filled", Filled{Color: color.Black}, false, 0, 0},
		{"outlined", Outlined{Color: color.Black, Width: 3}, true, 3, canvas.CapRound},
		{"gradient", DefaultGradient(), false, 0, 0},
		{"gradient outlined", GradientOutlined{Colors: []color.Color{color.Black}, Width: 2}, true, 2, canvas.CapRound},
		{"striped", Striped{Color: color.Black, Width: 2, Spacing: 1, Cap: canvas.CapSquare}, true, 2, canvas.CapSquare},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := mustConfig(t, WithSize(8, 8), WithStyle(tt.style))
			s := &recordingSurface{w: 8, h: 8}
			Linear{}.Render(s, fill(8, 0.5), cfg, 0, Middle)

			if len(s.calls) != 1 {
				t.Fatalf("got %d paint calls", len(s.calls))
			}
			c := s.calls[0]
			if c.stroke != tt.stroke || c.style.Width != tt.width || c.style.Cap != tt.cap {
				t.Errorf("call = stroke %v %+v", c.stroke, c.style)
			}

			_, isGradient := c.src.(*canvas.Gradient)
			_, isUniform := c.src.(*image.Uniform)
			switch tt.style.(type) {
			case Gradient, GradientOutlined:
				if !isGradient {
					t.Errorf("paint = %T, want *canvas.Gradient", c.src)
				}
			default:
				if !isUniform {
					t.Errorf("paint = %T, want *image.Uniform", c.src)
				}
			}
		})
	}
}
