package gui

import (
	"github.com/chewxy/math32"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a straight-alpha RGBA color with components in 0..1.
type Color struct {
	R, G, B, A float32
}

// Common colors.
var (
	White       = Color{1, 1, 1, 1}
	Black       = Color{0, 0, 0, 1}
	Red         = Color{1, 0, 0, 1}
	Transparent = Color{}
)

// RGB returns an opaque color from 0..1 channels.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGB8 returns a color from 0..255 channels and a 0..1 alpha.
func RGB8(r, g, b uint8, a float32) Color {
	return Color{R: float32(r) / 255, G: float32(g) / 255, B: float32(b) / 255, A: a}
}

// Packed converts to the DrawList vertex color layout (0xAABBGGRR).
func (c Color) Packed() uint32 {
	return uint32(channel8(c.A))<<24 | uint32(channel8(c.B))<<16 | uint32(channel8(c.G))<<8 | uint32(channel8(c.R))
}

func channel8(v float32) uint8 { return uint8(clampf(v, 0, 1)*255 + 0.5) }

// WithAlpha returns c with the alpha channel replaced.
func (c Color) WithAlpha(a float32) Color {
	c.A = a
	return c
}

// Lerp interpolates between c and o.
func (c Color) Lerp(o Color, t float32) Color {
	return Color{
		R: c.R + (o.R-c.R)*t,
		G: c.G + (o.G-c.G)*t,
		B: c.B + (o.B-c.B)*t,
		A: c.A + (o.A-c.A)*t,
	}
}

// ColorFromPacked is the inverse of Packed.
func ColorFromPacked(p uint32) Color {
	ch := func(shift uint) float32 { return float32(uint8(p>>shift)) / 255 }
	return Color{R: ch(0), G: ch(8), B: ch(16), A: ch(24)}
}

// HSV returns an opaque color from hue, saturation and value, all in 0..1.
func HSV(h, s, v float32) Color {
	h = h - math32.Floor(h)
	c := colorful.Hsv(float64(h)*360, float64(s), float64(v))
	return Color{R: float32(c.R), G: float32(c.G), B: float32(c.B), A: 1}
}

// HSL returns a color from hue, saturation, lightness and alpha in 0..1.
func HSL(h, s, l, a float32) Color {
	h = h - math32.Floor(h)
	c := colorful.Hsl(float64(h)*360, float64(s), float64(l))
	return Color{R: float32(c.R), G: float32(c.G), B: float32(c.B), A: a}
}

// ToHSV returns hue, saturation and value in 0..1. Achromatic colors
// (channel spread under 1e-5) report zero hue and saturation.
func (c Color) ToHSV() (h, s, v float32) {
	mx := maxf(c.R, maxf(c.G, c.B))
	mn := minf(c.R, minf(c.G, c.B))
	if mx-mn < 1e-5 {
		return 0, 0, mx
	}
	hd, sd, vd := colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}.Hsv()
	return float32(hd / 360), float32(sd), float32(vd)
}

// PaintKind tags the variant held by a Paint.
type PaintKind uint8

const (
	PaintSolid PaintKind = iota
	PaintLinearGradient
)

// Paint is a solid color or a linear gradient. Gradient endpoints are in the
// coordinate space of the shape being filled.
type Paint struct {
	Kind       PaintKind
	Color      Color
	Start, End Vec2
	Inner      Color
	Outer      Color
}

// SolidPaint wraps a single color.
func SolidPaint(c Color) Paint {
	return Paint{Kind: PaintSolid, Color: c}
}

// LinearGradient returns a gradient from inner at start to outer at end.
func LinearGradient(start, end Vec2, inner, outer Color) Paint {
	return Paint{Kind: PaintLinearGradient, Start: start, End: end, Inner: inner, Outer: outer}
}

// At evaluates the paint at a point.
func (p Paint) At(pt Vec2) Color {
	if p.Kind == PaintSolid {
		return p.Color
	}
	d := p.End.Sub(p.Start)
	l2 := d.Dot(d)
	if l2 < 1e-12 {
		return p.Inner
	}
	t := clampf(pt.Sub(p.Start).Dot(d)/l2, 0, 1)
	return p.Inner.Lerp(p.Outer, t)
}

// Translated returns the paint with gradient endpoints moved by offset.
func (p Paint) Translated(offset Vec2) Paint {
	p.Start = p.Start.Add(offset)
	p.End = p.End.Add(offset)
	return p
}
