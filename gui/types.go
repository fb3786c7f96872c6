// Package gui provides the immediate-mode GUI core of the title maker: widget
// identity and interaction, a stylesheet engine, a layout stack, a painter over
// batched draw lists and the widgets built on top of them.
package gui

import "github.com/chewxy/math32"

// Vec2 represents a 2D vector for positions and sizes.
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// MulVec multiplies component-wise.
func (v Vec2) MulVec(other Vec2) Vec2 {
	return Vec2{X: v.X * other.X, Y: v.Y * other.Y}
}

// DivVec divides component-wise. Zero components of other yield zero.
func (v Vec2) DivVec(other Vec2) Vec2 {
	var out Vec2
	if other.X != 0 {
		out.X = v.X / other.X
	}
	if other.Y != 0 {
		out.Y = v.Y / other.Y
	}
	return out
}

func (v Vec2) Dot(other Vec2) float32 {
	return v.X*other.X + v.Y*other.Y
}

// Len returns the euclidean length.
func (v Vec2) Len() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Rotated returns v rotated counter-clockwise by angle radians
// (clockwise on screen, where y grows downwards).
func (v Vec2) Rotated(angle float32) Vec2 {
	sn, cs := math32.Sincos(angle)
	return Vec2{X: v.X*cs - v.Y*sn, Y: v.X*sn + v.Y*cs}
}

// Rect represents a rectangle with position and size.
type Rect struct {
	X, Y float32 // Top-left position
	W, H float32 // Width and height
}

// RectFromMinMax builds a rectangle from two corners in any order.
// The result never has negative extents.
func RectFromMinMax(a, b Vec2) Rect {
	if a.X > b.X {
		a.X, b.X = b.X, a.X
	}
	if a.Y > b.Y {
		a.Y, b.Y = b.Y, a.Y
	}
	w, h := b.X-a.X, b.Y-a.Y
	// Rounded subtraction can leave a.X+w just short of b.X.
	for a.X+w < b.X {
		w = math32.Nextafter(w, math32.Inf(1))
	}
	for a.Y+h < b.Y {
		h = math32.Nextafter(h, math32.Inf(1))
	}
	return Rect{X: a.X, Y: a.Y, W: w, H: h}
}

// Contains reports whether p lies inside r. All four edges are inclusive.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Intersects returns true if two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.W && r.X+r.W > other.X &&
		r.Y < other.Y+other.H && r.Y+r.H > other.Y
}

// Intersect returns the overlap of both rectangles, or an empty rect
// positioned at r when they don't overlap.
func (r Rect) Intersect(other Rect) Rect {
	x0 := maxf(r.X, other.X)
	y0 := maxf(r.Y, other.Y)
	x1 := minf(r.X+r.W, other.X+other.W)
	y1 := minf(r.Y+r.H, other.Y+other.H)
	if x1 < x0 || y1 < y0 {
		return Rect{X: r.X, Y: r.Y}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Expand grows the rectangle by amount on every side. Negative amounts shrink it.
func (r Rect) Expand(amount float32) Rect {
	return Rect{X: r.X - amount, Y: r.Y - amount, W: r.W + amount*2, H: r.H + amount*2}
}

// Location returns the top-left corner.
func (r Rect) Location() Vec2 { return Vec2{X: r.X, Y: r.Y} }

// Size returns the extents.
func (r Rect) Size() Vec2 { return Vec2{X: r.W, Y: r.H} }

// Center returns the midpoint.
func (r Rect) Center() Vec2 { return Vec2{X: r.X + r.W*0.5, Y: r.Y + r.H*0.5} }

// Max returns the bottom-right corner.
func (r Rect) Max() Vec2 { return Vec2{X: r.X + r.W, Y: r.Y + r.H} }

// Offset returns r translated by -p.
func (r Rect) Offset(p Vec2) Rect {
	return Rect{X: r.X - p.X, Y: r.Y - p.Y, W: r.W, H: r.H}
}

// clampf clamps a float32 value to a range.
func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
