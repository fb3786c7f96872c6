package gui

import "github.com/chewxy/math32"

// Transform is a 2x3 affine matrix stored as [a b c d e f], mapping
//
//	x' = a*x + c*y + e
//	y' = b*x + d*y + f
type Transform [6]float32

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{1, 0, 0, 1, 0, 0}
}

// Translation returns a transform moving points by (x, y).
func Translation(x, y float32) Transform {
	return Transform{1, 0, 0, 1, x, y}
}

// TranslationVec is Translation for a vector.
func TranslationVec(p Vec2) Transform {
	return Translation(p.X, p.Y)
}

// Scaling returns a transform scaling by (sx, sy) about the origin.
func Scaling(sx, sy float32) Transform {
	return Transform{sx, 0, 0, sy, 0, 0}
}

// Rotation returns a transform rotating by angle radians about the origin.
func Rotation(angle float32) Transform {
	sn, cs := math32.Sincos(angle)
	return Transform{cs, sn, -sn, cs, 0, 0}
}

// Mul composes two transforms. t.Mul(o) applies o first, then t.
func (t Transform) Mul(o Transform) Transform {
	return Transform{
		t[0]*o[0] + t[2]*o[1],
		t[1]*o[0] + t[3]*o[1],
		t[0]*o[2] + t[2]*o[3],
		t[1]*o[2] + t[3]*o[3],
		t[0]*o[4] + t[2]*o[5] + t[4],
		t[1]*o[4] + t[3]*o[5] + t[5],
	}
}

// Apply transforms a point.
func (t Transform) Apply(p Vec2) Vec2 {
	return Vec2{
		X: p.X*t[0] + p.Y*t[2] + t[4],
		Y: p.X*t[1] + p.Y*t[3] + t[5],
	}
}

// ApplyVector transforms a direction, ignoring translation.
func (t Transform) ApplyVector(v Vec2) Vec2 {
	return Vec2{X: v.X*t[0] + v.Y*t[2], Y: v.X*t[1] + v.Y*t[3]}
}

// Invert replaces t with its inverse and returns it for chaining.
// A degenerate matrix becomes the identity.
func (t *Transform) Invert() *Transform {
	det := t[0]*t[3] - t[2]*t[1]
	if det > -1e-6 && det < 1e-6 {
		*t = Identity()
		return t
	}
	inv := 1 / det
	*t = Transform{
		t[3] * inv,
		-t[1] * inv,
		-t[2] * inv,
		t[0] * inv,
		(t[2]*t[5] - t[3]*t[4]) * inv,
		(t[1]*t[4] - t[0]*t[5]) * inv,
	}
	return t
}

// Inverted returns the inverse of t, leaving t untouched.
func (t Transform) Inverted() Transform {
	out := t
	out.Invert()
	return out
}

// IsIdentity reports whether t is exactly the identity.
func (t Transform) IsIdentity() bool {
	return t == Identity()
}

// scale returns the average scale factor, used to keep tessellation density
// and stroke widths stable under zoom.
func (t Transform) scale() float32 {
	sx := math32.Sqrt(t[0]*t[0] + t[2]*t[2])
	sy := math32.Sqrt(t[1]*t[1] + t[3]*t[3])
	return (sx + sy) * 0.5
}
