package gui_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/titlemaker/gui"
)

func TestRectContainsEdgesInclusive(t *testing.T) {
	r := gui.Rect{X: 10, Y: 20, W: 30, H: 40}

	assert.True(t, r.Contains(gui.Vec2{X: 10, Y: 20}))
	assert.True(t, r.Contains(gui.Vec2{X: 40, Y: 60}))
	assert.True(t, r.Contains(gui.Vec2{X: 40, Y: 20}))
	assert.True(t, r.Contains(gui.Vec2{X: 25, Y: 35}))

	assert.False(t, r.Contains(gui.Vec2{X: 9.999, Y: 30}))
	assert.False(t, r.Contains(gui.Vec2{X: 25, Y: 60.001}))
}

func TestRectFromMinMaxOrderIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		a := gui.Vec2{X: rng.Float32()*200 - 100, Y: rng.Float32()*200 - 100}
		b := gui.Vec2{X: rng.Float32()*200 - 100, Y: rng.Float32()*200 - 100}

		r1 := gui.RectFromMinMax(a, b)
		r2 := gui.RectFromMinMax(b, a)
		require.Equal(t, r1, r2)
		require.GreaterOrEqual(t, r1.W, float32(0))
		require.GreaterOrEqual(t, r1.H, float32(0))
		require.True(t, r1.Contains(a))
		require.True(t, r1.Contains(b))
	}
}

func TestRectFromMinMaxContainsRoundedCorner(t *testing.T) {
	a := gui.Vec2{X: -68.33434, Y: 21.450684}
	b := gui.Vec2{X: 95.048325, Y: -84.109276}

	r := gui.RectFromMinMax(a, b)
	assert.True(t, r.Contains(a))
	assert.True(t, r.Contains(b))
	assert.True(t, r.Contains(gui.Vec2{X: b.X, Y: a.Y}))
}

func TestRectIntersect(t *testing.T) {
	a := gui.Rect{X: 0, Y: 0, W: 10, H: 10}
	b := gui.Rect{X: 5, Y: 5, W: 10, H: 10}
	assert.Equal(t, gui.Rect{X: 5, Y: 5, W: 5, H: 5}, a.Intersect(b))
	assert.True(t, a.Intersects(b))

	c := gui.Rect{X: 20, Y: 20, W: 1, H: 1}
	assert.False(t, a.Intersects(c))
	got := a.Intersect(c)
	assert.Zero(t, got.W*got.H)
}

func randomTransform(rng *rand.Rand) gui.Transform {
	sx := 0.2 + rng.Float32()*3
	sy := 0.2 + rng.Float32()*3
	if rng.Intn(2) == 0 {
		sx = -sx
	}
	return gui.Translation(rng.Float32()*400-200, rng.Float32()*400-200).
		Mul(gui.Rotation(rng.Float32() * 6.283)).
		Mul(gui.Scaling(sx, sy))
}

func TestTransformInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		tr := randomTransform(rng)
		inv := tr.Inverted()

		p := gui.Vec2{X: rng.Float32()*100 - 50, Y: rng.Float32()*100 - 50}
		got := tr.Mul(inv).Apply(p)
		assert.InDelta(t, p.X, got.X, 1e-3)
		assert.InDelta(t, p.Y, got.Y, 1e-3)

		back := inv.Inverted()
		for k := range tr {
			assert.InDelta(t, tr[k], back[k], 1e-3)
		}
	}
}

func TestTransformInvertMutates(t *testing.T) {
	tr := gui.Translation(5, -3)
	tr.Invert()
	assert.Equal(t, gui.Translation(-5, 3), tr)
}

func TestTransformMulOrder(t *testing.T) {
	// Rotation applied first, then translation.
	m := gui.Translation(10, 0).Mul(gui.Rotation(3.14159265 / 2))
	p := m.Apply(gui.Vec2{X: 1, Y: 0})
	assert.InDelta(t, 10, p.X, 1e-5)
	assert.InDelta(t, 1, p.Y, 1e-5)
}

func TestVec2Rotated(t *testing.T) {
	v := gui.Vec2{X: 2, Y: 0}.Rotated(3.14159265)
	assert.InDelta(t, -2, v.X, 1e-5)
	assert.InDelta(t, 0, v.Y, 1e-5)
	assert.InDelta(t, 2, v.Len(), 1e-5)
}

func TestHSVRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 500; i++ {
		c := gui.RGB(rng.Float32(), rng.Float32(), rng.Float32())
		h, s, v := c.ToHSV()
		if s < 1e-3 {
			continue
		}
		back := gui.HSV(h, s, v)
		require.InDelta(t, c.R, back.R, 1e-4)
		require.InDelta(t, c.G, back.G, 1e-4)
		require.InDelta(t, c.B, back.B, 1e-4)
	}
}

func TestHSVAchromatic(t *testing.T) {
	h, s, v := gui.RGB(0.4, 0.4, 0.4).ToHSV()
	assert.Zero(t, h)
	assert.Zero(t, s)
	assert.InDelta(t, 0.4, v, 1e-6)
}

func TestPaintGradientAt(t *testing.T) {
	p := gui.LinearGradient(gui.Vec2{}, gui.Vec2{X: 10}, gui.Black, gui.White)
	mid := p.At(gui.Vec2{X: 5, Y: 100})
	assert.InDelta(t, 0.5, mid.R, 1e-6)
	assert.Equal(t, gui.White, p.At(gui.Vec2{X: 50}))
	assert.Equal(t, gui.Black, p.At(gui.Vec2{X: -5}))
}

func TestFitRect(t *testing.T) {
	box := gui.Rect{X: 0, Y: 0, W: 100, H: 100}
	img := gui.Vec2{X: 200, Y: 100}

	assert.Equal(t, box, gui.FitRect(img, box, gui.FitStretch))
	assert.Equal(t, gui.Rect{X: 0, Y: 25, W: 100, H: 50}, gui.FitRect(img, box, gui.FitContain))
	assert.Equal(t, gui.Rect{X: -50, Y: 0, W: 200, H: 100}, gui.FitRect(img, box, gui.FitCover))

	tall := gui.Vec2{X: 50, Y: 100}
	assert.Equal(t, gui.Rect{X: 25, Y: 0, W: 50, H: 100}, gui.FitRect(tall, box, gui.FitContain))
}
