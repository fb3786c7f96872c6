package scene_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/titlemaker/gui"
	"github.com/go-theft-auto/titlemaker/scene"
)

func TestAnimationTiming(t *testing.T) {
	a := scene.NewAnimation(scene.AnimationFade)
	a.Delay = 1
	a.Duration = 2
	a.Play(scene.NewRectangle())

	v := a.Update(nil, 0.5, true)
	assert.False(t, a.Finished())
	assert.Equal(t, float32(0), v)
	assert.Equal(t, scene.AnimDelaying, a.State())

	v = a.Update(nil, 2.0, true)
	assert.Equal(t, float32(0.5), v)
	assert.Equal(t, float32(0.5), a.Progress())
	assert.False(t, a.Finished())

	a.Update(nil, 3.0, true)
	assert.True(t, a.Finished())

	a.Reset()
	assert.Equal(t, scene.AnimIdle, a.State())
}

func TestAnimationReverse(t *testing.T) {
	a := scene.NewAnimation(scene.AnimationFade)
	a.Delay = 1
	a.Duration = 1
	a.Play(scene.NewRectangle())

	assert.Equal(t, float32(1), a.Update(nil, 0, false))
	assert.Equal(t, float32(0.75), a.Update(nil, 1.25, false))
}

func TestAnimationPlayIgnoredWhileRunning(t *testing.T) {
	a := scene.NewAnimation(scene.AnimationFade)
	a.Duration = 2
	a.Play(scene.NewRectangle())
	a.Update(nil, 1, true)
	require.Equal(t, scene.AnimRunning, a.State())

	a.Play(scene.NewEllipse())
	assert.Equal(t, scene.AnimRunning, a.State())
	assert.Equal(t, float32(0.5), a.Progress())
}

func TestAnimationZeroDuration(t *testing.T) {
	a := scene.NewAnimation(scene.AnimationFade)
	a.Duration = 0
	a.Play(scene.NewRectangle())
	assert.Equal(t, float32(1), a.Update(nil, 0, true))
	assert.True(t, a.Finished())
}

func TestAnimationEasingApplied(t *testing.T) {
	a := scene.NewAnimation(scene.AnimationFade)
	a.Duration = 1
	a.Easing = "In Quad"
	a.Play(scene.NewRectangle())

	assert.Equal(t, float32(0.25), a.Update(nil, 0.5, true))
	assert.Equal(t, float32(0.5), a.Progress())
}

func TestRevealClipsFromEachEdge(t *testing.T) {
	shape := scene.NewRectangle()
	shape.Bounds = gui.Rect{X: 10, Y: 20, W: 100, H: 50}

	tests := []struct {
		dir  scene.RevealDirection
		want gui.Rect
	}{
		{scene.FromLeft, gui.Rect{X: 10, Y: 20, W: 50, H: 50}},
		{scene.FromRight, gui.Rect{X: 60, Y: 20, W: 50, H: 50}},
		{scene.FromTop, gui.Rect{X: 10, Y: 20, W: 100, H: 25}},
		{scene.FromBottom, gui.Rect{X: 10, Y: 45, W: 100, H: 25}},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			a := scene.NewAnimation(scene.AnimationReveal)
			a.Duration = 1
			a.Direction = tt.dir
			a.Play(shape)

			p := gui.NewPainter(nil)
			a.Update(p, 0.5, true)
			clip, ok := p.ScissorRect()
			require.True(t, ok)
			assert.Equal(t, tt.want, clip)
		})
	}
}

func TestFadeSetsAlphaAndZoomsAboutCentre(t *testing.T) {
	shape := scene.NewRectangle()
	shape.Bounds = gui.Rect{X: 100, Y: 100, W: 200, H: 100}

	a := scene.NewAnimation(scene.AnimationFade)
	a.Duration = 1
	a.Zoom = true
	a.Play(shape)

	p := gui.NewPainter(nil)
	a.Update(p, 0, true)
	assert.Equal(t, float32(0), p.GlobalAlpha())

	xf := p.CurrentTransform()
	c := xf.Apply(shape.Center())
	assert.InDelta(t, 200, c.X, 1e-3)
	assert.InDelta(t, 150, c.Y, 1e-3)
	// Fully zoomed out at the start: the right edge sits 25% further out.
	edge := xf.Apply(gui.Vec2{X: 300, Y: 150})
	assert.InDelta(t, 325, edge.X, 1e-3)

	p = gui.NewPainter(nil)
	a.Update(p, 0.5, true)
	assert.Equal(t, float32(0.5), p.GlobalAlpha())
}
