package scene_test

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/titlemaker/gui"
	"github.com/go-theft-auto/titlemaker/scene"
)

func newTestPainter() *gui.Painter {
	p := gui.NewPainter(nil)
	p.Begin(gui.AcquireDrawList())
	return p
}

func fade(duration float32) *scene.Animation {
	a := scene.NewAnimation(scene.AnimationFade)
	a.Duration = duration
	return a
}

func TestShapeEnterRunsToIdle(t *testing.T) {
	p := newTestPainter()
	s := scene.NewRectangle()
	s.Enter = fade(1)

	s.TriggerEnter()
	require.True(t, s.Animating())

	for range 3 {
		s.DrawAnimated(p, 0.5)
		assert.True(t, s.Animating())
	}
	s.DrawAnimated(p, 0.5)
	assert.False(t, s.Animating())
	assert.True(t, s.Visible())
	assert.Equal(t, scene.AnimIdle, s.Enter.State())
}

func TestShapeExitHides(t *testing.T) {
	p := newTestPainter()
	s := scene.NewEllipse()
	s.Exit = fade(1)

	s.TriggerExit()
	for range 3 {
		s.DrawAnimated(p, 0.5)
		assert.True(t, s.Visible())
	}
	s.DrawAnimated(p, 0.5)
	assert.False(t, s.Visible())
	assert.False(t, s.Animating())

	s.TriggerEnter()
	s.DrawAnimated(p, 0.5)
	assert.True(t, s.Visible())
}

func TestShapeExitWithoutAnimationHidesImmediately(t *testing.T) {
	p := newTestPainter()
	s := scene.NewRectangle()

	s.TriggerExit()
	s.DrawAnimated(p, 1.0/30)
	assert.False(t, s.Visible())
	assert.False(t, s.Animating())
}

func TestShapeTriggerQueuedDuringAnimation(t *testing.T) {
	p := newTestPainter()
	s := scene.NewRectangle()
	s.Enter = fade(1)
	s.Exit = fade(1)

	s.TriggerEnter()
	s.DrawAnimated(p, 0.5)
	s.DrawAnimated(p, 0.5)
	s.TriggerExit()
	s.DrawAnimated(p, 0.5)
	assert.Equal(t, scene.AnimIdle, s.Exit.State())

	s.DrawAnimated(p, 0.5)
	assert.Equal(t, scene.AnimIdle, s.Enter.State())
	assert.True(t, s.Animating())

	s.DrawAnimated(p, 0.5)
	assert.Equal(t, scene.AnimDelaying, s.Exit.State())
}

func TestShapeContainsRotated(t *testing.T) {
	s := scene.NewRectangle()
	s.Bounds = gui.Rect{X: 0, Y: 0, W: 200, H: 20}

	assert.True(t, s.Contains(gui.Vec2{X: 190, Y: 10}, 0))
	assert.False(t, s.Contains(gui.Vec2{X: 100, Y: 80}, 0))

	s.Rotation = math32.Pi / 2
	assert.False(t, s.Contains(gui.Vec2{X: 190, Y: 10}, 0))
	assert.True(t, s.Contains(gui.Vec2{X: 100, Y: 80}, 0))
	assert.True(t, s.Contains(gui.Vec2{X: 115, Y: 80}, 10))
}

func TestShapeCloneIsIndependent(t *testing.T) {
	s := scene.NewText()
	s.Enter = fade(2)
	s.Enter.Play(s)

	c := s.Clone()
	require.NotSame(t, s.Enter, c.Enter)
	assert.Equal(t, scene.AnimIdle, c.Enter.State())
	assert.Equal(t, float32(2), c.Enter.Duration)

	c.Bounds.X = 50
	c.Enter.Duration = 3
	assert.Equal(t, float32(0), s.Bounds.X)
	assert.Equal(t, float32(2), s.Enter.Duration)
}

func TestDocumentOrderingAndPicking(t *testing.T) {
	doc := scene.NewDocument()
	bottom := doc.Add(scene.NewRectangle())
	top := doc.Add(scene.NewEllipse())

	assert.Same(t, top, doc.ShapeAt(gui.Vec2{X: 50, Y: 50}, 0))
	assert.Nil(t, doc.ShapeAt(gui.Vec2{X: 500, Y: 500}, 0))
	assert.Same(t, top, doc.ShapeAt(gui.Vec2{X: 105, Y: 50}, 10))

	doc.Lower(top)
	assert.Same(t, bottom, doc.ShapeAt(gui.Vec2{X: 50, Y: 50}, 0))
	doc.Raise(top)
	assert.Equal(t, []*scene.Shape{bottom, top}, doc.Shapes)
}

func TestDocumentSelection(t *testing.T) {
	doc := scene.NewDocument()
	s := doc.Add(scene.NewRectangle())

	doc.Select(scene.NewRectangle())
	assert.Nil(t, doc.Selected())

	doc.Select(s)
	assert.Same(t, s, doc.Selected())

	dup := doc.Duplicate(s)
	assert.Len(t, doc.Shapes, 2)
	assert.Equal(t, float32(20), dup.Bounds.X)
	assert.Equal(t, float32(20), dup.Bounds.Y)

	require.True(t, doc.Remove(s))
	assert.Nil(t, doc.Selected())
	assert.False(t, doc.Remove(s))
}
