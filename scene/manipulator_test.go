package scene_test

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/titlemaker/gui"
	"github.com/go-theft-auto/titlemaker/scene"
)

// Half-size mapping: the shape's centre (200,150) lands on (100,75) and
// its outline extends 56x31 pixels either side of it.
var halfScale = scene.Mapping{
	Virtual: gui.Vec2{X: 1920, Y: 1080},
	Screen:  gui.Rect{W: 960, H: 540},
}

func manipShape() *scene.Shape {
	s := scene.NewRectangle()
	s.Bounds = gui.Rect{X: 100, Y: 100, W: 200, H: 100}
	return s
}

// drag presses at from, moves to each point in turn and returns the state
// held during the drag.
func drag(m *scene.Manipulator, s *scene.Shape, from gui.Vec2, to ...gui.Vec2) scene.ManipulatorState {
	m.Update(s, halfScale, from, true, true)
	held := m.State()
	for _, p := range to {
		m.Update(s, halfScale, p, false, true)
	}
	return held
}

func TestManipulatorHitTest(t *testing.T) {
	var m scene.Manipulator
	s := manipShape()

	tests := []struct {
		at   gui.Vec2
		want scene.ManipulatorState
	}{
		{gui.Vec2{X: 156, Y: 75}, scene.SizingR},
		{gui.Vec2{X: 44, Y: 75}, scene.SizingL},
		{gui.Vec2{X: 100, Y: 44}, scene.SizingT},
		{gui.Vec2{X: 100, Y: 106}, scene.SizingB},
		{gui.Vec2{X: 44, Y: 44}, scene.SizingTL},
		{gui.Vec2{X: 156, Y: 44}, scene.SizingTR},
		{gui.Vec2{X: 44, Y: 106}, scene.SizingBL},
		{gui.Vec2{X: 156, Y: 106}, scene.SizingBR},
		{gui.Vec2{X: 100, Y: 20}, scene.Rotating},
		{gui.Vec2{X: 100, Y: 75}, scene.Moving},
		{gui.Vec2{X: 300, Y: 300}, scene.ManipNone},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, m.HitTest(s, halfScale, tt.at))
		})
	}
}

func TestManipulatorResizeRight(t *testing.T) {
	var m scene.Manipulator
	s := manipShape()

	held := drag(&m, s, gui.Vec2{X: 156, Y: 75}, gui.Vec2{X: 166, Y: 75})
	assert.Equal(t, scene.SizingR, held)
	assert.True(t, m.Engaged())
	assert.Equal(t, gui.Rect{X: 100, Y: 100, W: 220, H: 100}, s.Bounds)
}

func TestManipulatorResizeTopLeft(t *testing.T) {
	var m scene.Manipulator
	s := manipShape()

	drag(&m, s, gui.Vec2{X: 44, Y: 44}, gui.Vec2{X: 34, Y: 34})
	assert.Equal(t, gui.Rect{X: 80, Y: 80, W: 220, H: 120}, s.Bounds)
}

func TestManipulatorResizeFloorsSize(t *testing.T) {
	var m scene.Manipulator
	s := manipShape()

	drag(&m, s, gui.Vec2{X: 156, Y: 75}, gui.Vec2{X: -1000, Y: 75})
	assert.Equal(t, float32(1), s.Bounds.W)
	assert.InDelta(t, 100, s.Bounds.X, 1e-3)
}

func TestManipulatorMove(t *testing.T) {
	var m scene.Manipulator
	s := manipShape()

	held := drag(&m, s, gui.Vec2{X: 100, Y: 75}, gui.Vec2{X: 105, Y: 75}, gui.Vec2{X: 105, Y: 80})
	assert.Equal(t, scene.Moving, held)
	assert.Equal(t, gui.Rect{X: 110, Y: 110, W: 200, H: 100}, s.Bounds)
}

func TestManipulatorRotate(t *testing.T) {
	var m scene.Manipulator
	s := manipShape()

	held := drag(&m, s, gui.Vec2{X: 100, Y: 20}, gui.Vec2{X: 160, Y: 75})
	assert.Equal(t, scene.Rotating, held)
	assert.InDelta(t, math32.Pi/2, s.Rotation, 1e-4)
	assert.Equal(t, gui.Rect{X: 100, Y: 100, W: 200, H: 100}, s.Bounds)
}

func TestManipulatorReleaseDropsGrab(t *testing.T) {
	var m scene.Manipulator
	s := manipShape()

	drag(&m, s, gui.Vec2{X: 156, Y: 75})
	require.Equal(t, scene.SizingR, m.State())

	m.Update(s, halfScale, gui.Vec2{X: 156, Y: 75}, false, false)
	assert.Equal(t, scene.ManipNone, m.State())

	// Holding the button over a handle without a new press grabs nothing.
	assert.False(t, m.Update(s, halfScale, gui.Vec2{X: 160, Y: 75}, false, true))
	assert.Equal(t, scene.ManipNone, m.State())
	assert.Equal(t, float32(200), s.Bounds.W)
}

func TestManipulatorDragFromEmptySpace(t *testing.T) {
	var m scene.Manipulator
	s := manipShape()

	held := drag(&m, s, gui.Vec2{X: 300, Y: 300}, gui.Vec2{X: 156, Y: 75}, gui.Vec2{X: 170, Y: 75})
	assert.Equal(t, scene.ManipNone, held)
	assert.False(t, m.Engaged())
	assert.Equal(t, float32(200), s.Bounds.W)
}

func TestManipulatorRotatedShape(t *testing.T) {
	var m scene.Manipulator
	s := manipShape()
	s.Rotation = math32.Pi / 2

	// The right handle now sits below the centre.
	assert.Equal(t, scene.SizingR, m.HitTest(s, halfScale, gui.Vec2{X: 100, Y: 131}))
	assert.Equal(t, scene.ManipNone, m.HitTest(s, halfScale, gui.Vec2{X: 156, Y: 44}))

	leftMid := func() gui.Vec2 {
		return s.LocalToWorld().Apply(gui.Vec2{X: -s.Bounds.W / 2})
	}
	before := leftMid()

	drag(&m, s, gui.Vec2{X: 100, Y: 131}, gui.Vec2{X: 100, Y: 141})
	assert.InDelta(t, 220, s.Bounds.W, 1e-3)
	assert.InDelta(t, 100, s.Bounds.H, 1e-3)

	after := leftMid()
	assert.InDelta(t, before.X, after.X, 1e-3)
	assert.InDelta(t, before.Y, after.Y, 1e-3)
	assert.InDelta(t, 200, after.X, 1e-3)
	assert.InDelta(t, 50, after.Y, 1e-3)
}
