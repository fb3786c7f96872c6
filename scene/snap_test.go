package scene_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/titlemaker/gui"
	"github.com/go-theft-auto/titlemaker/scene"
)

var canvas = gui.Vec2{X: 1920, Y: 1080}

func TestSnapToCanvasEdge(t *testing.T) {
	sn := scene.NewSnapper(scene.DefaultSnapConfig)

	pos := sn.Snap(gui.Rect{X: 5, Y: 300, W: 100, H: 50}, nil, canvas)
	assert.Equal(t, gui.Vec2{X: 0, Y: 300}, pos)
	require.Len(t, sn.Guides(), 1)
	assert.False(t, sn.Guides()[0].Horizontal)
	assert.Equal(t, gui.Vec2{X: 0, Y: 1080}, sn.Guides()[0].To)
}

func TestSnapToCanvasCentre(t *testing.T) {
	sn := scene.NewSnapper(scene.DefaultSnapConfig)

	pos := sn.Snap(gui.Rect{X: 905, Y: 515, W: 100, H: 50}, nil, canvas)
	assert.Equal(t, gui.Vec2{X: 910, Y: 515}, pos)
	assert.Len(t, sn.Guides(), 2)
}

func TestSnapToOtherShape(t *testing.T) {
	sn := scene.NewSnapper(scene.DefaultSnapConfig)
	others := []gui.Rect{{X: 100, Y: 100, W: 100, H: 100}}

	pos := sn.Snap(gui.Rect{X: 203, Y: 600, W: 100, H: 50}, others, canvas)
	assert.Equal(t, gui.Vec2{X: 200, Y: 600}, pos)
	require.Len(t, sn.Guides(), 1)
	assert.Equal(t, float32(200), sn.Guides()[0].From.X)
}

func TestSnapPrefersNearest(t *testing.T) {
	sn := scene.NewSnapper(scene.DefaultSnapConfig)
	others := []gui.Rect{{X: 500, Y: 0, W: 100, H: 100}}

	// Left edge is 6 from 500, right edge 4 from the other's centre.
	pos := sn.Snap(gui.Rect{X: 506, Y: 300, W: 40, H: 50}, others, canvas)
	assert.Equal(t, float32(510), pos.X)
}

func TestSnapDisabled(t *testing.T) {
	sn := scene.NewSnapper(scene.SnapConfig{})

	b := gui.Rect{X: 3, Y: 537, W: 100, H: 50}
	assert.Equal(t, b.Location(), sn.Snap(b, nil, canvas))
	assert.Empty(t, sn.Guides())
}

func TestSnapClearGuides(t *testing.T) {
	sn := scene.NewSnapper(scene.DefaultSnapConfig)
	sn.Snap(gui.Rect{X: 5, Y: 5, W: 10, H: 10}, nil, canvas)
	require.NotEmpty(t, sn.Guides())

	sn.ClearGuides()
	assert.Empty(t, sn.Guides())
}
