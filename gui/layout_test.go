package gui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/titlemaker/gui"
)

func area(r gui.Rect) float32 { return r.W * r.H }

func TestLayoutCutsConserveArea(t *testing.T) {
	root := gui.Rect{X: 0, Y: 0, W: 400, H: 300}
	ls := gui.NewLayoutStack(root)

	before := ls.Peek()
	top := ls.CutTop(40)
	after := ls.Peek()
	assert.Equal(t, gui.Rect{X: 0, Y: 0, W: 400, H: 40}, top)
	assert.Equal(t, gui.Rect{X: 0, Y: 40, W: 400, H: 260}, after)
	assert.Equal(t, area(before), area(top)+area(after))

	left := ls.CutLeft(100)
	assert.Equal(t, gui.Rect{X: 0, Y: 40, W: 100, H: 260}, left)

	bottom := ls.CutBottom(20)
	assert.Equal(t, gui.Rect{X: 100, Y: 280, W: 300, H: 20}, bottom)

	right := ls.CutRight(50)
	assert.Equal(t, gui.Rect{X: 350, Y: 40, W: 50, H: 240}, right)
	assert.Equal(t, gui.Rect{X: 100, Y: 40, W: 250, H: 240}, ls.Peek())

	total := area(top) + area(left) + area(bottom) + area(right) + area(ls.Peek())
	assert.Equal(t, area(root), total)
}

func TestLayoutPushPop(t *testing.T) {
	ls := gui.NewLayoutStack(gui.Rect{W: 100, H: 100})
	ls.PushBounds(gui.Rect{X: 10, Y: 10, W: 20, H: 20})
	ls.CutTop(5)
	assert.Equal(t, 2, ls.Len())

	popped := ls.PopBounds()
	assert.Equal(t, gui.Rect{X: 10, Y: 15, W: 20, H: 15}, popped)
	assert.Equal(t, gui.Rect{W: 100, H: 100}, ls.Peek())
}

func TestLayoutRootProtected(t *testing.T) {
	root := gui.Rect{W: 100, H: 100}
	ls := gui.NewLayoutStack(root)

	assert.Equal(t, root, ls.PopBounds())
	assert.Equal(t, root, ls.PopBounds())
	assert.Equal(t, 1, ls.Len())
}

func TestLayoutEmptyPanics(t *testing.T) {
	ls := gui.NewLayoutStack(gui.Rect{W: 100, H: 100})
	ls.Clear()
	assert.PanicsWithValue(t, "layout stack is empty", func() { ls.CutTop(10) })
	assert.PanicsWithValue(t, "layout stack is empty", func() { ls.PopBounds() })
}

func TestSliceHorizontal(t *testing.T) {
	ls := gui.NewLayoutStack(gui.Rect{W: 300, H: 100})

	cells := ls.SliceHorizontalGap(24, 3, 6)
	require.Len(t, cells, 3)
	for i, c := range cells {
		assert.Equal(t, float32(94), c.W)
		assert.Equal(t, float32(24), c.H)
		assert.Equal(t, float32(i*100), c.X)
	}
	assert.Equal(t, gui.Rect{Y: 24, W: 300, H: 76}, ls.Peek())
	assert.Equal(t, 1, ls.Len())

	assert.Len(t, ls.SliceHorizontal(24, 4), 4)
	assert.Nil(t, ls.SliceHorizontal(24, 0))
}

func TestContextLayoutRootIsDisplay(t *testing.T) {
	h := newHarness()
	h.frame(func(ctx *gui.Context) {
		assert.Equal(t, gui.Rect{W: testDisplay.X, H: testDisplay.Y}, ctx.Peek())
		ctx.CutTop(100)
		assert.Equal(t, float32(100), ctx.Peek().Y)
	})
	h.frame(func(ctx *gui.Context) {
		assert.Equal(t, float32(0), ctx.Peek().Y)
	})
}
