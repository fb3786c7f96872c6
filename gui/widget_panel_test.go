package gui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/titlemaker/gui"
)

func TestScrollMetricsClamp(t *testing.T) {
	m := gui.ScrollMetrics{Content: 1000, Viewport: 400, Track: 400}

	assert.Equal(t, float32(600), m.MaxScroll())
	assert.Equal(t, float32(0), m.Clamp(-50))
	assert.Equal(t, float32(600), m.Clamp(900))
	assert.Equal(t, float32(250), m.Clamp(250))
}

func TestScrollMetricsThumb(t *testing.T) {
	m := gui.ScrollMetrics{Content: 1000, Viewport: 400, Track: 400}

	assert.Equal(t, float32(160), m.ThumbSize())
	assert.Equal(t, float32(0), m.ThumbOffset(0))
	// At the end of the content the thumb touches the bottom of the track.
	assert.Equal(t, m.Track, m.ThumbOffset(m.MaxScroll())+m.ThumbSize())
}

func TestScrollMetricsDragToBottom(t *testing.T) {
	m := gui.ScrollMetrics{Content: 1000, Viewport: 400, Track: 400}

	assert.Equal(t, float32(600), m.DragScroll(m.Track, 0))
	assert.Equal(t, float32(0), m.DragScroll(-100, 0))
	assert.InDelta(t, 250, m.DragScroll(100, 1), 1e-4)
}

func TestScrollMetricsShortContent(t *testing.T) {
	m := gui.ScrollMetrics{Content: 200, Viewport: 400, Track: 400}
	assert.Equal(t, float32(0), m.MaxScroll())
	assert.Equal(t, float32(0), m.Clamp(100))
	assert.Equal(t, m.Track, m.ThumbSize())
}

func TestPanelWheelScrollClamps(t *testing.T) {
	h := newHarness()
	bounds := gui.Rect{X: 0, Y: 0, W: 300, H: 400}
	panel := func(ctx *gui.Context) {
		ctx.BeginPanel("list", bounds)
		ctx.CutTop(950)
		ctx.EndPanel()
	}

	h.moveTo(100, 100)
	h.input.SetMouseWheel(0, -100)
	h.frame(panel)

	var inner gui.Rect
	h.frame(func(ctx *gui.Context) {
		_, inner = ctx.StyleSheet().Element("panel_hollow", bounds)
		panel(ctx)
	})
	// 950 laid out plus 50 of padding.
	assert.Equal(t, 1000-inner.H, h.ui.Context().PanelScroll("list"))

	h.input.SetMouseWheel(0, 100)
	h.frame(panel)
	assert.Equal(t, float32(0), h.ui.Context().PanelScroll("list"))
}

func TestPanelThumbDrag(t *testing.T) {
	h := newHarness()
	bounds := gui.Rect{X: 0, Y: 0, W: 300, H: 400}
	panel := func(ctx *gui.Context) {
		ctx.BeginPanel("list", bounds)
		ctx.CutTop(950)
		ctx.EndPanel()
	}

	// The scrollbar sits in the rightmost 18px of the padded area.
	h.frame(panel)
	h.press(290, 10)
	h.frame(panel)
	h.moveTo(290, 1000)
	h.frame(panel)

	var inner gui.Rect
	h.frame(func(ctx *gui.Context) {
		_, inner = ctx.StyleSheet().Element("panel_hollow", bounds)
		panel(ctx)
	})
	assert.Equal(t, 1000-inner.H, h.ui.Context().PanelScroll("list"))

	h.release()
	h.frame(panel)
	h.moveTo(290, 10)
	h.frame(panel)
	assert.Equal(t, 1000-inner.H, h.ui.Context().PanelScroll("list"))
}

func TestEndPanelWithoutBeginPanics(t *testing.T) {
	h := newHarness()
	require.Panics(t, func() {
		h.frame(func(ctx *gui.Context) { ctx.EndPanel() })
	})
}

func TestNestedPanelScrollbarKeepsParentClip(t *testing.T) {
	h := newHarness()
	h.frame(func(ctx *gui.Context) {
		ctx.BeginPanel("outer", gui.Rect{X: 0, Y: 0, W: 200, H: 100})
		ctx.BeginPanel("inner", gui.Rect{X: 10, Y: 60, W: 150, H: 200})
		ctx.CutTop(300)
		ctx.EndPanel()
		ctx.EndPanel()
	})

	below := 0
	for _, cmd := range h.renderer.cmds {
		for _, v := range h.renderer.cmdVertices(cmd) {
			if v.Pos[1] > 110 {
				below++
				assert.LessOrEqual(t, cmd.ClipRect[3], float32(100), "geometry below the outer panel drawn with clip %v", cmd.ClipRect)
				break
			}
		}
	}
	require.NotZero(t, below, "inner panel should extend below the outer one")
}

func TestColorPickerSatVal(t *testing.T) {
	h := newHarness()
	c := gui.Red
	r := gui.Rect{X: 0, Y: 0, W: 200, H: 200}

	h.press(100, 100)
	h.frame(func(ctx *gui.Context) {
		assert.True(t, ctx.ColorPicker("pick", r, &c))
	})

	want := gui.HSV(0, 0.5, 0.5)
	assert.InDelta(t, want.R, c.R, 1e-2)
	assert.InDelta(t, want.G, c.G, 1e-2)
	assert.InDelta(t, want.B, c.B, 1e-2)
	assert.Equal(t, float32(1), c.A)
}

func TestColorPickerHueRing(t *testing.T) {
	h := newHarness()
	c := gui.Red
	r := gui.Rect{X: 0, Y: 0, W: 200, H: 200}

	// Straight below the centre, on the ring: a quarter turn.
	h.press(100, 181)
	h.frame(func(ctx *gui.Context) { ctx.ColorPicker("pick", r, &c) })

	want := gui.HSV(0.25, 1, 1)
	assert.InDelta(t, want.R, c.R, 1e-3)
	assert.InDelta(t, want.G, c.G, 1e-3)
	assert.InDelta(t, want.B, c.B, 1e-3)

	// Dragging outside keeps controlling the hue until release.
	h.moveTo(300, 100)
	h.frame(func(ctx *gui.Context) { ctx.ColorPicker("pick", r, &c) })
	assert.InDelta(t, 1, c.R, 1e-3)
	assert.InDelta(t, 0, c.G, 1e-3)
}

func TestColorPickerKeepsHueWhenDesaturated(t *testing.T) {
	h := newHarness()
	c := gui.HSV(0.6, 1, 1)
	r := gui.Rect{X: 0, Y: 0, W: 200, H: 200}
	pick := func(ctx *gui.Context) { ctx.ColorPicker("pick", r, &c) }

	h.frame(pick)
	c = gui.RGB(0.5, 0.5, 0.5)
	h.frame(pick)

	// Re-saturate from the square's right edge: the old hue returns.
	h.press(148, 60)
	h.frame(pick)
	gotH, gotS, _ := c.ToHSV()
	assert.InDelta(t, 0.6, gotH, 1e-2)
	assert.Greater(t, gotS, float32(0.9))
}
