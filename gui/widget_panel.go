package gui

import "strconv"

const (
	scrollbarSize   float32 = 18
	scrollbarGap    float32 = 5
	contentPadding  float32 = 50 // space kept below the last widget
	wheelScrollStep float32 = 30
)

// panelFrame is an open BeginPanel call. bounds is the panel rect moved
// up by the scroll offset, so it is where content starts.
type panelFrame struct {
	id     ID
	bounds Rect
}

type panelState struct {
	scroll   float32
	grab     float32 // mouse Y relative to the thumb top when the drag began
	dragging bool
}

// ScrollMetrics is the scrollbar geometry of a panel.
type ScrollMetrics struct {
	Content  float32 // height of everything laid out, padding included
	Viewport float32 // visible height
	Track    float32 // scrollbar track height
}

// MaxScroll is the largest valid scroll offset.
func (m ScrollMetrics) MaxScroll() float32 {
	return maxf(0, m.Content-m.Viewport)
}

// Clamp limits scroll to [0, MaxScroll].
func (m ScrollMetrics) Clamp(scroll float32) float32 {
	return clampf(scroll, 0, m.MaxScroll())
}

// ThumbOffset is the distance of the thumb from the top of the track.
func (m ScrollMetrics) ThumbOffset(scroll float32) float32 {
	if m.Content <= 0 {
		return 0
	}
	return m.Track * scroll / m.Content
}

// ThumbSize is the thumb length, proportional to the visible fraction.
func (m ScrollMetrics) ThumbSize() float32 {
	if m.Content <= 0 {
		return m.Track
	}
	return m.Track * minf(1, m.Viewport/m.Content)
}

// DragScroll converts a thumb drag into a clamped scroll offset. mouseY
// is relative to the track and grabY is where the thumb was grabbed,
// relative to its top.
func (m ScrollMetrics) DragScroll(mouseY, grabY float32) float32 {
	if m.Track <= 0 {
		return 0
	}
	return m.Clamp((mouseY - grabY + 1) * m.Content / m.Track)
}

// BeginPanel opens a scrollable region. Widgets placed between BeginPanel
// and EndPanel are laid out inside it, clipped and offset by the scroll.
func (ctx *Context) BeginPanel(id string, bounds Rect) {
	pid := ctx.ID(id)
	ps := ctx.panels.Get(pid, panelState{})

	ctx.styles.Draw(ctx.painter, "panel_hollow", bounds, "", NoIcon)
	_, inner := ctx.styles.Element("panel_hollow", bounds)

	if ctx.mouseScroll != 0 && inner.Contains(ctx.mousePos) && !ctx.inputBlocked {
		ps.scroll -= ctx.mouseScroll * wheelScrollStep
	}

	content := inner
	content.Y -= ps.scroll
	ctx.panelStack = append(ctx.panelStack, panelFrame{id: pid, bounds: content})

	content.W -= scrollbarSize + scrollbarGap
	ctx.layout.PushBounds(content)

	ctx.painter.Save()
	ctx.painter.IntersectScissor(content.X, content.Y+ps.scroll, content.W, content.H)
}

// EndPanel closes the panel opened by the matching BeginPanel and draws
// its scrollbar.
func (ctx *Context) EndPanel() {
	n := len(ctx.panelStack)
	if n == 0 {
		panic("EndPanel without BeginPanel")
	}
	frame := ctx.panelStack[n-1]
	ctx.panelStack = ctx.panelStack[:n-1]
	ps := ctx.panels.Get(frame.id, panelState{})

	used := ctx.layout.Peek().Y - frame.bounds.Y
	track := Rect{
		X: frame.bounds.X + frame.bounds.W - scrollbarSize,
		Y: frame.bounds.Y + ps.scroll,
		W: scrollbarSize,
		H: frame.bounds.H,
	}
	m := ScrollMetrics{Content: used + contentPadding, Viewport: frame.bounds.H, Track: track.H}

	// The scrollbar sits outside the content clip but inside the parent's.
	p := ctx.painter
	p.Restore()
	ctx.styles.Draw(p, "scroll_track", track, "", NoIcon)

	if used > 0 {
		thumb := Rect{
			X: track.X,
			Y: track.Y + m.ThumbOffset(ps.scroll),
			W: track.W,
			H: m.ThumbSize() + 0.5,
		}
		wd := ctx.widget(ctx.ID(strconv.FormatUint(uint64(frame.id), 10)+"_thumb"), track, true, false)
		ctx.styles.Draw(p, wd.State.styleVariant("scroll_thumb"), thumb, "", NoIcon)

		pressed := track.Contains(ctx.mousePos) && ctx.mouseDown && ctx.activeID == wd.ID
		switch {
		case pressed && !ps.dragging:
			ps.grab = wd.RelativeMouse.Y - m.ThumbOffset(ps.scroll)
			if ps.grab < 0 || ps.grab > thumb.H {
				// Pressed on the track: centre the thumb on the mouse.
				ps.grab = thumb.H / 2
			}
			ps.dragging = true
		case !ctx.mouseDown && ps.dragging:
			ps.dragging = false
		}

		if ps.dragging {
			ps.scroll = m.DragScroll(wd.RelativeMouse.Y, ps.grab)
		}
	}
	ps.scroll = m.Clamp(ps.scroll)

	ctx.layout.PopBounds()
}

// PanelScroll returns the scroll offset of the panel named id.
func (ctx *Context) PanelScroll(id string) float32 {
	if ps := ctx.panels.Lookup(ctx.ID(id)); ps != nil {
		return ps.scroll
	}
	return 0
}
