package gui

// WidgetState is the interaction state a widget is drawn in.
type WidgetState uint8

const (
	StateNormal WidgetState = iota
	StateHovered
	StateActive
	StateFocused
	StateDisabled
)

func (s WidgetState) String() string {
	switch s {
	case StateHovered:
		return "hovered"
	case StateActive:
		return "active"
	case StateFocused:
		return "focused"
	case StateDisabled:
		return "disabled"
	}
	return "normal"
}

// styleVariant returns base with the suffix matching the state, so a
// button in StateHovered draws with "button_hover". Focused widgets
// draw like normal ones.
func (s WidgetState) styleVariant(base string) string {
	switch s {
	case StateHovered:
		return base + "_hover"
	case StateActive:
		return base + "_active"
	case StateDisabled:
		return base + "_disabled"
	}
	return base
}

// Widget is the interaction result for one widget call in one frame.
type Widget struct {
	ID ID

	// RelativeMouse is the mouse position relative to the widget's
	// top-left corner, clamped to its size.
	RelativeMouse Vec2
	// RelativeDelta is the frame's mouse movement while hovered.
	RelativeDelta Vec2
	Position      Vec2

	// Clicked is true on the frame the mouse was released over the
	// widget that received the press.
	Clicked bool
	// KeyPressed is true when the widget has focus and a key or a
	// character arrived this frame.
	KeyPressed bool

	State WidgetState
}

// Widget runs the interaction state machine for the widget named id
// occupying bounds. Every higher level widget is built on it.
//
// At most one widget becomes active per press: the first one in call
// order whose bounds contain the mouse when the button goes down. It
// stays active until the button is released, and reports Clicked on
// the release frame if the mouse is still over it.
func (ctx *Context) Widget(id string, bounds Rect, opts ...Option) Widget {
	o := applyOptions(opts)
	return ctx.widget(ctx.ID(id), bounds, GetOpt(o, OptInputBlock), GetOpt(o, OptDisabled))
}

func (ctx *Context) widget(wid ID, bounds Rect, checkBlocked, disabled bool) Widget {
	w := ctx.widgets.Get(wid, Widget{})
	mouse := ctx.mousePos

	*w = Widget{
		ID:       wid,
		Position: bounds.Location(),
		RelativeMouse: Vec2{
			X: clampf(mouse.X-bounds.X, 0, maxf(bounds.W, 0)),
			Y: clampf(mouse.Y-bounds.Y, 0, maxf(bounds.H, 0)),
		},
		State: StateNormal,
	}
	if wid == ctx.focusedID {
		w.State = StateFocused
	}
	if disabled {
		w.State = StateDisabled
		return *w
	}

	blocked := ctx.inputBlocked && checkBlocked

	if bounds.Contains(mouse) && ctx.insideParentPanel() && !blocked {
		ctx.hoveredID = wid
		w.RelativeDelta = ctx.mouseDelta
		w.State = StateHovered

		if ctx.mouseDown && ctx.activeID == InvalidID {
			ctx.focusedID = wid
			ctx.activeID = wid
			w.State = StateActive
			if guiVerbose() {
				guiLogger.Debug("widget activated", "id", uint64(wid), "bounds", bounds, "button", ctx.mouseButton)
			}
		}
	}

	if wid == ctx.focusedID && ctx.keyDown && !blocked {
		w.KeyPressed = true
	}

	if ctx.isMouseDownWidget(wid) && !blocked {
		w.State = StateActive
		if !ctx.mouseDown {
			ctx.lastClickedPosition = Vec2{X: bounds.X, Y: bounds.Y + bounds.H}
			w.Clicked = true
		}
	}

	return *w
}

// isMouseDownWidget reports whether wid received the current press and
// is still under the mouse.
func (ctx *Context) isMouseDownWidget(wid ID) bool {
	return ctx.hoveredID == wid && ctx.activeID == wid
}

// insideParentPanel reports whether the mouse is over the visible area of
// the innermost open panel. Widgets scrolled out of view stay inert.
func (ctx *Context) insideParentPanel() bool {
	n := len(ctx.panelStack)
	if n == 0 {
		return true
	}
	frame := ctx.panelStack[n-1]
	view := frame.bounds
	if p := ctx.panels.Lookup(frame.id); p != nil {
		view.Y += p.scroll
	}
	return view.Contains(ctx.mousePos)
}

// lastWidget returns the state recorded by the most recent call for id
// without running the state machine.
func (ctx *Context) lastWidget(id ID) Widget {
	return *ctx.widgets.Get(id, Widget{ID: id})
}
