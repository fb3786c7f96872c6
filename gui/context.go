package gui

// Context holds all state for UI rendering in a single frame, plus the
// interaction state that must survive between frames.
// This is NOT context.Context - it's a dedicated GUI context type.
//
// A Context is owned by one goroutine. Widget calls mutate it in call
// order, so a claim made by an earlier widget (hover, active, focus) is
// visible to every widget called after it in the same frame.
type Context struct {
	// Drawing output
	DrawList *DrawList

	// Input (read-only during frame)
	Input *InputState

	// Screen
	DisplaySize Vec2

	// Frame info
	FrameCount uint64
	DeltaTime  float32

	// Font texture ID (set by renderer) for the built-in face
	FontTextureID uint32

	// Input capture flags (output from GUI to application)
	WantCaptureMouse    bool // True if the mouse is over a widget or dragging one
	WantCaptureKeyboard bool // True if a text field has focus

	painter   *Painter
	styles    *StyleSheet
	fonts     FontProvider
	clipboard ClipboardProvider
	ids       *idRegistry // nil unless collision checking is on

	// Frame snapshot of the input
	mousePos    Vec2
	prevMouse   Vec2
	mouseDelta  Vec2
	mouseScroll float32
	mouseDown   bool
	mouseButton MouseButton
	keyDown     bool
	key         Key
	typed       []rune
	started     bool

	lastClickedPosition Vec2

	// Focus/Active/Hover tracking
	hoveredID ID // Widget under the mouse
	activeID  ID // Widget that received the current press
	focusedID ID // Widget receiving keyboard input

	// Popups gate every other widget while open
	inputBlocked bool
	openPopup    ID

	layout     *LayoutStack
	panelStack []panelFrame

	// Widget state (persisted between frames)
	widgets   *FrameStore[Widget]
	textEdits *FrameStore[textEditState]
	numbers   *FrameStore[numberEditState]
	pickers   *FrameStore[colorPickerState]
	panels    *FrameStore[panelState]
	popups    *FrameStore[popupState]
	sweepers  []Sweeper
	evictAge  uint64
}

// NewContext creates a new GUI context with default settings.
// Styles and fonts are filled in by GUI.Begin when not configured.
func NewContext() *Context {
	ctx := &Context{
		layout: NewLayoutStack(Rect{}),
		typed:  make([]rune, 0, 8),
	}
	ctx.widgets = NewFrameStore[Widget](&ctx.FrameCount)
	ctx.textEdits = NewFrameStore[textEditState](&ctx.FrameCount)
	ctx.numbers = NewFrameStore[numberEditState](&ctx.FrameCount)
	ctx.pickers = NewFrameStore[colorPickerState](&ctx.FrameCount)
	ctx.panels = NewFrameStore[panelState](&ctx.FrameCount)
	ctx.popups = NewFrameStore[popupState](&ctx.FrameCount)
	ctx.sweepers = []Sweeper{ctx.widgets, ctx.textEdits, ctx.numbers, ctx.pickers, ctx.panels, ctx.popups}
	ctx.painter = NewPainter(nil)
	return ctx
}

// beginFrame snapshots input and resets per-frame state.
func (ctx *Context) beginFrame(input *InputState, displaySize Vec2, deltaTime float32) {
	if input == nil {
		input = NewInputState()
	}
	ctx.Input = input
	ctx.DisplaySize = displaySize
	ctx.DeltaTime = deltaTime
	ctx.FrameCount++

	ctx.mousePos = Vec2{X: input.MouseX, Y: input.MouseY}
	if !ctx.started {
		ctx.prevMouse = ctx.mousePos
		ctx.started = true
	}
	ctx.mouseDelta = ctx.mousePos.Sub(ctx.prevMouse)
	ctx.mouseScroll = input.MouseWheelY

	button, down := input.AnyMouseDown()
	ctx.mouseDown = down
	if down {
		ctx.mouseButton = button
	}

	input.Advance(deltaTime)
	ctx.key = frameKey(input)
	ctx.typed = ctx.typed[:0]
	for _, r := range input.InputChars {
		if isPrintable(r) {
			ctx.typed = append(ctx.typed, r)
		}
	}
	ctx.keyDown = ctx.key != KeyNone || len(ctx.typed) > 0

	if !ctx.mouseDown {
		ctx.hoveredID = InvalidID
	}

	ctx.WantCaptureMouse = false
	ctx.WantCaptureKeyboard = false

	ctx.layout.Reset(Rect{W: displaySize.X, H: displaySize.Y})
	ctx.panelStack = ctx.panelStack[:0]

	ctx.painter.SetFonts(ctx.fonts)
	ctx.painter.Begin(ctx.DrawList)
	ctx.painter.Scissor(0, 0, displaySize.X, displaySize.Y)
	ctx.painter.SetFontSize(13)
}

// endFrame draws popups and releases frame-scoped claims.
func (ctx *Context) endFrame() {
	ctx.renderPopups()

	if !ctx.mouseDown {
		ctx.activeID = InvalidID
	}
	ctx.WantCaptureMouse = ctx.hoveredID != InvalidID || ctx.activeID != InvalidID || ctx.inputBlocked

	ctx.prevMouse = ctx.mousePos
	ctx.mouseDelta = Vec2{}
	ctx.mouseScroll = 0
	ctx.keyDown = false
	ctx.key = KeyNone
	ctx.typed = ctx.typed[:0]
	ctx.layout.Clear()

	if len(ctx.panelStack) != 0 {
		guiLogger.Warn("panel left open at end of frame", "open", len(ctx.panelStack))
		ctx.panelStack = ctx.panelStack[:0]
	}

	if ctx.evictAge > 0 {
		for _, s := range ctx.sweepers {
			s.Sweep(ctx.FrameCount, ctx.evictAge)
		}
	}
}

// frameKey picks the key event of this frame. Modifier keys only count
// on their initial press so holding Ctrl does not keep re-arming it.
func frameKey(input *InputState) Key {
	for k := KeyNone + 1; k < KeyCount; k++ {
		if input.KeyPressed(k) {
			return k
		}
	}
	for k := KeyNone + 1; k < KeyCount; k++ {
		if k == KeyLeftCtrl || k == KeyRightCtrl {
			continue
		}
		if input.KeyRepeated(k) {
			return k
		}
	}
	return KeyNone
}

func isPrintable(r rune) bool {
	return r >= 0x20 && r != 0x7f && (r < 0x80 || r >= 0xa0)
}

// Painter returns the vector painter drawing into this frame's DrawList.
func (ctx *Context) Painter() *Painter { return ctx.painter }

// StyleSheet returns the sheet widgets are drawn with.
func (ctx *Context) StyleSheet() *StyleSheet { return ctx.styles }

// Fonts returns the active font provider.
func (ctx *Context) Fonts() FontProvider { return ctx.fonts }

// MousePosition returns the mouse position for this frame.
func (ctx *Context) MousePosition() Vec2 { return ctx.mousePos }

// MouseDelta returns how far the mouse moved since the last frame.
func (ctx *Context) MouseDelta() Vec2 { return ctx.mouseDelta }

// MouseScroll returns the vertical wheel movement of this frame.
func (ctx *Context) MouseScroll() float32 { return ctx.mouseScroll }

// MouseDown reports whether any mouse button is held.
func (ctx *Context) MouseDown() bool { return ctx.mouseDown }

// MouseButton returns the most recently pressed button.
func (ctx *Context) MouseButton() MouseButton { return ctx.mouseButton }

// Key returns this frame's key event, or KeyNone.
func (ctx *Context) Key() Key { return ctx.key }

// LastClickedPosition is the bottom-left corner of the last clicked
// widget. Popups open there.
func (ctx *Context) LastClickedPosition() Vec2 { return ctx.lastClickedPosition }

// HoveredID returns the widget under the mouse, or InvalidID.
func (ctx *Context) HoveredID() ID { return ctx.hoveredID }

// ActiveID returns the widget that received the current press, or InvalidID.
func (ctx *Context) ActiveID() ID { return ctx.activeID }

// FocusedID returns the widget with keyboard focus, or InvalidID.
func (ctx *Context) FocusedID() ID { return ctx.focusedID }

// SetFocused gives keyboard focus to id.
func (ctx *Context) SetFocused(id ID) { ctx.focusedID = id }

// IsFocused returns true if the widget has keyboard focus.
func (ctx *Context) IsFocused(id ID) bool { return ctx.focusedID == id }

// ClearFocus removes keyboard focus.
func (ctx *Context) ClearFocus() { ctx.focusedID = InvalidID }

// InputBlocked reports whether an open popup is gating other widgets.
func (ctx *Context) InputBlocked() bool { return ctx.inputBlocked }

// StateCounts returns the number of stored entries per state kind, for
// debugging and tests.
func (ctx *Context) StateCounts() map[string]int {
	return map[string]int{
		"widgets":   ctx.widgets.Len(),
		"textEdits": ctx.textEdits.Len(),
		"numbers":   ctx.numbers.Len(),
		"pickers":   ctx.pickers.Len(),
		"panels":    ctx.panels.Len(),
		"popups":    ctx.popups.Len(),
	}
}
