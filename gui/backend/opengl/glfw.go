package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/titlemaker/gui"
)

// WindowInput collects a GLFW window's events into a gui.InputState.
// Buttons, keys, text and the wheel arrive through callbacks during
// glfw.PollEvents; Update samples the cursor and modifiers.
type WindowInput struct {
	window *glfw.Window
	state  *gui.InputState
}

// NewWindowInput installs its callbacks on window, replacing any set
// before.
func NewWindowInput(window *glfw.Window) *WindowInput {
	in := &WindowInput{window: window, state: gui.NewInputState()}

	window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if k := guiKey(key); k != gui.KeyNone && action != glfw.Repeat {
			in.state.SetKey(k, action == glfw.Press)
		}
	})
	window.SetCharCallback(func(_ *glfw.Window, ch rune) {
		in.state.AddInputChar(ch)
	})
	window.SetMouseButtonCallback(func(_ *glfw.Window, b glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if b <= glfw.MouseButtonMiddle {
			in.state.SetMouseButton(mouseButtons[b], action == glfw.Press)
		}
	})
	window.SetScrollCallback(func(_ *glfw.Window, dx, dy float64) {
		in.state.SetMouseWheel(float32(dx), float32(dy))
	})
	window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		in.state.SetMousePos(float32(x), float32(y))
	})
	return in
}

// Update returns the state for the frame about to be built. Call it after
// glfw.PollEvents.
func (in *WindowInput) Update() *gui.InputState {
	x, y := in.window.GetCursorPos()
	in.state.SetMousePos(float32(x), float32(y))

	held := func(left, right glfw.Key) bool {
		return in.window.GetKey(left) == glfw.Press || in.window.GetKey(right) == glfw.Press
	}
	in.state.ModCtrl = held(glfw.KeyLeftControl, glfw.KeyRightControl)
	in.state.ModShift = held(glfw.KeyLeftShift, glfw.KeyRightShift)
	in.state.ModAlt = held(glfw.KeyLeftAlt, glfw.KeyRightAlt)
	in.state.ModSuper = held(glfw.KeyLeftSuper, glfw.KeyRightSuper)
	return in.state
}

// EndFrame drops the events the finished frame has seen. Call it after
// gui.End.
func (in *WindowInput) EndFrame() { in.state.Reset() }

// GLFW's left, right and middle buttons are 0, 1 and 2.
var mouseButtons = [...]gui.MouseButton{gui.MouseButtonLeft, gui.MouseButtonRight, gui.MouseButtonMiddle}

var namedKeys = map[glfw.Key]gui.Key{
	glfw.KeyTab:          gui.KeyTab,
	glfw.KeyLeft:         gui.KeyLeft,
	glfw.KeyRight:        gui.KeyRight,
	glfw.KeyUp:           gui.KeyUp,
	glfw.KeyDown:         gui.KeyDown,
	glfw.KeyPageUp:       gui.KeyPageUp,
	glfw.KeyPageDown:     gui.KeyPageDown,
	glfw.KeyHome:         gui.KeyHome,
	glfw.KeyEnd:          gui.KeyEnd,
	glfw.KeyInsert:       gui.KeyInsert,
	glfw.KeyDelete:       gui.KeyDelete,
	glfw.KeyBackspace:    gui.KeyBackspace,
	glfw.KeySpace:        gui.KeySpace,
	glfw.KeyEnter:        gui.KeyEnter,
	glfw.KeyKPEnter:      gui.KeyEnter,
	glfw.KeyEscape:       gui.KeyEscape,
	glfw.KeyLeftControl:  gui.KeyLeftCtrl,
	glfw.KeyRightControl: gui.KeyRightCtrl,
	glfw.KeyA:            gui.KeyA,
	glfw.KeyC:            gui.KeyC,
	glfw.KeyD:            gui.KeyD,
	glfw.KeyO:            gui.KeyO,
	glfw.KeyS:            gui.KeyS,
	glfw.KeyT:            gui.KeyT,
	glfw.KeyV:            gui.KeyV,
	glfw.KeyX:            gui.KeyX,
	glfw.KeyY:            gui.KeyY,
	glfw.KeyZ:            gui.KeyZ,
}

func guiKey(k glfw.Key) gui.Key {
	if k >= glfw.KeyF1 && k <= glfw.KeyF12 {
		return gui.KeyF1 + gui.Key(k-glfw.KeyF1)
	}
	return namedKeys[k]
}

// Clipboard is the system clipboard as seen by a GLFW window.
type Clipboard struct {
	window *glfw.Window
}

func NewClipboard(window *glfw.Window) *Clipboard { return &Clipboard{window: window} }

func (c *Clipboard) GetText() string     { return c.window.GetClipboardString() }
func (c *Clipboard) SetText(text string) { c.window.SetClipboardString(text) }
