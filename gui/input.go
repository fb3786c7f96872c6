package gui

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

func (b MouseButton) valid() bool { return b >= 0 && b < MouseButtonCount }

// Key represents a keyboard key the editor reacts to.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyBackspace
	KeySpace
	KeyEnter
	KeyEscape
	KeyLeftCtrl
	KeyRightCtrl
	KeyA
	KeyC
	KeyD
	KeyO
	KeyS
	KeyT
	KeyV
	KeyX
	KeyY
	KeyZ
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyCount
)

func (k Key) valid() bool { return k >= 0 && k < KeyCount }

var keyNames = [KeyCount]string{
	KeyNone: "--", KeyTab: "Tab",
	KeyLeft: "Left", KeyRight: "Right", KeyUp: "Up", KeyDown: "Down",
	KeyPageUp: "PgUp", KeyPageDown: "PgDn", KeyHome: "Home", KeyEnd: "End",
	KeyInsert: "Ins", KeyDelete: "Del", KeyBackspace: "Backspace",
	KeySpace: "Space", KeyEnter: "Enter", KeyEscape: "Esc",
	KeyLeftCtrl: "LCtrl", KeyRightCtrl: "RCtrl",
	KeyA: "A", KeyC: "C", KeyD: "D", KeyO: "O", KeyS: "S", KeyT: "T",
	KeyV: "V", KeyX: "X", KeyY: "Y", KeyZ: "Z",
	KeyF1: "F1", KeyF2: "F2", KeyF3: "F3", KeyF4: "F4", KeyF5: "F5", KeyF6: "F6",
	KeyF7: "F7", KeyF8: "F8", KeyF9: "F9", KeyF10: "F10", KeyF11: "F11", KeyF12: "F12",
}

// KeyName returns the name hotkeys are written with, or "?".
func KeyName(k Key) string {
	if !k.valid() {
		return "?"
	}
	return keyNames[k]
}

// A held key fires again after KeyRepeatDelay seconds, then every
// KeyRepeatInterval.
const (
	KeyRepeatDelay    float32 = 0.4
	KeyRepeatInterval float32 = 0.03
)

// edge is one button or key: whether it is held, the transitions since
// the last Reset and how long it has been held.
type edge struct {
	down, pressed, released bool
	held                    float32
}

func (e *edge) set(down bool) {
	switch {
	case down && !e.down:
		e.pressed, e.held = true, 0
	case !down && e.down:
		e.released, e.held = true, 0
	}
	e.down = down
}

// repeated reports whether the edge fires this frame, dt being the time
// the last Advance added.
func (e *edge) repeated(dt float32) bool {
	if e.pressed {
		return true
	}
	if !e.down || e.held < KeyRepeatDelay {
		return false
	}
	if dt <= 0 {
		dt = 1.0 / 60
	}
	since := e.held - KeyRepeatDelay
	return int(since/KeyRepeatInterval) > int((since-dt)/KeyRepeatInterval)
}

// InputState is the raw input the backend collects between frames. Press
// and release edges, typed characters and the wheel last until Reset.
type InputState struct {
	MouseX, MouseY           float32
	MouseWheelX, MouseWheelY float32

	// InputChars holds the characters typed since the last Reset.
	InputChars []rune

	ModCtrl, ModShift, ModAlt, ModSuper bool

	mouse [MouseButtonCount]edge
	keys  [KeyCount]edge
	dt    float32
}

// NewInputState returns an empty InputState.
func NewInputState() *InputState {
	return &InputState{InputChars: make([]rune, 0, 16)}
}

// Reset clears the one-frame events. Held buttons and keys stay held.
func (s *InputState) Reset() {
	for i := range s.mouse {
		s.mouse[i].pressed, s.mouse[i].released = false, false
	}
	for i := range s.keys {
		s.keys[i].pressed, s.keys[i].released = false, false
	}
	s.InputChars = s.InputChars[:0]
	s.MouseWheelX, s.MouseWheelY = 0, 0
}

// Advance adds dt seconds to the hold time of every held key. The Context
// calls it once per frame.
func (s *InputState) Advance(dt float32) {
	s.dt = dt
	for i := range s.keys {
		if s.keys[i].down {
			s.keys[i].held += dt
		}
	}
}

func (s *InputState) SetMousePos(x, y float32) {
	s.MouseX, s.MouseY = x, y
}

func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	if button.valid() {
		s.mouse[button].set(down)
	}
}

func (s *InputState) SetKey(key Key, down bool) {
	if key.valid() {
		s.keys[key].set(down)
	}
}

func (s *InputState) SetMouseWheel(x, y float32) {
	s.MouseWheelX, s.MouseWheelY = x, y
}

func (s *InputState) AddInputChar(ch rune) {
	s.InputChars = append(s.InputChars, ch)
}

// MouseDown reports whether button is held.
func (s *InputState) MouseDown(button MouseButton) bool {
	return button.valid() && s.mouse[button].down
}

// MouseClicked reports whether button went down since the last Reset.
func (s *InputState) MouseClicked(button MouseButton) bool {
	return button.valid() && s.mouse[button].pressed
}

// MouseReleased reports whether button went up since the last Reset.
func (s *InputState) MouseReleased(button MouseButton) bool {
	return button.valid() && s.mouse[button].released
}

func (s *InputState) KeyDown(key Key) bool {
	return key.valid() && s.keys[key].down
}

func (s *InputState) KeyPressed(key Key) bool {
	return key.valid() && s.keys[key].pressed
}

func (s *InputState) KeyReleased(key Key) bool {
	return key.valid() && s.keys[key].released
}

// KeyRepeated reports whether key fires this frame: on the press, then
// at the repeat rate while it is held.
func (s *InputState) KeyRepeated(key Key) bool {
	return key.valid() && s.keys[key].repeated(s.dt)
}

// AnyMouseDown returns the button driving widget interaction: one pressed
// this frame if any, otherwise any held button, left first.
func (s *InputState) AnyMouseDown() (MouseButton, bool) {
	for b := range MouseButtonCount {
		if s.mouse[b].pressed {
			return b, true
		}
	}
	for b := range MouseButtonCount {
		if s.mouse[b].down {
			return b, true
		}
	}
	return MouseButtonLeft, false
}

// HasInputChars reports whether characters were typed this frame.
func (s *InputState) HasInputChars() bool {
	return len(s.InputChars) > 0
}

// ConsumeInputChars drops this frame's typed characters, so a hotkey's
// letter is not also typed into a focused field.
func (s *InputState) ConsumeInputChars() {
	s.InputChars = s.InputChars[:0]
}
