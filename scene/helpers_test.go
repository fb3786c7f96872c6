package scene_test

import (
	"github.com/go-theft-auto/titlemaker/gui"
)

type mockRenderer struct{}

func (mockRenderer) Render(dl *gui.DrawList) error { return nil }
func (mockRenderer) FontTextureID() uint32         { return 1 }
func (mockRenderer) Resize(width, height int)      {}

var testDisplay = gui.Vec2{X: 1280, Y: 720}

// harness drives a GUI one frame at a time.
type harness struct {
	ui    *gui.GUI
	input *gui.InputState
}

func newHarness() *harness {
	return &harness{ui: gui.New(mockRenderer{}), input: gui.NewInputState()}
}

func (h *harness) frame(fn func(ctx *gui.Context)) {
	ctx := h.ui.Begin(h.input, testDisplay, 1.0/30)
	fn(ctx)
	if err := h.ui.End(); err != nil {
		panic(err)
	}
	h.input.Reset()
}

func (h *harness) press(x, y float32) {
	h.input.SetMousePos(x, y)
	h.input.SetMouseButton(gui.MouseButtonLeft, true)
}

func (h *harness) release() {
	h.input.SetMouseButton(gui.MouseButtonLeft, false)
}

func (h *harness) moveTo(x, y float32) {
	h.input.SetMousePos(x, y)
}
