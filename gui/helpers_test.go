package gui_test

import (
	"github.com/go-theft-auto/titlemaker/gui"
)

// mockRenderer is a test renderer that doesn't render anything. It keeps
// a copy of the last finalized draw list.
type mockRenderer struct {
	renderCalls int
	lastCmds    int
	cmds        []gui.DrawCmd
	vtx         []gui.Vertex
	idx         []uint16
}

func (m *mockRenderer) Render(dl *gui.DrawList) error {
	m.renderCalls++
	dl.Finalize()
	m.lastCmds = len(dl.CmdBuffer)
	m.cmds = append(m.cmds[:0], dl.CmdBuffer...)
	m.vtx = append(m.vtx[:0], dl.VtxBuffer...)
	m.idx = append(m.idx[:0], dl.IdxBuffer...)
	return nil
}

// cmdVertices returns the vertices referenced by cmd's indices.
func (m *mockRenderer) cmdVertices(cmd gui.DrawCmd) []gui.Vertex {
	out := make([]gui.Vertex, 0, cmd.ElemCount)
	for _, i := range m.idx[cmd.IndexOffset : cmd.IndexOffset+cmd.ElemCount] {
		out = append(out, m.vtx[cmd.VertexOffset+uint32(i)])
	}
	return out
}

func (m *mockRenderer) FontTextureID() uint32 {
	return 1
}

func (m *mockRenderer) Resize(width, height int) {}

// memClipboard is a ClipboardProvider holding a string.
type memClipboard struct {
	text string
}

func (c *memClipboard) GetText() string     { return c.text }
func (c *memClipboard) SetText(text string) { c.text = text }

var testDisplay = gui.Vec2{X: 800, Y: 600}

// harness drives a GUI one frame at a time with a shared InputState.
type harness struct {
	ui       *gui.GUI
	renderer *mockRenderer
	input    *gui.InputState
}

func newHarness(opts ...gui.GUIOption) *harness {
	r := &mockRenderer{}
	return &harness{
		ui:       gui.New(r, opts...),
		renderer: r,
		input:    gui.NewInputState(),
	}
}

// frame runs one frame and clears the one-shot input afterwards.
func (h *harness) frame(fn func(ctx *gui.Context)) {
	ctx := h.ui.Begin(h.input, testDisplay, 1.0/60)
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
