package gui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/titlemaker/gui"
)

var editRect = gui.Rect{X: 0, Y: 0, W: 200, H: 24}

type editStep struct {
	key   gui.Key
	chars string
}

// focusedEdit returns a harness whose field holding text already has focus.
func focusedEdit(text *string) (*harness, func(ctx *gui.Context)) {
	h := newHarness()
	edit := func(ctx *gui.Context) { ctx.TextEdit("field", editRect, text) }
	h.press(50, 12)
	h.frame(edit)
	h.release()
	h.frame(edit)
	return h, edit
}

func (h *harness) step(s editStep, fn func(ctx *gui.Context)) {
	if s.key != gui.KeyNone {
		h.input.SetKey(s.key, true)
	}
	for _, r := range s.chars {
		h.input.AddInputChar(r)
	}
	h.frame(fn)
	if s.key != gui.KeyNone {
		h.input.SetKey(s.key, false)
	}
}

func TestTextEditKeys(t *testing.T) {
	end := editStep{key: gui.KeyEnd}
	tests := []struct {
		name  string
		steps []editStep
		want  string
	}{
		{"home inserts at front", []editStep{end, {key: gui.KeyHome}, {chars: "X"}}, "Xhello"},
		{"delete after left", []editStep{end, {key: gui.KeyLeft}, {key: gui.KeyDelete}}, "hell"},
		{"backspace mid word", []editStep{end, {key: gui.KeyLeft}, {key: gui.KeyLeft}, {key: gui.KeyBackspace}}, "helo"},
		{"right stops at end", []editStep{end, {key: gui.KeyRight}, {chars: "!"}}, "hello!"},
		{"right after home", []editStep{{key: gui.KeyHome}, {key: gui.KeyRight}, {chars: "-"}}, "h-ello"},
		{"delete at end", []editStep{end, {key: gui.KeyDelete}}, "hello"},
		{"backspace at start", []editStep{{key: gui.KeyHome}, {key: gui.KeyBackspace}}, "hello"},
		{"ctrl swallows next key", []editStep{end, {key: gui.KeyLeftCtrl}, {key: gui.KeyZ, chars: "z"}, {chars: "a"}}, "helloa"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := "hello"
			h, edit := focusedEdit(&text)
			for _, s := range tt.steps {
				h.step(s, edit)
			}
			assert.Equal(t, tt.want, text)
		})
	}
}

func TestTextEditClickPlacesCursor(t *testing.T) {
	text := "hello"
	h, edit := focusedEdit(&text)

	var glyphs []gui.GlyphPosition
	var inner gui.Rect
	h.frame(func(ctx *gui.Context) {
		p := ctx.Painter()
		p.Save()
		_, inner = ctx.StyleSheet().FontSetup(p, "textedit_focus", editRect)
		glyphs = p.TextGlyphPositions(0, text+" ")
		p.Restore()
		edit(ctx)
	})
	require.Len(t, glyphs, 6)

	// Just right of the boundary between "he" and "llo".
	x := inner.X + glyphs[2].X + 0.5
	h.press(x, 12)
	h.frame(edit)
	h.release()
	h.frame(edit)

	h.step(editStep{chars: "X"}, edit)
	assert.Equal(t, "heXllo", text)
}

func TestTextEditClickPastEndPlacesCursorAtEnd(t *testing.T) {
	text := "hi"
	h, edit := focusedEdit(&text)

	h.step(editStep{key: gui.KeyHome}, edit)
	h.press(190, 12)
	h.frame(edit)
	h.release()
	h.frame(edit)

	h.step(editStep{chars: "!"}, edit)
	assert.Equal(t, "hi!", text)
}
