package gui

const (
	caretBlinkStep float32 = 0.07 // added every frame; the caret toggles at 1
	caretGlyphPad  float32 = 1.5
)

// textEditState is the per-field editing state kept between frames.
type textEditState struct {
	glyphs     []GlyphPosition // positions of text+" " from the last draw
	cursor     int             // rune index
	cursorShow bool
	ctrl       bool // Ctrl was pressed; the next key is a shortcut
	blinkTime  float32
	viewOffset float32
}

// TextEdit draws a single-line text field bound to *text and returns true
// on frames where the text changed.
//
// The field takes focus when pressed. While focused it accepts typed
// characters, Left/Right/Home/End, Backspace and Delete; Ctrl followed by
// V pastes from the clipboard.
func (ctx *Context) TextEdit(id string, bounds Rect, text *string, opts ...Option) bool {
	o := applyOptions(opts)
	wd := ctx.widget(ctx.ID(id), bounds, GetOpt(o, OptInputBlock), GetOpt(o, OptDisabled))
	focused := ctx.focusedID == wd.ID

	style := "textedit"
	if focused {
		style = "textedit_focus"
	}
	ctx.styles.Draw(ctx.painter, style, bounds, "", NoIcon)
	if *text == "" && !focused {
		ctx.styles.Draw(ctx.painter, "placeholder", bounds, GetOpt(o, OptPlaceholder), NoIcon)
	}

	p := ctx.painter
	p.Save()
	defer p.Restore()
	el, inner := ctx.styles.FontSetup(p, style, bounds)

	edit := ctx.textEdits.Get(wd.ID, textEditState{})
	ctx.drawEditText(edit, *text, inner, el.TextColor())

	if !focused {
		return false
	}
	ctx.WantCaptureKeyboard = true
	ctx.drawCursor(edit, inner, el.TextColor())
	return ctx.lineEditor(wd, inner, edit, text, inner.X-bounds.X)
}

// drawEditText draws text scrolled by the view offset and records the
// glyph positions of text plus a trailing space, so the caret can sit
// after the last rune.
func (ctx *Context) drawEditText(edit *textEditState, text string, bounds Rect, color Color) {
	p := ctx.painter
	p.Save()
	defer p.Restore()

	p.Translate(bounds.X, bounds.Y)
	p.IntersectScissor(0, 0, bounds.W, bounds.H)
	p.SetTextAlign(AlignLeft | AlignMiddle)
	edit.glyphs = p.TextGlyphPositions(0, text+" ")
	p.Text(-edit.viewOffset, bounds.H/2+styleTextNudgeY, text, color)
}

func (ctx *Context) drawCursor(edit *textEditState, bounds Rect, color Color) {
	edit.blinkTime += caretBlinkStep
	if edit.blinkTime >= 1 {
		edit.blinkTime = 0
		edit.cursorShow = !edit.cursorShow
	}
	if !edit.cursorShow || len(edit.glyphs) == 0 {
		return
	}

	i := min(edit.cursor, len(edit.glyphs)-1)
	x := edit.glyphs[i].X

	p := ctx.painter
	p.Save()
	p.Translate(bounds.X, bounds.Y)
	p.SetTextAlign(AlignCenter | AlignMiddle)
	p.Text(x-edit.viewOffset, bounds.H/2, "|", color)
	p.Restore()
}

// updateCursor scrolls the view so the glyph before the caret is visible.
func (edit *textEditState) updateCursor(bounds Rect) {
	if edit.cursor <= 0 || len(edit.glyphs) == 0 {
		edit.viewOffset = 0
		return
	}
	g := edit.glyphs[min(edit.cursor-1, len(edit.glyphs)-1)]
	right := g.X + g.Width() + caretGlyphPad

	switch next := right - edit.viewOffset; {
	case next > bounds.W:
		edit.viewOffset = right - bounds.W
	case next < 0:
		edit.viewOffset = maxf(0, right-bounds.W)
	}
}

func (edit *textEditState) showCaret() {
	edit.blinkTime = 0
	edit.cursorShow = true
}

// lineEditor applies this frame's keyboard or click input to text.
// xOffset is the distance from the widget's left edge to where the text
// starts, used to map clicks onto glyphs.
func (ctx *Context) lineEditor(wd Widget, bounds Rect, edit *textEditState, text *string, xOffset float32) bool {
	runes := []rune(*text)
	edit.cursor = max(0, min(edit.cursor, len(runes)))
	changed := false

	switch {
	case wd.KeyPressed:
		if edit.ctrl {
			edit.ctrl = false
			if ctx.key == KeyV {
				if paste := printableRunes(ctx.clipboardText()); len(paste) > 0 {
					runes = insertRunes(runes, edit.cursor, paste)
					edit.cursor += len(paste)
					changed = true
				}
			}
		} else {
			runes, changed = edit.applyKey(ctx, runes)
		}
		edit.showCaret()
		edit.updateCursor(bounds)

	case wd.Clicked && ctx.mouseButton == MouseButtonLeft:
		edit.cursor = max(0, len(edit.glyphs)-1)
		// Each glyph owns the span centred on its left edge, so a click
		// lands on the nearest boundary.
		for i, g := range edit.glyphs {
			left := xOffset + g.X - g.Width()/2 - edit.viewOffset
			if mx := wd.RelativeMouse.X; mx >= left && mx <= left+g.Width() {
				edit.cursor = i
				break
			}
		}
		edit.cursor = min(edit.cursor, len(runes))
		edit.showCaret()
	}

	if changed {
		*text = string(runes)
	}
	return changed
}

// applyKey inserts typed runes and handles the navigation and delete keys.
func (edit *textEditState) applyKey(ctx *Context, runes []rune) ([]rune, bool) {
	changed := false
	if len(ctx.typed) > 0 {
		runes = insertRunes(runes, edit.cursor, ctx.typed)
		edit.cursor += len(ctx.typed)
		changed = true
	}

	switch ctx.key {
	case KeyRight:
		edit.cursor = min(len(runes), edit.cursor+1)
	case KeyLeft:
		edit.cursor = max(0, edit.cursor-1)
	case KeyBackspace:
		if edit.cursor > 0 {
			edit.cursor--
			runes = append(runes[:edit.cursor], runes[edit.cursor+1:]...)
			changed = true
		}
	case KeyDelete:
		if edit.cursor < len(runes) {
			runes = append(runes[:edit.cursor], runes[edit.cursor+1:]...)
			changed = true
		}
	case KeyHome:
		edit.cursor = 0
	case KeyEnd:
		edit.cursor = len(runes)
	case KeyLeftCtrl, KeyRightCtrl:
		edit.ctrl = true
	}
	return runes, changed
}

func insertRunes(dst []rune, at int, src []rune) []rune {
	out := make([]rune, 0, len(dst)+len(src))
	out = append(out, dst[:at]...)
	out = append(out, src...)
	return append(out, dst[at:]...)
}

func printableRunes(s string) []rune {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if isPrintable(r) {
			out = append(out, r)
		}
	}
	return out
}
