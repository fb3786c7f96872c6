package gui

// Sizes shared by the basic widgets.
const (
	checkboxSize   float32 = 22
	checkboxGap    float32 = 5
	iconButtonSize float32 = 23
)

// Text draws text in bounds using the "text" style, or the style given
// with WithStyleName.
func (ctx *Context) Text(text string, bounds Rect, opts ...Option) {
	o := applyOptions(opts)
	style := GetOpt(o, OptStyle)
	if style == "" {
		style = "text"
	}
	ctx.styles.Draw(ctx.painter, style, bounds, text, GetOpt(o, OptIcon))
}

// Button draws a button and returns true on the frame it is clicked.
//
// The style follows the widget state: "button", "button_hover",
// "button_active" and "button_disabled". WithStyleName replaces the
// "button" prefix.
func (ctx *Context) Button(id, text string, bounds Rect, opts ...Option) bool {
	o := applyOptions(opts)
	wd := ctx.widget(ctx.ID(id), bounds, GetOpt(o, OptInputBlock), GetOpt(o, OptDisabled))

	base := GetOpt(o, OptStyle)
	if base == "" {
		base = "button"
	}
	ctx.styles.Draw(ctx.painter, wd.State.styleVariant(base), bounds, text, GetOpt(o, OptIcon))
	return wd.Clicked
}

// IconButton draws a square-ish button showing a single icon centred in
// the style's padded area.
func (ctx *Context) IconButton(id string, icon Icon, bounds Rect, opts ...Option) bool {
	o := applyOptions(opts)
	wd := ctx.widget(ctx.ID(id), bounds, GetOpt(o, OptInputBlock), GetOpt(o, OptDisabled))

	el := ctx.styles.Draw(ctx.painter, wd.State.styleVariant("icon_button"), bounds, "", NoIcon)
	inner := el.Bounds

	p := ctx.painter
	p.Save()
	p.Translate(bounds.X, bounds.Y)
	p.SetTextAlign(AlignTop | AlignLeft)
	p.SetFontSize(iconButtonSize)
	glyph := icon.String()
	size := p.TextBounds(glyph)
	offX := inner.W/2 - size.X/2
	offY := inner.H/2 - size.Y/2
	p.Text(inner.X+offX, inner.Y+offY+styleTextNudgeY, glyph, el.TextColor())
	p.Restore()

	return wd.Clicked
}

// Checkbox draws a box with a label and flips *checked when clicked.
// It returns true on the frame the value changed.
func (ctx *Context) Checkbox(id, text string, bounds Rect, checked *bool, opts ...Option) bool {
	o := applyOptions(opts)
	wd := ctx.widget(ctx.ID(id), bounds, GetOpt(o, OptInputBlock), GetOpt(o, OptDisabled))

	label := bounds
	label.X += checkboxSize + checkboxGap
	label.W -= checkboxSize + checkboxGap
	ctx.styles.Draw(ctx.painter, "text_middle", label, text, NoIcon)

	box := Rect{
		X: bounds.X,
		Y: bounds.Y + bounds.H/2 - checkboxSize/2,
		W: checkboxSize,
		H: checkboxSize,
	}
	mark := NoIcon
	if *checked {
		mark = IconCheck
	}
	ctx.styles.Draw(ctx.painter, "panel", box, "", mark)

	if wd.Clicked {
		*checked = !*checked
		return true
	}
	return false
}
