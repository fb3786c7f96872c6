package gui

// RadioButton is one choice of a RadioSelector.
type RadioButton struct {
	Icon Icon
	Text string
}

// RadioSelector splits bounds into equal buttons, one per choice, and
// highlights *selected. Clicking a button selects it and returns true.
func (ctx *Context) RadioSelector(id string, bounds Rect, buttons []RadioButton, selected *int, opts ...Option) bool {
	if len(buttons) == 0 {
		return false
	}
	o := applyOptions(opts)
	p := ctx.painter
	ctx.styles.Draw(p, "panel", bounds, "", NoIcon)

	w := bounds.W / float32(len(buttons))
	changed := false
	for i, b := range buttons {
		r := Rect{X: bounds.X + float32(i)*w, Y: bounds.Y, W: w, H: bounds.H}
		wd := ctx.widget(ctx.ID(id+b.Text), r, GetOpt(o, OptInputBlock), GetOpt(o, OptDisabled))

		style := "button_empty"
		switch {
		case wd.State == StateActive:
			style = "button_active"
		case wd.State == StateHovered || i == *selected:
			style = "button_hover"
		case wd.State == StateDisabled:
			style = "button_disabled"
		}
		ctx.styles.Draw(p, style, r, b.Text, b.Icon)

		if wd.Clicked {
			*selected = i
			changed = true
		}
	}
	return changed
}
