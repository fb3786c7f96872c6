package gui

const (
	popupItemHeight float32 = 24
	popupPaddingX   float32 = 10
	popupPaddingY   float32 = 6
)

// MenuItem is an entry of a popup menu or a tab bar.
type MenuItem struct {
	Icon Icon
	Text string
}

// popupState records what Popup laid out this frame so endFrame can draw
// it above everything else.
type popupState struct {
	items  []MenuItem
	ids    []ID
	bounds Rect
}

// ShowPopup opens the popup named id at the last clicked position. While
// it is open every other widget ignores input.
func (ctx *Context) ShowPopup(id string) {
	ctx.openPopup = ctx.ID(id)
	ctx.inputBlocked = true
}

// ClosePopup closes any open popup.
func (ctx *Context) ClosePopup() {
	ctx.openPopup = InvalidID
	ctx.inputBlocked = false
}

// PopupOpen reports whether the popup named id is showing.
func (ctx *Context) PopupOpen(id string) bool {
	return ctx.openPopup != InvalidID && ctx.openPopup == ctx.ID(id)
}

// Popup handles the menu named id. Call it every frame; it does nothing
// unless ShowPopup opened it. Choosing an item stores its index in
// *selected, closes the popup and returns true. Pressing outside the menu
// closes it without a choice.
//
// The menu itself is drawn at the end of the frame so it covers widgets
// called after it.
func (ctx *Context) Popup(id string, items []MenuItem, selected *int) bool {
	pid := ctx.ID(id)
	if ctx.openPopup != pid {
		return false
	}

	ps := ctx.popups.Get(pid, popupState{})
	ps.items = append(ps.items[:0], items...)
	ps.ids = ps.ids[:0]

	p := ctx.painter
	p.Save()
	ctx.styles.FontSetup(p, "menu_item", Rect{})
	width := float32(0)
	hasIcon := false
	for _, it := range items {
		width = maxf(width, p.TextBounds(it.Text).X)
		hasIcon = hasIcon || it.Icon != NoIcon
	}
	p.Restore()
	if hasIcon {
		width += IconSpaceWidth
	}

	pos := ctx.lastClickedPosition
	ps.bounds = Rect{
		X: pos.X,
		Y: pos.Y,
		W: width + 2*popupPaddingX,
		H: float32(len(items))*popupItemHeight + 2*popupPaddingY,
	}

	if ctx.mouseDown && !ps.bounds.Contains(ctx.mousePos) {
		ctx.ClosePopup()
		return false
	}

	for i, it := range items {
		r := ctx.popupItemRect(ps.bounds, i)
		wid := ctx.ID(it.Text + id)
		ps.ids = append(ps.ids, wid)
		if wd := ctx.widget(wid, r, false, false); wd.Clicked {
			*selected = i
			ctx.ClosePopup()
			return true
		}
	}
	return false
}

func (ctx *Context) popupItemRect(bounds Rect, i int) Rect {
	return Rect{
		X: bounds.X + popupPaddingX/2,
		Y: bounds.Y + popupPaddingY + float32(i)*popupItemHeight,
		W: bounds.W - popupPaddingX,
		H: popupItemHeight,
	}
}

// renderPopups draws the open popup using the widget states its items
// recorded during the frame.
func (ctx *Context) renderPopups() {
	if ctx.openPopup == InvalidID {
		return
	}
	ps := ctx.popups.Lookup(ctx.openPopup)
	if ps == nil || len(ps.ids) != len(ps.items) {
		return
	}

	p := ctx.painter
	p.Save()
	defer p.Restore()
	p.ResetScissor()

	ctx.styles.Draw(p, "panel", ps.bounds, "", NoIcon)
	for i, it := range ps.items {
		wd := ctx.lastWidget(ps.ids[i])
		ctx.styles.Draw(p, wd.State.styleVariant("menu_item"), ctx.popupItemRect(ps.bounds, i), it.Text, it.Icon)
	}
}
