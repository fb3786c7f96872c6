package gui

// ClipboardProvider is the system clipboard text fields copy to and paste
// from. GetText returns "" when the clipboard holds no text.
type ClipboardProvider interface {
	GetText() string
	SetText(text string)
}

// WithClipboard connects text fields to cp. Without it paste inserts
// nothing and copies are lost.
func WithClipboard(cp ClipboardProvider) GUIOption {
	return func(g *GUI) { g.ctx.clipboard = cp }
}

func (ctx *Context) clipboardText() string {
	if ctx.clipboard == nil {
		return ""
	}
	return ctx.clipboard.GetText()
}

// SetClipboardText copies text when a clipboard is connected.
func (ctx *Context) SetClipboardText(text string) {
	if ctx.clipboard != nil {
		ctx.clipboard.SetText(text)
	}
}
