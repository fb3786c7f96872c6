package gui

import "slices"

// ToastType picks the stylesheet entry and icon of a toast.
type ToastType uint8

const (
	ToastTypeInfo ToastType = iota
	ToastTypeSuccess
	ToastTypeWarning
	ToastTypeError
)

var toastLooks = [...]struct {
	style string
	icon  Icon
}{
	ToastTypeInfo:    {"toast_info", IconInfo},
	ToastTypeSuccess: {"toast_success", IconCheck},
	ToastTypeWarning: {"toast_warning", IconWarning},
	ToastTypeError:   {"toast_error", IconXCircle},
}

// ToastNotification is one queued message. Elapsed counts up to Duration.
type ToastNotification struct {
	Message  string
	Type     ToastType
	Duration float32
	Elapsed  float32
}

const (
	toastFadeIn  float32 = 0.15 // seconds
	toastFadeOut float32 = 0.7  // fraction of Duration where fading starts
)

func (t ToastNotification) opacity() float32 {
	if t.Elapsed < toastFadeIn {
		return t.Elapsed / toastFadeIn
	}
	start := t.Duration * toastFadeOut
	if t.Elapsed > start {
		return 1 - (t.Elapsed-start)/(t.Duration-start)
	}
	return 1
}

// ToastState is the queue of status messages shown by DrawToasts, such as
// a saved document or a feed that failed to start. The application owns it.
type ToastState struct {
	Toasts []ToastNotification
}

const (
	DefaultToastDuration float32 = 3
	ToastMaxVisible              = 5
)

// Toast queues message for duration seconds, DefaultToastDuration when
// omitted. Only the newest ToastMaxVisible are drawn; older ones are
// dropped once the queue is twice that long.
func (ts *ToastState) Toast(message string, typ ToastType, duration ...float32) {
	d := DefaultToastDuration
	if len(duration) > 0 {
		d = duration[0]
	}
	ts.Toasts = append(ts.Toasts, ToastNotification{Message: message, Type: typ, Duration: d})
	if n := len(ts.Toasts); n > 2*ToastMaxVisible {
		ts.Toasts = slices.Delete(ts.Toasts, 0, n-ToastMaxVisible)
	}
}

func (ts *ToastState) ToastInfo(message string)    { ts.Toast(message, ToastTypeInfo) }
func (ts *ToastState) ToastSuccess(message string) { ts.Toast(message, ToastTypeSuccess) }
func (ts *ToastState) ToastWarning(message string) { ts.Toast(message, ToastTypeWarning) }
func (ts *ToastState) ToastError(message string)   { ts.Toast(message, ToastTypeError) }

// Update ages every toast by dt seconds and drops the expired ones.
func (ts *ToastState) Update(dt float32) {
	for i := range ts.Toasts {
		ts.Toasts[i].Elapsed += dt
	}
	ts.Toasts = slices.DeleteFunc(ts.Toasts, func(t ToastNotification) bool { return t.Elapsed >= t.Duration })
}

// DrawToasts stacks the visible toasts upwards from the bottom-right
// corner, newest at the bottom. It belongs after every other widget.
func (ctx *Context) DrawToasts(ts *ToastState) {
	if ts == nil {
		return
	}
	const margin, gap float32 = 10, 6

	p := ctx.painter
	right := ctx.DisplaySize.X - margin
	bottom := ctx.DisplaySize.Y - margin
	for i := len(ts.Toasts) - 1; i >= max(0, len(ts.Toasts)-ToastMaxVisible); i-- {
		t := ts.Toasts[i]
		alpha := t.opacity()
		if alpha <= 0 {
			continue
		}
		look := toastLooks[t.Type]
		el, _ := ctx.styles.Element(look.style, Rect{})
		content := ctx.styles.CalculateBounds(p, look.style, t.Message, look.icon)
		size := Vec2{X: content.X + el.Padding[0] + el.Padding[1], Y: content.Y + el.Padding[2] + el.Padding[3]}

		p.Save()
		p.SetGlobalAlpha(alpha)
		ctx.styles.Draw(p, look.style, Rect{X: right - size.X, Y: bottom - size.Y, W: size.X, H: size.Y}, t.Message, look.icon)
		p.Restore()
		bottom -= size.Y + gap
	}
}
