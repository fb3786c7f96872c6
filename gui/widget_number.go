package gui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
)

const (
	numberButtonWidth float32 = 16
	dragSensitivity   float32 = 0.2 // fraction of a step per pixel
	labelGap          float32 = 3
	labelAlpha        float32 = 0.5
)

// numberEditState is the per-field state of a Number widget.
type numberEditState struct {
	editingText bool
	dragging    bool
	edit        textEditState
	prevPos     Vec2
	text        string
	actualValue float32 // unsnapped accumulator while dragging
}

// Snap rounds v to the nearest multiple of step. A non-positive step
// leaves v unchanged.
func Snap(v, step float32) float32 {
	if step <= 0 {
		return v
	}
	return math32.Round(v/step) * step
}

// Number draws a numeric field bound to *value with decrement and
// increment buttons on its sides. It returns true on frames the value
// changed.
//
// Dragging the field horizontally with the left button changes the value
// by a fifth of a step per pixel, snapped to the step. A right click
// switches to text entry; Enter or a click outside commits. Text that does
// not parse leaves the value unchanged. The value never leaves [min, max].
func (ctx *Context) Number(id string, bounds Rect, value *float32, minVal, maxVal, step float32, opts ...Option) bool {
	o := applyOptions(opts)
	format := GetOpt(o, OptFormat)
	label := GetOpt(o, OptLabel)
	before := *value

	decBounds := Rect{X: bounds.X, Y: bounds.Y, W: numberButtonWidth, H: bounds.H}
	incBounds := Rect{X: bounds.X + bounds.W - numberButtonWidth, Y: bounds.Y, W: numberButtonWidth, H: bounds.H}
	mainBounds := Rect{
		X: bounds.X + numberButtonWidth,
		Y: bounds.Y,
		W: bounds.W - 2*numberButtonWidth,
		H: bounds.H,
	}

	wd := ctx.widget(ctx.ID(id), mainBounds, GetOpt(o, OptInputBlock), GetOpt(o, OptDisabled))
	focused := ctx.focusedID == wd.ID
	ne := ctx.numbers.Get(wd.ID, numberEditState{})

	ctx.drawNumber(ne, *value, format, label, bounds, mainBounds, focused)

	if ctx.IconButton(id+"_dec", IconChevronLeft, decBounds) {
		*value = clampf(*value-step, minVal, maxVal)
	}
	if ctx.IconButton(id+"_inc", IconChevronRight, incBounds) {
		*value = clampf(*value+step, minVal, maxVal)
	}

	pressedInside := mainBounds.Contains(ctx.mousePos) && ctx.mouseDown && focused

	if !ne.editingText {
		switch {
		case pressedInside && ctx.mouseButton == MouseButtonLeft && !ne.dragging:
			ne.dragging = true
			ne.prevPos = ctx.mousePos
			ne.actualValue = *value
		case pressedInside && ctx.mouseButton == MouseButtonRight:
			ne.editingText = true
			ne.dragging = false
			ne.text = strconv.FormatFloat(float64(*value), 'f', 6, 32)
			ne.edit.cursor = len([]rune(ne.text))
			ne.edit.viewOffset = 0
		case !ctx.mouseDown && ne.dragging:
			ne.dragging = false
		}

		if ne.dragging {
			dx := ctx.mousePos.X - ne.prevPos.X
			ne.actualValue += dx * step * dragSensitivity
			if snapped := Snap(ne.actualValue, step); snapped != *value {
				*value = clampf(snapped, minVal, maxVal)
			}
			ne.prevPos = ctx.mousePos
		}
	} else {
		if wd.KeyPressed && ctx.key == KeyEnter {
			ctx.commitNumber(ne, value, minVal, maxVal, step)
		} else {
			inner := ctx.numberTextBounds(mainBounds)
			ctx.lineEditor(wd, inner, &ne.edit, &ne.text, inner.X-mainBounds.X)
		}

		if ne.editingText && !mainBounds.Contains(ctx.mousePos) && ctx.mouseDown {
			ctx.commitNumber(ne, value, minVal, maxVal, step)
		}
	}

	return *value != before
}

// commitNumber parses the entered text and leaves edit mode.
func (ctx *Context) commitNumber(ne *numberEditState, value *float32, minVal, maxVal, step float32) {
	ne.editingText = false
	ne.dragging = false

	f, err := strconv.ParseFloat(strings.TrimSpace(ne.text), 32)
	if err != nil {
		guiLogger.Debug("number entry rejected", "text", ne.text, "error", err)
		return
	}
	*value = clampf(Snap(float32(f), step), minVal, maxVal)
}

func (ctx *Context) numberTextBounds(mainBounds Rect) Rect {
	_, inner := ctx.styles.Element("textedit", mainBounds)
	return inner
}

func (ctx *Context) drawNumber(ne *numberEditState, value float32, format, label string, bounds, mainBounds Rect, focused bool) {
	p := ctx.painter
	p.Save()
	defer p.Restore()

	ctx.styles.Draw(p, "panel", bounds, "", NoIcon)
	el, inner := ctx.styles.FontSetup(p, "textedit", mainBounds)
	color := el.TextColor()

	if ne.editingText {
		ctx.drawEditText(&ne.edit, ne.text, inner, color)
		if focused {
			ctx.drawCursor(&ne.edit, inner, color)
		}
		return
	}

	valueText := fmt.Sprintf(format, value)
	p.Translate(mainBounds.X, mainBounds.Y)
	p.SetTextAlign(AlignLeft | AlignMiddle)

	offset := mainBounds.W/2 - p.TextBounds(label+valueText).X/2
	y := mainBounds.H/2 + styleTextNudgeY
	if label != "" {
		p.Save()
		p.SetGlobalAlpha(labelAlpha)
		p.Text(offset, y, label, color)
		p.Restore()
		offset += p.TextBounds(label).X + labelGap
	}
	p.Text(offset, y, valueText, color)
}
