package gui

import "strconv"

const (
	tabPadding   float32 = 6
	tabHeight    float32 = 24
	tabSpacing   float32 = 1
	tabRuleWidth float32 = 2
)

// Tabs draws a row of tabs that wraps onto further rows when it runs out
// of width, with a rule under the last row. Clicking a tab stores its
// index in *selected and returns true. It returns the height used.
func (ctx *Context) Tabs(id string, bounds Rect, items []MenuItem, selected *int) (bool, float32) {
	p := ctx.painter
	x, y := bounds.X+tabPadding, bounds.Y
	changed := false

	for i, it := range items {
		w := ctx.styles.CalculateBounds(p, "tab", it.Text, it.Icon).X + 2*tabPadding
		if x+w+tabSpacing >= bounds.X+bounds.W && x > bounds.X+tabPadding {
			x = bounds.X + tabPadding
			y += tabHeight
		}

		r := Rect{X: x, Y: y, W: w, H: tabHeight}
		wd := ctx.widget(ctx.ID(id+"#"+strconv.Itoa(i)), r, true, false)

		style := wd.State.styleVariant("tab")
		if i == *selected && wd.State != StateActive {
			style = "tab_hover"
		}
		ctx.styles.Draw(p, style, r, it.Text, it.Icon)

		if wd.Clicked && !changed {
			*selected = i
			changed = true
		}
		x += w + tabSpacing
	}

	ctx.styles.Draw(p, "panel", Rect{X: bounds.X, Y: y + tabHeight, W: bounds.W, H: tabRuleWidth}, "", NoIcon)
	return changed, y + tabHeight + tabRuleWidth - bounds.Y
}
