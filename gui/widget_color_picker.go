package gui

import "github.com/chewxy/math32"

const (
	pickerRingWidth   float32 = 18
	pickerMargin      float32 = 5
	pickerRingParts           = 6
	pickerSelectorR   float32 = 4
	pickerSwatchSize  float32 = 32
	pickerMarkerWidth float32 = 2
)

type pickerMode uint8

const (
	pickerIdle pickerMode = iota
	pickerHueRing
	pickerSatVal
)

// colorPickerState keeps HSV separately from the bound color so hue
// survives while saturation or value is zero.
type colorPickerState struct {
	mode     pickerMode
	h, s, v  float32
	selector Vec2
	last     Color
	init     bool
}

// pickerGeometry is the layout of a color picker inside its bounds.
type pickerGeometry struct {
	center Vec2
	r0, r1 float32 // ring inner and outer radius
	square Rect    // saturation/value square
}

func newPickerGeometry(bounds Rect) pickerGeometry {
	b := bounds.Expand(-pickerMargin)
	r1 := minf(b.W, b.H)/2 - pickerMargin
	r0 := r1 - pickerRingWidth
	half := (r0 - 1) / math32.Sqrt(2)
	c := b.Center()
	return pickerGeometry{
		center: c,
		r0:     r0,
		r1:     r1,
		square: Rect{X: c.X - half, Y: c.Y - half, W: 2 * half, H: 2 * half},
	}
}

// ColorPicker draws a hue ring around a saturation/value square and
// edits *color. Pressing inside the square drags saturation and value;
// pressing on the ring drags hue. It returns true on frames the color
// changed. Alpha is preserved.
func (ctx *Context) ColorPicker(id string, bounds Rect, color *Color, opts ...Option) bool {
	o := applyOptions(opts)
	wd := ctx.widget(ctx.ID(id), bounds, GetOpt(o, OptInputBlock), GetOpt(o, OptDisabled))
	focused := ctx.focusedID == wd.ID
	g := newPickerGeometry(bounds)

	st := ctx.pickers.Get(wd.ID, colorPickerState{})
	if !st.init || *color != st.last {
		h, s, v := color.ToHSV()
		if s == 0 && st.init {
			h = st.h
		}
		st.h, st.s, st.v = h, s, v
		st.init = true
	}

	pressedInside := bounds.Contains(ctx.mousePos) && ctx.mouseDown && focused
	if pressedInside && ctx.mouseButton == MouseButtonLeft && st.mode == pickerIdle {
		d := ctx.mousePos.Sub(g.center).Len()
		switch {
		case g.square.Contains(ctx.mousePos):
			st.mode = pickerSatVal
		case d >= g.r0 && d <= g.r1:
			st.mode = pickerHueRing
		}
	}
	if !ctx.mouseDown {
		st.mode = pickerIdle
	}

	before := *color
	switch st.mode {
	case pickerSatVal:
		st.s = clampf((ctx.mousePos.X-g.square.X)/g.square.W, 0, 1)
		st.v = 1 - clampf((ctx.mousePos.Y-g.square.Y)/g.square.H, 0, 1)
	case pickerHueRing:
		st.h = ringHue(ctx.mousePos.Sub(g.center))
	}
	if st.mode != pickerIdle {
		*color = HSV(st.h, st.s, st.v).WithAlpha(color.A)
	}
	st.last = *color
	st.selector = Vec2{
		X: g.square.X + st.s*g.square.W,
		Y: g.square.Y + (1-st.v)*g.square.H,
	}

	ctx.drawColorPicker(bounds, g, st, *color)
	return *color != before
}

func (ctx *Context) drawColorPicker(bounds Rect, g pickerGeometry, st *colorPickerState, current Color) {
	p := ctx.painter
	ctx.styles.Draw(p, "panel", bounds, "", NoIcon)

	p.Save()
	defer p.Restore()

	outline := SolidPaint(Black.WithAlpha(64.0 / 255))
	marker := SolidPaint(White.WithAlpha(192.0 / 255))

	// Hue ring, one gradient per segment.
	aeps := 0.5 / g.r1
	for i := 0; i < pickerRingParts; i++ {
		a0 := float32(i)/pickerRingParts*2*math32.Pi - aeps
		a1 := float32(i+1)/pickerRingParts*2*math32.Pi + aeps
		mid := (g.r0 + g.r1) / 2
		s0, c0 := math32.Sincos(a0)
		s1, c1 := math32.Sincos(a1)
		paint := LinearGradient(
			g.center.Add(Vec2{X: c0 * mid, Y: s0 * mid}),
			g.center.Add(Vec2{X: c1 * mid, Y: s1 * mid}),
			HSL(a0/(2*math32.Pi), 1, 0.55, 1),
			HSL(a1/(2*math32.Pi), 1, 0.55, 1),
		)
		p.FillRing(g.center, g.r0, g.r1, a0, a1, paint)
	}
	p.StrokeCircle(g.center, g.r0-0.5, 1, outline)
	p.StrokeCircle(g.center, g.r1+0.5, 1, outline)

	// Hue marker on the ring.
	p.Save()
	p.Translate(g.center.X, g.center.Y)
	p.Rotate(st.h * 2 * math32.Pi)
	p.StrokeRect(Rect{X: g.r0 - 1, Y: -3, W: g.r1 - g.r0 + 2, H: 6}, pickerMarkerWidth, marker)
	p.Restore()

	// Swatch of the current color in the bottom-left corner.
	corner := Vec2{X: g.center.X - g.r1, Y: g.center.Y + g.r1}
	swatch := []Vec2{
		corner,
		{X: corner.X + pickerSwatchSize, Y: corner.Y},
		{X: corner.X, Y: corner.Y - pickerSwatchSize},
	}
	p.FillPolygon(swatch, SolidPaint(current.WithAlpha(1)))
	p.StrokePolyline(swatch, 1, marker, true)

	sq := g.square
	p.FillRect(sq, LinearGradient(sq.Location(), Vec2{X: sq.X + sq.W, Y: sq.Y}, White, HSL(st.h, 1, 0.5, 1)))
	p.FillRect(sq, LinearGradient(sq.Location(), Vec2{X: sq.X, Y: sq.Y + sq.H}, Transparent, Black))
	p.StrokeRect(sq, 1, outline)

	p.StrokeCircle(st.selector, pickerSelectorR, pickerMarkerWidth, marker)
}

// ringHue maps an offset from the ring centre to a hue in [0, 1).
func ringHue(d Vec2) float32 {
	h := math32.Atan2(d.Y, d.X) / (2 * math32.Pi)
	if h < 0 {
		h++
	}
	// A tiny negative angle rounds up to a full turn.
	if h >= 1 {
		h = 0
	}
	return h
}
