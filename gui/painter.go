package gui

import (
	"strings"

	"github.com/chewxy/math32"
)

// Align controls text placement relative to the anchor point.
// Combine one horizontal and one vertical flag.
type Align uint8

const (
	AlignLeft Align = 1 << iota
	AlignCenter
	AlignRight
	AlignTop
	AlignMiddle
	AlignBottom
)

const (
	alignHorizontal = AlignLeft | AlignCenter | AlignRight
	alignVertical   = AlignTop | AlignMiddle | AlignBottom
)

// paintState is the part of the painter saved and restored as a unit.
type paintState struct {
	xform      Transform
	scissor    Rect
	hasScissor bool
	alpha      float32
	fontSize   float32
	font       string
	align      Align
}

func defaultPaintState() paintState {
	return paintState{
		xform:    Identity(),
		alpha:    1,
		fontSize: 14,
		font:     FontNormal,
		align:    AlignLeft | AlignTop,
	}
}

// Painter is a vector drawing API over a DrawList with a save/restore
// state stack holding the transform, scissor, global alpha and text
// settings. Shapes are tessellated on the CPU; gradients become
// per-vertex colors.
type Painter struct {
	dl    *DrawList
	fonts FontProvider
	state paintState
	stack []paintState
	path  []Vec2
	verts []Vertex
}

// NewPainter creates a painter drawing text with fonts.
func NewPainter(fonts FontProvider) *Painter {
	return &Painter{fonts: fonts, state: defaultPaintState()}
}

// Begin points the painter at a fresh draw list and resets all state.
func (p *Painter) Begin(dl *DrawList) {
	p.dl = dl
	p.Reset()
}

// DrawList returns the list currently drawn into.
func (p *Painter) DrawList() *DrawList { return p.dl }

// SetFonts swaps the font provider.
func (p *Painter) SetFonts(fonts FontProvider) { p.fonts = fonts }

// Save pushes a copy of the current state.
func (p *Painter) Save() {
	p.stack = append(p.stack, p.state)
}

// Restore pops the state saved by the matching Save.
func (p *Painter) Restore() {
	n := len(p.stack)
	if n == 0 {
		return
	}
	p.state = p.stack[n-1]
	p.stack = p.stack[:n-1]
}

// Reset clears the state stack and restores defaults.
func (p *Painter) Reset() {
	p.stack = p.stack[:0]
	p.state = defaultPaintState()
}

// Depth returns the number of saved states.
func (p *Painter) Depth() int { return len(p.stack) }

// Translate moves the local origin.
func (p *Painter) Translate(x, y float32) {
	p.state.xform = p.state.xform.Mul(Translation(x, y))
}

// Rotate rotates the local frame by angle radians.
func (p *Painter) Rotate(angle float32) {
	p.state.xform = p.state.xform.Mul(Rotation(angle))
}

// Scale scales the local frame.
func (p *Painter) Scale(sx, sy float32) {
	p.state.xform = p.state.xform.Mul(Scaling(sx, sy))
}

// Transform composes t into the local frame (t applies first).
func (p *Painter) Transform(t Transform) {
	p.state.xform = p.state.xform.Mul(t)
}

// CurrentTransform returns the local-to-screen transform.
func (p *Painter) CurrentTransform() Transform { return p.state.xform }

// ResetTransform sets the local frame back to screen space.
func (p *Painter) ResetTransform() { p.state.xform = Identity() }

// SetGlobalAlpha sets the alpha multiplied into every color.
func (p *Painter) SetGlobalAlpha(a float32) { p.state.alpha = clampf(a, 0, 1) }

// GlobalAlpha returns the current alpha multiplier.
func (p *Painter) GlobalAlpha() float32 { return p.state.alpha }

// Scissor restricts drawing to a rectangle given in local coordinates.
// Under rotation the clip is the screen-space bounding box.
func (p *Painter) Scissor(x, y, w, h float32) {
	p.state.scissor = p.screenBounds(Rect{X: x, Y: y, W: maxf(w, 0), H: maxf(h, 0)})
	p.state.hasScissor = true
}

// IntersectScissor narrows the current scissor by a local rectangle.
func (p *Painter) IntersectScissor(x, y, w, h float32) {
	r := p.screenBounds(Rect{X: x, Y: y, W: maxf(w, 0), H: maxf(h, 0)})
	if p.state.hasScissor {
		r = p.state.scissor.Intersect(r)
	}
	p.state.scissor = r
	p.state.hasScissor = true
}

// ResetScissor removes clipping.
func (p *Painter) ResetScissor() {
	p.state.hasScissor = false
	p.state.scissor = Rect{}
}

// ScissorRect returns the active clip in screen space.
func (p *Painter) ScissorRect() (Rect, bool) {
	return p.state.scissor, p.state.hasScissor
}

// SetFontSize sets the pixel size used by text calls.
func (p *Painter) SetFontSize(size float32) { p.state.fontSize = size }

// FontSize returns the current text size.
func (p *Painter) FontSize() float32 { return p.state.fontSize }

// SetFontFace selects a named face from the provider.
func (p *Painter) SetFontFace(name string) { p.state.font = name }

// SetTextAlign sets text alignment flags.
func (p *Painter) SetTextAlign(a Align) { p.state.align = a }

func (p *Painter) screenBounds(r Rect) Rect {
	xf := p.state.xform
	a := xf.Apply(Vec2{X: r.X, Y: r.Y})
	b := xf.Apply(Vec2{X: r.X + r.W, Y: r.Y})
	c := xf.Apply(Vec2{X: r.X + r.W, Y: r.Y + r.H})
	d := xf.Apply(Vec2{X: r.X, Y: r.Y + r.H})
	minX := minf(minf(a.X, b.X), minf(c.X, d.X))
	minY := minf(minf(a.Y, b.Y), minf(c.Y, d.Y))
	maxX := maxf(maxf(a.X, b.X), maxf(c.X, d.X))
	maxY := maxf(maxf(a.Y, b.Y), maxf(c.Y, d.Y))
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

func (p *Painter) applyClip() {
	if p.state.hasScissor {
		s := p.state.scissor
		p.dl.SetClipRect(s.X, s.Y, s.X+s.W, s.Y+s.H)
		return
	}
	p.dl.SetClipRect(noClip[0], noClip[1], noClip[2], noClip[3])
}

func (p *Painter) color(c Color) uint32 {
	c.A *= p.state.alpha
	return c.Packed()
}

// vertex maps a local point through the transform and samples paint there.
func (p *Painter) vertex(pt Vec2, paint Paint) Vertex {
	s := p.state.xform.Apply(pt)
	return Vertex{Pos: [2]float32{s.X, s.Y}, Color: p.color(paint.At(pt))}
}

func (p *Painter) segments(radius, angle float32) int {
	n := int(math32.Ceil(radius*p.state.xform.scale()*math32.Abs(angle)/3)) + 2
	if n < 3 {
		n = 3
	}
	if n > 128 {
		n = 128
	}
	return n
}

// arc appends points along an elliptical arc to the path.
func (p *Painter) arc(c Vec2, rx, ry, a0, a1 float32) {
	n := p.segments(maxf(rx, ry), a1-a0)
	for i := 0; i <= n; i++ {
		a := a0 + (a1-a0)*float32(i)/float32(n)
		sn, cs := math32.Sincos(a)
		p.path = append(p.path, Vec2{X: c.X + cs*rx, Y: c.Y + sn*ry})
	}
}

func (p *Painter) rectPath(r Rect) {
	p.path = append(p.path[:0],
		Vec2{X: r.X, Y: r.Y},
		Vec2{X: r.X + r.W, Y: r.Y},
		Vec2{X: r.X + r.W, Y: r.Y + r.H},
		Vec2{X: r.X, Y: r.Y + r.H},
	)
}

// roundedRectPath builds the outline with radii tl, tr, br, bl.
func (p *Painter) roundedRectPath(r Rect, radii [4]float32) {
	limit := minf(math32.Abs(r.W), math32.Abs(r.H)) * 0.5
	tl := minf(radii[0], limit)
	tr := minf(radii[1], limit)
	br := minf(radii[2], limit)
	bl := minf(radii[3], limit)
	if tl <= 0 && tr <= 0 && br <= 0 && bl <= 0 {
		p.rectPath(r)
		return
	}
	p.path = p.path[:0]
	corner := func(cx, cy, rad, a0 float32) {
		if rad <= 0 {
			return
		}
		p.arc(Vec2{X: cx, Y: cy}, rad, rad, a0, a0+math32.Pi/2)
	}
	x0, y0, x1, y1 := r.X, r.Y, r.X+r.W, r.Y+r.H
	if tl <= 0 {
		p.path = append(p.path, Vec2{X: x0, Y: y0})
	}
	corner(x0+tl, y0+tl, tl, math32.Pi)
	if tr <= 0 {
		p.path = append(p.path, Vec2{X: x1, Y: y0})
	}
	corner(x1-tr, y0+tr, tr, math32.Pi*1.5)
	if br <= 0 {
		p.path = append(p.path, Vec2{X: x1, Y: y1})
	}
	corner(x1-br, y1-br, br, 0)
	if bl <= 0 {
		p.path = append(p.path, Vec2{X: x0, Y: y1})
	}
	corner(x0+bl, y1-bl, bl, math32.Pi*0.5)
}

func (p *Painter) ellipsePath(c Vec2, rx, ry float32) {
	p.path = p.path[:0]
	p.arc(c, rx, ry, 0, 2*math32.Pi)
	p.path = p.path[:len(p.path)-1]
}

// fillPath fans the current path, which must be convex.
func (p *Painter) fillPath(paint Paint) {
	if len(p.path) < 3 {
		return
	}
	p.applyClip()
	p.verts = p.verts[:0]
	for _, pt := range p.path {
		p.verts = append(p.verts, p.vertex(pt, paint))
	}
	p.dl.AddConvexPoly(p.verts)
}

// strokePath outlines the current path with mitred joins.
func (p *Painter) strokePath(width float32, paint Paint, closed bool) {
	n := len(p.path)
	if n < 2 || width <= 0 {
		return
	}
	p.applyClip()
	hw := width * 0.5
	p.verts = p.verts[:0]
	for i := 0; i < n; i++ {
		cur := p.path[i]
		var prev, next Vec2
		switch {
		case closed:
			prev = p.path[(i+n-1)%n]
			next = p.path[(i+1)%n]
		case i == 0:
			prev = cur.Sub(p.path[1].Sub(cur))
			next = p.path[1]
		case i == n-1:
			prev = p.path[i-1]
			next = cur.Add(cur.Sub(prev))
		default:
			prev = p.path[i-1]
			next = p.path[i+1]
		}
		n0 := normal(cur.Sub(prev))
		n1 := normal(next.Sub(cur))
		m := n0.Add(n1)
		l := m.Len()
		if l < 1e-6 {
			m = n1
		} else {
			m = m.Mul(1 / l)
		}
		d := m.Dot(n1)
		if d < 0.25 {
			d = 0.25
		}
		off := m.Mul(hw / d)
		p.verts = append(p.verts, p.vertex(cur.Add(off), paint), p.vertex(cur.Sub(off), paint))
	}
	p.dl.AddStrip(p.verts, closed)
}

func normal(d Vec2) Vec2 {
	l := d.Len()
	if l < 1e-6 {
		return Vec2{}
	}
	return Vec2{X: -d.Y / l, Y: d.X / l}
}

// FillRect fills an axis-aligned rectangle in local space.
func (p *Painter) FillRect(r Rect, paint Paint) {
	p.rectPath(r)
	p.fillPath(paint)
}

// StrokeRect outlines a rectangle.
func (p *Painter) StrokeRect(r Rect, width float32, paint Paint) {
	p.rectPath(r)
	p.strokePath(width, paint, true)
}

// FillRoundedRect fills a rectangle with per-corner radii (tl, tr, br, bl).
func (p *Painter) FillRoundedRect(r Rect, radii [4]float32, paint Paint) {
	p.roundedRectPath(r, radii)
	p.fillPath(paint)
}

// StrokeRoundedRect outlines a rectangle with per-corner radii.
func (p *Painter) StrokeRoundedRect(r Rect, radii [4]float32, width float32, paint Paint) {
	p.roundedRectPath(r, radii)
	p.strokePath(width, paint, true)
}

// FillEllipse fills the ellipse inscribed in r.
func (p *Painter) FillEllipse(r Rect, paint Paint) {
	p.ellipsePath(r.Center(), r.W*0.5, r.H*0.5)
	p.fillPath(paint)
}

// StrokeEllipse outlines the ellipse inscribed in r.
func (p *Painter) StrokeEllipse(r Rect, width float32, paint Paint) {
	p.ellipsePath(r.Center(), r.W*0.5, r.H*0.5)
	p.strokePath(width, paint, true)
}

// FillCircle fills a circle.
func (p *Painter) FillCircle(c Vec2, radius float32, paint Paint) {
	p.ellipsePath(c, radius, radius)
	p.fillPath(paint)
}

// StrokeCircle outlines a circle.
func (p *Painter) StrokeCircle(c Vec2, radius, width float32, paint Paint) {
	p.ellipsePath(c, radius, radius)
	p.strokePath(width, paint, true)
}

// FillRing fills the annular sector between radii r0 and r1 from angle a0 to a1.
func (p *Painter) FillRing(c Vec2, r0, r1, a0, a1 float32, paint Paint) {
	p.applyClip()
	n := p.segments(r1, a1-a0)
	p.verts = p.verts[:0]
	for i := 0; i <= n; i++ {
		a := a0 + (a1-a0)*float32(i)/float32(n)
		sn, cs := math32.Sincos(a)
		dir := Vec2{X: cs, Y: sn}
		p.verts = append(p.verts,
			p.vertex(c.Add(dir.Mul(r1)), paint),
			p.vertex(c.Add(dir.Mul(r0)), paint))
	}
	p.dl.AddStrip(p.verts, false)
}

// FillTriangle fills a triangle.
func (p *Painter) FillTriangle(a, b, c Vec2, paint Paint) {
	p.path = append(p.path[:0], a, b, c)
	p.fillPath(paint)
}

// FillPolygon fills a convex polygon.
func (p *Painter) FillPolygon(pts []Vec2, paint Paint) {
	p.path = append(p.path[:0], pts...)
	p.fillPath(paint)
}

// StrokePolyline strokes an open or closed polyline.
func (p *Painter) StrokePolyline(pts []Vec2, width float32, paint Paint, closed bool) {
	p.path = append(p.path[:0], pts...)
	p.strokePath(width, paint, closed)
}

// StrokeLine strokes a single segment.
func (p *Painter) StrokeLine(a, b Vec2, width float32, paint Paint) {
	p.path = append(p.path[:0], a, b)
	p.strokePath(width, paint, false)
}

// StrokeDashedRect outlines r with dashes of the given length.
func (p *Painter) StrokeDashedRect(r Rect, width, dash float32, paint Paint) {
	if dash <= 0 {
		p.StrokeRect(r, width, paint)
		return
	}
	corners := [5]Vec2{
		{X: r.X, Y: r.Y}, {X: r.X + r.W, Y: r.Y},
		{X: r.X + r.W, Y: r.Y + r.H}, {X: r.X, Y: r.Y + r.H},
		{X: r.X, Y: r.Y},
	}
	on := true
	left := dash
	for i := 0; i < 4; i++ {
		a, b := corners[i], corners[i+1]
		seg := b.Sub(a)
		l := seg.Len()
		if l == 0 {
			continue
		}
		dir := seg.Mul(1 / l)
		pos := float32(0)
		for pos < l {
			step := minf(left, l-pos)
			if on {
				p.StrokeLine(a.Add(dir.Mul(pos)), a.Add(dir.Mul(pos+step)), width, paint)
			}
			pos += step
			left -= step
			if left <= 0 {
				on = !on
				left = dash
			}
		}
	}
}

// DrawImage blits a texture into r. flipY suits render targets whose
// rows start at the bottom.
func (p *Painter) DrawImage(textureID uint32, r Rect, flipY bool) {
	p.applyClip()
	xf := p.state.xform
	corners := [4]Vec2{
		xf.Apply(Vec2{X: r.X, Y: r.Y}),
		xf.Apply(Vec2{X: r.X + r.W, Y: r.Y}),
		xf.Apply(Vec2{X: r.X + r.W, Y: r.Y + r.H}),
		xf.Apply(Vec2{X: r.X, Y: r.Y + r.H}),
	}
	uv0, uv1 := Vec2{X: 0, Y: 0}, Vec2{X: 1, Y: 1}
	if flipY {
		uv0.Y, uv1.Y = 1, 0
	}
	p.dl.AddImageQuad(textureID, corners, uv0, uv1, p.color(White))
}

func (p *Painter) font() Font {
	if p.fonts == nil {
		return nil
	}
	if f := p.fonts.Font(p.state.font); f != nil {
		return f
	}
	return p.fonts.Font(FontNormal)
}

// TextBounds measures text with the current face and size.
func (p *Painter) TextBounds(text string) Vec2 {
	f := p.font()
	if f == nil {
		return Vec2{}
	}
	m := f.MeasureText(text, p.state.fontSize)
	return Vec2{X: m.X, Y: m.Y}
}

// LineHeight returns the current face's line height.
func (p *Painter) LineHeight() float32 {
	f := p.font()
	if f == nil {
		return p.state.fontSize
	}
	return f.LineHeight(p.state.fontSize)
}

// TextGlyphPositions returns where each rune of text lands when drawn
// left-aligned at local x.
func (p *Painter) TextGlyphPositions(x float32, text string) []GlyphPosition {
	f := p.font()
	if f == nil {
		return nil
	}
	return f.GlyphPositions(text, x, p.state.fontSize)
}

// Text draws a single line anchored at (x, y) per the current alignment
// and returns the x just past the last glyph.
func (p *Painter) Text(x, y float32, text string, c Color) float32 {
	f := p.font()
	if f == nil || text == "" {
		return x
	}
	size := p.state.fontSize
	m := f.MeasureText(text, size)
	switch p.state.align & alignHorizontal {
	case AlignCenter:
		x -= m.X * 0.5
	case AlignRight:
		x -= m.X
	}
	lh := f.LineHeight(size)
	switch p.state.align & alignVertical {
	case AlignMiddle:
		y -= lh * 0.5
	case AlignBottom:
		y -= lh
	}
	p.glyphs(f, text, x, y, size, c)
	return x + m.X
}

func (p *Painter) glyphs(f Font, text string, x, y, size float32, c Color) {
	p.applyClip()
	col := p.color(c)
	xf := p.state.xform
	for _, q := range f.GetGlyphQuads(text, x, y, size) {
		tex := q.TextureID
		if tex == 0 {
			tex = f.TextureID()
		}
		corners := [4]Vec2{
			xf.Apply(Vec2{X: q.X0, Y: q.Y0}),
			xf.Apply(Vec2{X: q.X1, Y: q.Y0}),
			xf.Apply(Vec2{X: q.X1, Y: q.Y1}),
			xf.Apply(Vec2{X: q.X0, Y: q.Y1}),
		}
		p.dl.AddImageQuad(tex, corners, Vec2{X: q.U0, Y: q.V0}, Vec2{X: q.U1, Y: q.V1}, col)
	}
}

// TextBox draws text wrapped to breakWidth. Horizontal alignment applies
// per row inside [x, x+breakWidth]; vertical alignment applies to the
// first row, following rows stack below it.
func (p *Painter) TextBox(x, y, breakWidth float32, text string, c Color) {
	f := p.font()
	if f == nil || text == "" {
		return
	}
	size := p.state.fontSize
	lh := f.LineHeight(size)
	switch p.state.align & alignVertical {
	case AlignMiddle:
		y -= lh * 0.5
	case AlignBottom:
		y -= lh
	}
	for _, row := range p.wrap(f, text, breakWidth, size) {
		w := f.MeasureText(row, size).X
		rx := x
		switch p.state.align & alignHorizontal {
		case AlignCenter:
			rx = x + (breakWidth-w)*0.5
		case AlignRight:
			rx = x + breakWidth - w
		}
		p.glyphs(f, row, rx, y, size, c)
		y += lh
	}
}

// TextBoxBounds returns the size TextBox would cover.
func (p *Painter) TextBoxBounds(breakWidth float32, text string) Vec2 {
	f := p.font()
	if f == nil {
		return Vec2{}
	}
	size := p.state.fontSize
	rows := p.wrap(f, text, breakWidth, size)
	var w float32
	for _, row := range rows {
		w = maxf(w, f.MeasureText(row, size).X)
	}
	return Vec2{X: w, Y: float32(len(rows)) * f.LineHeight(size)}
}

// wrap splits text into rows no wider than width, breaking at spaces and
// explicit newlines. A single word wider than width gets its own row.
func (p *Painter) wrap(f Font, text string, width, size float32) []string {
	var rows []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			rows = append(rows, "")
			continue
		}
		row := words[0]
		for _, w := range words[1:] {
			candidate := row + " " + w
			if width > 0 && f.MeasureText(candidate, size).X > width {
				rows = append(rows, row)
				row = w
				continue
			}
			row = candidate
		}
		rows = append(rows, row)
	}
	return rows
}
