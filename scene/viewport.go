package scene

import "github.com/go-theft-auto/titlemaker/gui"

// ViewportToGui maps p from virtual content space to GUI pixels relative
// to the top-left corner of screen. Both spaces stretch uniformly; there is
// no aspect correction.
func ViewportToGui(p, virtual gui.Vec2, screen gui.Rect) gui.Vec2 {
	return gui.Vec2{
		X: p.X / virtual.X * screen.W,
		Y: p.Y / virtual.Y * screen.H,
	}
}

// GuiToViewport is the inverse of ViewportToGui.
func GuiToViewport(p, virtual gui.Vec2, screen gui.Rect) gui.Vec2 {
	return gui.Vec2{
		X: p.X / screen.W * virtual.X,
		Y: p.Y / screen.H * virtual.Y,
	}
}

// Mapping pairs a virtual resolution with the on-screen rectangle showing
// it.
type Mapping struct {
	Virtual gui.Vec2
	Screen  gui.Rect
}

// NewMapping returns the mapping for a viewport drawn in screen. A zero
// sized screen falls back to the whole display.
func NewMapping(virtual, display gui.Vec2, screen gui.Rect) Mapping {
	if screen.W <= 0 || screen.H <= 0 {
		screen = gui.Rect{W: display.X, H: display.Y}
	}
	return Mapping{Virtual: virtual, Screen: screen}
}

// ToGui maps a virtual point into GUI pixels relative to the screen rect.
func (m Mapping) ToGui(p gui.Vec2) gui.Vec2 { return ViewportToGui(p, m.Virtual, m.Screen) }

// ToViewport maps a GUI point relative to the screen rect into virtual space.
func (m Mapping) ToViewport(p gui.Vec2) gui.Vec2 { return GuiToViewport(p, m.Virtual, m.Screen) }

// Scale returns GUI pixels per virtual unit on each axis.
func (m Mapping) Scale() gui.Vec2 {
	return gui.Vec2{X: m.Screen.W / m.Virtual.X, Y: m.Screen.H / m.Virtual.Y}
}

// pickMargin grows shapes, in GUI pixels, when picking them with the mouse.
const pickMargin = 10

// Viewport is the editing surface for a Document. It owns the manipulator
// state for the selected shape.
type Viewport struct {
	Manipulator Manipulator
	// Snapper aligns moved shapes; nil disables snapping.
	Snapper *Snapper
	// Crosshair draws a cursor cross at the mouse position.
	Crosshair bool
}

// Update runs the viewport widget named id over bounds: the selected
// shape's handles are drawn and dragged, and a left click picks the
// shape under the mouse or clears the selection. It returns true when
// a shape was picked this frame.
func (v *Viewport) Update(ctx *gui.Context, id string, bounds gui.Rect, doc *Document) bool {
	w := ctx.Widget(id, bounds)
	m := NewMapping(doc.VirtualSize(), ctx.DisplaySize, bounds)
	mouse := ctx.MousePosition().Sub(bounds.Location())

	p := ctx.Painter()
	p.Save()
	p.IntersectScissor(bounds.X, bounds.Y, bounds.W, bounds.H)
	p.Translate(bounds.X, bounds.Y)

	if sel := doc.Selected(); sel != nil {
		pressed := w.State == gui.StateActive && ctx.Input.MouseClicked(gui.MouseButtonLeft)
		down := ctx.Input.MouseDown(gui.MouseButtonLeft)
		changed := v.Manipulator.Update(sel, m, mouse, pressed, down)
		if v.Snapper != nil {
			if v.Manipulator.State() != Moving {
				v.Snapper.ClearGuides()
			} else if changed {
				pos := v.snap(sel, doc)
				sel.Bounds.X, sel.Bounds.Y = pos.X, pos.Y
			}
			v.Snapper.DrawGuides(p, m)
		}
		v.Manipulator.Draw(p, sel, m)
	} else {
		v.Manipulator.Cancel()
	}

	if v.Crosshair && w.State != gui.StateNormal {
		cross := gui.SolidPaint(gui.RGB(0, 1, 1))
		rm := w.RelativeMouse
		p.StrokeLine(gui.Vec2{X: rm.X - 10, Y: rm.Y}, gui.Vec2{X: rm.X + 10, Y: rm.Y}, 1, cross)
		p.StrokeLine(gui.Vec2{X: rm.X, Y: rm.Y - 10}, gui.Vec2{X: rm.X, Y: rm.Y + 10}, 1, cross)
	}
	p.Restore()

	if !w.Clicked || ctx.MouseButton() != gui.MouseButtonLeft || v.Manipulator.Engaged() {
		return false
	}

	scale := m.Scale()
	margin := pickMargin / max(min(scale.X, scale.Y), 1e-6)
	if s := doc.ShapeAt(m.ToViewport(w.RelativeMouse), margin); s != nil {
		doc.Select(s)
		return true
	}
	doc.Select(nil)
	v.Manipulator.Cancel()
	return false
}

func (v *Viewport) snap(sel *Shape, doc *Document) gui.Vec2 {
	others := make([]gui.Rect, 0, len(doc.Shapes))
	for _, s := range doc.Shapes {
		if s != sel {
			others = append(others, s.Bounds)
		}
	}
	return v.Snapper.Snap(sel.Bounds, others, doc.VirtualSize())
}
