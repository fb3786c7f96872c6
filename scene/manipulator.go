package scene

import (
	"github.com/chewxy/math32"

	"github.com/go-theft-auto/titlemaker/gui"
)

// ManipulatorState is the handle being dragged, if any.
type ManipulatorState uint8

const (
	ManipNone ManipulatorState = iota
	SizingTL
	SizingTR
	SizingBL
	SizingBR
	SizingL
	SizingR
	SizingT
	SizingB
	Moving
	Rotating
)

func (s ManipulatorState) String() string {
	switch s {
	case SizingTL:
		return "sizing-tl"
	case SizingTR:
		return "sizing-tr"
	case SizingBL:
		return "sizing-bl"
	case SizingBR:
		return "sizing-br"
	case SizingL:
		return "sizing-l"
	case SizingR:
		return "sizing-r"
	case SizingT:
		return "sizing-t"
	case SizingB:
		return "sizing-b"
	case Moving:
		return "moving"
	case Rotating:
		return "rotating"
	}
	return "none"
}

// Handle geometry in GUI pixels.
const (
	handleSize     = 5
	handleHotZone  = 6
	outlineMargin  = 6
	moveInset      = 10
	rotationOffset = 24
	minShapeSize   = 1
)

// handle is a resize grip at a unit offset from the shape's centre.
type handle struct {
	unit  gui.Vec2
	state ManipulatorState
}

var handles = [8]handle{
	{gui.Vec2{X: -1, Y: -1}, SizingTL},
	{gui.Vec2{X: 0, Y: -1}, SizingT},
	{gui.Vec2{X: 1, Y: -1}, SizingTR},
	{gui.Vec2{X: -1, Y: 1}, SizingBL},
	{gui.Vec2{X: 0, Y: 1}, SizingB},
	{gui.Vec2{X: 1, Y: 1}, SizingBR},
	{gui.Vec2{X: -1, Y: 0}, SizingL},
	{gui.Vec2{X: 1, Y: 0}, SizingR},
}

func (s ManipulatorState) unit() (gui.Vec2, bool) {
	for _, h := range handles {
		if h.state == s {
			return h.unit, true
		}
	}
	return gui.Vec2{}, false
}

// manipFrame is the selected shape as seen on screen: its local frame
// centred on the shape and rotated with it, in GUI pixels.
type manipFrame struct {
	toGui gui.Transform
	half  gui.Vec2 // half the outline size, margin included
}

func newManipFrame(s *Shape, m Mapping) manipFrame {
	scale := m.Scale()
	return manipFrame{
		toGui: gui.TranslationVec(m.ToGui(s.Center())).Mul(gui.Rotation(s.Rotation)),
		half: gui.Vec2{
			X: s.Bounds.W*scale.X*0.5 + outlineMargin,
			Y: s.Bounds.H*scale.Y*0.5 + outlineMargin,
		},
	}
}

func (f manipFrame) handlePos(h handle) gui.Vec2 {
	return h.unit.MulVec(f.half)
}

func (f manipFrame) rotationHandle() gui.Vec2 {
	return gui.Vec2{X: 0, Y: -f.half.Y - rotationOffset}
}

func (f manipFrame) outline() gui.Rect {
	return gui.Rect{X: -f.half.X, Y: -f.half.Y, W: f.half.X * 2, H: f.half.Y * 2}
}

func hotZone(c gui.Vec2) gui.Rect {
	return gui.Rect{X: c.X - handleSize*0.5, Y: c.Y - handleSize*0.5, W: handleSize, H: handleSize}.Expand(handleHotZone)
}

// hitTest picks the handle under local, a point in the shape's frame.
func (f manipFrame) hitTest(local gui.Vec2) ManipulatorState {
	for _, h := range handles {
		if hotZone(f.handlePos(h)).Contains(local) {
			return h.state
		}
	}
	if hotZone(f.rotationHandle()).Contains(local) {
		return Rotating
	}
	if f.outline().Expand(-moveInset).Contains(local) {
		return Moving
	}
	return ManipNone
}

// Manipulator drags the handles of one selected shape. The zero value is
// ready to use.
type Manipulator struct {
	state   ManipulatorState
	prev    gui.Vec2
	raw     gui.Vec2 // unsnapped position while moving
	engaged bool
}

// State returns the handle being dragged.
func (m *Manipulator) State() ManipulatorState { return m.state }

// Engaged reports whether the current or most recent press grabbed a
// handle. A viewport uses it to tell a drag from a click on empty space.
func (m *Manipulator) Engaged() bool { return m.engaged }

// Cancel drops any drag in progress.
func (m *Manipulator) Cancel() {
	m.state = ManipNone
	m.engaged = false
}

// HitTest returns the state a press at mouse, in GUI pixels relative to
// the mapping's screen, would start.
func (m *Manipulator) HitTest(s *Shape, mp Mapping, mouse gui.Vec2) ManipulatorState {
	f := newManipFrame(s, mp)
	return f.hitTest(f.toGui.Inverted().Apply(mouse))
}

// Update advances the manipulator by one frame. pressed is true on the
// frame the left button went down over the viewport, down while it is
// held. Hit testing happens only on the press, so a drag that starts on
// empty space never grabs a handle it crosses. It returns true when the
// shape changed.
func (m *Manipulator) Update(s *Shape, mp Mapping, mouse gui.Vec2, pressed, down bool) bool {
	if !down {
		m.state = ManipNone
		m.prev = mouse
		return false
	}
	if pressed {
		m.state = m.HitTest(s, mp, mouse)
		m.engaged = m.state != ManipNone
		m.prev = mouse
		m.raw = s.Bounds.Location()
		if m.engaged {
			logger().Debug("manipulator grabbed", "state", m.state.String())
		}
		return false
	}
	if m.state == ManipNone {
		m.prev = mouse
		return false
	}

	delta := mouse.Sub(m.prev)
	m.prev = mouse
	if delta == (gui.Vec2{}) {
		return false
	}

	scale := mp.Scale()
	switch m.state {
	case Moving:
		m.raw.X += delta.X / scale.X
		m.raw.Y += delta.Y / scale.Y
		s.Bounds.X, s.Bounds.Y = m.raw.X, m.raw.Y
	case Rotating:
		c := mp.ToGui(s.Center())
		d := mouse.Sub(c)
		if d.Len() < 1e-3 {
			return false
		}
		s.Rotation = math32.Atan2(d.Y, d.X) + math32.Pi/2
	default:
		unit, _ := m.state.unit()
		local := gui.Rotation(-s.Rotation).ApplyVector(delta)
		resize(s, unit, gui.Vec2{X: local.X / scale.X, Y: local.Y / scale.Y})
	}
	return true
}

// resize grows the side of s facing unit by d, a delta in the shape's
// local frame, keeping the opposite side fixed in virtual space.
func resize(s *Shape, unit, d gui.Vec2) {
	w, h := s.Bounds.W, s.Bounds.H
	nw, nh := w, h
	if unit.X != 0 {
		nw = max(w+unit.X*d.X, minShapeSize)
	}
	if unit.Y != 0 {
		nh = max(h+unit.Y*d.Y, minShapeSize)
	}
	shift := gui.Vec2{X: unit.X * (nw - w) * 0.5, Y: unit.Y * (nh - h) * 0.5}
	c := s.Center().Add(gui.Rotation(s.Rotation).ApplyVector(shift))
	s.Bounds = gui.Rect{X: c.X - nw*0.5, Y: c.Y - nh*0.5, W: nw, H: nh}
}

// Draw paints the outline, the resize handles and the rotation handle of
// s. p must be translated to the mapping's screen origin.
func (m *Manipulator) Draw(p *gui.Painter, s *Shape, mp Mapping) {
	f := newManipFrame(s, mp)

	p.Save()
	defer p.Restore()
	p.Transform(f.toGui)

	outline := f.outline()
	p.StrokeRect(outline, 2, gui.SolidPaint(gui.Black))
	p.StrokeDashedRect(outline, 2, 4, gui.SolidPaint(gui.White))

	top := gui.Vec2{X: 0, Y: -f.half.Y}
	rot := f.rotationHandle()
	p.StrokeLine(top, rot, 1, gui.SolidPaint(gui.White))

	for _, h := range handles {
		drawGrip(p, f.handlePos(h), m.state == h.state)
	}
	drawGrip(p, rot, m.state == Rotating)
}

func drawGrip(p *gui.Painter, c gui.Vec2, active bool) {
	fill := gui.White
	if active {
		fill = gui.RGB(0, 1, 1)
	}
	p.FillCircle(c, handleSize, gui.SolidPaint(fill))
	p.StrokeCircle(c, handleSize, 1, gui.SolidPaint(gui.Black))
}
