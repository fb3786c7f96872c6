package scene

import (
	"github.com/chewxy/math32"

	"github.com/go-theft-auto/titlemaker/gui"
)

// ShapeKind is the variant of a Shape.
type ShapeKind uint8

const (
	ShapeRectangle ShapeKind = iota
	ShapeEllipse
	ShapeText
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeRectangle:
		return "Rectangle"
	case ShapeEllipse:
		return "Ellipse"
	case ShapeText:
		return "Text"
	}
	return "Unknown"
}

// FillMode selects how a shape's background is painted.
type FillMode uint8

const (
	FillSolid FillMode = iota
	FillGradient
)

// AnimationSlot names the moment an animation plays at.
type AnimationSlot uint8

const (
	SlotEnter AnimationSlot = iota
	SlotExit
)

type shapeState uint8

const (
	shapeIdling shapeState = iota
	shapeEntering
	shapeExiting
)

// Shape is one drawable element of a title: a rectangle, an ellipse or a
// text box. Bounds are in the document's virtual resolution. Rotation is
// in radians about the centre of Bounds.
//
// Fields that do not apply to Kind are ignored: BorderRadius is only used
// by rectangles, Text and FontSize only by text, and text draws with
// Colors[0] and no border.
type Shape struct {
	Kind     ShapeKind `toml:"kind" yaml:"kind"`
	Bounds   gui.Rect  `toml:"bounds" yaml:"bounds"`
	Rotation float32   `toml:"rotation" yaml:"rotation"`

	Fill FillMode `toml:"fill" yaml:"fill"`
	// Colors are the solid colour, or the gradient's start and end.
	Colors [2]gui.Color `toml:"colors" yaml:"colors"`
	// Stops are the gradient endpoints as fractions of Bounds.
	Stops [2]gui.Vec2 `toml:"stops" yaml:"stops"`

	BorderWidth  float32   `toml:"border_width" yaml:"border_width"`
	BorderColor  gui.Color `toml:"border_color" yaml:"border_color"`
	BorderRadius float32   `toml:"border_radius,omitempty" yaml:"border_radius,omitempty"`

	Text     string  `toml:"text,omitempty" yaml:"text,omitempty"`
	FontSize float32 `toml:"font_size,omitempty" yaml:"font_size,omitempty"`

	Enter *Animation `toml:"enter,omitempty" yaml:"enter,omitempty"`
	Exit  *Animation `toml:"exit,omitempty" yaml:"exit,omitempty"`

	state  shapeState
	next   shapeState
	clock  float32
	hidden bool
}

func newShape(kind ShapeKind, bounds gui.Rect, c gui.Color) *Shape {
	return &Shape{
		Kind:        kind,
		Bounds:      bounds,
		Colors:      [2]gui.Color{c, gui.White},
		Stops:       [2]gui.Vec2{{X: 0, Y: 0}, {X: 0, Y: 1}},
		BorderColor: gui.Black,
	}
}

// NewRectangle returns a 100x100 red rectangle at the origin.
func NewRectangle() *Shape {
	return newShape(ShapeRectangle, gui.Rect{W: 100, H: 100}, gui.Red)
}

// NewEllipse returns a 100x100 red circle at the origin.
func NewEllipse() *Shape {
	return newShape(ShapeEllipse, gui.Rect{W: 100, H: 100}, gui.Red)
}

// NewText returns a white "Text" label at the origin.
func NewText() *Shape {
	s := newShape(ShapeText, gui.Rect{W: 200, H: 70}, gui.White)
	s.Text = "Text"
	s.FontSize = 30
	return s
}

// Center returns the centre of Bounds.
func (s *Shape) Center() gui.Vec2 { return s.Bounds.Center() }

// LocalToWorld maps points relative to the shape's centre, in its rotated
// frame, to virtual space.
func (s *Shape) LocalToWorld() gui.Transform {
	return gui.TranslationVec(s.Center()).Mul(gui.Rotation(s.Rotation))
}

// Contains reports whether p, in virtual space, lies inside the rotated
// bounds grown by margin.
func (s *Shape) Contains(p gui.Vec2, margin float32) bool {
	local := s.LocalToWorld().Inverted().Apply(p)
	hw, hh := s.Bounds.W*0.5+margin, s.Bounds.H*0.5+margin
	return local.X >= -hw && local.X <= hw && local.Y >= -hh && local.Y <= hh
}

// Animation returns the animation in slot, or nil.
func (s *Shape) Animation(slot AnimationSlot) *Animation {
	if slot == SlotExit {
		return s.Exit
	}
	return s.Enter
}

// SetAnimation replaces the animation in slot. A nil animation clears it.
func (s *Shape) SetAnimation(slot AnimationSlot, a *Animation) {
	if slot == SlotExit {
		s.Exit = a
	} else {
		s.Enter = a
	}
}

// Visible reports whether the shape is drawn. Shapes hide once their exit
// animation completes and show again when they enter.
func (s *Shape) Visible() bool { return !s.hidden }

// Animating reports whether an enter or exit is in progress or pending.
func (s *Shape) Animating() bool {
	return s.state != shapeIdling || s.next != shapeIdling
}

// TriggerEnter queues the enter animation. It starts on the next
// DrawAnimated once any running animation has finished.
func (s *Shape) TriggerEnter() { s.next = shapeEntering }

// TriggerExit queues the exit animation like TriggerEnter.
func (s *Shape) TriggerExit() { s.next = shapeExiting }

func (s *Shape) current() *Animation {
	switch s.state {
	case shapeEntering:
		return s.Enter
	case shapeExiting:
		return s.Exit
	}
	return nil
}

// DrawAnimated advances the shape's animation clock by dt and draws it
// with the running animation's effect applied.
func (s *Shape) DrawAnimated(p *gui.Painter, dt float32) {
	anim := s.current()
	if anim != nil {
		p.Save()
		anim.Update(p, s.clock, s.state == shapeEntering)
		s.clock += dt

		if anim.Finished() {
			anim.Reset()
			s.settle()
		}
	} else if s.next != shapeIdling {
		s.state, s.next = s.next, shapeIdling
		s.start()
	}

	if !s.hidden || anim != nil {
		s.Draw(p)
	}

	if anim != nil {
		p.Restore()
	}
}

func (s *Shape) start() {
	s.clock = 0
	if s.state == shapeEntering {
		s.hidden = false
	}
	anim := s.current()
	if anim == nil {
		s.settle()
		return
	}
	anim.Play(s)
	logger().Debug("shape animation started", "shape", s.Kind.String(), "kind", anim.Kind.String())
}

// settle ends the current transition and leaves the shape idle.
func (s *Shape) settle() {
	if s.state == shapeExiting {
		s.hidden = true
	}
	s.state = shapeIdling
	s.clock = 0
}

// fillPaint resolves the background paint for the current bounds.
func (s *Shape) fillPaint() gui.Paint {
	if s.Fill == FillSolid {
		return gui.SolidPaint(s.Colors[0])
	}
	b := s.Bounds
	start := gui.Vec2{X: b.X + s.Stops[0].X*b.W, Y: b.Y + s.Stops[0].Y*b.H}
	end := gui.Vec2{X: b.X + s.Stops[1].X*b.W, Y: b.Y + s.Stops[1].Y*b.H}
	return gui.LinearGradient(start, end, s.Colors[0], s.Colors[1])
}

// Draw paints the shape without animation.
func (s *Shape) Draw(p *gui.Painter) {
	p.Save()
	defer p.Restore()

	if s.Rotation != 0 {
		c := s.Center()
		p.Translate(c.X, c.Y)
		p.Rotate(s.Rotation)
		p.Translate(-c.X, -c.Y)
	}

	b := s.Bounds
	border := gui.SolidPaint(s.BorderColor)

	switch s.Kind {
	case ShapeRectangle:
		if s.BorderRadius > 0 {
			r := math32.Min(s.BorderRadius, math32.Min(b.W, b.H)*0.5)
			radii := [4]float32{r, r, r, r}
			p.FillRoundedRect(b, radii, s.fillPaint())
			if s.BorderWidth > 0 {
				p.StrokeRoundedRect(b, radii, s.BorderWidth, border)
			}
			return
		}
		p.FillRect(b, s.fillPaint())
		if s.BorderWidth > 0 {
			p.StrokeRect(b, s.BorderWidth, border)
		}

	case ShapeEllipse:
		p.FillEllipse(b, s.fillPaint())
		if s.BorderWidth > 0 {
			p.StrokeEllipse(b, s.BorderWidth, border)
		}

	case ShapeText:
		p.SetFontSize(s.FontSize)
		p.SetTextAlign(gui.AlignLeft | gui.AlignTop)
		p.TextBox(b.X, b.Y, b.W, s.Text, s.Colors[0])
	}
}
