package scene

import (
	"slices"

	"github.com/go-theft-auto/titlemaker/gui"
)

// Default virtual resolution of new documents.
const (
	DefaultWidth  = 1920
	DefaultHeight = 1080
)

// UIState holds the editor's panel selections so they survive between
// frames without living in the widgets.
type UIState struct {
	SideTab int
	MainTab int
}

// Document is an ordered list of shapes drawn back to front at a fixed
// virtual resolution, plus the editor's selection.
type Document struct {
	Width  int      `toml:"width" yaml:"width"`
	Height int      `toml:"height" yaml:"height"`
	Shapes []*Shape `toml:"shapes" yaml:"shapes"`

	UI UIState `toml:"-" yaml:"-"`

	selected *Shape
}

// NewDocument returns an empty 1920x1080 document.
func NewDocument() *Document {
	return &Document{Width: DefaultWidth, Height: DefaultHeight}
}

// VirtualSize returns the document resolution as a vector.
func (d *Document) VirtualSize() gui.Vec2 {
	return gui.Vec2{X: float32(d.Width), Y: float32(d.Height)}
}

// Add appends s on top of the other shapes and returns it.
func (d *Document) Add(s *Shape) *Shape {
	d.Shapes = append(d.Shapes, s)
	return s
}

// Remove deletes s. Removing the selected shape clears the selection.
func (d *Document) Remove(s *Shape) bool {
	i := slices.Index(d.Shapes, s)
	if i < 0 {
		return false
	}
	d.Shapes = slices.Delete(d.Shapes, i, i+1)
	if d.selected == s {
		d.selected = nil
	}
	return true
}

// Duplicate adds a copy of s offset by 20 units and returns it.
func (d *Document) Duplicate(s *Shape) *Shape {
	c := s.Clone()
	c.Bounds.X += 20
	c.Bounds.Y += 20
	return d.Add(c)
}

// Select makes s the selected shape. nil clears the selection.
func (d *Document) Select(s *Shape) {
	if s != nil && !slices.Contains(d.Shapes, s) {
		return
	}
	d.selected = s
}

// Selected returns the selected shape, or nil.
func (d *Document) Selected() *Shape { return d.selected }

// ShapeAt returns the topmost shape containing p, a point in virtual
// space, with each shape grown by margin.
func (d *Document) ShapeAt(p gui.Vec2, margin float32) *Shape {
	for i := len(d.Shapes) - 1; i >= 0; i-- {
		if d.Shapes[i].Contains(p, margin) {
			return d.Shapes[i]
		}
	}
	return nil
}

// Raise moves s one step towards the top.
func (d *Document) Raise(s *Shape) {
	i := slices.Index(d.Shapes, s)
	if i < 0 || i == len(d.Shapes)-1 {
		return
	}
	d.Shapes[i], d.Shapes[i+1] = d.Shapes[i+1], d.Shapes[i]
}

// Lower moves s one step towards the bottom.
func (d *Document) Lower(s *Shape) {
	i := slices.Index(d.Shapes, s)
	if i <= 0 {
		return
	}
	d.Shapes[i], d.Shapes[i-1] = d.Shapes[i-1], d.Shapes[i]
}

// EnterAll queues the enter animation of every shape.
func (d *Document) EnterAll() {
	for _, s := range d.Shapes {
		s.TriggerEnter()
	}
}

// ExitAll queues the exit animation of every shape.
func (d *Document) ExitAll() {
	for _, s := range d.Shapes {
		s.TriggerExit()
	}
}

// Draw renders every shape in order, advancing animations by dt.
func (d *Document) Draw(p *gui.Painter, dt float32) {
	for _, s := range d.Shapes {
		s.DrawAnimated(p, dt)
	}
}

// Clone returns a deep copy of s with idle animations.
func (s *Shape) Clone() *Shape {
	c := *s
	c.state, c.next, c.clock, c.hidden = shapeIdling, shapeIdling, 0, false
	c.Enter = s.Enter.clone()
	c.Exit = s.Exit.clone()
	return &c
}

func (a *Animation) clone() *Animation {
	if a == nil {
		return nil
	}
	c := *a
	c.state, c.target, c.ease, c.progress = AnimIdle, nil, nil, 0
	return &c
}
