package scene

import (
	"github.com/chewxy/math32"

	"github.com/go-theft-auto/titlemaker/gui"
)

// SnapConfig configures snapping of dragged shapes. Margins are in
// virtual units; zero disables that kind of snapping.
type SnapConfig struct {
	Enabled     bool    `toml:"enabled"`
	EdgeMargin  float32 `toml:"edge_margin"`  // canvas edges and centre lines
	ShapeMargin float32 `toml:"shape_margin"` // edges and centres of the other shapes
}

// DefaultSnapConfig snaps within 8 units of the canvas and other shapes.
var DefaultSnapConfig = SnapConfig{Enabled: true, EdgeMargin: 8, ShapeMargin: 8}

// SnapGuide is a guide line in virtual space shown while a shape is held
// snapped to it.
type SnapGuide struct {
	From, To   gui.Vec2
	Horizontal bool
}

// Snapper aligns a dragged shape's bounding box with the canvas and with
// the other shapes. Snapping uses axis-aligned bounds and ignores rotation.
type Snapper struct {
	Config SnapConfig
	guides []SnapGuide
}

// NewSnapper returns a snapper using config.
func NewSnapper(config SnapConfig) *Snapper {
	return &Snapper{Config: config, guides: make([]SnapGuide, 0, 2)}
}

// axisTarget is a coordinate a shape edge or centre may snap to.
type axisTarget struct {
	at     float32
	margin float32
}

// snapAxis moves the span [lo, lo+size] so its start, centre or end lands
// on the nearest target within that target's margin.
func snapAxis(lo, size float32, targets []axisTarget) (newLo, at float32, ok bool) {
	anchors := [3]float32{0, size * 0.5, size}
	best := math32.Inf(1)
	newLo = lo
	for _, t := range targets {
		if t.margin <= 0 {
			continue
		}
		for _, a := range anchors {
			d := math32.Abs(lo + a - t.at)
			if d < t.margin && d < best {
				best = d
				newLo = t.at - a
				at = t.at
				ok = true
			}
		}
	}
	return newLo, at, ok
}

// Snap returns the snapped top-left corner for b, given the bounds of the
// other shapes and the canvas size, and records the guides to draw.
func (sn *Snapper) Snap(b gui.Rect, others []gui.Rect, canvas gui.Vec2) gui.Vec2 {
	sn.guides = sn.guides[:0]
	if !sn.Config.Enabled {
		return b.Location()
	}

	em, sm := sn.Config.EdgeMargin, sn.Config.ShapeMargin
	xs := []axisTarget{{0, em}, {canvas.X * 0.5, em}, {canvas.X, em}}
	ys := []axisTarget{{0, em}, {canvas.Y * 0.5, em}, {canvas.Y, em}}
	for _, o := range others {
		xs = append(xs, axisTarget{o.X, sm}, axisTarget{o.X + o.W*0.5, sm}, axisTarget{o.X + o.W, sm})
		ys = append(ys, axisTarget{o.Y, sm}, axisTarget{o.Y + o.H*0.5, sm}, axisTarget{o.Y + o.H, sm})
	}

	pos := b.Location()
	if x, at, ok := snapAxis(b.X, b.W, xs); ok {
		pos.X = x
		sn.guides = append(sn.guides, SnapGuide{
			From: gui.Vec2{X: at, Y: 0}, To: gui.Vec2{X: at, Y: canvas.Y},
		})
	}
	if y, at, ok := snapAxis(b.Y, b.H, ys); ok {
		pos.Y = y
		sn.guides = append(sn.guides, SnapGuide{
			From: gui.Vec2{X: 0, Y: at}, To: gui.Vec2{X: canvas.X, Y: at}, Horizontal: true,
		})
	}
	return pos
}

// Guides returns the guides recorded by the last Snap.
func (sn *Snapper) Guides() []SnapGuide { return sn.guides }

// ClearGuides forgets the recorded guides.
func (sn *Snapper) ClearGuides() { sn.guides = sn.guides[:0] }

// DrawGuides draws the active guides. p must be translated to the
// mapping's screen origin.
func (sn *Snapper) DrawGuides(p *gui.Painter, m Mapping) {
	if len(sn.guides) == 0 {
		return
	}
	guideColor := gui.SolidPaint(gui.RGB8(0, 180, 255, 0.6))
	for _, g := range sn.guides {
		p.StrokeLine(m.ToGui(g.From), m.ToGui(g.To), 1, guideColor)
	}
}
