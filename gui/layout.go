package gui

// DefaultColumnGap is the spacing SliceHorizontal leaves between columns.
const DefaultColumnGap float32 = 6

// LayoutStack tracks the free area of nested containers.
//
// The top rectangle is the space left in the current container. Cut*
// calls split a strip off one of its edges and keep the remainder on the
// stack, so successive cuts tile the container without overlap:
//
//	header := layout.CutTop(32)
//	sidebar := layout.CutLeft(200)
//	content := layout.Peek()
//
// The stack always keeps its root: PopBounds on the last rectangle
// returns it without removing it.
type LayoutStack struct {
	rects []Rect
}

// NewLayoutStack returns a stack holding root.
func NewLayoutStack(root Rect) *LayoutStack {
	s := &LayoutStack{rects: make([]Rect, 0, 16)}
	s.rects = append(s.rects, root)
	return s
}

// Reset discards everything and makes root the only rectangle.
func (s *LayoutStack) Reset(root Rect) {
	s.rects = append(s.rects[:0], root)
}

// Clear empties the stack. Cutting afterwards panics until Reset.
func (s *LayoutStack) Clear() {
	s.rects = s.rects[:0]
}

// Len returns the number of rectangles on the stack.
func (s *LayoutStack) Len() int { return len(s.rects) }

// PushBounds starts a nested region.
func (s *LayoutStack) PushBounds(r Rect) {
	s.rects = append(s.rects, r)
}

// PopBounds ends a nested region and returns what was left of it.
func (s *LayoutStack) PopBounds() Rect {
	n := len(s.rects)
	if n == 0 {
		panic("layout stack is empty")
	}
	r := s.rects[n-1]
	if n > 1 {
		s.rects = s.rects[:n-1]
	}
	return r
}

// Peek returns the free area of the current region.
func (s *LayoutStack) Peek() Rect {
	if len(s.rects) == 0 {
		panic("layout stack is empty")
	}
	return s.rects[len(s.rects)-1]
}

func (s *LayoutStack) top() *Rect {
	if len(s.rects) == 0 {
		panic("layout stack is empty")
	}
	return &s.rects[len(s.rects)-1]
}

// CutTop removes a strip of height h from the top of the free area.
func (s *LayoutStack) CutTop(h float32) Rect {
	parent := s.top()
	cut := Rect{X: parent.X, Y: parent.Y, W: parent.W, H: h}
	parent.Y += h
	parent.H -= h
	return cut
}

// CutBottom removes a strip of height h from the bottom of the free area.
func (s *LayoutStack) CutBottom(h float32) Rect {
	parent := s.top()
	parent.H -= h
	return Rect{X: parent.X, Y: parent.Y + parent.H, W: parent.W, H: h}
}

// CutLeft removes a strip of width w from the left of the free area.
func (s *LayoutStack) CutLeft(w float32) Rect {
	parent := s.top()
	cut := Rect{X: parent.X, Y: parent.Y, W: w, H: parent.H}
	parent.X += w
	parent.W -= w
	return cut
}

// CutRight removes a strip of width w from the right of the free area.
func (s *LayoutStack) CutRight(w float32) Rect {
	parent := s.top()
	parent.W -= w
	return Rect{X: parent.X + parent.W, Y: parent.Y, W: w, H: parent.H}
}

// SliceHorizontal cuts a band of the given height and splits it into
// columns equal-width cells separated by DefaultColumnGap.
func (s *LayoutStack) SliceHorizontal(height float32, columns int) []Rect {
	return s.SliceHorizontalGap(height, columns, DefaultColumnGap)
}

// SliceHorizontalGap is SliceHorizontal with an explicit gap. Each cell
// is the column width minus the gap; the gap follows every cell.
func (s *LayoutStack) SliceHorizontalGap(height float32, columns int, gap float32) []Rect {
	band := s.CutTop(height)
	if columns <= 0 {
		return nil
	}
	s.PushBounds(band)
	defer s.PopBounds()

	colW := band.W / float32(columns)
	cells := make([]Rect, 0, columns)
	for i := 0; i < columns && s.Peek().W > 0; i++ {
		cells = append(cells, s.CutLeft(colW-gap))
		s.CutLeft(gap)
	}
	return cells
}

// Layout calls on the Context operate on the frame's stack, whose root is
// the display rectangle.

// CutTop removes a strip from the top of the current free area.
func (ctx *Context) CutTop(h float32) Rect { return ctx.layout.CutTop(h) }

// CutBottom removes a strip from the bottom of the current free area.
func (ctx *Context) CutBottom(h float32) Rect { return ctx.layout.CutBottom(h) }

// CutLeft removes a strip from the left of the current free area.
func (ctx *Context) CutLeft(w float32) Rect { return ctx.layout.CutLeft(w) }

// CutRight removes a strip from the right of the current free area.
func (ctx *Context) CutRight(w float32) Rect { return ctx.layout.CutRight(w) }

// PushBounds starts a nested layout region.
func (ctx *Context) PushBounds(r Rect) { ctx.layout.PushBounds(r) }

// PopBounds ends the current nested region.
func (ctx *Context) PopBounds() Rect { return ctx.layout.PopBounds() }

// Peek returns the current free area.
func (ctx *Context) Peek() Rect { return ctx.layout.Peek() }

// SliceHorizontal splits a band into columns with the default gap.
func (ctx *Context) SliceHorizontal(height float32, columns int) []Rect {
	return ctx.layout.SliceHorizontal(height, columns)
}

// SliceHorizontalGap splits a band into columns separated by gap.
func (ctx *Context) SliceHorizontalGap(height float32, columns int, gap float32) []Rect {
	return ctx.layout.SliceHorizontalGap(height, columns, gap)
}

// Layout exposes the frame's layout stack.
func (ctx *Context) Layout() *LayoutStack { return ctx.layout }
