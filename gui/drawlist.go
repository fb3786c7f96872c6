package gui

import (
	"slices"
	"sync"
)

// Vertex is one corner of a triangle as the backend uploads it.
type Vertex struct {
	Pos      [2]float32
	TexCoord [2]float32
	Color    uint32 // 0xAABBGGRR, see Color.Packed
}

// DrawCmd is a run of indices sharing a clip rectangle and texture.
// VertexOffset is added to every index, which keeps them 16 bit.
type DrawCmd struct {
	ElemCount    uint32
	ClipRect     [4]float32 // x0, y0, x1, y1 in pixels
	TextureID    uint32     // 0 draws vertex colours only
	VertexOffset uint32
	IndexOffset  uint32
}

// DrawList collects the triangles of one frame, for the GUI or for the
// scene being rendered to the output. Painter is the only writer.
type DrawList struct {
	CmdBuffer []DrawCmd
	VtxBuffer []Vertex
	IdxBuffer []uint16

	clip    [4]float32
	texture uint32
	base    int // first vertex of the open command
}

var drawLists = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 4096),
			IdxBuffer: make([]uint16, 0, 8192),
			CmdBuffer: make([]DrawCmd, 0, 32),
		}
	},
}

// AcquireDrawList returns an empty list, reusing buffers from lists given
// back with ReleaseDrawList.
func AcquireDrawList() *DrawList {
	dl := drawLists.Get().(*DrawList)
	dl.Clear()
	return dl
}

func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawLists.Put(dl)
	}
}

// noClip is the clip rectangle in effect when no scissor is set.
var noClip = [4]float32{-1e9, -1e9, 1e9, 1e9}

// Clear empties the list and keeps its capacity.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clip = noClip
	dl.texture = 0
	dl.base = 0
}

// SetClipRect sets the scissor of the following primitives.
func (dl *DrawList) SetClipRect(x0, y0, x1, y1 float32) {
	clip := [4]float32{x0, y0, x1, y1}
	if clip != dl.clip {
		dl.clip = clip
		dl.split()
	}
}

func (dl *DrawList) ClipRect() [4]float32 { return dl.clip }

func (dl *DrawList) setTexture(id uint32) {
	if id != dl.texture {
		dl.texture = id
		dl.split()
	}
}

// split closes the open command and opens one with the current clip and
// texture.
func (dl *DrawList) split() {
	dl.close()
	dl.base = len(dl.VtxBuffer)
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.clip,
		TextureID:    dl.texture,
		VertexOffset: uint32(dl.base),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
}

func (dl *DrawList) close() {
	if n := len(dl.CmdBuffer); n > 0 {
		last := &dl.CmdBuffer[n-1]
		last.ElemCount = uint32(len(dl.IdxBuffer)) - last.IndexOffset
	}
}

// reserve appends verts and returns the index of the first one relative to
// the open command, starting a new command when the indices would no
// longer fit in 16 bits.
func (dl *DrawList) reserve(verts ...Vertex) uint16 {
	if len(dl.CmdBuffer) == 0 || len(dl.VtxBuffer)-dl.base+len(verts) > 0xFFFF {
		dl.split()
	}
	first := uint16(len(dl.VtxBuffer) - dl.base)
	dl.VtxBuffer = append(dl.VtxBuffer, verts...)
	return first
}

// AddConvexPoly fills a convex polygon as a triangle fan. Colours are per
// vertex, so gradients are interpolated across it.
func (dl *DrawList) AddConvexPoly(verts []Vertex) {
	if len(verts) < 3 {
		return
	}
	dl.setTexture(0)
	i0 := dl.reserve(verts...)
	for i := uint16(1); int(i) < len(verts)-1; i++ {
		dl.IdxBuffer = append(dl.IdxBuffer, i0, i0+i, i0+i+1)
	}
}

// AddStrip fills a band given as outer/inner vertex pairs
// (o0, i0, o1, i1, ...). A closed band joins the last pair to the first.
func (dl *DrawList) AddStrip(verts []Vertex, closed bool) {
	n := len(verts) / 2
	if n < 2 {
		return
	}
	dl.setTexture(0)
	i0 := dl.reserve(verts...)
	segs := n - 1
	if closed {
		segs = n
	}
	for i := range segs {
		a := i0 + uint16(i*2)
		b := i0 + uint16((i+1)%n*2)
		dl.IdxBuffer = append(dl.IdxBuffer, a, b, b+1, a, b+1, a+1)
	}
}

// AddImageQuad draws a textured quad. corners run clockwise from the one
// mapped to uv0, so a rotated quad keeps its image upright relative to it.
func (dl *DrawList) AddImageQuad(textureID uint32, corners [4]Vec2, uv0, uv1 Vec2, color uint32) {
	if color>>24 == 0 {
		return
	}
	dl.setTexture(textureID)
	uvs := [4][2]float32{{uv0.X, uv0.Y}, {uv1.X, uv0.Y}, {uv1.X, uv1.Y}, {uv0.X, uv1.Y}}
	var quad [4]Vertex
	for i, c := range corners {
		quad[i] = Vertex{Pos: [2]float32{c.X, c.Y}, TexCoord: uvs[i], Color: color}
	}
	i0 := dl.reserve(quad[:]...)
	dl.IdxBuffer = append(dl.IdxBuffer, i0, i0+1, i0+2, i0, i0+2, i0+3)
}

// Finalize closes the last command and drops empty ones. Backends call it
// before uploading.
func (dl *DrawList) Finalize() {
	dl.close()
	dl.CmdBuffer = slices.DeleteFunc(dl.CmdBuffer, func(c DrawCmd) bool { return c.ElemCount == 0 })
}
