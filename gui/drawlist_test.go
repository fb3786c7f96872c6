package gui_test

import (
	"testing"

	"github.com/go-theft-auto/titlemaker/gui"
)

func tri(c uint32) []gui.Vertex {
	return []gui.Vertex{
		{Pos: [2]float32{0, 0}, Color: c},
		{Pos: [2]float32{10, 0}, Color: c},
		{Pos: [2]float32{0, 10}, Color: c},
	}
}

func TestDrawListBatching(t *testing.T) {
	dl := gui.AcquireDrawList()
	defer gui.ReleaseDrawList(dl)

	dl.AddConvexPoly(tri(0xff0000ff))
	dl.AddConvexPoly(tri(0xff00ff00))
	dl.SetClipRect(0, 0, 5, 5)
	dl.SetClipRect(0, 0, 5, 5)
	dl.AddImageQuad(7, [4]gui.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}, gui.Vec2{}, gui.Vec2{X: 1, Y: 1}, 0xffffffff)
	// Transparent, then a clip nothing is drawn with.
	dl.AddImageQuad(7, [4]gui.Vec2{}, gui.Vec2{}, gui.Vec2{}, 0x00ffffff)
	dl.SetClipRect(1, 1, 2, 2)
	dl.Finalize()

	if len(dl.CmdBuffer) != 2 {
		t.Fatalf("commands = %d, want 2", len(dl.CmdBuffer))
	}
	first, second := dl.CmdBuffer[0], dl.CmdBuffer[1]
	if first.ElemCount != 6 || first.TextureID != 0 {
		t.Errorf("first = %+v, want 6 untextured indices", first)
	}
	if second.ElemCount != 6 || second.TextureID != 7 || second.ClipRect != [4]float32{0, 0, 5, 5} {
		t.Errorf("second = %+v", second)
	}
	if second.VertexOffset != 6 || second.IndexOffset != 6 {
		t.Errorf("second offsets = %d, %d; want 6, 6", second.VertexOffset, second.IndexOffset)
	}
	if len(dl.VtxBuffer) != 10 {
		t.Errorf("vertices = %d, want 10", len(dl.VtxBuffer))
	}
}

func TestDrawListSplitsBefore16BitOverflow(t *testing.T) {
	dl := gui.AcquireDrawList()
	defer gui.ReleaseDrawList(dl)

	strip := make([]gui.Vertex, 2000)
	for i := range strip {
		strip[i].Color = 0xffffffff
	}
	for range 40 {
		dl.AddStrip(strip, false)
	}
	dl.Finalize()

	if len(dl.CmdBuffer) < 2 {
		t.Fatalf("commands = %d, want a split", len(dl.CmdBuffer))
	}
	for _, cmd := range dl.CmdBuffer {
		end := cmd.IndexOffset + cmd.ElemCount
		for _, idx := range dl.IdxBuffer[cmd.IndexOffset:end] {
			if int(cmd.VertexOffset)+int(idx) >= len(dl.VtxBuffer) {
				t.Fatalf("index %d past the vertex buffer", idx)
			}
		}
	}
}

func TestDrawListClearResetsClip(t *testing.T) {
	dl := gui.AcquireDrawList()
	defer gui.ReleaseDrawList(dl)

	dl.SetClipRect(0, 0, 1, 1)
	dl.Clear()
	if got := dl.ClipRect(); got[2] < 1e8 {
		t.Errorf("clip after Clear = %v, want unbounded", got)
	}
}
