package gui

// Named faces every FontProvider is expected to serve.
const (
	FontNormal = "normal"
	FontBold   = "bold"
	FontItalic = "italic"
)

// FontProvider looks up faces by name. The opengl backend serves TTF
// atlases; BasicFont serves one face under every name.
type FontProvider interface {
	// Font returns the face registered under name, or nil.
	Font(name string) Font
}

// Font measures and lays out text in one face.
//
// Sizes are in pixels. Positions passed to GetGlyphQuads and
// GlyphPositions are the left edge and the top of the line box.
// Implementations with a fallback face (icons) resolve missing
// glyphs there; the quad then carries the fallback's texture.
type Font interface {
	TextureID() uint32
	// HasGlyph reports whether the face or its fallback can draw r.
	HasGlyph(r rune) bool
	// MeasureText returns the advance width and line height of text.
	MeasureText(text string, size float32) FontVec2
	// GetGlyphQuads lays text out for drawing. The slice may be reused
	// by the next call.
	GetGlyphQuads(text string, x, y, size float32) []FontGlyphQuad

	// GlyphPositions reports where every rune of text lands when drawn
	// at x. Rendering and hit-testing use the same call so caret
	// placement matches the pixels on screen.
	GlyphPositions(text string, x, size float32) []GlyphPosition

	LineHeight(size float32) float32
}

type FontVec2 struct {
	X, Y float32
}

// FontGlyphQuad places one glyph: screen corners, then atlas UVs.
type FontGlyphQuad struct {
	X0, Y0, X1, Y1 float32
	U0, V0, U1, V1 float32

	// TextureID overrides the font texture when non-zero.
	TextureID uint32
}

// GlyphPosition locates one rune of a measured string.
type GlyphPosition struct {
	Index      int     // byte offset of the rune in the string
	X          float32 // pen position before the rune
	MinX, MaxX float32 // horizontal ink/advance extent
}

func (g GlyphPosition) Width() float32 { return g.MaxX - g.MinX }
