package gui

import (
	"image"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// BasicFont draws text with the fixed 7x13 face bundled with x/image.
// It is the fallback used when no FontProvider is configured, and the
// face tests measure against, since it needs no files.
//
// Glyphs outside printable ASCII go through asciiFallback, so icons
// degrade to a representative ASCII character.
type BasicFont struct {
	face    *basicfont.Face
	texture uint32
}

// NewBasicFont returns the built-in face drawing from textureID, which
// must hold BasicFontAtlas uploaded as a single-channel texture.
func NewBasicFont(textureID uint32) *BasicFont {
	return &BasicFont{face: basicfont.Face7x13, texture: textureID}
}

// BasicFontAtlas returns the glyph mask the renderer uploads.
func BasicFontAtlas() image.Image {
	return basicfont.Face7x13.Mask
}

// Font implements FontProvider: every name resolves to the same face.
func (f *BasicFont) Font(string) Font { return f }

func (f *BasicFont) TextureID() uint32 { return f.texture }

func (f *BasicFont) HasGlyph(r rune) bool {
	_, ok := f.face.GlyphAdvance(asciiFallback(r))
	return ok
}

func (f *BasicFont) scale(size float32) float32 {
	return size / float32(f.face.Height)
}

func (f *BasicFont) advance(size float32) float32 {
	return float32(f.face.Advance) * f.scale(size)
}

func (f *BasicFont) MeasureText(text string, size float32) FontVec2 {
	n := 0
	for range text {
		n++
	}
	return FontVec2{X: float32(n) * f.advance(size), Y: f.LineHeight(size)}
}

func (f *BasicFont) LineHeight(size float32) float32 {
	return float32(f.face.Height) * f.scale(size)
}

func (f *BasicFont) GlyphPositions(text string, x, size float32) []GlyphPosition {
	adv := f.advance(size)
	out := make([]GlyphPosition, 0, len(text))
	pen := x
	for i := range text {
		out = append(out, GlyphPosition{Index: i, X: pen, MinX: pen, MaxX: pen + adv})
		pen += adv
	}
	return out
}

func (f *BasicFont) GetGlyphQuads(text string, x, y, size float32) []FontGlyphQuad {
	s := f.scale(size)
	atlasH := float32(f.face.Mask.Bounds().Dy())
	cellH := float32(f.face.Ascent + f.face.Descent)
	quads := make([]FontGlyphQuad, 0, len(text))
	pen := x
	for _, r := range text {
		r = asciiFallback(r)
		_, _, maskp, advance, _ := f.face.Glyph(fixed.P(0, f.face.Ascent), r)
		if r != ' ' {
			x0 := pen + float32(f.face.Left)*s
			quads = append(quads, FontGlyphQuad{
				X0: x0, Y0: y,
				X1: x0 + float32(f.face.Width)*s, Y1: y + cellH*s,
				U0: 0, V0: float32(maskp.Y) / atlasH,
				U1: 1, V1: (float32(maskp.Y) + cellH) / atlasH,
			})
		}
		pen += float32(advance.Round()) * s
	}
	return quads
}

// asciiFallback maps a rune the basic face lacks to a look-alike in
// printable ASCII, or '?'.
func asciiFallback(r rune) rune {
	if r >= ' ' && r <= '~' {
		return r
	}
	switch r {
	case '→', '▶', '►', '▸':
		return '>'
	case '←', '◀', '◄', '◂':
		return '<'
	case '↓', '▼', '▾':
		return 'v'
	case '↑', '▲', '▴':
		return '^'
	case '•', '●', '◆':
		return '*'
	case '✓', '✔':
		return '+'
	case '✗', '✘', '×':
		return 'x'
	case '–', '—', '−':
		return '-'
	case '“', '”', '„':
		return '"'
	case '‘', '’':
		return '\''
	case '…':
		return '.'
	}
	return '?'
}
