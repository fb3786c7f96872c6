package opengl

import (
	"fmt"
	"os"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/go-theft-auto/titlemaker/gui"
)

// AtlasFont is a gui.Font drawing from a glyph atlas rasterized at a
// fixed size. Other sizes scale the quads. Runes missing from the face
// are looked up in the fallback face.
type AtlasFont struct {
	atlas    *atlas
	texture  uint32
	fallback *AtlasFont
}

var _ gui.Font = (*AtlasFont)(nil)

// newAtlasFont rasterizes data and uploads the atlas with r. A nil r
// skips the upload, leaving the texture ID zero.
func newAtlasFont(r *Renderer, data []byte, size float32, ranges [][2]rune) (*AtlasFont, error) {
	a, err := buildAtlas(data, size, ranges)
	if err != nil {
		return nil, err
	}
	f := &AtlasFont{atlas: a}
	if r != nil {
		f.texture = r.UploadAlpha(a.mask, true)
	}
	return f, nil
}

func (f *AtlasFont) TextureID() uint32 { return f.texture }

// lookup finds r in this face or its fallback, falling back to '?'.
func (f *AtlasFont) lookup(r rune) (atlasGlyph, *AtlasFont, bool) {
	if g, ok := f.atlas.glyphs[r]; ok {
		return g, f, true
	}
	if f.fallback != nil {
		if g, ok := f.fallback.atlas.glyphs[r]; ok {
			return g, f.fallback, true
		}
	}
	g, ok := f.atlas.glyphs['?']
	return g, f, ok
}

func (f *AtlasFont) HasGlyph(r rune) bool {
	if _, ok := f.atlas.glyphs[r]; ok {
		return true
	}
	return f.fallback != nil && f.fallback.HasGlyph(r)
}

func (f *AtlasFont) scale(size float32) float32 {
	return size / f.atlas.size
}

func (f *AtlasFont) LineHeight(size float32) float32 {
	return f.atlas.lineHeight * f.scale(size)
}

func (f *AtlasFont) MeasureText(text string, size float32) gui.FontVec2 {
	var w float32
	for _, r := range text {
		if g, owner, ok := f.lookup(r); ok {
			w += g.advance * owner.scale(size)
		}
	}
	return gui.FontVec2{X: w, Y: f.LineHeight(size)}
}

func (f *AtlasFont) GlyphPositions(text string, x, size float32) []gui.GlyphPosition {
	out := make([]gui.GlyphPosition, 0, len(text))
	pen := x
	for i, r := range text {
		var adv float32
		if g, owner, ok := f.lookup(r); ok {
			adv = g.advance * owner.scale(size)
		}
		out = append(out, gui.GlyphPosition{Index: i, X: pen, MinX: pen, MaxX: pen + adv})
		pen += adv
	}
	return out
}

func (f *AtlasFont) GetGlyphQuads(text string, x, y, size float32) []gui.FontGlyphQuad {
	quads := make([]gui.FontGlyphQuad, 0, len(text))
	pen := x
	for _, r := range text {
		g, owner, ok := f.lookup(r)
		if !ok {
			continue
		}
		s := owner.scale(size)
		// Centre fallback glyphs on this face's line box.
		top := y + (f.LineHeight(size)-owner.LineHeight(size))*0.5
		if g.x1 > g.x0 {
			q := gui.FontGlyphQuad{
				X0: pen + g.x0*s, Y0: top + g.y0*s,
				X1: pen + g.x1*s, Y1: top + g.y1*s,
				U0: g.u0, V0: g.v0, U1: g.u1, V1: g.v1,
			}
			if owner != f {
				q.TextureID = owner.texture
			}
			quads = append(quads, q)
		}
		pen += g.advance * s
	}
	return quads
}

// FontFiles names the font files of a FontSet. Empty text faces use the
// Go fonts bundled with x/image; an empty Icons leaves icons undrawn.
type FontFiles struct {
	Normal string `toml:"normal"`
	Bold   string `toml:"bold"`
	Italic string `toml:"italic"`
	Icons  string `toml:"icons"`
	// Size is the raster size in pixels.
	Size float32 `toml:"size"`
}

// FontSet is a gui.FontProvider serving the normal, bold and italic faces,
// each with the icon face as fallback.
type FontSet struct {
	faces map[string]*AtlasFont
}

var _ gui.FontProvider = (*FontSet)(nil)

// LoadFonts reads and rasterizes files. A named file that cannot be read
// or parsed is an error.
func LoadFonts(r *Renderer, files FontFiles) (*FontSet, error) {
	size := files.Size
	if size <= 0 {
		size = 32
	}

	var icons *AtlasFont
	if files.Icons != "" {
		data, err := os.ReadFile(files.Icons)
		if err != nil {
			return nil, fmt.Errorf("icon font: %w", err)
		}
		if icons, err = newAtlasFont(r, data, size, iconRanges); err != nil {
			return nil, fmt.Errorf("icon font %s: %w", files.Icons, err)
		}
	}

	set := &FontSet{faces: make(map[string]*AtlasFont, 3)}
	for _, face := range []struct {
		name, path string
		builtin    []byte
	}{
		{gui.FontNormal, files.Normal, goregular.TTF},
		{gui.FontBold, files.Bold, gobold.TTF},
		{gui.FontItalic, files.Italic, goitalic.TTF},
	} {
		data := face.builtin
		if face.path != "" {
			var err error
			if data, err = os.ReadFile(face.path); err != nil {
				return nil, fmt.Errorf("%s font: %w", face.name, err)
			}
		}
		f, err := newAtlasFont(r, data, size, textRanges)
		if err != nil {
			return nil, fmt.Errorf("%s font: %w", face.name, err)
		}
		f.fallback = icons
		set.faces[face.name] = f
	}
	return set, nil
}

// Font returns the face registered under name, or nil.
func (s *FontSet) Font(name string) gui.Font {
	if f, ok := s.faces[name]; ok {
		return f
	}
	return nil
}

// Delete frees the atlas textures.
func (s *FontSet) Delete(r *Renderer) {
	seen := map[uint32]bool{}
	for _, f := range s.faces {
		for _, t := range []*AtlasFont{f, f.fallback} {
			if t != nil && t.texture != 0 && !seen[t.texture] {
				seen[t.texture] = true
				r.DeleteTexture(t.texture)
			}
		}
	}
}
