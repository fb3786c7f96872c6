package opengl

import (
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Rune ranges rasterized for text faces and for the icon face.
var (
	textRanges = [][2]rune{{0x20, 0x7e}, {0xa0, 0xff}, {0x2010, 0x2027}, {0x20ac, 0x20ac}}
	iconRanges = [][2]rune{{0x2100, 0x2bff}, {0xe000, 0xf8ff}, {0x1f300, 0x1f6ff}}
)

const (
	atlasWidth   = 1024
	atlasPadding = 2
)

// atlasGlyph is one rasterized glyph. Offsets are relative to the pen
// position and the top of the line box, in raster pixels.
type atlasGlyph struct {
	advance        float32
	x0, y0, x1, y1 float32
	u0, v0, u1, v1 float32
}

// atlas is a face rasterized at one pixel size into a coverage mask.
type atlas struct {
	mask       *image.Alpha
	glyphs     map[rune]atlasGlyph
	size       float32
	ascent     float32
	lineHeight float32
}

// buildAtlas parses a TrueType/OpenType font and rasterizes every glyph
// the font defines within ranges at size pixels.
func buildAtlas(data []byte, size float32, ranges [][2]rune) (*atlas, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	defer face.Close()

	m := face.Metrics()
	a := &atlas{
		glyphs:     make(map[rune]atlasGlyph),
		size:       size,
		ascent:     fix(m.Ascent),
		lineHeight: fix(m.Height),
	}

	type cell struct {
		r    rune
		dr   image.Rectangle
		adv  float32
		dest image.Point
	}
	var (
		buf   sfnt.Buffer
		cells []cell
	)
	for _, rg := range ranges {
		for r := rg[0]; r <= rg[1]; r++ {
			if idx, err := f.GlyphIndex(&buf, r); err != nil || idx == 0 {
				continue
			}
			dr, _, _, adv, ok := face.Glyph(fixed.Point26_6{}, r)
			if !ok {
				continue
			}
			cells = append(cells, cell{r: r, dr: dr, adv: fix(adv)})
		}
	}
	if len(cells) == 0 {
		return nil, fmt.Errorf("font has no glyphs in the requested ranges")
	}

	// Shelf packing: fixed width, rows as tall as their tallest glyph.
	x, y, rowH := atlasPadding, atlasPadding, 0
	for i := range cells {
		w, h := cells[i].dr.Dx(), cells[i].dr.Dy()
		if w == 0 || h == 0 {
			continue
		}
		if w+2*atlasPadding > atlasWidth {
			return nil, fmt.Errorf("glyph %U is %dpx wide, wider than the atlas", cells[i].r, w)
		}
		if x+w+atlasPadding > atlasWidth {
			x = atlasPadding
			y += rowH + atlasPadding
			rowH = 0
		}
		cells[i].dest = image.Pt(x, y)
		x += w + atlasPadding
		rowH = max(rowH, h)
	}
	height := y + rowH + atlasPadding
	a.mask = image.NewAlpha(image.Rect(0, 0, atlasWidth, height))

	aw, ah := float32(atlasWidth), float32(height)
	for _, c := range cells {
		g := atlasGlyph{advance: c.adv}
		if w, h := c.dr.Dx(), c.dr.Dy(); w > 0 && h > 0 {
			// The mask returned by Glyph is only valid until the next call.
			dr, mask, maskp, _, ok := face.Glyph(fixed.Point26_6{}, c.r)
			if !ok {
				continue
			}
			dst := image.Rectangle{Min: c.dest, Max: c.dest.Add(dr.Size())}
			draw.Draw(a.mask, dst, mask, maskp, draw.Src)

			g.x0, g.x1 = float32(dr.Min.X), float32(dr.Max.X)
			g.y0, g.y1 = float32(dr.Min.Y)+a.ascent, float32(dr.Max.Y)+a.ascent
			g.u0, g.v0 = float32(dst.Min.X)/aw, float32(dst.Min.Y)/ah
			g.u1, g.v1 = float32(dst.Max.X)/aw, float32(dst.Max.Y)/ah
		}
		a.glyphs[c.r] = g
	}
	return a, nil
}

func fix(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
