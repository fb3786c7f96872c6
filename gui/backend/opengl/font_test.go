package opengl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

func TestBuildAtlas(t *testing.T) {
	a, err := buildAtlas(goregular.TTF, 32, textRanges)
	require.NoError(t, err)

	assert.Equal(t, atlasWidth, a.mask.Bounds().Dx())
	assert.Greater(t, a.lineHeight, a.ascent)

	g, ok := a.glyphs['A']
	require.True(t, ok)
	assert.Greater(t, g.advance, float32(0))
	assert.Greater(t, g.x1, g.x0)
	assert.Greater(t, g.y1, g.y0)
	assert.True(t, g.u0 >= 0 && g.u1 <= 1 && g.v0 >= 0 && g.v1 <= 1)

	space, ok := a.glyphs[' ']
	require.True(t, ok)
	assert.Greater(t, space.advance, float32(0))
	assert.Equal(t, space.x0, space.x1)

	_, ok = a.glyphs[0x2615]
	assert.False(t, ok)
}

func TestBuildAtlasRejectsGarbage(t *testing.T) {
	_, err := buildAtlas([]byte("not a font"), 16, textRanges)
	assert.Error(t, err)
}

func TestAtlasFontScales(t *testing.T) {
	f, err := newAtlasFont(nil, goregular.TTF, 32, textRanges)
	require.NoError(t, err)

	m16 := f.MeasureText("Title", 16)
	m32 := f.MeasureText("Title", 32)
	assert.InDelta(t, m32.X/2, m16.X, 1e-3)
	assert.InDelta(t, f.LineHeight(32)/2, f.LineHeight(16), 1e-3)

	pos := f.GlyphPositions("ab", 10, 32)
	require.Len(t, pos, 2)
	assert.Equal(t, float32(10), pos[0].X)
	assert.Equal(t, pos[0].MaxX, pos[1].X)

	quads := f.GetGlyphQuads("a b", 0, 0, 32)
	assert.Len(t, quads, 2)
}

func TestAtlasFontFallback(t *testing.T) {
	regular, err := newAtlasFont(nil, goregular.TTF, 32, textRanges)
	require.NoError(t, err)
	bold, err := newAtlasFont(nil, gobold.TTF, 16, textRanges)
	require.NoError(t, err)
	bold.texture = 7

	// A rune only the fallback knows is drawn from the fallback's texture.
	delete(regular.atlas.glyphs, 'x')
	assert.False(t, regular.HasGlyph('x'))
	regular.fallback = bold
	assert.True(t, regular.HasGlyph('x'))

	quads := regular.GetGlyphQuads("x", 0, 0, 32)
	require.Len(t, quads, 1)
	assert.Equal(t, uint32(7), quads[0].TextureID)

	// Unknown runes draw as '?'.
	q := regular.GetGlyphQuads("一", 0, 0, 32)
	require.Len(t, q, 1)
	assert.Zero(t, q[0].TextureID)
}
