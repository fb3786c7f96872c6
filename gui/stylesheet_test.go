package gui_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/titlemaker/gui"
)

func TestStyleSheetInheritance(t *testing.T) {
	sheet, err := gui.ParseStyleSheet("btn { color: #FF0000; font-size: 16; }\nbtn2 { @btn; font-size: 20; }")
	require.NoError(t, err)

	btn, _ := sheet.Element("btn", gui.Rect{W: 10, H: 10})
	btn2, _ := sheet.Element("btn2", gui.Rect{W: 10, H: 10})

	assert.Equal(t, float32(16), btn.FontSize)
	assert.Equal(t, float32(20), btn2.FontSize)
	require.NotNil(t, btn2.Text)
	assert.Equal(t, gui.RGB(1, 0, 0), btn2.TextColor())
	assert.Equal(t, gui.RGB(1, 0, 0), btn.TextColor())
}

func TestStyleSheetRejects(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"unknown property", "a { colour: #ffffff; }", gui.ErrUnknownProperty},
		{"wrong kind", "a { font-size: #ffffff; }", gui.ErrPropertyValue},
		{"bad enum", "a { text-align: justify; }", gui.ErrPropertyValue},
		{"short hex", "a { color: #fff; }", gui.ErrStyleSyntax},
		{"missing value", "a { color: ; }", gui.ErrStyleSyntax},
		{"unknown function", "a { background: sparkle(1); }", gui.ErrUnknownFunction},
		{"forward parent", "a { @b; } b { color: #000000; }", gui.ErrUnknownParent},
		{"unterminated", "a { color: #000000;", gui.ErrStyleSyntax},
		{"bad gradient arity", "a { background: gradient(0, 0, 1); }", gui.ErrPropertyValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := gui.ParseStyleSheet(tt.src)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestStyleSheetFailedParseKeepsSheet(t *testing.T) {
	sheet, err := gui.ParseStyleSheet("a { font-size: 12; }")
	require.NoError(t, err)
	v := sheet.Version()

	err = sheet.Parse("a { font-size: 30; } b { nope: 1; }")
	require.Error(t, err)
	assert.Equal(t, v, sheet.Version())

	el, _ := sheet.Element("a", gui.Rect{})
	assert.Equal(t, float32(12), el.FontSize)
}

func TestStyleSheetColorFunctions(t *testing.T) {
	sheet, err := gui.ParseStyleSheet(`
		a { color: rgba(255, 0, 0, 0.5); }
		b { color: hsl(0.3333333, 1, 0.5); }
	`)
	require.NoError(t, err)

	a, _ := sheet.Element("a", gui.Rect{})
	assert.Equal(t, gui.Color{R: 1, A: 0.5}, a.TextColor())

	b, _ := sheet.Element("b", gui.Rect{})
	c := b.TextColor()
	assert.InDelta(t, 0, c.R, 1e-4)
	assert.InDelta(t, 1, c.G, 1e-4)
	assert.InDelta(t, 0, c.B, 1e-4)
}

func TestStyleSheetGradientUsesBounds(t *testing.T) {
	sheet, err := gui.ParseStyleSheet("g { background: gradient(0, 0, 0, 1, #000000, #ffffff); }")
	require.NoError(t, err)

	el, _ := sheet.Element("g", gui.Rect{X: 50, Y: 50, W: 20, H: 40})
	require.NotNil(t, el.Background)
	assert.Equal(t, gui.PaintLinearGradient, el.Background.Kind)
	assert.Equal(t, gui.Vec2{X: 0, Y: 40}, el.Background.End)
}

func TestStyleSheetCustomFunction(t *testing.T) {
	sheet := gui.NewStyleSheet()
	sheet.RegisterFunction("solid", func(args []gui.Value, _ gui.Rect) (gui.Paint, error) {
		return gui.SolidPaint(args[0].Color), nil
	})
	require.NoError(t, sheet.Parse("s { background: solid(#00ff00); }"))

	el, _ := sheet.Element("s", gui.Rect{W: 1, H: 1})
	require.NotNil(t, el.Background)
	assert.Equal(t, gui.RGB(0, 1, 0), el.Background.Color)
}

func TestElementPaddingAndUnknownStyle(t *testing.T) {
	sheet, err := gui.ParseStyleSheet("p { padding: 1 2 3 4; border-radius: 5; }")
	require.NoError(t, err)

	bounds := gui.Rect{X: 10, Y: 10, W: 100, H: 50}
	el, inner := sheet.Element("p", bounds)
	assert.Equal(t, gui.Rect{X: 11, Y: 13, W: 97, H: 43}, inner)
	assert.Equal(t, [4]float32{5, 5, 5, 5}, el.BorderRadius)

	_, same := sheet.Element("missing", bounds)
	assert.Equal(t, bounds, same)
}

func TestElementCacheFollowsVersion(t *testing.T) {
	sheet, err := gui.ParseStyleSheet("a { font-size: 10; }")
	require.NoError(t, err)
	sheet.EnableCache()

	el, _ := sheet.Element("a", gui.Rect{})
	assert.Equal(t, float32(10), el.FontSize)

	require.NoError(t, sheet.Parse("a { font-size: 11; }"))
	el, _ = sheet.Element("a", gui.Rect{})
	assert.Equal(t, float32(11), el.FontSize)
}

func TestDefaultStyleSheetParses(t *testing.T) {
	sheet := gui.DefaultStyleSheet()
	for _, name := range []string{"button", "button_hover", "textedit_focus", "menu_item_hover", "tab_active", "scroll_thumb_active", "toast_error"} {
		_, ok := sheet.Style(name)
		assert.True(t, ok, name)
	}
}

func TestLoadStyleSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.sty")
	require.NoError(t, os.WriteFile(path, []byte("x { font-size: 9; }"), 0o644))

	sheet, err := gui.LoadStyleSheet(path)
	require.NoError(t, err)
	assert.Equal(t, 1, sheet.Len())

	_, err = gui.LoadStyleSheet(filepath.Join(t.TempDir(), "missing.sty"))
	assert.Error(t, err)
}
