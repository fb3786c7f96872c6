package scene_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/titlemaker/gui"
	"github.com/go-theft-auto/titlemaker/scene"
)

func sampleDocument() *scene.Document {
	doc := scene.NewDocument()

	bar := scene.NewRectangle()
	bar.Bounds = gui.Rect{X: 100, Y: 800, W: 900, H: 120}
	bar.Rotation = 0.5
	bar.Fill = scene.FillGradient
	bar.Colors = [2]gui.Color{{R: 0, G: 0, B: 0.5, A: 1}, {R: 0.25, G: 0.5, B: 1, A: 0.75}}
	bar.Stops = [2]gui.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}}
	bar.BorderWidth = 2
	bar.BorderRadius = 8
	bar.Enter = scene.NewAnimation(scene.AnimationReveal)
	bar.Enter.Direction = scene.FromBottom
	bar.Enter.Easing = "Out Cubic"
	bar.Exit = scene.NewAnimation(scene.AnimationFade)
	bar.Exit.Delay = 0.25
	bar.Exit.Zoom = true
	doc.Add(bar)

	title := scene.NewText()
	title.Bounds = gui.Rect{X: 120, Y: 820, W: 600, H: 70}
	title.Text = "Breaking: \"quotes\" and\nnewlines"
	title.FontSize = 48
	doc.Add(title)

	doc.Add(scene.NewEllipse())
	return doc
}

func TestCodecRoundTrip(t *testing.T) {
	for _, f := range []scene.Format{scene.FormatTOML, scene.FormatYAML} {
		t.Run(f.String(), func(t *testing.T) {
			doc := sampleDocument()

			var buf bytes.Buffer
			require.NoError(t, scene.Encode(&buf, doc, f))

			got, err := scene.Decode(&buf, f)
			require.NoError(t, err)
			assert.Equal(t, doc.Width, got.Width)
			assert.Equal(t, doc.Height, got.Height)
			assert.Equal(t, doc.Shapes, got.Shapes)
		})
	}
}

func TestCodecEnumsByName(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, scene.Encode(&buf, sampleDocument(), scene.FormatYAML))

	out := buf.String()
	assert.Contains(t, out, "kind: rectangle")
	assert.Contains(t, out, "kind: reveal")
	assert.Contains(t, out, "direction: bottom")
	assert.Contains(t, out, "fill: gradient")
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	_, err := scene.Decode(strings.NewReader("width = 1280\nheight = 720\nframerate = 30\n"), scene.FormatTOML)
	assert.Error(t, err)

	_, err = scene.Decode(strings.NewReader("width: 1280\nheight: 720\nframerate: 30\n"), scene.FormatYAML)
	assert.Error(t, err)

	_, err = scene.Decode(strings.NewReader("shapes:\n  - kind: triangle\n"), scene.FormatYAML)
	assert.Error(t, err)
}

func TestDecodeNormalizes(t *testing.T) {
	src := `
shapes:
  - kind: text
    text: hello
    enter:
      kind: fade
      delay: -1
      duration: -2
`
	doc, err := scene.Decode(strings.NewReader(src), scene.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, scene.DefaultWidth, doc.Width)
	assert.Equal(t, scene.DefaultHeight, doc.Height)
	require.Len(t, doc.Shapes, 1)

	s := doc.Shapes[0]
	assert.Equal(t, float32(30), s.FontSize)
	assert.Equal(t, float32(1), s.Bounds.W)
	assert.Equal(t, float32(1), s.Bounds.H)
	assert.Equal(t, float32(0), s.Enter.Delay)
	assert.Equal(t, float32(0), s.Enter.Duration)
}

func TestDecodeEmpty(t *testing.T) {
	doc, err := scene.Decode(strings.NewReader(""), scene.FormatYAML)
	require.NoError(t, err)
	assert.Empty(t, doc.Shapes)
	assert.Equal(t, scene.DefaultWidth, doc.Width)
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"title.toml", "title.yaml", "title.yml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			doc := sampleDocument()
			require.NoError(t, scene.Save(path, doc))

			got, err := scene.Load(path)
			require.NoError(t, err)
			assert.Equal(t, doc.Shapes, got.Shapes)
		})
	}
}

func TestUnsupportedFormat(t *testing.T) {
	err := scene.Save(filepath.Join(t.TempDir(), "title.json"), scene.NewDocument())
	assert.ErrorIs(t, err, scene.ErrUnsupportedFormat)

	_, err = scene.Load("title.xml")
	assert.ErrorIs(t, err, scene.ErrUnsupportedFormat)

	_, err = scene.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
