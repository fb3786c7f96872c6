// Command gen renders every widget and editor panel with sample data into
// an offscreen target and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/titlemaker/gui"
	"github.com/go-theft-auto/titlemaker/gui/backend/opengl"
	"github.com/go-theft-auto/titlemaker/output"
	"github.com/go-theft-auto/titlemaker/scene"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single widget screenshot to capture.
type screenshot struct {
	name   string                 // filename without extension
	width  int                    // image width
	height int                    // image height
	draw   func(ctx *gui.Context) // widget drawing function
	frames int                    // frames to render (0 = default 2)
}

var background = gui.RGB(0.12, 0.12, 0.14)

// targetRenderer sends GUI frames to an offscreen target instead of the
// window.
type targetRenderer struct {
	r *opengl.Renderer
	t *opengl.RenderTarget
}

func (tr targetRenderer) Render(dl *gui.DrawList) error { return tr.t.Render(tr.r, dl, background) }
func (tr targetRenderer) FontTextureID() uint32         { return tr.r.FontTextureID() }
func (tr targetRenderer) Resize(width, height int)      {}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(64, 64, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(64, 64)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	fonts, err := opengl.LoadFonts(renderer, opengl.FontFiles{})
	if err != nil {
		return err
	}
	defer fonts.Delete(renderer)

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		if err := capture(renderer, fonts, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, fonts gui.FontProvider, s screenshot, outDir string) error {
	target, err := opengl.NewRenderTarget(renderer, s.width, s.height)
	if err != nil {
		return err
	}
	defer target.Delete()

	// Fresh GUI per screenshot to avoid state leaking between captures.
	ui := gui.New(targetRenderer{r: renderer, t: target}, gui.WithFontProvider(fonts))

	frames := 2
	if s.frames > 0 {
		frames = s.frames
	}
	display := gui.Vec2{X: float32(s.width), Y: float32(s.height)}
	for range frames {
		ctx := ui.Begin(gui.NewInputState(), display, 1.0/60.0)
		ctx.PushBounds(gui.Rect{X: 12, Y: 12, W: display.X - 24, H: display.Y - 24})
		s.draw(ctx)
		ctx.PopBounds()
		if err := ui.End(); err != nil {
			return err
		}
	}

	f := output.Frame{Width: s.width, Height: s.height, Pix: target.ReadPixels(), BottomUp: true}
	return output.Snapshot(filepath.Join(outDir, s.name+".jpg"), f)
}

func sampleDocument() *scene.Document {
	doc := scene.NewDocument()
	bar := doc.Add(scene.NewRectangle())
	bar.Bounds = gui.Rect{X: 120, Y: 820, W: 1100, H: 120}
	bar.Fill = scene.FillGradient
	bar.Colors = [2]gui.Color{gui.RGB8(0x1d, 0x4e, 0x89, 1), gui.RGB8(0x0b, 0x1e, 0x3a, 1)}
	bar.BorderRadius = 12

	name := doc.Add(scene.NewText())
	name.Bounds = gui.Rect{X: 160, Y: 840, W: 900, H: 80}
	name.Text = "Jane Doe, Correspondent"
	name.FontSize = 56

	dot := doc.Add(scene.NewEllipse())
	dot.Bounds = gui.Rect{X: 1500, Y: 90, W: 160, H: 160}
	dot.Rotation = 0.3
	doc.Select(name)
	return doc
}

func buildScreenshots() []screenshot {
	checked, unchecked := true, false
	radioIdx := 1
	tabIdx := 0
	text := "Breaking news"
	empty := ""
	num := float32(42.5)
	color := gui.RGB8(0xe6, 0x39, 0x46, 1)
	popupIdx := 2

	return []screenshot{
		{
			name: "text", width: 400, height: 90,
			draw: func(ctx *gui.Context) {
				ctx.Text("Plain text", ctx.CutTop(22))
				ctx.Text("Title text", ctx.CutTop(30), gui.WithStyleName("title"))
				ctx.Text("Label text", ctx.CutTop(22), gui.WithStyleName("label"))
			},
		},
		{
			name: "buttons", width: 400, height: 120,
			draw: func(ctx *gui.Context) {
				ctx.Button("std", "Standard Button", ctx.CutTop(28))
				ctx.CutTop(8)
				ctx.Button("icon", "With Icon", ctx.CutTop(28), gui.WithIcon(gui.IconPlay))
				ctx.CutTop(8)
				row := ctx.CutTop(28)
				ctx.PushBounds(row)
				for i, ic := range []gui.Icon{gui.IconRectangle, gui.IconRecord, gui.IconDocumentText, gui.IconTrash} {
					ctx.IconButton(fmt.Sprintf("ib%d", i), ic, ctx.CutLeft(32))
					ctx.CutLeft(6)
				}
				ctx.Button("off", "Disabled", ctx.CutLeft(120), gui.WithDisabled(true))
				ctx.PopBounds()
			},
		},
		{
			name: "checkbox", width: 400, height: 80,
			draw: func(ctx *gui.Context) {
				ctx.Checkbox("cb1", "Enabled feature", ctx.CutTop(24), &checked)
				ctx.CutTop(6)
				ctx.Checkbox("cb2", "Disabled feature", ctx.CutTop(24), &unchecked)
			},
		},
		{
			name: "radio", width: 400, height: 60,
			draw: func(ctx *gui.Context) {
				ctx.RadioSelector("fill", ctx.CutTop(30), []gui.RadioButton{
					{Icon: gui.IconWaterdrop, Text: "Solid Color"},
					{Icon: gui.IconWaterdrops, Text: "Gradient"},
				}, &radioIdx)
			},
		},
		{
			name: "text_edit", width: 400, height: 80,
			draw: func(ctx *gui.Context) {
				ctx.TextEdit("te", ctx.CutTop(28), &text)
				ctx.CutTop(8)
				ctx.TextEdit("te_empty", ctx.CutTop(28), &empty, gui.WithPlaceholder("Placeholder"))
			},
		},
		{
			name: "number", width: 400, height: 60,
			draw: func(ctx *gui.Context) {
				ctx.Number("num", ctx.CutTop(28), &num, 0, 100, 0.5, gui.WithFormat("%.1f"), gui.WithLabel("Value:"))
			},
		},
		{
			name: "color_picker", width: 300, height: 200,
			draw: func(ctx *gui.Context) {
				ctx.ColorPicker("cp", ctx.CutTop(170), &color)
			},
		},
		{
			name: "tabs", width: 400, height: 120,
			draw: func(ctx *gui.Context) {
				_, h := ctx.Tabs("tabs", ctx.Peek(), []gui.MenuItem{
					{Icon: gui.IconGear, Text: "Options"},
					{Icon: gui.IconPlay, Text: "Animation"},
					{Icon: gui.IconVideo, Text: "Output"},
				}, &tabIdx)
				ctx.CutTop(h + 8)
				ctx.Text("Tab content", ctx.CutTop(22))
			},
		},
		{
			name: "panel", width: 300, height: 200,
			draw: func(ctx *gui.Context) {
				ctx.BeginPanel("scroll", ctx.Peek())
				for i := range 20 {
					ctx.Text(fmt.Sprintf("Line %d: scrollable content", i+1), ctx.CutTop(22))
				}
				ctx.EndPanel()
			},
		},
		{
			name: "popup", width: 300, height: 260, frames: 3,
			draw: func(ctx *gui.Context) {
				ctx.Button("ease", scene.EasingMenu[popupIdx], ctx.CutTop(26), gui.WithIcon(gui.IconList))
				ctx.ShowPopup("ease_menu")
				items := make([]gui.MenuItem, 8)
				for i := range items {
					items[i] = gui.MenuItem{Text: scene.EasingMenu[i]}
				}
				ctx.Popup("ease_menu", items, &popupIdx)
			},
		},
		{
			name: "toasts", width: 420, height: 220,
			draw: func() func(ctx *gui.Context) {
				var ts gui.ToastState
				ts.ToastInfo("Feed on ws://127.0.0.1:5960/feed")
				ts.ToastSuccess("Snapshot saved")
				ts.ToastWarning("Frame dropped")
				ts.ToastError("open title.toml: no such file")
				return func(ctx *gui.Context) {
					ts.Update(ctx.DeltaTime)
					ctx.DrawToasts(&ts)
				}
			}(),
			frames: 20,
		},
		{
			name: "options_panel", width: 340, height: 560,
			draw: func() func(ctx *gui.Context) {
				doc := sampleDocument()
				doc.Select(doc.Shapes[0])
				return func(ctx *gui.Context) { scene.OptionsPanel(ctx, doc) }
			}(),
		},
		{
			name: "animation_panel", width: 340, height: 420,
			draw: func() func(ctx *gui.Context) {
				doc := sampleDocument()
				s := doc.Selected()
				enter := scene.NewAnimation(scene.AnimationReveal)
				enter.Easing = "Out Cubic"
				s.SetAnimation(scene.SlotEnter, enter)
				s.SetAnimation(scene.SlotExit, scene.NewAnimation(scene.AnimationFade))
				return func(ctx *gui.Context) { scene.AnimationPanel(ctx, doc) }
			}(),
		},
		{
			name: "viewport", width: 640, height: 360,
			draw: func() func(ctx *gui.Context) {
				doc := sampleDocument()
				vp := scene.Viewport{Snapper: scene.NewSnapper(scene.DefaultSnapConfig)}
				return func(ctx *gui.Context) {
					b := ctx.Peek()
					p := ctx.Painter()
					p.Save()
					p.IntersectScissor(b.X, b.Y, b.W, b.H)
					p.Translate(b.X, b.Y)
					p.Scale(b.W/float32(doc.Width), b.H/float32(doc.Height))
					doc.Draw(p, 0)
					p.Restore()
					vp.Update(ctx, "viewport", b, doc)
				}
			}(),
		},
	}
}
