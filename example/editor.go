package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/go-theft-auto/titlemaker/gui"
	"github.com/go-theft-auto/titlemaker/output"
	"github.com/go-theft-auto/titlemaker/scene"
)

// Editor layout, in GUI pixels.
const (
	menuHeight    = 34
	toolbarWidth  = 44
	sidebarWidth  = 340
	statusHeight  = 22
	toolButton    = 36
	menuButtonGap = 4
)

var (
	sideTabs = []gui.MenuItem{
		{Icon: gui.IconGear, Text: "Options"},
		{Icon: gui.IconPlay, Text: "Animation"},
	}
	mainTabs = []gui.MenuItem{
		{Icon: gui.IconPencil, Text: "Editor"},
		{Icon: gui.IconVideo, Text: "Presentation"},
	}
)

// Editor is the title maker UI: a document edited through a viewport over
// the rendered output, with the inspector on the side and the output
// controls in the menu bar. It does not touch the GPU; the caller renders
// Scene into the canvas texture.
type Editor struct {
	cfg    Config
	logger *slog.Logger

	doc      *scene.Document
	path     string
	viewport scene.Viewport
	painter  *gui.Painter
	sceneDL  *gui.DrawList

	toasts  gui.ToastState
	actions *gui.ActionRegistry
	stream  *stream

	canvas       uint32
	wantSnapshot bool
}

// NewEditor returns an editor on an empty document. fonts may be nil.
func NewEditor(cfg Config, fonts gui.FontProvider, logger *slog.Logger) *Editor {
	e := &Editor{
		cfg:     cfg,
		logger:  logger,
		doc:     scene.NewDocument(),
		path:    cfg.Document,
		painter: gui.NewPainter(fonts),
		sceneDL: gui.AcquireDrawList(),
		stream:  newStream(cfg.Output, logger),
	}
	e.viewport.Snapper = scene.NewSnapper(cfg.Snap)
	e.registerActions()
	return e
}

// Document returns the document being edited.
func (e *Editor) Document() *scene.Document { return e.doc }

// SetCanvas sets the texture holding the rendered output.
func (e *Editor) SetCanvas(texture uint32) { e.canvas = texture }

func (e *Editor) registerActions() {
	e.actions = gui.NewActionRegistry()
	hasSelection := func() bool { return e.doc.Selected() != nil }

	e.actions.RegisterWithCondition("delete", gui.Hotkey{Key: gui.KeyDelete}, e.deleteSelected, hasSelection)
	e.actions.RegisterWithCondition("duplicate", gui.Hotkey{Key: gui.KeyD, Ctrl: true}, func() {
		e.doc.Select(e.doc.Duplicate(e.doc.Selected()))
	}, hasSelection)
	e.actions.Register("deselect", gui.Hotkey{Key: gui.KeyEscape}, func() { e.doc.Select(nil) })
	e.actions.Register("save", gui.Hotkey{Key: gui.KeyS, Ctrl: true}, e.save)
	e.actions.Register("open", gui.Hotkey{Key: gui.KeyO, Ctrl: true}, e.open)
	e.actions.Register("snapshot", gui.Hotkey{Key: gui.KeyF2}, func() { e.wantSnapshot = true })
	e.actions.Register("enter_all", gui.Hotkey{Key: gui.KeyF5}, func() { e.doc.EnterAll() })
	e.actions.Register("exit_all", gui.Hotkey{Key: gui.KeyF6}, func() { e.doc.ExitAll() })
}

func (e *Editor) deleteSelected() {
	if s := e.doc.Selected(); s != nil {
		e.doc.Remove(s)
	}
}

func (e *Editor) add(s *scene.Shape) {
	d := e.doc.VirtualSize()
	s.Bounds.X = (d.X - s.Bounds.W) / 2
	s.Bounds.Y = (d.Y - s.Bounds.H) / 2
	e.doc.Select(e.doc.Add(s))
}

func (e *Editor) save() {
	err := os.MkdirAll(filepath.Dir(e.path), 0o755)
	if err == nil {
		err = scene.Save(e.path, e.doc)
	}
	if err != nil {
		e.logger.Error("save document", "path", e.path, "error", err)
		e.toasts.ToastError(err.Error())
		return
	}
	e.toasts.ToastSuccess("Saved " + filepath.Base(e.path))
}

func (e *Editor) open() {
	doc, err := scene.Load(e.path)
	if err != nil {
		e.logger.Error("open document", "path", e.path, "error", err)
		e.toasts.ToastError(err.Error())
		return
	}
	doc.UI = e.doc.UI
	e.doc = doc
	e.viewport.Manipulator.Cancel()
	e.logger.Info("opened document", "path", e.path, "shapes", len(doc.Shapes))
	e.toasts.ToastSuccess("Opened " + filepath.Base(e.path))
}

// Scene draws the document at the output size and returns the draw list.
// The list is reused by the next call.
func (e *Editor) Scene(dt float32) *gui.DrawList {
	e.sceneDL.Clear()
	p := e.painter
	p.Begin(e.sceneDL)
	d := e.doc.VirtualSize()
	if d.X > 0 && d.Y > 0 {
		p.Scale(float32(e.cfg.Output.Width)/d.X, float32(e.cfg.Output.Height)/d.Y)
	}
	e.doc.Draw(p, dt)
	return e.sceneDL
}

// WantsFrame reports whether the caller should read the canvas back this
// step, for a snapshot or for the feed.
func (e *Editor) WantsFrame() bool {
	return e.wantSnapshot || e.stream.Running()
}

// HandleFrame takes the pixels read back from the canvas.
func (e *Editor) HandleFrame(f output.Frame) {
	e.stream.Publish(f)
	if !e.wantSnapshot {
		return
	}
	e.wantSnapshot = false

	name := "title-" + time.Now().Format("20060102-150405") + ".png"
	path := filepath.Join(e.cfg.Output.SnapshotDir, name)
	err := os.MkdirAll(e.cfg.Output.SnapshotDir, 0o755)
	if err == nil {
		err = output.Snapshot(path, f)
	}
	if err != nil {
		e.logger.Error("snapshot", "path", path, "error", err)
		e.toasts.ToastError(err.Error())
		return
	}
	e.logger.Info("snapshot", "path", path)
	e.toasts.ToastSuccess("Snapshot saved to " + name)
}

// Frame builds the editor UI for one frame.
func (e *Editor) Frame(ctx context.Context, ui *gui.Context) {
	e.toasts.Update(ui.DeltaTime)
	if err := e.stream.Failed(); err != nil {
		e.toasts.ToastError("Feed stopped: " + err.Error())
	}

	ui.PushBounds(gui.Rect{W: ui.DisplaySize.X, H: ui.DisplaySize.Y})
	e.menuBar(ctx, ui, ui.CutTop(menuHeight))
	e.statusBar(ui, ui.CutBottom(statusHeight))
	e.toolbar(ui, ui.CutLeft(toolbarWidth))
	e.sidebar(ui, ui.CutRight(sidebarWidth))
	e.mainArea(ui, ui.Peek())
	ui.PopBounds()

	e.actions.HandleActions(ui)
	ui.DrawToasts(&e.toasts)
}

// Close stops the feed and frees the scene draw list.
func (e *Editor) Close() {
	e.stream.Stop()
	gui.ReleaseDrawList(e.sceneDL)
	e.sceneDL = nil
}

func (e *Editor) menuBar(ctx context.Context, ui *gui.Context, bounds gui.Rect) {
	ui.PushBounds(bounds.Expand(-menuButtonGap))
	defer ui.PopBounds()

	if ui.Button("menu_snapshot", "Snapshot", ui.CutLeft(120), gui.WithIcon(gui.IconCamera)) {
		e.wantSnapshot = true
	}
	ui.CutLeft(menuButtonGap)

	if e.stream.Running() {
		if ui.Button("menu_feed", "Stop Feed", ui.CutLeft(120), gui.WithIcon(gui.IconStop)) {
			e.stream.Stop()
			e.toasts.ToastInfo("Feed stopped")
		}
	} else if ui.Button("menu_feed", "Start Feed", ui.CutLeft(120), gui.WithIcon(gui.IconRss)) {
		if err := e.stream.Start(ctx); err != nil {
			e.toasts.ToastError(err.Error())
		} else {
			e.toasts.ToastInfo("Feed on ws://" + e.cfg.Output.FeedAddr + "/feed")
		}
	}

	if ui.Button("menu_save", "Save", ui.CutRight(90), gui.WithIcon(gui.IconSave)) {
		e.save()
	}
	ui.CutRight(menuButtonGap)
	if ui.Button("menu_open", "Open", ui.CutRight(90), gui.WithIcon(gui.IconFolderOpen)) {
		e.open()
	}
	ui.CutRight(menuButtonGap)
	ui.TextEdit("menu_path", ui.CutRight(360), &e.path, gui.WithPlaceholder("document.toml"))
}

func (e *Editor) statusBar(ui *gui.Context, bounds gui.Rect) {
	feed := "feed off"
	if e.stream.Running() {
		feed = fmt.Sprintf("feed on %s, %d viewers", e.cfg.Output.FeedAddr, e.stream.Clients())
	}
	ui.Text(fmt.Sprintf("%dx%d  |  %d shapes  |  %s",
		e.doc.Width, e.doc.Height, len(e.doc.Shapes), feed), bounds, gui.WithStyleName("label"))
}

func (e *Editor) toolbar(ui *gui.Context, bounds gui.Rect) {
	ui.PushBounds(bounds.Expand(-menuButtonGap))
	defer ui.PopBounds()

	tools := []struct {
		id   string
		icon gui.Icon
		add  func() *scene.Shape
	}{
		{"tool_rect", gui.IconRectangle, scene.NewRectangle},
		{"tool_ellipse", gui.IconRecord, scene.NewEllipse},
		{"tool_text", gui.IconDocumentText, scene.NewText},
	}
	for _, t := range tools {
		if ui.IconButton(t.id, t.icon, ui.CutTop(toolButton)) {
			e.add(t.add())
		}
		ui.CutTop(menuButtonGap)
	}

	sel := e.doc.Selected()
	disabled := gui.WithDisabled(sel == nil)
	if ui.IconButton("tool_trash", gui.IconTrash, ui.CutBottom(toolButton), disabled) {
		e.deleteSelected()
	}
	ui.CutBottom(menuButtonGap)
	if ui.IconButton("tool_lower", gui.IconArrowBottom, ui.CutBottom(toolButton), disabled) {
		e.doc.Lower(sel)
	}
	ui.CutBottom(menuButtonGap)
	if ui.IconButton("tool_raise", gui.IconArrowUp, ui.CutBottom(toolButton), disabled) {
		e.doc.Raise(sel)
	}
}

func (e *Editor) sidebar(ui *gui.Context, bounds gui.Rect) {
	ui.PushBounds(bounds)
	defer ui.PopBounds()

	_, h := ui.Tabs("side_tabs", ui.Peek(), sideTabs, &e.doc.UI.SideTab)
	ui.CutTop(h)
	switch e.doc.UI.SideTab {
	case 0:
		scene.OptionsPanel(ui, e.doc)
	case 1:
		scene.AnimationPanel(ui, e.doc)
	}
}

func (e *Editor) mainArea(ui *gui.Context, bounds gui.Rect) {
	ui.PushBounds(bounds)
	defer ui.PopBounds()

	_, h := ui.Tabs("main_tabs", ui.Peek(), mainTabs, &e.doc.UI.MainTab)
	ui.CutTop(h)

	if e.doc.UI.MainTab == 1 {
		ui.PushBounds(ui.CutBottom(toolButton))
		if ui.Button("present_enter", "Enter All", ui.CutLeft(140), gui.WithIcon(gui.IconPlay)) {
			e.doc.EnterAll()
		}
		ui.CutLeft(menuButtonGap)
		if ui.Button("present_exit", "Exit All", ui.CutLeft(140), gui.WithIcon(gui.IconStop)) {
			e.doc.ExitAll()
		}
		ui.PopBounds()
	}

	size := gui.Vec2{X: float32(e.cfg.Output.Width), Y: float32(e.cfg.Output.Height)}
	img := ui.Image(e.canvas, size, ui.Peek(), gui.WithFlipY())
	if e.doc.UI.MainTab == 0 {
		e.viewport.Update(ui, "viewport", img, e.doc)
	}
}
