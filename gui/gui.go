package gui

// Renderer draws a finished frame. The opengl backend implements it for a
// window; tests use a stub.
type Renderer interface {
	Render(dl *DrawList) error
	// FontTextureID is the texture of the built-in bitmap face.
	FontTextureID() uint32
	Resize(width, height int)
}

// GUI owns a Context and hands it out one frame at a time:
//
//	ctx := ui.Begin(input, size, dt)
//	ctx.Button("save", "Save", ctx.CutTop(28))
//	err := ui.End()
type GUI struct {
	renderer Renderer
	ctx      *Context
	cache    bool
}

type GUIOption func(*GUI)

// WithStyleSheet draws widgets with s instead of the embedded default
// theme.
func WithStyleSheet(s *StyleSheet) GUIOption {
	return func(g *GUI) { g.ctx.styles = s }
}

// WithFontProvider draws text with fp instead of the built-in 7x13 face.
func WithFontProvider(fp FontProvider) GUIOption {
	return func(g *GUI) { g.ctx.fonts = fp }
}

// WithStateEviction forgets the state of widgets that were not drawn for
// frames frames. Without it state is kept for the life of the GUI.
func WithStateEviction(frames uint64) GUIOption {
	return func(g *GUI) { g.ctx.evictAge = frames }
}

// WithIDCollisionCheck panics when two id strings hash to the same ID.
func WithIDCollisionCheck() GUIOption {
	return func(g *GUI) { g.ctx.ids = newIDRegistry() }
}

// WithElementCache keeps resolved style elements between frames.
func WithElementCache() GUIOption {
	return func(g *GUI) { g.cache = true }
}

func New(renderer Renderer, opts ...GUIOption) *GUI {
	g := &GUI{renderer: renderer, ctx: NewContext()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Begin starts a frame of displaySize pixels, deltaTime seconds after the
// previous one. The stylesheet and fonts fall back to their defaults here
// when none were configured.
func (g *GUI) Begin(input *InputState, displaySize Vec2, deltaTime float32) *Context {
	ctx := g.ctx
	ctx.DrawList = AcquireDrawList()
	ctx.FontTextureID = g.renderer.FontTextureID()

	if ctx.styles == nil {
		ctx.styles = DefaultStyleSheet()
		guiLogger.Debug("loaded default stylesheet", "styles", ctx.styles.Len())
	}
	if g.cache {
		ctx.styles.EnableCache()
	}
	if ctx.fonts == nil {
		ctx.fonts = NewBasicFont(ctx.FontTextureID)
	}
	ctx.beginFrame(input, displaySize, deltaTime)
	return ctx
}

// End finishes the frame started by Begin and renders it. Calling it
// without Begin does nothing.
func (g *GUI) End() error {
	ctx := g.ctx
	if ctx.DrawList == nil {
		return nil
	}
	ctx.endFrame()
	err := g.renderer.Render(ctx.DrawList)
	ReleaseDrawList(ctx.DrawList)
	ctx.DrawList = nil
	return err
}

// Context returns the context Begin hands out. Widgets may only be drawn
// with it between Begin and End.
func (g *GUI) Context() *Context { return g.ctx }

// StyleSheet returns the sheet in use. It is nil before the first Begin
// unless WithStyleSheet was given.
func (g *GUI) StyleSheet() *StyleSheet { return g.ctx.styles }

// Resize forwards a framebuffer size change to the renderer.
func (g *GUI) Resize(width, height int) { g.renderer.Resize(width, height) }
