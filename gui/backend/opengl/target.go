package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/titlemaker/gui"
)

// RenderTarget is an offscreen RGBA framebuffer. Draw lists rendered into
// it use the same top-left pixel space as the window, so the texture and
// ReadPixels come out bottom row first.
type RenderTarget struct {
	fbo, tex      uint32
	width, height int
	pixels        []byte
}

// NewRenderTarget allocates a width x height target and registers its
// texture with r as RGBA.
func NewRenderTarget(r *Renderer, width, height int) (*RenderTarget, error) {
	t := &RenderTarget{width: width, height: height}

	t.tex = newTexture(gl.LINEAR)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	var prev int32
	gl.GetIntegerv(gl.FRAMEBUFFER_BINDING, &prev)
	gl.GenFramebuffers(1, &t.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, t.fbo)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, t.tex, 0)
	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, uint32(prev))

	if status != gl.FRAMEBUFFER_COMPLETE {
		t.Delete()
		return nil, fmt.Errorf("render target %dx%d incomplete: status 0x%x", width, height, status)
	}
	r.RegisterRGBATexture(t.tex)
	return t, nil
}

// Texture returns the colour attachment, for drawing the target with
// gui.Context.Image and WithFlipY.
func (t *RenderTarget) Texture() uint32 { return t.tex }

// Size returns the target size in pixels.
func (t *RenderTarget) Size() (width, height int) { return t.width, t.height }

// Render clears the target to clear and draws dl into it with r. The
// window framebuffer, viewport and r's projection are restored afterwards.
func (t *RenderTarget) Render(r *Renderer, dl *gui.DrawList, clear gui.Color) error {
	var prevFBO int32
	var prevViewport [4]int32
	gl.GetIntegerv(gl.FRAMEBUFFER_BINDING, &prevFBO)
	gl.GetIntegerv(gl.VIEWPORT, &prevViewport[0])
	w, h := r.Size()

	gl.BindFramebuffer(gl.FRAMEBUFFER, t.fbo)
	gl.Viewport(0, 0, int32(t.width), int32(t.height))
	gl.Disable(gl.SCISSOR_TEST)
	gl.ClearColor(clear.R, clear.G, clear.B, clear.A)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	r.Resize(t.width, t.height)
	err := r.Render(dl)
	r.Resize(w, h)

	gl.BindFramebuffer(gl.FRAMEBUFFER, uint32(prevFBO))
	gl.Viewport(prevViewport[0], prevViewport[1], prevViewport[2], prevViewport[3])
	return err
}

// ReadPixels copies the target into memory as tightly packed RGBA rows,
// bottom row first. The slice is reused by the next call.
func (t *RenderTarget) ReadPixels() []byte {
	if need := t.width * t.height * 4; len(t.pixels) != need {
		t.pixels = make([]byte, need)
	}
	var prev int32
	gl.GetIntegerv(gl.READ_FRAMEBUFFER_BINDING, &prev)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, t.fbo)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(t.width), int32(t.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(t.pixels))
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, uint32(prev))
	return t.pixels
}

// Delete frees the framebuffer and its texture.
func (t *RenderTarget) Delete() {
	if t.fbo != 0 {
		gl.DeleteFramebuffers(1, &t.fbo)
		t.fbo = 0
	}
	if t.tex != 0 {
		gl.DeleteTextures(1, &t.tex)
		t.tex = 0
	}
}
