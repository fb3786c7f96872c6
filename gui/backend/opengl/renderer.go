// Package opengl draws gui draw lists with OpenGL 4.1 and provides the
// GLFW input glue, font atlases and offscreen render targets the editor
// needs.
package opengl

import (
	"fmt"
	"image"
	"image/draw"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/titlemaker/gui"
)

// texKind selects how the fragment shader samples a texture.
type texKind int32

const (
	texNone  texKind = iota // untextured, vertex colour only
	texMask                 // R channel is coverage, tinted by the vertex colour
	texColor                // RGBA modulated by the vertex colour
)

const vertexShader = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aUV;
layout (location = 2) in vec4 aColor;

uniform mat4 uProjection;

out vec2 vUV;
out vec4 vColor;

void main() {
    gl_Position = uProjection * vec4(aPos, 0.0, 1.0);
    vUV = aUV;
    vColor = aColor;
}
` + "\x00"

const fragmentShader = `
#version 410 core
in vec2 vUV;
in vec4 vColor;

uniform sampler2D uTexture;
uniform int uKind;

out vec4 fragColor;

void main() {
    if (uKind == 1) {
        fragColor = vec4(vColor.rgb, vColor.a * texture(uTexture, vUV).r);
    } else if (uKind == 2) {
        fragColor = texture(uTexture, vUV) * vColor;
    } else {
        fragColor = vColor;
    }
}
` + "\x00"

// Renderer uploads and draws gui.DrawLists. Textures it has not been told
// about are treated as coverage masks.
type Renderer struct {
	program  uint32
	vao      uint32
	vbo, ebo uint32
	fontTex  uint32

	uProjection int32
	uTexture    int32
	uKind       int32

	width, height int
	kinds         map[uint32]texKind
}

// NewRenderer compiles the shader and sets up the vertex layout for a
// width x height framebuffer. It needs a current GL context.
func NewRenderer(width, height int) (*Renderer, error) {
	program, err := linkProgram(vertexShader, fragmentShader)
	if err != nil {
		return nil, fmt.Errorf("gui shader: %w", err)
	}
	r := &Renderer{
		program: program,
		width:   width,
		height:  height,
		kinds:   make(map[uint32]texKind),
	}
	r.uProjection = gl.GetUniformLocation(program, gl.Str("uProjection\x00"))
	r.uTexture = gl.GetUniformLocation(program, gl.Str("uTexture\x00"))
	r.uKind = gl.GetUniformLocation(program, gl.Str("uKind\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	var v gui.Vertex
	stride := int32(unsafe.Sizeof(v))
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, unsafe.Offsetof(v.Pos))
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, unsafe.Offsetof(v.TexCoord))
	gl.VertexAttribPointerWithOffset(2, 4, gl.UNSIGNED_BYTE, true, stride, unsafe.Offsetof(v.Color))
	for i := uint32(0); i < 3; i++ {
		gl.EnableVertexAttribArray(i)
	}
	gl.BindVertexArray(0)

	r.fontTex = r.uploadBuiltinFont()
	return r, nil
}

// FontTextureID returns the texture of the built-in bitmap face.
func (r *Renderer) FontTextureID() uint32 { return r.fontTex }

// RegisterRGBATexture makes draw commands using textureID sample all four
// channels instead of treating red as coverage.
func (r *Renderer) RegisterRGBATexture(textureID uint32) {
	r.kinds[textureID] = texColor
}

// UnregisterRGBATexture forgets textureID, usually because it was deleted.
func (r *Renderer) UnregisterRGBATexture(textureID uint32) {
	delete(r.kinds, textureID)
}

// Resize sets the framebuffer size the projection and scissor boxes map to.
func (r *Renderer) Resize(width, height int) {
	r.width, r.height = width, height
}

func (r *Renderer) Size() (width, height int) { return r.width, r.height }

func (r *Renderer) kind(textureID uint32) texKind {
	if textureID == 0 {
		return texNone
	}
	if k, ok := r.kinds[textureID]; ok {
		return k
	}
	return texMask
}

// Render draws dl into the bound framebuffer. GL state it touches is put
// back afterwards, so it can run between the scene render and the swap.
func (r *Renderer) Render(dl *gui.DrawList) error {
	if dl == nil || len(dl.VtxBuffer) == 0 {
		return nil
	}
	dl.Finalize()

	saved := saveGLState()
	defer saved.restore()

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)

	gl.UseProgram(r.program)
	proj := ortho(float32(r.width), float32(r.height))
	gl.UniformMatrix4fv(r.uProjection, 1, false, &proj[0])
	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(r.uTexture, 0)

	gl.BindVertexArray(r.vao)
	defer gl.BindVertexArray(0)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(dl.VtxBuffer)*int(unsafe.Sizeof(gui.Vertex{})), gl.Ptr(dl.VtxBuffer), gl.STREAM_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(dl.IdxBuffer)*2, gl.Ptr(dl.IdxBuffer), gl.STREAM_DRAW)

	bound := ^uint32(0)
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount == 0 {
			continue
		}
		x, y, w, h, ok := scissorBox(cmd.ClipRect, r.height)
		if !ok {
			continue
		}
		gl.Scissor(x, y, w, h)

		if cmd.TextureID != bound {
			bound = cmd.TextureID
			gl.BindTexture(gl.TEXTURE_2D, bound)
			gl.Uniform1i(r.uKind, int32(r.kind(bound)))
		}
		gl.DrawElementsBaseVertexWithOffset(gl.TRIANGLES, int32(cmd.ElemCount), gl.UNSIGNED_SHORT,
			uintptr(cmd.IndexOffset)*2, int32(cmd.VertexOffset))
	}
	return nil
}

// scissorBox converts a top-left clip rectangle (x0, y0, x1, y1) into a GL
// scissor box, whose origin is the bottom-left corner of a framebuffer
// height pixels tall. ok is false when nothing of the clip is on screen.
func scissorBox(clip [4]float32, height int) (x, y, w, h int32, ok bool) {
	x = int32(clip[0])
	y = int32(float32(height) - clip[3])
	w = int32(clip[2] - clip[0])
	h = int32(clip[3] - clip[1])
	if x < 0 {
		w, x = w+x, 0
	}
	if y < 0 {
		h, y = h+y, 0
	}
	return x, y, w, h, w > 0 && h > 0
}

// ortho maps pixel coordinates with a top-left origin to clip space.
func ortho(width, height float32) [16]float32 {
	return [16]float32{
		2 / width, 0, 0, 0,
		0, -2 / height, 0, 0,
		0, 0, -1, 0,
		-1, 1, 0, 1,
	}
}

type glState struct {
	program                 int32
	blendSrc, blendDst      int32
	scissor                 [4]int32
	blend, depth, cull, cut bool
}

func saveGLState() glState {
	var s glState
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &s.program)
	gl.GetIntegerv(gl.BLEND_SRC_ALPHA, &s.blendSrc)
	gl.GetIntegerv(gl.BLEND_DST_ALPHA, &s.blendDst)
	gl.GetIntegerv(gl.SCISSOR_BOX, &s.scissor[0])
	s.blend = gl.IsEnabled(gl.BLEND)
	s.depth = gl.IsEnabled(gl.DEPTH_TEST)
	s.cull = gl.IsEnabled(gl.CULL_FACE)
	s.cut = gl.IsEnabled(gl.SCISSOR_TEST)
	return s
}

func (s glState) restore() {
	gl.UseProgram(uint32(s.program))
	gl.BlendFunc(uint32(s.blendSrc), uint32(s.blendDst))
	setCap(gl.BLEND, s.blend)
	setCap(gl.DEPTH_TEST, s.depth)
	setCap(gl.CULL_FACE, s.cull)
	setCap(gl.SCISSOR_TEST, s.cut)
	gl.Scissor(s.scissor[0], s.scissor[1], s.scissor[2], s.scissor[3])
}

func setCap(c uint32, on bool) {
	if on {
		gl.Enable(c)
	} else {
		gl.Disable(c)
	}
}

// Delete frees the shader, buffers and the built-in font texture.
func (r *Renderer) Delete() {
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// newTexture creates a bound, edge-clamped 2D texture.
func newTexture(filter int32) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	return tex
}

// UploadAlpha uploads a coverage mask. Glyph atlases are filtered with
// smooth set; pixel fonts without.
func (r *Renderer) UploadAlpha(img *image.Alpha, smooth bool) uint32 {
	filter := int32(gl.NEAREST)
	if smooth {
		filter = gl.LINEAR
	}
	b := img.Bounds()
	tex := newTexture(filter)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride))
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, int32(b.Dx()), int32(b.Dy()), 0, gl.RED, gl.UNSIGNED_BYTE,
		gl.Ptr(img.Pix[img.PixOffset(b.Min.X, b.Min.Y):]))
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	r.kinds[tex] = texMask
	return tex
}

// DeleteTexture frees a texture created by UploadAlpha.
func (r *Renderer) DeleteTexture(tex uint32) {
	delete(r.kinds, tex)
	gl.DeleteTextures(1, &tex)
}

func (r *Renderer) uploadBuiltinFont() uint32 {
	src := gui.BasicFontAtlas()
	mask, ok := src.(*image.Alpha)
	if !ok {
		b := src.Bounds()
		mask = image.NewAlpha(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(mask, mask.Bounds(), src, b.Min, draw.Src)
	}
	return r.UploadAlpha(mask, false)
}

func compileShader(kind uint32, src string) (uint32, error) {
	sh := gl.CreateShader(kind)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(sh, 1, csrc, nil)
	free()
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.TRUE {
		return sh, nil
	}
	var n int32
	gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &n)
	log := make([]byte, n+1)
	gl.GetShaderInfoLog(sh, n, nil, &log[0])
	gl.DeleteShader(sh)
	return 0, fmt.Errorf("compile: %s", log[:n])
}

func linkProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vs, err := compileShader(gl.VERTEX_SHADER, vertexSrc)
	if err != nil {
		return 0, fmt.Errorf("vertex %w", err)
	}
	defer gl.DeleteShader(vs)
	fs, err := compileShader(gl.FRAGMENT_SHADER, fragmentSrc)
	if err != nil {
		return 0, fmt.Errorf("fragment %w", err)
	}
	defer gl.DeleteShader(fs)

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.TRUE {
		return program, nil
	}
	var n int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &n)
	log := make([]byte, n+1)
	gl.GetProgramInfoLog(program, n, nil, &log[0])
	gl.DeleteProgram(program)
	return 0, fmt.Errorf("link: %s", log[:n])
}
