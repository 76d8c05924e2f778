// Package glbackend draws frames with OpenGL 3.3 core.
package glbackend

import (
	"fmt"
	"image"
	"math"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/stimgrove/engine/colors"
	"github.com/hubastard/stimgrove/engine/core"
	"github.com/hubastard/stimgrove/engine/frame"
	"github.com/hubastard/stimgrove/engine/gfx"
	"github.com/hubastard/stimgrove/engine/viewport"
)

type RendererGL struct {
	win     core.Window
	program uint32
	vao     uint32
	vbo     uint32

	uVP, uModel, uColor, uUseTex, uTex int32

	clear    colors.Color
	vp       [16]float32
	textures map[*image.RGBA]uint32
	used     map[*image.RGBA]bool
}

func NewRendererGL(win core.Window, _ core.Config) (*RendererGL, error) {
	r := &RendererGL{
		win:      win,
		textures: make(map[*image.RGBA]uint32),
		used:     make(map[*image.RGBA]bool),
	}
	if err := r.Init(); err != nil {
		return nil, err
	}
	return r, nil
}

// Factory adapts NewRendererGL for core.Run.
func Factory(win core.Window, cfg core.Config) (core.Renderer, error) {
	return NewRendererGL(win, cfg)
}

func (r *RendererGL) Init() error {
	var err error
	r.program, err = makeProgram(vertexSource, fragmentSource)
	if err != nil {
		return err
	}
	r.uVP = gl.GetUniformLocation(r.program, gl.Str("uVP\x00"))
	r.uModel = gl.GetUniformLocation(r.program, gl.Str("uModel\x00"))
	r.uColor = gl.GetUniformLocation(r.program, gl.Str("uColor\x00"))
	r.uUseTex = gl.GetUniformLocation(r.program, gl.Str("uUseTex\x00"))
	r.uTex = gl.GetUniformLocation(r.program, gl.Str("uTex\x00"))

	// Unit quad: pos (x,y), uv (u,v). Image row 0 is the top edge.
	verts := []float32{
		//  X,    Y,   U,   V
		-0.5, -0.5, 0.0, 1.0,
		0.5, -0.5, 1.0, 1.0,
		0.5, 0.5, 1.0, 0.0,
		-0.5, -0.5, 0.0, 1.0,
		0.5, 0.5, 1.0, 0.0,
		-0.5, 0.5, 0.0, 0.0,
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)

	// layout(location = 0) in vec2 aPos;
	// layout(location = 1) in vec2 aUV;
	const stride = 4 * 4 // bytes
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(0)))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(2*4)))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	w, h := r.win.FramebufferSize()
	r.Resize(w, h)
	return nil
}

func (r *RendererGL) Shutdown() {
	for img, tex := range r.textures {
		gl.DeleteTextures(1, &tex)
		delete(r.textures, img)
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

func (r *RendererGL) Resize(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
	r.vp = viewport.StateFor(w, h).Projection
}

func (r *RendererGL) SetClearColor(c colors.Color) {
	r.clear = c
}

// Render draws the scene back to front and presents it.
func (r *RendererGL) Render(s *frame.Scene) {
	gl.ClearColor(r.clear[0], r.clear[1], r.clear[2], r.clear[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.uVP, 1, false, &r.vp[0])
	gl.Uniform1i(r.uTex, 0)
	gl.BindVertexArray(r.vao)

	for _, d := range s.Nodes() {
		v, ok := d.(gfx.Visual)
		if !ok {
			continue
		}
		for _, p := range v.Primitives() {
			r.draw(p)
		}
	}

	gl.BindVertexArray(0)
	gl.UseProgram(0)
	r.evict()

	r.win.SwapBuffers()
}

func (r *RendererGL) draw(p gfx.Primitive) {
	m := model(p)
	gl.UniformMatrix4fv(r.uModel, 1, false, &m[0])
	gl.Uniform4f(r.uColor, p.Color[0], p.Color[1], p.Color[2], p.Color[3])
	if p.Image != nil {
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, r.texture(p.Image))
		gl.Uniform1i(r.uUseTex, 1)
	} else {
		gl.Uniform1i(r.uUseTex, 0)
	}
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

// Sync blocks until the GPU has finished the frame. Reading back a pixel
// forces completion on drivers that treat Finish as a hint.
func (r *RendererGL) Sync() {
	gl.Finish()
	var px [4]uint8
	gl.ReadPixels(0, 0, 1, 1, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(&px[0]))
}

// texture returns the texture holding img, uploading it on first use.
func (r *RendererGL) texture(img *image.RGBA) uint32 {
	r.used[img] = true
	if tex, ok := r.textures[img]; ok {
		return tex
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	size := img.Bounds().Size()
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride/4))
	gl.TexImage2D(gl.TEXTURE_2D, 0,
		gl.RGBA, int32(size.X), int32(size.Y), 0,
		gl.RGBA, gl.UNSIGNED_BYTE,
		gl.Ptr(img.Pix))
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)

	r.textures[img] = tex
	return tex
}

// evict deletes the textures of images not drawn this frame.
func (r *RendererGL) evict() {
	for img, tex := range r.textures {
		if !r.used[img] {
			gl.DeleteTextures(1, &tex)
			delete(r.textures, img)
		}
	}
	clear(r.used)
}

// model returns translate * rotate * scale for a primitive, column-major.
func model(p gfx.Primitive) [16]float32 {
	// clockwise on screen
	rad := -float64(p.Ori) * math.Pi / 180
	c, s := float32(math.Cos(rad)), float32(math.Sin(rad))
	sx, sy := p.Size[0], p.Size[1]
	return [16]float32{
		c * sx, s * sx, 0, 0,
		-s * sy, c * sy, 0, 0,
		0, 0, 1, 0,
		p.Pos[0], p.Pos[1], 0, 1,
	}
}

// --- Shader utilities ---

const vertexSource = `
#version 330 core
layout(location=0) in vec2 aPos;
layout(location=1) in vec2 aUV;
uniform mat4 uVP;
uniform mat4 uModel;
out vec2 vUV;
void main() {
    vUV = aUV;
    gl_Position = uVP * uModel * vec4(aPos, 0.0, 1.0);
}
` + "\x00"

const fragmentSource = `
#version 330 core
in vec2 vUV;
uniform vec4 uColor;
uniform int uUseTex;
uniform sampler2D uTex;
out vec4 FragColor;
void main() {
    if (uUseTex == 1) {
        FragColor = texture(uTex, vUV) * uColor;
    } else {
        FragColor = uColor;
    }
}
` + "\x00"

func makeShader(src string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("shader compile error: %s", log)
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("program link error: %s", log)
	}
	return prog, nil
}
