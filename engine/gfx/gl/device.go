package glbackend

import (
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/OtemPsych/aeon/engine/core"
	"github.com/OtemPsych/aeon/engine/gfx/render"
)

// cameraBlockBinding is the uniform block binding point shared by every
// shader the device creates (std140: mat4 view, mat4 proj).
const cameraBlockBinding = 0

const cameraBlockBytes = 2 * 16 * 4

// Device implements core.Graphics and render.Device over OpenGL 3.3
// core. One VAO/VBO/EBO triple is reused for every flush upload; the
// buffers grow on demand and are orphaned on rewrite.
type Device struct {
	win core.Window

	vao, vbo, ebo uint32
	vboCap        int // bytes
	eboCap        int // bytes

	ubo   uint32
	white render.Texture
}

// New creates and initializes a GL device. The window's GL context must
// be current on the calling thread.
func New(win core.Window, _ core.Config) (*Device, error) {
	d := &Device{win: win}
	if err := d.Init(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Device) Init() error {
	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)

	gl.GenBuffers(1, &d.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)

	// pos3 + color4 + uv2, tightly packed
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, render.VertexStride, unsafe.Pointer(uintptr(0)))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, render.VertexStride, unsafe.Pointer(uintptr(3*4)))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, render.VertexStride, unsafe.Pointer(uintptr(7*4)))

	gl.GenBuffers(1, &d.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, d.ebo)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	gl.GenBuffers(1, &d.ubo)
	gl.BindBuffer(gl.UNIFORM_BUFFER, d.ubo)
	gl.BufferData(gl.UNIFORM_BUFFER, cameraBlockBytes, nil, gl.DYNAMIC_DRAW)
	gl.BindBufferBase(gl.UNIFORM_BUFFER, cameraBlockBinding, d.ubo)
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)

	// 1x1 opaque white, bound whenever a submission has no texture
	white, err := d.CreateTexture(render.TextureDesc{
		Width: 1, Height: 1,
		Format:    render.TextureRGBA8,
		Pixels:    []byte{255, 255, 255, 255},
		MinFilter: "nearest", MagFilter: "nearest",
		WrapU: "clamp", WrapV: "clamp",
	})
	if err != nil {
		return err
	}
	d.white = white
	return nil
}

func (d *Device) Shutdown() {
	if d.ubo != 0 {
		gl.DeleteBuffers(1, &d.ubo)
	}
	if d.ebo != 0 {
		gl.DeleteBuffers(1, &d.ebo)
	}
	if d.vbo != 0 {
		gl.DeleteBuffers(1, &d.vbo)
	}
	if d.vao != 0 {
		gl.DeleteVertexArrays(1, &d.vao)
	}
}

func (d *Device) Resize(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (d *Device) Clear(rf, gf, bf, af float32) {
	gl.ClearColor(rf, gf, bf, af)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// --- render.Device ---

func (d *Device) SetViewProjection(view, proj mgl32.Mat4) {
	gl.BindBuffer(gl.UNIFORM_BUFFER, d.ubo)
	gl.BufferSubData(gl.UNIFORM_BUFFER, 0, 16*4, gl.Ptr(&view[0]))
	gl.BufferSubData(gl.UNIFORM_BUFFER, 16*4, 16*4, gl.Ptr(&proj[0]))
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
}

func (d *Device) BindShader(s render.Shader) {
	gl.UseProgram(s.ID())
}

func (d *Device) SetBlend(m render.BlendMode) {
	gl.Enable(gl.BLEND)
	gl.BlendFuncSeparate(
		glFactor(m.ColorSrc), glFactor(m.ColorDst),
		glFactor(m.AlphaSrc), glFactor(m.AlphaDst),
	)
	gl.BlendEquationSeparate(glEquation(m.ColorEq), glEquation(m.AlphaEq))
}

func (d *Device) BindTexture(t render.Texture, unit int) {
	if t == nil {
		t = d.white
	}
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, t.ID())
}

func (d *Device) UploadGeometry(verts []render.Vertex, inds []uint32) error {
	vBytes := len(verts) * render.VertexStride
	iBytes := len(inds) * 4

	gl.BindVertexArray(d.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
	if vBytes > d.vboCap {
		gl.BufferData(gl.ARRAY_BUFFER, vBytes, gl.Ptr(verts), gl.DYNAMIC_DRAW)
		d.vboCap = vBytes
	} else {
		// orphan, then refill the front
		gl.BufferData(gl.ARRAY_BUFFER, d.vboCap, nil, gl.DYNAMIC_DRAW)
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, vBytes, gl.Ptr(verts))
	}

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, d.ebo)
	if iBytes > d.eboCap {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, iBytes, gl.Ptr(inds), gl.DYNAMIC_DRAW)
		d.eboCap = iBytes
	} else {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, d.eboCap, nil, gl.DYNAMIC_DRAW)
		gl.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, 0, iBytes, gl.Ptr(inds))
	}
	return nil
}

func (d *Device) DrawIndexed(indexCount int) {
	gl.DrawElements(gl.TRIANGLES, int32(indexCount), gl.UNSIGNED_INT, nil)
}

func (d *Device) ResetState() {
	gl.BindVertexArray(0)
	gl.UseProgram(0)
	gl.Disable(gl.BLEND)
	gl.Disable(gl.DEPTH_TEST)
}

func glFactor(f render.BlendFactor) uint32 {
	switch f {
	case render.FactorZero:
		return gl.ZERO
	case render.FactorOne:
		return gl.ONE
	case render.FactorSrcColor:
		return gl.SRC_COLOR
	case render.FactorOneMinusSrcColor:
		return gl.ONE_MINUS_SRC_COLOR
	case render.FactorDstColor:
		return gl.DST_COLOR
	case render.FactorOneMinusDstColor:
		return gl.ONE_MINUS_DST_COLOR
	case render.FactorSrcAlpha:
		return gl.SRC_ALPHA
	case render.FactorOneMinusSrcAlpha:
		return gl.ONE_MINUS_SRC_ALPHA
	case render.FactorDstAlpha:
		return gl.DST_ALPHA
	case render.FactorOneMinusDstAlpha:
		return gl.ONE_MINUS_DST_ALPHA
	default:
		return gl.ONE
	}
}

func glEquation(e render.BlendEquation) uint32 {
	switch e {
	case render.EquationAdd:
		return gl.FUNC_ADD
	case render.EquationSubtract:
		return gl.FUNC_SUBTRACT
	case render.EquationReverseSubtract:
		return gl.FUNC_REVERSE_SUBTRACT
	case render.EquationMin:
		return gl.MIN
	case render.EquationMax:
		return gl.MAX
	default:
		return gl.FUNC_ADD
	}
}
