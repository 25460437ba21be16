package render_test

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/OtemPsych/aeon/engine/gfx/render"
)

// fakeDevice records the command stream a renderer emits, one draw
// record per DrawIndexed with the state bound at that point.
type fakeDevice struct {
	view, proj mgl32.Mat4

	curShader  render.Shader
	curTexture render.Texture
	curBlend   render.BlendMode
	curVerts   []render.Vertex
	curInds    []uint32

	draws      []drawRecord
	uploadErr  error
	resetCalls int
}

type drawRecord struct {
	shader  render.Shader
	texture render.Texture
	blend   render.BlendMode
	verts   []render.Vertex
	inds    []uint32
	count   int
}

func (d *fakeDevice) CreateShader(string, string) (render.Shader, error) { return nil, nil }
func (d *fakeDevice) CreateTexture(render.TextureDesc) (render.Texture, error) {
	return nil, nil
}

func (d *fakeDevice) SetViewProjection(view, proj mgl32.Mat4) { d.view, d.proj = view, proj }
func (d *fakeDevice) BindShader(s render.Shader)              { d.curShader = s }
func (d *fakeDevice) SetBlend(m render.BlendMode)             { d.curBlend = m }
func (d *fakeDevice) BindTexture(t render.Texture, unit int)  { d.curTexture = t }

func (d *fakeDevice) UploadGeometry(verts []render.Vertex, inds []uint32) error {
	if d.uploadErr != nil {
		return d.uploadErr
	}
	d.curVerts = append([]render.Vertex(nil), verts...)
	d.curInds = append([]uint32(nil), inds...)
	return nil
}

func (d *fakeDevice) DrawIndexed(indexCount int) {
	d.draws = append(d.draws, drawRecord{
		shader:  d.curShader,
		texture: d.curTexture,
		blend:   d.curBlend,
		verts:   d.curVerts,
		inds:    d.curInds,
		count:   indexCount,
	})
}

func (d *fakeDevice) ResetState() { d.resetCalls++ }

type fakeShader struct{ id uint32 }

func (s *fakeShader) ID() uint32 { return s.id }

type fakeTexture struct {
	id   uint32
	w, h int
}

func (t *fakeTexture) ID() uint32       { return t.id }
func (t *fakeTexture) Size() (int, int) { return t.w, t.h }

type fakeCamera struct{ view, proj mgl32.Mat4 }

func (c *fakeCamera) View() mgl32.Mat4       { return c.view }
func (c *fakeCamera) Projection() mgl32.Mat4 { return c.proj }

type fakeTarget struct {
	cam  *fakeCamera
	w, h int
}

func newFakeTarget() *fakeTarget {
	return &fakeTarget{
		cam: &fakeCamera{view: mgl32.Ident4(), proj: mgl32.Ident4()},
		w:   1280, h: 720,
	}
}

func (t *fakeTarget) Camera() render.Camera       { return t.cam }
func (t *fakeTarget) FramebufferSize() (int, int) { return t.w, t.h }
