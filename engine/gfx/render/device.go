package render

import "github.com/go-gl/mathgl/mgl32"

// Shader is an opaque GPU program handle created by a Device.
// Handles are compared by interface identity in the batcher.
type Shader interface {
	ID() uint32
}

// Texture is an opaque GPU texture handle created by a Device.
type Texture interface {
	ID() uint32
	Size() (w, h int)
}

// TextureFormat enumerates supported pixel formats.
type TextureFormat int

const (
	TextureRGBA8 TextureFormat = iota
)

// TextureDesc describes a texture to create. Pixels are tightly packed
// rows, bottom-left origin.
type TextureDesc struct {
	Width, Height int
	Format        TextureFormat
	Pixels        []byte
	MinFilter     string // "nearest" | "linear"
	MagFilter     string
	WrapU         string // "clamp" | "repeat"
	WrapV         string
}

// Device is the downstream GPU sink the renderers drive. One flush run
// turns into: bind shader, set blend, bind texture, upload geometry,
// one indexed draw. The device owns a 1x1 opaque-white texture that
// BindTexture substitutes for a nil handle, so untextured geometry
// shares the textured shading path.
type Device interface {
	CreateShader(vertexSrc, fragmentSrc string) (Shader, error)
	CreateTexture(desc TextureDesc) (Texture, error)

	// SetViewProjection uploads the per-scene camera matrices to the
	// shared transform block read by every shader.
	SetViewProjection(view, proj mgl32.Mat4)

	BindShader(s Shader)
	SetBlend(m BlendMode)
	BindTexture(t Texture, unit int)
	UploadGeometry(verts []Vertex, inds []uint32) error

	// DrawIndexed issues one triangle-list draw over the last uploaded
	// geometry.
	DrawIndexed(indexCount int)

	// ResetState unbinds the vertex layout and disables blending and
	// depth testing. Called when a scene ends.
	ResetState()
}
