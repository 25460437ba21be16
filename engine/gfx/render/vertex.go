package render

import "github.com/go-gl/mathgl/mgl32"

// Vertex: pos3 + color4 + uv2 => 9 contiguous floats, no padding, so a
// []Vertex uploads to the GPU as-is.
type Vertex struct {
	Pos   mgl32.Vec3
	Color mgl32.Vec4 // normalized 0..1
	UV    mgl32.Vec2
}

// VertexFloats is the number of float32 components per vertex.
const VertexFloats = 9

// VertexStride is the byte stride of one vertex.
const VertexStride = VertexFloats * 4

// appendTransformed appends src to dst with each position multiplied by
// transform (homogeneous, w=1). Color and UV pass through unchanged.
func appendTransformed(dst []Vertex, src []Vertex, transform mgl32.Mat4) []Vertex {
	if transform == mgl32.Ident4() {
		return append(dst, src...)
	}
	for _, v := range src {
		v.Pos = transform.Mul4x1(v.Pos.Vec4(1)).Vec3()
		dst = append(dst, v)
	}
	return dst
}
