package render

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	vertsPerQuad = 4
	indsPerQuad  = 6
)

// AppendQuad appends the four vertices and six indices of a rectangle
// centered on (x, y), rotated by rotationRad, with the UV rect
// (u0,v0)-(u1,v1). Indices are relative to the vertices already in
// verts, so repeated calls build one submittable mesh. Positive Y goes
// down, so the top edge is -h/2.
func AppendQuad(verts []Vertex, inds []uint32, x, y, w, h float32, color mgl32.Vec4, rotationRad float32, u0, v0, u1, v1 float32) ([]Vertex, []uint32) {
	halfW := w * 0.5
	halfH := h * 0.5

	// corners TL, TR, BL, BR with their UVs
	corners := [vertsPerQuad][4]float32{
		{-halfW, -halfH, u0, v0},
		{halfW, -halfH, u1, v0},
		{-halfW, halfH, u0, v1},
		{halfW, halfH, u1, v1},
	}
	c, s := math32.Cos(rotationRad), math32.Sin(rotationRad)

	base := uint32(len(verts))
	for _, p := range corners {
		verts = append(verts, Vertex{
			Pos:   mgl32.Vec3{p[0]*c - p[1]*s + x, p[0]*s + p[1]*c + y, 0},
			Color: color,
			UV:    mgl32.Vec2{p[2], p[3]},
		})
	}
	inds = append(inds,
		base+0, base+2, base+1,
		base+1, base+2, base+3,
	)
	return verts, inds
}

// Quad is AppendQuad starting from empty slices.
func Quad(x, y, w, h float32, color mgl32.Vec4, rotationRad float32) ([]Vertex, []uint32) {
	return AppendQuad(nil, nil, x, y, w, h, color, rotationRad, 0, 0, 1, 1)
}
