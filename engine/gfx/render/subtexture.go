package render

import "github.com/go-gl/mathgl/mgl32"

// SubTexture describes a UV sub-rect of an atlas texture.
type SubTexture struct {
	Texture Texture
	U0, V0  float32 // top-left (after the shader's V flip)
	U1, V1  float32 // bottom-right
}

// SubTexFromPixels builds a subtexture from pixel coordinates within an
// atlas. UVs are normalized; the vertex shader is expected to flip V.
func SubTexFromPixels(tex Texture, x, y, w, h int) SubTexture {
	atlasW, atlasH := tex.Size()
	return SubTexture{
		Texture: tex,
		U0:      float32(x) / float32(atlasW),
		V0:      float32(y) / float32(atlasH),
		U1:      float32(x+w) / float32(atlasW),
		V1:      float32(y+h) / float32(atlasH),
	}
}

// SubTexFromGrid builds a subtexture from tile grid coordinates (cx,cy)
// of cell size (cw,ch).
func SubTexFromGrid(tex Texture, cx, cy, cw, ch int) SubTexture {
	return SubTexFromPixels(tex, cx*cw, cy*ch, cw, ch)
}

// AppendQuadSub appends a quad textured with the given subtexture.
func AppendQuadSub(verts []Vertex, inds []uint32, x, y, w, h float32, sub SubTexture, tint mgl32.Vec4, rotationRad float32) ([]Vertex, []uint32) {
	return AppendQuad(verts, inds, x, y, w, h, tint, rotationRad, sub.U0, sub.V0, sub.U1, sub.V1)
}
