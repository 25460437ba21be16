package render_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OtemPsych/aeon/engine/gfx/render"
)

func TestQuadGeometry(t *testing.T) {
	white := mgl32.Vec4{1, 1, 1, 1}
	verts, inds := render.Quad(10, 20, 4, 6, white, 0)
	require.Len(t, verts, 4)
	require.Len(t, inds, 6)

	// corners TL, TR, BL, BR around the center, Y down
	assert.Equal(t, mgl32.Vec3{8, 17, 0}, verts[0].Pos)
	assert.Equal(t, mgl32.Vec3{12, 17, 0}, verts[1].Pos)
	assert.Equal(t, mgl32.Vec3{8, 23, 0}, verts[2].Pos)
	assert.Equal(t, mgl32.Vec3{12, 23, 0}, verts[3].Pos)

	assert.Equal(t, mgl32.Vec2{0, 0}, verts[0].UV)
	assert.Equal(t, mgl32.Vec2{1, 1}, verts[3].UV)
	for _, v := range verts {
		assert.Equal(t, white, v.Color)
	}
	assert.Equal(t, []uint32{0, 2, 1, 1, 2, 3}, inds)
}

func TestAppendQuadOffsetsIndices(t *testing.T) {
	c := mgl32.Vec4{1, 1, 1, 1}
	verts, inds := render.Quad(0, 0, 1, 1, c, 0)
	verts, inds = render.AppendQuad(verts, inds, 5, 5, 1, 1, c, 0, 0, 0, 1, 1)

	require.Len(t, verts, 8)
	require.Len(t, inds, 12)
	assert.Equal(t, []uint32{4, 6, 5, 5, 6, 7}, inds[6:])
}

func TestQuadRotation(t *testing.T) {
	// quarter turn: the TR corner (1,-1 scaled) lands where rotation
	// maps it; spot-check one corner to epsilon
	verts, _ := render.Quad(0, 0, 2, 2, mgl32.Vec4{1, 1, 1, 1}, mgl32.DegToRad(90))
	// TL corner (-1,-1) rotates to (1,-1)
	assert.InDelta(t, 1, verts[0].Pos.X(), 1e-5)
	assert.InDelta(t, -1, verts[0].Pos.Y(), 1e-5)
}

func TestSubTextureUVs(t *testing.T) {
	tex := &fakeTexture{id: 1, w: 128, h: 64}
	sub := render.SubTexFromPixels(tex, 32, 16, 32, 32)
	assert.Equal(t, float32(0.25), sub.U0)
	assert.Equal(t, float32(0.25), sub.V0)
	assert.Equal(t, float32(0.5), sub.U1)
	assert.Equal(t, float32(0.75), sub.V1)

	grid := render.SubTexFromGrid(tex, 1, 0, 32, 32)
	assert.Equal(t, render.SubTexFromPixels(tex, 32, 0, 32, 32), grid)

	verts, _ := render.AppendQuadSub(nil, nil, 0, 0, 2, 2, sub, mgl32.Vec4{1, 1, 1, 1}, 0)
	assert.Equal(t, mgl32.Vec2{sub.U0, sub.V0}, verts[0].UV)
	assert.Equal(t, mgl32.Vec2{sub.U1, sub.V1}, verts[3].UV)
}
