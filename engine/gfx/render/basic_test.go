package render_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OtemPsych/aeon/engine/gfx/render"
)

func TestBasicDrawsEachSubmission(t *testing.T) {
	dev := &fakeDevice{}
	r := render.NewBasic(dev)
	sh := &fakeShader{id: 1}
	tex := &fakeTexture{id: 1, w: 4, h: 4}
	verts, inds := quadGeometry()

	// Identical states would batch under BatchRenderer; the basic
	// renderer still draws them one by one.
	r.BeginScene(newFakeTarget())
	r.Submit(verts, inds, statesWith(sh, tex, render.BlendAlpha))
	r.Submit(verts, inds, statesWith(sh, tex, render.BlendAlpha))
	r.Submit(nil, nil, statesWith(sh, tex, render.BlendAlpha)) // empty, dropped
	r.EndScene()

	require.Len(t, dev.draws, 2)
	for _, d := range dev.draws {
		assert.Len(t, d.verts, 4)
		assert.Len(t, d.inds, 6)
	}
	assert.Equal(t, 2, r.Stats().DrawCalls)
	assert.Equal(t, 1, dev.resetCalls)
}

func TestBasicAppliesTransform(t *testing.T) {
	dev := &fakeDevice{}
	r := render.NewBasic(dev)
	sh := &fakeShader{id: 1}

	v := []render.Vertex{{Pos: mgl32.Vec3{1, 0, 0}}}
	st := statesWith(sh, nil, render.BlendAlpha)
	st.Transform = mgl32.Translate3D(0, 5, 0)

	r.BeginScene(newFakeTarget())
	r.Submit(v, []uint32{0, 0, 0}, st)
	r.EndScene()

	require.Len(t, dev.draws, 1)
	assert.Equal(t, mgl32.Vec3{1, 5, 0}, dev.draws[0].verts[0].Pos)
}

func TestBasicSharesSceneGuardWithBatch(t *testing.T) {
	dev := &fakeDevice{}
	basic := render.NewBasic(dev)
	batch := render.NewBatch(dev)
	verts, inds := quadGeometry()
	st := statesWith(&fakeShader{id: 1}, nil, render.BlendAlpha)

	basic.BeginScene(newFakeTarget())
	batch.BeginScene(newFakeTarget()) // rejected
	batch.Submit(verts, inds, st)     // no-op
	batch.EndScene()                  // no-op
	basic.EndScene()

	assert.Empty(t, dev.draws)
	assert.Equal(t, 1, dev.resetCalls)
}

func TestBasicNilShaderSubmissionSkipped(t *testing.T) {
	dev := &fakeDevice{}
	r := render.NewBasic(dev)
	verts, inds := quadGeometry()

	r.BeginScene(newFakeTarget())
	r.Submit(verts, inds, render.DefaultStates())
	r.EndScene()

	assert.Empty(t, dev.draws)
	assert.Equal(t, 1, r.Stats().SkippedRuns)
}
