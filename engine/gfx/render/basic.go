package render

import "log"

// BasicRenderer draws every submission immediately, one draw call each.
// Same contract as BatchRenderer; useful as a reference path when
// chasing batching artifacts, and for geometry that never batches
// anyway. Shares the single-active-scene guard with BatchRenderer.
type BasicRenderer struct {
	dev     Device
	target  Target
	scratch []Vertex
	stats   Statistics
}

func NewBasic(dev Device) *BasicRenderer {
	return &BasicRenderer{dev: dev}
}

func (r *BasicRenderer) BeginScene(t Target) {
	if t == nil {
		log.Println("render: BeginScene with nil target")
		return
	}
	if !acquireScene(r) {
		return
	}
	r.target = t
	r.stats = Statistics{}
	cam := t.Camera()
	r.dev.SetViewProjection(cam.View(), cam.Projection())
}

func (r *BasicRenderer) Submit(verts []Vertex, inds []uint32, states RenderStates) {
	if r.target == nil {
		log.Println("render: Submit with no active scene")
		return
	}
	if len(verts) == 0 || len(inds) == 0 {
		return
	}
	r.stats.Submissions++
	if states.Shader == nil {
		log.Println("render: dropping submission: no shader bound")
		r.stats.SkippedRuns++
		return
	}

	r.scratch = appendTransformed(r.scratch[:0], verts, states.Transform)

	r.dev.BindShader(states.Shader)
	r.dev.SetBlend(states.Blend)
	r.dev.BindTexture(states.Texture, 0)
	if err := r.dev.UploadGeometry(r.scratch, inds); err != nil {
		log.Printf("render: geometry upload failed: %v", err)
		return
	}
	r.dev.DrawIndexed(len(inds))

	r.stats.DrawCalls++
	r.stats.VertexCount += len(verts)
	r.stats.IndexCount += len(inds)
}

func (r *BasicRenderer) EndScene() {
	if r.target == nil {
		log.Println("render: EndScene with no active scene")
		return
	}
	r.dev.ResetState()
	r.target = nil
	releaseScene(r)
}

// Stats returns the counters of the current (or last completed) scene.
func (r *BasicRenderer) Stats() Statistics { return r.stats }
