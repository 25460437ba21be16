package render

import "log"

// Statistics captures the counts generated during one scene.
type Statistics struct {
	DrawCalls   int
	Submissions int
	SkippedRuns int // runs dropped for lack of a shader
	VertexCount int
	IndexCount  int
}

type submission struct {
	verts  []Vertex
	inds   []uint32
	states RenderStates
}

// BatchRenderer queues submissions for the length of a scene and, at
// EndScene, collapses maximal contiguous runs of batchable submissions
// into single draw calls. Draws are issued in strict submission order;
// runs are never formed across a non-batchable neighbor, so blending
// results are identical to drawing each submission separately.
type BatchRenderer struct {
	dev   Device
	queue []submission
	arena geometryArena

	// merge scratch, reused across runs and scenes
	mergedVerts []Vertex
	mergedInds  []uint32

	target Target
	stats  Statistics
}

// NewBatch creates a batching renderer over the given device.
func NewBatch(dev Device) *BatchRenderer {
	return &BatchRenderer{dev: dev}
}

// BeginScene starts a scene on the target and uploads its camera
// matrices. A no-op (logged) if any scene is already active.
func (r *BatchRenderer) BeginScene(t Target) {
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

// Submit queues geometry to draw with the given states. The slices are
// copied into the scene arena and states is captured by value, so the
// caller may reuse both immediately. Submissions with no vertices or no
// indices are dropped here, which keeps them transparent to batching:
// they never separate two otherwise mergeable neighbors.
func (r *BatchRenderer) Submit(verts []Vertex, inds []uint32, states RenderStates) {
	if r.target == nil {
		log.Println("render: Submit with no active scene")
		return
	}
	if len(verts) == 0 || len(inds) == 0 {
		return
	}
	r.queue = append(r.queue, submission{
		verts:  r.arena.pushVertices(verts),
		inds:   r.arena.pushIndices(inds),
		states: states,
	})
	r.stats.Submissions++
}

// EndScene flushes the queue to the device, clears it, resets device
// state and releases the scene. A no-op (logged) if this renderer has
// no active scene.
func (r *BatchRenderer) EndScene() {
	if r.target == nil {
		log.Println("render: EndScene with no active scene")
		return
	}
	r.flush()
	r.queue = r.queue[:0]
	r.arena.reset()
	r.dev.ResetState()
	r.target = nil
	releaseScene(r)
}

// Stats returns the counters of the current (or last completed) scene.
func (r *BatchRenderer) Stats() Statistics { return r.stats }

// flush walks the queue once. Each iteration extends a run while the
// batchability predicate holds against the run's lead states, merging
// geometry into shared space: positions are baked through each
// submission's own transform, and indices are rebased by the vertex
// count already merged, so the combined index buffer addresses the
// combined vertex buffer.
func (r *BatchRenderer) flush() {
	i := 0
	for i < len(r.queue) {
		lead := r.queue[i].states
		r.mergedVerts = r.mergedVerts[:0]
		r.mergedInds = r.mergedInds[:0]

		j := i
		for ; j < len(r.queue) && Batchable(lead, r.queue[j].states); j++ {
			s := r.queue[j]
			base := uint32(len(r.mergedVerts))
			r.mergedVerts = appendTransformed(r.mergedVerts, s.verts, s.states.Transform)
			for _, idx := range s.inds {
				r.mergedInds = append(r.mergedInds, base+idx)
			}
		}

		if lead.Shader == nil {
			log.Printf("render: dropping run of %d submission(s): no shader bound", j-i)
			r.stats.SkippedRuns++
			i = j
			continue
		}

		r.dev.BindShader(lead.Shader)
		r.dev.SetBlend(lead.Blend)
		r.dev.BindTexture(lead.Texture, 0)
		if err := r.dev.UploadGeometry(r.mergedVerts, r.mergedInds); err != nil {
			log.Printf("render: geometry upload failed: %v", err)
			i = j
			continue
		}
		r.dev.DrawIndexed(len(r.mergedInds))

		r.stats.DrawCalls++
		r.stats.VertexCount += len(r.mergedVerts)
		r.stats.IndexCount += len(r.mergedInds)
		i = j
	}
}
