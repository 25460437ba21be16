package render

// geometryArena stores a copy of every slice handed to Submit for the
// duration of one scene, so queued submissions never point into
// caller-owned memory. Reset every EndScene; capacity is retained, so
// after warm-up a steady-state frame allocates nothing.
type geometryArena struct {
	verts []Vertex
	inds  []uint32
}

// pushVertices appends src and returns the slice of the copy. Earlier
// returned slices stay valid across growth: growing reallocates the
// backing array but leaves the old one (and the headers into it)
// untouched.
func (a *geometryArena) pushVertices(src []Vertex) []Vertex {
	start := len(a.verts)
	a.verts = append(a.verts, src...)
	return a.verts[start:len(a.verts):len(a.verts)]
}

func (a *geometryArena) pushIndices(src []uint32) []uint32 {
	start := len(a.inds)
	a.inds = append(a.inds, src...)
	return a.inds[start:len(a.inds):len(a.inds)]
}

// reset clears lengths without freeing memory.
func (a *geometryArena) reset() {
	a.verts = a.verts[:0]
	a.inds = a.inds[:0]
}
