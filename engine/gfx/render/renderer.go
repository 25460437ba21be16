package render

import (
	"log"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera supplies the per-scene view and projection matrices.
type Camera interface {
	View() mgl32.Mat4
	Projection() mgl32.Mat4
}

// Target is what a scene renders into: it knows its camera and its
// framebuffer size.
type Target interface {
	Camera() Camera
	FramebufferSize() (int, int)
}

// Renderer is the upstream contract the scene graph drives. Legal call
// order is BeginScene, any number of Submit, EndScene; everything else
// is a logged no-op. Implementations: BatchRenderer (one draw per run
// of compatible submissions) and BasicRenderer (one draw per Submit).
type Renderer interface {
	BeginScene(t Target)
	Submit(verts []Vertex, inds []uint32, states RenderStates)
	EndScene()
}

// At most one scene may be active engine-wide: the shared GPU buffers
// the flush writes through cannot serve two interleaved scenes. The
// render thread owns this; no locking.
var activeScene Renderer

func acquireScene(r Renderer) bool {
	if activeScene != nil {
		if activeScene == r {
			log.Println("render: BeginScene while this renderer's scene is still active")
		} else {
			log.Println("render: BeginScene while another renderer's scene is active")
		}
		return false
	}
	activeScene = r
	return true
}

func releaseScene(r Renderer) {
	if activeScene == r {
		activeScene = nil
	}
}
