package scene

import (
	"github.com/OtemPsych/aeon/engine/core"
	"github.com/OtemPsych/aeon/engine/gfx/render"
)

// WindowTarget is the default render.Target: a camera rendering into a
// window's framebuffer.
type WindowTarget struct {
	Cam *OrthoCamera2D
	Win core.Window
}

func NewWindowTarget(cam *OrthoCamera2D, win core.Window) *WindowTarget {
	return &WindowTarget{Cam: cam, Win: win}
}

func (t *WindowTarget) Camera() render.Camera { return t.Cam }

func (t *WindowTarget) FramebufferSize() (int, int) { return t.Win.FramebufferSize() }
