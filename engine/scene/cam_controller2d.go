package scene

import (
	"github.com/chewxy/math32"

	"github.com/OtemPsych/aeon/engine/core"
)

// OrthoController2D: WASD move, Q/E rotate, Z/X or scroll to zoom.
type OrthoController2D struct {
	MoveSpeed float32 // world units per second at zoom 1
	RotSpeed  float32 // radians per second
	ZoomSpeed float32 // zoom factor per second (exponential)
	Camera    *OrthoCamera2D
}

func NewOrthoController2D(cam *OrthoCamera2D) *OrthoController2D {
	return &OrthoController2D{
		MoveSpeed: 200,
		RotSpeed:  2.0,
		ZoomSpeed: 1.2,
		Camera:    cam,
	}
}

func (cc *OrthoController2D) Update(e *core.Engine, dt float32) {
	in := e.Input
	// keep apparent pan speed constant while zoomed
	speed := cc.MoveSpeed * dt / cc.Camera.Zoom
	rotSpeed := cc.RotSpeed * dt

	if in.IsKeyDown(core.KeyW) {
		cc.Camera.Move(0, speed)
	}
	if in.IsKeyDown(core.KeyS) {
		cc.Camera.Move(0, -speed)
	}
	if in.IsKeyDown(core.KeyA) {
		cc.Camera.Move(-speed, 0)
	}
	if in.IsKeyDown(core.KeyD) {
		cc.Camera.Move(speed, 0)
	}

	if in.IsKeyDown(core.KeyQ) {
		cc.Camera.Rotate(rotSpeed)
	}
	if in.IsKeyDown(core.KeyE) {
		cc.Camera.Rotate(-rotSpeed)
	}

	if in.IsKeyDown(core.KeyZ) {
		cc.Camera.SetZoom(cc.Camera.Zoom * math32.Pow(cc.ZoomSpeed, dt))
	}
	if in.IsKeyDown(core.KeyX) {
		cc.Camera.SetZoom(cc.Camera.Zoom / math32.Pow(cc.ZoomSpeed, dt))
	}
}

// HandleEvent processes scroll-wheel zoom. Returns true if consumed.
func (cc *OrthoController2D) HandleEvent(_ *core.Engine, ev core.Event) bool {
	if s, ok := ev.(core.EventScroll); ok && s.Yoff != 0 {
		cc.Camera.SetZoom(cc.Camera.Zoom * math32.Pow(cc.ZoomSpeed, float32(s.Yoff)))
		return true
	}
	return false
}
