package scene

import (
	"log"

	"github.com/go-gl/mathgl/mgl32"
)

// OrthoCamera2D provides an orthographic camera with position, rotation
// and zoom. Implements render.Camera.
type OrthoCamera2D struct {
	Left, Right, Bottom, Top float32
	Near, Far                float32
	X, Y                     float32
	RotationRad              float32
	Zoom                     float32 // 1 = no zoom
	view                     mgl32.Mat4
	proj                     mgl32.Mat4
	dirty                    bool
}

func NewOrtho2D(width, height int) *OrthoCamera2D {
	halfW := float32(width) * 0.5
	halfH := float32(height) * 0.5
	c := &OrthoCamera2D{
		Left: -halfW, Right: halfW,
		Bottom: -halfH, Top: halfH,
		Near: -1, Far: 1,
		Zoom: 1,
	}
	c.Recalculate()
	return c
}

func (c *OrthoCamera2D) SetViewportPixels(w, h int) {
	halfW := float32(w) * 0.5
	halfH := float32(h) * 0.5
	c.Left, c.Right = -halfW, halfW
	c.Bottom, c.Top = -halfH, halfH
	c.dirty = true
}

func (c *OrthoCamera2D) Move(dx, dy float32) { c.X += dx; c.Y += dy; c.dirty = true }
func (c *OrthoCamera2D) Rotate(dRad float32) { c.RotationRad += dRad; c.dirty = true }
func (c *OrthoCamera2D) SetZoom(z float32) {
	if z < 0.05 {
		z = 0.05
	}
	c.Zoom = z
	c.dirty = true
}

// render.Camera impl

func (c *OrthoCamera2D) View() mgl32.Mat4 {
	if c.dirty {
		c.Recalculate()
	}
	return c.view
}

func (c *OrthoCamera2D) Projection() mgl32.Mat4 {
	if c.dirty {
		c.Recalculate()
	}
	return c.proj
}

// VP returns projection * view.
func (c *OrthoCamera2D) VP() mgl32.Mat4 {
	return c.Projection().Mul4(c.View())
}

func (c *OrthoCamera2D) Recalculate() {
	if c.Near >= c.Far {
		log.Printf("scene: camera near plane %v >= far plane %v", c.Near, c.Far)
	}

	// Ortho bounds scaled by zoom
	z := c.Zoom
	c.proj = mgl32.Ortho(c.Left/z, c.Right/z, c.Bottom/z, c.Top/z, c.Near, c.Far)

	// view = R(-rot) * T(-pos)
	c.view = mgl32.HomogRotate3DZ(-c.RotationRad).
		Mul4(mgl32.Translate3D(-c.X, -c.Y, 0))
	c.dirty = false
}
