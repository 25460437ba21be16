package main

import (
	"log"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/OtemPsych/aeon/engine/assets"
	"github.com/OtemPsych/aeon/engine/colors"
	"github.com/OtemPsych/aeon/engine/core"
	glbackend "github.com/OtemPsych/aeon/engine/gfx/gl"
	"github.com/OtemPsych/aeon/engine/gfx/render"
	"github.com/OtemPsych/aeon/engine/scene"
)

// Layer2D draws a tile grid plus a spinning sprite. Press B to toggle
// between the batching and the immediate renderer.
type Layer2D struct {
	cfg core.Config
	dev *glbackend.Device

	cam    *scene.OrthoCamera2D
	ctrl   *scene.OrthoController2D
	target *scene.WindowTarget

	batch    *render.BatchRenderer
	basic    *render.BasicRenderer
	renderer interface {
		render.Renderer
		Stats() render.Statistics
	}

	shader render.Shader
	tex    render.Texture
	player render.SubTexture
	t      float32
}

func NewLayer2D(cfg core.Config, dev *glbackend.Device) *Layer2D {
	return &Layer2D{cfg: cfg, dev: dev}
}

func (l *Layer2D) OnAttach(e *core.Engine) {
	w, h := e.Window.FramebufferSize()
	l.cam = scene.NewOrtho2D(w, h)
	l.cam.SetZoom(2)
	l.ctrl = scene.NewOrthoController2D(l.cam)
	l.target = scene.NewWindowTarget(l.cam, e.Window)

	l.batch = render.NewBatch(l.dev)
	l.basic = render.NewBasic(l.dev)
	l.renderer = l.batch

	l.shader = l.loadShader()
	l.tex = l.loadTexture()
	l.player = render.SubTexFromPixels(l.tex, 0, 0, 32, 32)
}

// loadShader prefers assets/shaders/sprite.{vert,frag}; without them
// the backend's built-in 2D shader is used.
func (l *Layer2D) loadShader() render.Shader {
	vs, errV := assets.LoadShader(l.cfg.AssetRoot, "sprite.vert")
	fs, errF := assets.LoadShader(l.cfg.AssetRoot, "sprite.frag")
	if errV != nil || errF != nil {
		vs, fs = glbackend.DefaultVertexShader, glbackend.DefaultFragmentShader
	}
	sh, err := l.dev.CreateShader(vs, fs)
	if err != nil {
		log.Fatalf("sandbox: create shader: %v", err)
	}
	return sh
}

// loadTexture prefers assets/textures/player.png, falling back to a
// generated checkerboard.
func (l *Layer2D) loadTexture() render.Texture {
	w, h, pixels, err := assets.LoadPNG(l.cfg.AssetRoot, "player.png")
	if err != nil {
		log.Printf("sandbox: %v (using checkerboard)", err)
		w, h = 64, 64
		pixels = checkerboard(w, h, 8)
	}
	tex, err := l.dev.CreateTexture(render.TextureDesc{
		Width: w, Height: h,
		Format:    render.TextureRGBA8,
		Pixels:    pixels,
		MinFilter: "linear", MagFilter: "nearest",
		WrapU: "clamp", WrapV: "clamp",
	})
	if err != nil {
		log.Fatalf("sandbox: create texture: %v", err)
	}
	return tex
}

func checkerboard(w, h, cell int) []byte {
	pix := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * 4
			if (x/cell+y/cell)%2 == 0 {
				pix[i], pix[i+1], pix[i+2] = 230, 90, 160
			} else {
				pix[i], pix[i+1], pix[i+2] = 60, 60, 70
			}
			pix[i+3] = 255
		}
	}
	return pix
}

func (l *Layer2D) OnDetach(e *core.Engine) {}

func (l *Layer2D) OnUpdate(e *core.Engine, dt float64) {
	l.ctrl.Update(e, float32(dt))
	l.t += float32(dt)

	if e.Input.IsKeyDown(core.KeyEscape) {
		e.Window.RequestClose()
	}
}

func (l *Layer2D) OnRender(e *core.Engine, alpha float64) {
	l.renderer.BeginScene(l.target)

	// Background tile grid: untextured, all one batch.
	ground := render.DefaultStates()
	ground.Shader = l.shader
	var verts []render.Vertex
	var inds []uint32
	const tile = 24
	for gy := -6; gy <= 6; gy++ {
		for gx := -10; gx <= 10; gx++ {
			c := colors.Gray
			if (gx+gy)%2 == 0 {
				c = colors.DarkGray
			}
			verts, inds = render.AppendQuad(verts, inds,
				float32(gx*tile), float32(gy*tile), tile-2, tile-2,
				c.Vec4(), 0, 0, 0, 1, 1)
		}
	}
	l.renderer.Submit(verts, inds, ground)

	// Textured sprite, spun through its model transform rather than
	// baked corner positions.
	sprite := render.DefaultStates()
	sprite.Shader = l.shader
	sprite.Texture = l.player.Texture
	sprite.Transform = mgl32.HomogRotate3DZ(l.t)
	sv, si := render.AppendQuadSub(nil, nil, 0, 0, 48, 48, l.player, colors.White.Vec4(), 0)
	l.renderer.Submit(sv, si, sprite)

	// Additive glow on top; different blend mode, so its own draw.
	glow := render.DefaultStates()
	glow.Shader = l.shader
	glow.Blend = render.BlendAdd
	gv, gi := render.Quad(0, 0, 72, 72, colors.Yellow.WithAlpha(0.25).Vec4(), l.t*0.5)
	l.renderer.Submit(gv, gi, glow)

	l.renderer.EndScene()
}

func (l *Layer2D) OnEvent(e *core.Engine, ev core.Event) bool {
	switch v := ev.(type) {
	case core.EventKey:
		if v.Down && v.Key == core.KeyB {
			if _, isBatch := l.renderer.(*render.BatchRenderer); isBatch {
				l.renderer = l.basic
				log.Println("sandbox: immediate renderer")
			} else {
				l.renderer = l.batch
				log.Println("sandbox: batch renderer")
			}
			return true
		}
	case core.EventResize:
		l.cam.SetViewportPixels(v.W, v.H)
	case core.EventScroll:
		return l.ctrl.HandleEvent(e, ev)
	}
	return false
}
