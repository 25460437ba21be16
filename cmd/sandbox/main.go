package main

import (
	"fmt"
	"log"

	"github.com/OtemPsych/aeon/engine/core"
	glbackend "github.com/OtemPsych/aeon/engine/gfx/gl"
	"github.com/OtemPsych/aeon/engine/platform"
)

type App struct {
	cfg   core.Config
	dev   *glbackend.Device
	layer *Layer2D
	tick  int
}

func (a *App) OnStart(e *core.Engine) {
	a.layer = NewLayer2D(a.cfg, a.dev)
	e.Layers.Push(a.layer)
}

func (a *App) OnUpdate(e *core.Engine, dt float64) {
	a.tick++
	if a.tick%30 == 0 {
		s := a.layer.renderer.Stats()
		e.Window.SetTitle(fmt.Sprintf("%s — %d draws / %d submissions",
			a.cfg.Title, s.DrawCalls, s.Submissions))
	}
}

func (a *App) OnRender(e *core.Engine, alpha float64) {}
func (a *App) OnEvent(e *core.Engine, ev core.Event)  {}
func (a *App) OnShutdown(e *core.Engine)              {}

func main() {
	cfg, err := core.LoadConfig("sandbox.toml")
	if err != nil {
		log.Fatal(err)
	}

	app := &App{cfg: cfg}

	newWindow := func(cfg core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(cfg)
	}
	newGraphics := func(win core.Window, cfg core.Config) (core.Graphics, error) {
		dev, err := glbackend.New(win, cfg)
		if err != nil {
			return nil, err
		}
		app.dev = dev
		return dev, nil
	}

	if err := core.Run(app, cfg, newWindow, newGraphics); err != nil {
		log.Fatal(err)
	}
}
