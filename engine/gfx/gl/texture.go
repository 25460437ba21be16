package glbackend

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/OtemPsych/aeon/engine/gfx/render"
)

type glTexture struct {
	id   uint32
	w, h int
}

func (t *glTexture) ID() uint32       { return t.id }
func (t *glTexture) Size() (int, int) { return t.w, t.h }

func (d *Device) CreateTexture(desc render.TextureDesc) (render.Texture, error) {
	if desc.Width <= 0 || desc.Height <= 0 {
		return nil, fmt.Errorf("texture size %dx%d invalid", desc.Width, desc.Height)
	}
	if desc.Format != render.TextureRGBA8 {
		return nil, fmt.Errorf("unsupported texture format %d", desc.Format)
	}
	if want := desc.Width * desc.Height * 4; len(desc.Pixels) != want {
		return nil, fmt.Errorf("texture pixels: got %d bytes, want %d", len(desc.Pixels), want)
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, glFilter(desc.MinFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, glFilter(desc.MagFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, glWrap(desc.WrapU))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, glWrap(desc.WrapV))

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(desc.Width), int32(desc.Height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(desc.Pixels))

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return &glTexture{id: id, w: desc.Width, h: desc.Height}, nil
}

func glFilter(s string) int32 {
	if s == "linear" {
		return gl.LINEAR
	}
	return gl.NEAREST
}

func glWrap(s string) int32 {
	if s == "repeat" {
		return gl.REPEAT
	}
	return gl.CLAMP_TO_EDGE
}
