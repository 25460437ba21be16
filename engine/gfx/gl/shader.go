package glbackend

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/OtemPsych/aeon/engine/gfx/render"
)

type glShader struct{ id uint32 }

func (s *glShader) ID() uint32 { return s.id }

// CreateShader compiles and links a program and wires it to the shared
// camera block (binding 0) and sampler unit 0.
func (d *Device) CreateShader(vertexSrc, fragmentSrc string) (render.Shader, error) {
	prog, err := makeProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}

	if idx := gl.GetUniformBlockIndex(prog, gl.Str("Camera\x00")); idx != gl.INVALID_INDEX {
		gl.UniformBlockBinding(prog, idx, cameraBlockBinding)
	}
	if loc := gl.GetUniformLocation(prog, gl.Str("uTex\x00")); loc >= 0 {
		gl.UseProgram(prog)
		gl.Uniform1i(loc, 0)
		gl.UseProgram(0)
	}

	return &glShader{id: prog}, nil
}

// Default 2D shader: camera block, V-flipped UVs, texture modulated by
// vertex color. The white fallback texture makes this correct for
// untextured geometry too.

const DefaultVertexShader = `
#version 330 core
layout(location=0) in vec3 aPos;
layout(location=1) in vec4 aColor;
layout(location=2) in vec2 aUV;
layout(std140) uniform Camera {
    mat4 uView;
    mat4 uProj;
};
out vec4 vColor;
out vec2 vUV;
void main() {
    vColor = aColor;
    vUV = vec2(aUV.x, 1.0 - aUV.y);
    gl_Position = uProj * uView * vec4(aPos, 1.0);
}
` + "\x00"

const DefaultFragmentShader = `
#version 330 core
in vec4 vColor;
in vec2 vUV;
uniform sampler2D uTex;
out vec4 FragColor;
void main() {
    FragColor = texture(uTex, vUV) * vColor;
}
` + "\x00"

// --- Shader utilities ---

func makeShader(src string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("shader compile error: %s", log)
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("program link error: %s", log)
	}
	return prog, nil
}
