package render

import "github.com/go-gl/mathgl/mgl32"

// RenderStates bundles everything besides geometry that a submission
// carries: blend mode, model transform, texture and shader. It is
// copied at Submit time, so mutating the caller's copy afterwards does
// not affect queued submissions.
//
// A nil Texture means "1x1 opaque white" (the device substitutes it).
// A nil Shader is legal until flush; a run that still has no shader
// when the scene ends is skipped with a warning.
type RenderStates struct {
	Blend     BlendMode
	Transform mgl32.Mat4
	Texture   Texture
	Shader    Shader
}

// DefaultStates returns alpha blending, identity transform, no texture
// and no shader.
func DefaultStates() RenderStates {
	return RenderStates{
		Blend:     BlendAlpha,
		Transform: mgl32.Ident4(),
	}
}

// Batchable reports whether two adjacent submissions may share one draw
// call: same shader, same blend mode, same texture. Transforms are
// deliberately not compared, because positions are baked into a common
// space before merging.
func Batchable(a, b RenderStates) bool {
	return a.Shader == b.Shader && a.Blend == b.Blend && a.Texture == b.Texture
}
