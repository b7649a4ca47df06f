package opengl

import (
	"embed"

	"pathview/renderer"
)

//go:embed shaders/*.glsl
var shaderFS embed.FS

func embeddedShader(name string) renderer.ShaderSource {
	code, err := shaderFS.ReadFile("shaders/" + name)
	if err != nil {
		panic("opengl: missing embedded shader " + name)
	}
	return renderer.ShaderSource{Name: name, Code: string(code)}
}

// DefaultShaders returns the built-in accumulate and present programs.
func DefaultShaders() renderer.ShaderSet {
	return renderer.ShaderSet{
		Accumulate: embeddedShader("accumulate.frag.glsl"),
		Present:    embeddedShader("present.frag.glsl"),
	}
}

func fullscreenVertexShader() string {
	return embeddedShader("fullscreen.vert.glsl").Code
}
