package opengl

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"pathview/renderer"
)

// fullscreenPass draws a four-vertex strip with a single fragment program
// sampling one texture on unit 0.
type fullscreenPass struct {
	prog       uint32
	samplerLoc int32
}

func newFullscreenPass(src renderer.ShaderSource, sampler string) (*fullscreenPass, error) {
	prog, err := newProgram(fullscreenVertexShader(), src.Code)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src.Name, err)
	}

	p := &fullscreenPass{
		prog:       prog,
		samplerLoc: gl.GetUniformLocation(prog, gl.Str(cString(sampler))),
	}
	bindUniformBlock(prog, "CameraBlock", cameraBinding)
	bindUniformBlock(prog, "SystemBlock", systemBinding)

	gl.UseProgram(prog)
	gl.Uniform1i(p.samplerLoc, 0)
	gl.UseProgram(0)
	return p, nil
}

// draw renders into fbo (0 for the window) sampling tex.
func (p *fullscreenPass) draw(fbo, tex uint32, width, height int32) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, fbo)
	gl.Viewport(0, 0, width, height)
	gl.UseProgram(p.prog)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
}

func (p *fullscreenPass) destroy() {
	if p.prog != 0 {
		gl.DeleteProgram(p.prog)
		p.prog = 0
	}
}
