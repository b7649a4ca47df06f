package opengl

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"pathview/math"
)

// AccumulationTarget is a floating point colour texture attached to its own
// framebuffer. One frame renders into it while the other target of the pair
// is sampled as history.
type AccumulationTarget struct {
	FBO    uint32
	Tex    uint32
	extent math.Extent2
}

func (t *AccumulationTarget) Extent() math.Extent2 {
	return t.extent
}

func newAccumulationTarget(extent math.Extent2) (*AccumulationTarget, error) {
	t := &AccumulationTarget{extent: extent}
	w, h := int32(extent.W), int32(extent.H)

	gl.GenTextures(1, &t.Tex)
	gl.BindTexture(gl.TEXTURE_2D, t.Tex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA32F, w, h, 0, gl.RGBA, gl.FLOAT, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.GenFramebuffers(1, &t.FBO)
	gl.BindFramebuffer(gl.FRAMEBUFFER, t.FBO)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, t.Tex, 0)
	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	if status == gl.FRAMEBUFFER_COMPLETE {
		// start from black so frame 0 never reads undefined history
		gl.Viewport(0, 0, w, h)
		gl.ClearColor(0, 0, 0, 0)
		gl.Clear(gl.COLOR_BUFFER_BIT)
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	if status != gl.FRAMEBUFFER_COMPLETE {
		t.destroy()
		return nil, fmt.Errorf("framebuffer incomplete (0x%X)", status)
	}
	return t, nil
}

func (t *AccumulationTarget) destroy() {
	if t.FBO != 0 {
		gl.DeleteFramebuffers(1, &t.FBO)
		t.FBO = 0
	}
	if t.Tex != 0 {
		gl.DeleteTextures(1, &t.Tex)
		t.Tex = 0
	}
}
