package opengl

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"pathview/log"
	"pathview/math"
	"pathview/renderer"
)

var logger = log.New("opengl")

// Surface is the window a Device presents to. Its GL context must be current
// on the calling thread.
type Surface interface {
	FramebufferExtent() math.Extent2
	SwapBuffers()
}

// Device implements renderer.Backend on an OpenGL 4.1 core context.
type Device struct {
	surface Surface
	extent  math.Extent2

	accumulate *fullscreenPass
	present    *fullscreenPass

	camera *uniformBuffer
	system *uniformBuffer

	quadVAO uint32 // empty VAO, core profile refuses draws without one
}

// NewDevice loads the GL entry points and builds both passes. It must be
// called after the surface's context was made current.
func NewDevice(surface Surface, shaders renderer.ShaderSet) (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	logger.Noticef("OpenGL %s on %s",
		gl.GoStr(gl.GetString(gl.VERSION)), gl.GoStr(gl.GetString(gl.RENDERER)))

	d := &Device{surface: surface, extent: surface.FramebufferExtent()}

	var err error
	if d.accumulate, err = newFullscreenPass(shaders.Accumulate, "history"); err != nil {
		return nil, fmt.Errorf("accumulate program: %w", err)
	}
	if d.present, err = newFullscreenPass(shaders.Present, "accumulation"); err != nil {
		d.accumulate.destroy()
		return nil, fmt.Errorf("present program: %w", err)
	}

	d.camera = newUniformBuffer(cameraBinding, renderer.CameraRecordSize)
	d.system = newUniformBuffer(systemBinding, renderer.SystemRecordSize)

	gl.GenVertexArrays(1, &d.quadVAO)
	gl.BindVertexArray(d.quadVAO)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.BLEND)

	return d, nil
}

func (d *Device) SurfaceExtent() math.Extent2 {
	return d.surface.FramebufferExtent()
}

func (d *Device) ConfigureSurface(extent math.Extent2) {
	d.extent = extent
}

func (d *Device) CreateTarget(extent math.Extent2) (renderer.Target, error) {
	t, err := newAccumulationTarget(extent)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (d *Device) DestroyTarget(t renderer.Target) {
	if at, ok := t.(*AccumulationTarget); ok {
		at.destroy()
	}
}

func (d *Device) WriteCamera(data []byte) {
	d.camera.write(data)
}

func (d *Device) WriteSystem(data []byte) {
	d.system.write(data)
}

func (d *Device) Accumulate(read, write renderer.Target) {
	src := read.(*AccumulationTarget)
	dst := write.(*AccumulationTarget)
	d.accumulate.draw(dst.FBO, src.Tex, int32(dst.extent.W), int32(dst.extent.H))
}

func (d *Device) Present(src renderer.Target) {
	t := src.(*AccumulationTarget)
	d.present.draw(0, t.Tex, int32(d.extent.W), int32(d.extent.H))
}

// Submit flushes the frame and swaps buffers. Any pending GL error is
// reported instead of swapping.
func (d *Device) Submit() error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("gl error 0x%X", code)
	}
	d.surface.SwapBuffers()
	return nil
}

func (d *Device) Destroy() {
	d.accumulate.destroy()
	d.present.destroy()
	d.camera.destroy()
	d.system.destroy()
	if d.quadVAO != 0 {
		gl.DeleteVertexArrays(1, &d.quadVAO)
		d.quadVAO = 0
	}
}
