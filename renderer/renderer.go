package renderer

import (
	"fmt"

	"pathview/log"
	"pathview/math"
)

var logger = log.New("renderer")

// Backend is the graphics API behind a RenderEngine. The engine is its only
// user; target handles it creates are lent to the passes of one frame.
type Backend interface {
	TargetAllocator

	// SurfaceExtent returns the current drawable size in pixels. A zero
	// extent means the surface cannot be drawn to right now.
	SurfaceExtent() math.Extent2
	ConfigureSurface(extent math.Extent2)

	WriteCamera(data []byte)
	WriteSystem(data []byte)

	// Accumulate renders one progressive pass reading history from read and
	// writing the new estimate to write.
	Accumulate(read, write Target)
	// Present resolves src onto the surface.
	Present(src Target)
	Submit() error

	Destroy()
}

// FrameStats summarizes a rendering session.
type FrameStats struct {
	Frames        uint64
	SkippedFrames uint64
	Invalidations uint64
	Resizes       uint64
	Reallocations uint64
}

// RenderEngine drives the accumulate and present passes of a progressive
// renderer on top of a Backend.
type RenderEngine struct {
	backend Backend
	acc     *Accumulator

	frames  uint64
	skipped uint64
}

func NewRenderEngine(backend Backend) *RenderEngine {
	return &RenderEngine{
		backend: backend,
		acc:     NewAccumulator(backend),
	}
}

// Acquire checks that the surface can take a frame. ErrSurfaceUnavailable is
// transient: the caller skips the frame and leaves its state untouched.
func (re *RenderEngine) Acquire() error {
	if re.backend.SurfaceExtent().IsZero() {
		re.skipped++
		return ErrSurfaceUnavailable
	}
	return nil
}

// SetCamera uploads a new camera record. It does not invalidate the history.
func (re *RenderEngine) SetCamera(rec CameraRecord) {
	re.backend.WriteCamera(EncodeCamera(rec))
}

// Invalidate discards the accumulated history.
func (re *RenderEngine) Invalidate() {
	re.acc.Invalidate()
}

// Resize reconfigures the surface and the accumulation targets. The frame
// counter is reset even when extent is unchanged.
func (re *RenderEngine) Resize(extent math.Extent2) error {
	re.backend.ConfigureSurface(extent)
	if err := re.acc.Resize(extent); err != nil {
		return fmt.Errorf("resize to %dx%d: %w", extent.W, extent.H, err)
	}
	logger.Debugf("accumulation targets at %dx%d", extent.W, extent.H)
	return nil
}

// Render issues the accumulate pass followed by the present pass for the
// current frame index. The present pass samples the target that was just
// written.
func (re *RenderEngine) Render(time float32) error {
	read, write, ok := re.acc.Buffers()
	if !ok {
		return ErrNoTargets
	}

	re.backend.WriteSystem(EncodeSystem(NewSystemRecord(re.acc.Extent(), time, re.acc.FrameIndex())))
	re.backend.Accumulate(read, write)
	re.backend.Present(write)

	if err := re.backend.Submit(); err != nil {
		return fmt.Errorf("%w: %w", ErrDeviceLost, err)
	}
	re.frames++
	return nil
}

// AdvanceFrame moves to the next accumulation frame.
func (re *RenderEngine) AdvanceFrame() {
	re.acc.AdvanceFrame()
}

func (re *RenderEngine) FrameIndex() uint32 {
	return re.acc.FrameIndex()
}

func (re *RenderEngine) Extent() math.Extent2 {
	return re.acc.Extent()
}

func (re *RenderEngine) Stats() FrameStats {
	acc := re.acc.Stats()
	return FrameStats{
		Frames:        re.frames,
		SkippedFrames: re.skipped,
		Invalidations: acc.Invalidations,
		Resizes:       acc.Resizes,
		Reallocations: acc.Reallocations,
	}
}

// Close releases the accumulation targets and the backend.
func (re *RenderEngine) Close() {
	re.acc.Release()
	re.backend.Destroy()
}
