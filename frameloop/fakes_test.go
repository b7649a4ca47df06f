package frameloop

import (
	"fmt"
	"time"

	"pathview/event"
	"pathview/math"
	"pathview/renderer"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

// fakeRenderer tracks the accumulation state the way RenderEngine does and
// logs every call.
type fakeRenderer struct {
	calls []string

	extent     math.Extent2
	frameIndex uint32
	camera     renderer.CameraRecord

	acquireErr error
	renderErr  error

	// frame indices seen by Render
	rendered []uint32
}

func (r *fakeRenderer) Acquire() error {
	r.calls = append(r.calls, "acquire")
	return r.acquireErr
}

func (r *fakeRenderer) SetCamera(rec renderer.CameraRecord) {
	r.calls = append(r.calls, "camera")
	r.camera = rec
}

func (r *fakeRenderer) Invalidate() {
	r.calls = append(r.calls, "invalidate")
	r.frameIndex = 0
}

func (r *fakeRenderer) Resize(extent math.Extent2) error {
	r.calls = append(r.calls, fmt.Sprintf("resize %dx%d", extent.W, extent.H))
	r.extent = extent
	r.frameIndex = 0
	return nil
}

func (r *fakeRenderer) Render(t float32) error {
	r.calls = append(r.calls, "render")
	if r.renderErr != nil {
		return r.renderErr
	}
	r.rendered = append(r.rendered, r.frameIndex)
	return nil
}

func (r *fakeRenderer) AdvanceFrame() {
	r.calls = append(r.calls, "advance")
	r.frameIndex++
}

func (r *fakeRenderer) FrameIndex() uint32 { return r.frameIndex }

func (r *fakeRenderer) Extent() math.Extent2 { return r.extent }

func (r *fakeRenderer) reset() { r.calls = nil }

type fakeSurface struct {
	extent math.Extent2
	queue  []event.Event

	redraw     bool
	redraws    int
	fullscreen bool
	title      string
	closed     bool
	waits      int
	polls      int
	onPoll     func(s *fakeSurface)
}

func (s *fakeSurface) DrainEvents() []event.Event {
	events := s.queue
	s.queue = nil
	return events
}

func (s *fakeSurface) PollEvents() {
	s.polls++
	if s.onPoll != nil {
		s.onPoll(s)
	}
}

func (s *fakeSurface) WaitEvents() {
	s.waits++
	if s.onPoll != nil {
		s.onPoll(s)
	}
}

func (s *fakeSurface) RequestRedraw() {
	s.redraw = true
	s.redraws++
}

func (s *fakeSurface) RedrawRequested() bool {
	pending := s.redraw
	s.redraw = false
	return pending
}

func (s *fakeSurface) RedrawPending() bool { return s.redraw }

func (s *fakeSurface) FramebufferExtent() math.Extent2 { return s.extent }

func (s *fakeSurface) ToggleFullscreen() { s.fullscreen = !s.fullscreen }

func (s *fakeSurface) SetTitle(title string) { s.title = title }

func (s *fakeSurface) Close() { s.closed = true }

func (s *fakeSurface) ShouldClose() bool { return s.closed }
