// Package frameloop runs the per-redraw state machine of pathview: timer,
// input, camera control and the accumulate and present passes.
package frameloop

import (
	"errors"
	"fmt"
	"time"

	"pathview/event"
	"pathview/input"
	"pathview/log"
	"pathview/math"
	"pathview/renderer"
	"pathview/scene"
	"pathview/timer"
)

var logger = log.New("frameloop")

// Renderer is the progressive renderer driven by the loop. It is implemented
// by *renderer.RenderEngine.
type Renderer interface {
	Acquire() error
	SetCamera(rec renderer.CameraRecord)
	Invalidate()
	Resize(extent math.Extent2) error
	Render(time float32) error
	AdvanceFrame()
	FrameIndex() uint32
	Extent() math.Extent2
}

// Surface is the window the loop runs in. It is implemented by *core.Window.
type Surface interface {
	DrainEvents() []event.Event
	PollEvents()
	WaitEvents()

	RequestRedraw()
	RedrawRequested() bool
	RedrawPending() bool

	FramebufferExtent() math.Extent2
	ToggleFullscreen()
	SetTitle(title string)
	Close()
	ShouldClose() bool
}

// State is the loop's position relative to a tick.
type State int

const (
	Idle State = iota
	Ticking
)

func (s State) String() string {
	if s == Ticking {
		return "ticking"
	}
	return "idle"
}

// Options configures a Loop. Zero fields take defaults.
type Options struct {
	Timer      *timer.Timer
	Input      *input.State
	Camera     *scene.Camera
	Controller *scene.Controller
	Bindings   *scene.Bindings

	// Pose restored by the Home key; defaults to the camera pose at New.
	StartPose *scene.Pose

	Near           float32
	ReportInterval time.Duration
	Title          string
}

// Loop owns the per-frame state. All methods run on the window thread.
type Loop struct {
	timer      *timer.Timer
	input      *input.State
	camera     *scene.Camera
	controller *scene.Controller
	bindings   scene.Bindings
	startPose  scene.Pose

	renderer Renderer
	surface  Surface

	near           float32
	reportInterval time.Duration
	title          string

	state         State
	pendingResize *math.Extent2
	closing       bool
}

func New(r Renderer, s Surface, opts Options) *Loop {
	l := &Loop{
		timer:          opts.Timer,
		input:          opts.Input,
		camera:         opts.Camera,
		controller:     opts.Controller,
		renderer:       r,
		surface:        s,
		near:           opts.Near,
		reportInterval: opts.ReportInterval,
		title:          opts.Title,
	}
	if l.timer == nil {
		l.timer = timer.New()
	}
	if l.input == nil {
		l.input = input.NewState()
	}
	if l.camera == nil {
		l.camera = scene.NewCamera()
	}
	if l.controller == nil {
		l.controller = scene.NewController(scene.DefaultControllerConfig())
	}
	l.bindings = scene.DefaultBindings()
	if opts.Bindings != nil {
		l.bindings = *opts.Bindings
	}
	l.startPose = scene.Pose{Location: l.camera.Location, At: l.camera.At, Up: l.camera.Up}
	if opts.StartPose != nil {
		l.startPose = *opts.StartPose
	}
	if l.near <= 0 {
		l.near = 1.0
	}
	if l.reportInterval <= 0 {
		l.reportInterval = time.Second
	}
	if l.title == "" {
		l.title = "pathview"
	}
	return l
}

func (l *Loop) State() State {
	return l.state
}

func (l *Loop) Camera() *scene.Camera {
	return l.camera
}

// Start allocates the accumulation targets for the current surface, uploads
// the camera and arms the first redraw.
func (l *Loop) Start() error {
	extent := l.surface.FramebufferExtent()
	if err := l.renderer.Resize(extent); err != nil {
		return fmt.Errorf("initial resize: %w", err)
	}
	l.uploadCamera()
	l.surface.RequestRedraw()
	logger.Infof("started at %dx%d", extent.W, extent.H)
	return nil
}

// HandleEvent applies one window-system event. Resizes are deferred to the
// next tick.
func (l *Loop) HandleEvent(e event.Event) {
	switch e := e.(type) {
	case event.CloseRequested:
		l.requestClose()
	case event.KeyChanged:
		l.input.OnKeyChange(e.Key, e.Pressed)
	case event.Resized:
		extent := e.Extent
		l.pendingResize = &extent
		l.surface.RequestRedraw()
	}
}

// Tick processes one redraw.
func (l *Loop) Tick() error {
	l.state = Ticking
	defer func() { l.state = Idle }()

	l.timer.Response()

	if err := l.renderer.Acquire(); err != nil {
		if errors.Is(err, renderer.ErrSurfaceUnavailable) {
			logger.Debug("surface unavailable, frame skipped")
			return nil
		}
		return err
	}

	snapshot := l.input.Snapshot()
	cameraChanged := l.applyActions(snapshot)

	dt := float32(l.timer.State().DeltaTime)
	if l.controller.Update(l.camera, scene.AxesFromSnapshot(snapshot, l.bindings), dt) {
		cameraChanged = true
	}
	if cameraChanged {
		l.renderer.Invalidate()
		l.uploadCamera()
	}

	if err := l.applyResize(); err != nil {
		return err
	}
	if err := l.renderer.Render(timer.WrappedTime(l.timer.State().Elapsed)); err != nil {
		return fmt.Errorf("render frame %d: %w", l.renderer.FrameIndex(), err)
	}

	l.input.ClearChanged()
	l.renderer.AdvanceFrame()
	l.report()

	if !l.closing {
		l.surface.RequestRedraw()
	}
	return nil
}

// Run dispatches events and ticks until the window is closed. It blocks in
// WaitEvents while no redraw is pending.
func (l *Loop) Run() error {
	if err := l.Start(); err != nil {
		return err
	}

	for !l.closing && !l.surface.ShouldClose() {
		if l.surface.RedrawPending() {
			l.surface.PollEvents()
		} else {
			l.surface.WaitEvents()
		}
		for _, e := range l.surface.DrainEvents() {
			l.HandleEvent(e)
		}
		if l.closing {
			break
		}
		if l.surface.RedrawRequested() {
			if err := l.Tick(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (l *Loop) applyActions(s input.Snapshot) bool {
	changed := false
	if s.IsKeyClicked(input.KeyF11) {
		l.surface.ToggleFullscreen()
	}
	if s.IsKeyClicked(input.KeyHome) {
		if l.camera.SetPose(l.startPose) {
			logger.Info("camera reset")
			changed = true
		}
	}
	if s.IsKeyClicked(input.KeyEscape) {
		l.requestClose()
	}
	return changed
}

func (l *Loop) applyResize() error {
	if l.pendingResize == nil {
		// targets were released while the surface was empty
		if !l.renderer.Extent().IsZero() {
			return nil
		}
		extent := l.surface.FramebufferExtent()
		l.pendingResize = &extent
	}

	extent := *l.pendingResize
	l.pendingResize = nil
	if err := l.renderer.Resize(extent); err != nil {
		return err
	}
	l.uploadCamera()
	logger.Debugf("resized to %dx%d", extent.W, extent.H)
	return nil
}

func (l *Loop) uploadCamera() {
	l.renderer.SetCamera(l.camera.Record(l.near, l.renderer.Extent()))
}

func (l *Loop) report() {
	if !l.timer.ReportDue(l.reportInterval) {
		return
	}
	st := l.timer.State()
	logger.Infof("%.1f fps, tick %d, sample %d", st.FPS, st.Frame, l.renderer.FrameIndex())
	l.surface.SetTitle(fmt.Sprintf("%s - %.1f fps", l.title, st.FPS))
}

func (l *Loop) requestClose() {
	if l.closing {
		return
	}
	l.closing = true
	l.surface.Close()
	logger.Info("close requested")
}
