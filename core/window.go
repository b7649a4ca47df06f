package core

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"pathview/event"
	"pathview/log"
	"pathview/math"
)

var logger = log.New("window")

func init() {
	runtime.LockOSThread()
}

// Window is a GLFW window with an OpenGL 4.1 core context. Input and resize
// callbacks are queued as events that the frame loop drains.
type Window struct {
	Handle *glfw.Window
	Title  string

	queue  eventQueue
	redraw bool

	// windowed geometry restored when leaving fullscreen
	windowedX, windowedY int
	windowedW, windowedH int
}

type WindowConfig struct {
	Width      int
	Height     int
	Title      string
	Resizable  bool
	VSync      bool
	Fullscreen bool
}

func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Width:      1280,
		Height:     720,
		Title:      "pathview",
		Resizable:  true,
		VSync:      false,
		Fullscreen: false,
	}
}

func NewWindow(config WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, boolToInt(config.Resizable))

	monitor := (*glfw.Monitor)(nil)
	width, height := config.Width, config.Height
	if config.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
		mode := monitor.GetVideoMode()
		width, height = mode.Width, mode.Height
	}

	handle, err := glfw.CreateWindow(width, height, config.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	handle.MakeContextCurrent()
	glfw.SwapInterval(boolToInt(config.VSync))

	window := &Window{
		Handle:    handle,
		Title:     config.Title,
		windowedW: config.Width,
		windowedH: config.Height,
	}
	window.windowedX, window.windowedY = handle.GetPos()

	handle.SetCloseCallback(func(w *glfw.Window) {
		w.SetShouldClose(false)
		window.queue.push(event.CloseRequested{})
	})
	handle.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		window.queue.push(resizedEvent(width, height))
	})
	handle.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if e, ok := keyEvent(key, action); ok {
			window.queue.push(e)
		}
	})
	handle.SetRefreshCallback(func(w *glfw.Window) {
		window.RequestRedraw()
	})

	logger.Infof("window %dx%d, vsync %v, fullscreen %v", width, height, config.VSync, config.Fullscreen)
	return window, nil
}

// DrainEvents returns every event received since the previous call.
func (w *Window) DrainEvents() []event.Event {
	return w.queue.drain()
}

// RequestRedraw schedules a frame and wakes a blocked WaitEvents.
func (w *Window) RequestRedraw() {
	w.redraw = true
	glfw.PostEmptyEvent()
}

// RedrawRequested reports and consumes a pending redraw request.
func (w *Window) RedrawRequested() bool {
	pending := w.redraw
	w.redraw = false
	return pending
}

// RedrawPending reports a pending redraw request without consuming it.
func (w *Window) RedrawPending() bool {
	return w.redraw
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) WaitEvents() {
	glfw.WaitEvents()
}

func (w *Window) SwapBuffers() {
	w.Handle.SwapBuffers()
}

// FramebufferExtent returns the drawable size in pixels; zero while the
// window is minimized.
func (w *Window) FramebufferExtent() math.Extent2 {
	return resizedEvent(w.Handle.GetFramebufferSize()).Extent
}

// ToggleFullscreen switches between the primary monitor's video mode and the
// last windowed geometry.
func (w *Window) ToggleFullscreen() {
	if w.Handle.GetMonitor() != nil {
		w.Handle.SetMonitor(nil, w.windowedX, w.windowedY, w.windowedW, w.windowedH, 0)
		logger.Info("leaving fullscreen")
		return
	}

	w.windowedX, w.windowedY = w.Handle.GetPos()
	w.windowedW, w.windowedH = w.Handle.GetSize()

	monitor := glfw.GetPrimaryMonitor()
	mode := monitor.GetVideoMode()
	w.Handle.SetMonitor(monitor, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
	logger.Infof("fullscreen %dx%d@%d", mode.Width, mode.Height, mode.RefreshRate)
}

func (w *Window) SetTitle(title string) {
	w.Handle.SetTitle(title)
	w.Title = title
}

// Close marks the window for closing; Run loops exit on the next check.
func (w *Window) Close() {
	w.Handle.SetShouldClose(true)
}

func (w *Window) ShouldClose() bool {
	return w.Handle.ShouldClose()
}

func (w *Window) Destroy() {
	w.Handle.Destroy()
	glfw.Terminate()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
