// Package timer tracks per-frame delta time, total elapsed time and a
// smoothed frame rate.
package timer

import "time"

// DefaultFPSWindow is the averaging window of the fps estimate.
const DefaultFPSWindow = time.Second

// timeWrapMask bounds the shader-facing time to ~4.6 hours of milliseconds so
// the value keeps millisecond precision as a float32.
const timeWrapMask = 0xFFFFFF

// State is the immutable per-tick view of the timer.
type State struct {
	// Seconds since the previous Response call. Never negative.
	DeltaTime float64

	// Seconds since the timer was created.
	Elapsed float64

	// Smoothed frames per second.
	FPS float64

	// Number of Response calls so far.
	Frame uint64
}

// Timer is advanced exactly once per frame tick through Response.
type Timer struct {
	now func() time.Time

	start    time.Time
	lastTick time.Time

	state State

	// fps window
	window      time.Duration
	windowStart time.Time
	windowTicks uint64

	// last time ReportDue fired
	lastReport time.Time
}

type Option func(*Timer)

// WithClock replaces the wall clock. Intended for tests and replays.
func WithClock(now func() time.Time) Option {
	return func(t *Timer) {
		t.now = now
	}
}

// WithFPSWindow sets the averaging window of the fps estimate.
func WithFPSWindow(window time.Duration) Option {
	return func(t *Timer) {
		if window > 0 {
			t.window = window
		}
	}
}

func New(opts ...Option) *Timer {
	t := &Timer{
		now:    time.Now,
		window: DefaultFPSWindow,
	}
	for _, opt := range opts {
		opt(t)
	}

	now := t.now()
	t.start = now
	t.lastTick = now
	t.windowStart = now
	t.lastReport = now
	return t
}

// Response samples the clock and updates delta time, elapsed time and the fps
// estimate. It must run once per tick, before State is read.
func (t *Timer) Response() {
	now := t.now()

	delta := now.Sub(t.lastTick)
	if delta < 0 {
		delta = 0
	}
	t.lastTick = now

	t.state.DeltaTime = delta.Seconds()
	t.state.Elapsed = now.Sub(t.start).Seconds()
	t.state.Frame++
	t.windowTicks++

	// Windowed average once a full window is available; until then the
	// instantaneous rate stands in.
	if span := now.Sub(t.windowStart); span >= t.window {
		t.state.FPS = float64(t.windowTicks) / span.Seconds()
		t.windowStart = now
		t.windowTicks = 0
	} else if t.state.FPS == 0 && delta > 0 {
		t.state.FPS = 1 / delta.Seconds()
	}
}

func (t *Timer) State() State {
	return t.state
}

// ReportDue reports whether at least interval has passed since it last
// returned true. It is meant for periodic fps logging.
func (t *Timer) ReportDue(interval time.Duration) bool {
	if t.lastTick.Sub(t.lastReport) < interval {
		return false
	}
	t.lastReport = t.lastTick
	return true
}

// WrappedTime converts an elapsed time in seconds into the bounded shader time
// value: whole milliseconds masked to 24 bits, expressed in seconds.
func WrappedTime(elapsed float64) float32 {
	if elapsed <= 0 {
		return 0
	}
	millis := uint64(elapsed * 1000)
	return float32(millis&timeWrapMask) / 1000
}
