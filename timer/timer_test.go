package timer

import (
	"math"
	"testing"
	"time"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func TestResponseDeltaTime(t *testing.T) {
	clock := newFakeClock()
	tm := New(WithClock(clock.Now))

	clock.Advance(100 * time.Millisecond)
	tm.Response()
	if got := tm.State().DeltaTime; math.Abs(got-0.1) > 1e-9 {
		t.Fatalf("expected delta time 0.1; got %v", got)
	}

	clock.Advance(250 * time.Millisecond)
	tm.Response()
	st := tm.State()
	if math.Abs(st.DeltaTime-0.25) > 1e-9 {
		t.Fatalf("expected delta time 0.25; got %v", st.DeltaTime)
	}
	if math.Abs(st.Elapsed-0.35) > 1e-9 {
		t.Fatalf("expected elapsed time 0.35; got %v", st.Elapsed)
	}
	if st.Frame != 2 {
		t.Fatalf("expected frame 2; got %d", st.Frame)
	}
}

func TestResponseNeverNegative(t *testing.T) {
	clock := newFakeClock()
	tm := New(WithClock(clock.Now))

	clock.Advance(-time.Second)
	tm.Response()
	if got := tm.State().DeltaTime; got != 0 {
		t.Fatalf("expected delta time to be clamped to 0; got %v", got)
	}
}

func TestWindowedFPS(t *testing.T) {
	clock := newFakeClock()
	tm := New(WithClock(clock.Now), WithFPSWindow(time.Second))

	// 60 ticks at 1/60s; the first tick seeds an instantaneous estimate.
	step := time.Second / 60
	clock.Advance(step)
	tm.Response()
	if got := tm.State().FPS; math.Abs(got-60) > 0.5 {
		t.Fatalf("expected initial fps estimate ~60; got %v", got)
	}

	// Switch to 20 fps; the estimate must follow after one window.
	for i := 0; i < 40; i++ {
		clock.Advance(50 * time.Millisecond)
		tm.Response()
	}
	if got := tm.State().FPS; math.Abs(got-20) > 1 {
		t.Fatalf("expected windowed fps ~20; got %v", got)
	}
}

func TestReportDue(t *testing.T) {
	clock := newFakeClock()
	tm := New(WithClock(clock.Now))

	clock.Advance(500 * time.Millisecond)
	tm.Response()
	if tm.ReportDue(time.Second) {
		t.Fatal("expected no report before the interval elapsed")
	}

	clock.Advance(600 * time.Millisecond)
	tm.Response()
	if !tm.ReportDue(time.Second) {
		t.Fatal("expected a report once the interval elapsed")
	}
	if tm.ReportDue(time.Second) {
		t.Fatal("expected the report gate to be consumed")
	}
}

func TestWrappedTime(t *testing.T) {
	type spec struct {
		elapsed float64
		exp     float32
	}
	specs := []spec{
		{0, 0},
		{-1, 0},
		{1.5, 1.5},
		{(float64(0x1000000) + 0.5) / 1000, 0},
		{(float64(0x1000000+250) + 0.5) / 1000, 0.25},
	}

	for index, s := range specs {
		if got := WrappedTime(s.elapsed); math.Abs(float64(got-s.exp)) > 1e-4 {
			t.Fatalf("[spec %d] expected wrapped time %v; got %v", index, s.exp, got)
		}
	}
}
