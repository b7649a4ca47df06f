package renderer

import (
	"encoding/binary"
	"errors"
	"testing"

	"pathview/math"
)

func frameIndexOf(system []byte) uint32 {
	return binary.LittleEndian.Uint32(system[12:16])
}

func TestRenderEnginePingPong(t *testing.T) {
	backend := newFakeBackend(math.NewExtent2(64, 32))
	re := NewRenderEngine(backend)
	if err := re.Resize(math.NewExtent2(64, 32)); err != nil {
		t.Fatal(err)
	}

	for frame := 0; frame < 3; frame++ {
		if err := re.Acquire(); err != nil {
			t.Fatal(err)
		}
		if err := re.Render(0.5); err != nil {
			t.Fatal(err)
		}
		re.AdvanceFrame()
	}

	if len(backend.passes) != 6 {
		t.Fatalf("expected 6 passes, got %d", len(backend.passes))
	}
	for frame := 0; frame < 3; frame++ {
		acc, present := backend.passes[2*frame], backend.passes[2*frame+1]
		if acc.kind != "accumulate" || present.kind != "present" {
			t.Fatalf("[frame %d] pass order %s, %s", frame, acc.kind, present.kind)
		}
		if present.read != acc.write {
			t.Fatalf("[frame %d] present does not sample the written target", frame)
		}
		if acc.read == acc.write {
			t.Fatalf("[frame %d] accumulate reads and writes the same target", frame)
		}
		if frame > 0 && acc.read != backend.passes[2*(frame-1)].write {
			t.Fatalf("[frame %d] history is not the previous output", frame)
		}
		if got := frameIndexOf(backend.system[frame]); got != uint32(frame) {
			t.Fatalf("[frame %d] system record frame index %d", frame, got)
		}
	}
	if re.FrameIndex() != 3 || backend.submits != 3 {
		t.Fatalf("frame index %d, submits %d", re.FrameIndex(), backend.submits)
	}
	if stats := re.Stats(); stats.Frames != 3 || stats.Resizes != 1 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}

func TestRenderEngineResizeTwiceResets(t *testing.T) {
	backend := newFakeBackend(math.NewExtent2(64, 32))
	re := NewRenderEngine(backend)
	extent := math.NewExtent2(64, 32)

	if err := re.Resize(extent); err != nil {
		t.Fatal(err)
	}
	re.AdvanceFrame()
	re.AdvanceFrame()
	if err := re.Resize(extent); err != nil {
		t.Fatal(err)
	}
	if re.FrameIndex() != 0 {
		t.Fatalf("first resize left frame index %d", re.FrameIndex())
	}
	re.AdvanceFrame()
	if err := re.Resize(extent); err != nil {
		t.Fatal(err)
	}
	if re.FrameIndex() != 0 {
		t.Fatalf("second resize left frame index %d", re.FrameIndex())
	}
	if len(backend.configured) != 3 {
		t.Fatalf("surface configured %d times", len(backend.configured))
	}
}

func TestRenderEngineInvalidate(t *testing.T) {
	re := NewRenderEngine(newFakeBackend(math.NewExtent2(4, 4)))
	if err := re.Resize(math.NewExtent2(4, 4)); err != nil {
		t.Fatal(err)
	}
	re.AdvanceFrame()
	re.Invalidate()
	if re.FrameIndex() != 0 {
		t.Fatalf("frame index = %d", re.FrameIndex())
	}
}

func TestRenderEngineErrors(t *testing.T) {
	backend := newFakeBackend(math.Extent2{})
	re := NewRenderEngine(backend)

	if err := re.Acquire(); !errors.Is(err, ErrSurfaceUnavailable) {
		t.Fatalf("expected ErrSurfaceUnavailable, got %v", err)
	}
	if re.Stats().SkippedFrames != 1 {
		t.Fatalf("skipped frame not counted: %+v", re.Stats())
	}
	if err := re.Render(0); !errors.Is(err, ErrNoTargets) {
		t.Fatalf("expected ErrNoTargets, got %v", err)
	}

	backend.surface = math.NewExtent2(4, 4)
	if err := re.Resize(backend.surface); err != nil {
		t.Fatal(err)
	}
	cause := errors.New("context lost")
	backend.submitErr = cause
	err := re.Render(0)
	if !errors.Is(err, ErrDeviceLost) || !errors.Is(err, cause) {
		t.Fatalf("expected wrapped device loss, got %v", err)
	}
}

func TestRenderEngineSetCameraAndClose(t *testing.T) {
	backend := newFakeBackend(math.NewExtent2(4, 4))
	re := NewRenderEngine(backend)
	if err := re.Resize(math.NewExtent2(4, 4)); err != nil {
		t.Fatal(err)
	}

	re.SetCamera(CameraRecord{Near: 1})
	if len(backend.camera) != CameraRecordSize {
		t.Fatalf("camera upload of %d bytes", len(backend.camera))
	}

	re.Close()
	if len(backend.live) != 0 || !backend.destroyedBackend {
		t.Fatalf("close left live=%d destroyed=%v", len(backend.live), backend.destroyedBackend)
	}
}
