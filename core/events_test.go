package core

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"

	"pathview/event"
	"pathview/input"
	"pathview/math"
)

func TestKeyCodesMatchGLFW(t *testing.T) {
	specs := []struct {
		key  input.Key
		glfw glfw.Key
	}{
		{input.KeyUnknown, glfw.KeyUnknown},
		{input.KeySpace, glfw.KeySpace},
		{input.KeyA, glfw.KeyA},
		{input.KeyD, glfw.KeyD},
		{input.KeyF, glfw.KeyF},
		{input.KeyR, glfw.KeyR},
		{input.KeyS, glfw.KeyS},
		{input.KeyW, glfw.KeyW},
		{input.KeyEscape, glfw.KeyEscape},
		{input.KeyRight, glfw.KeyRight},
		{input.KeyLeft, glfw.KeyLeft},
		{input.KeyDown, glfw.KeyDown},
		{input.KeyUp, glfw.KeyUp},
		{input.KeyHome, glfw.KeyHome},
		{input.KeyF1, glfw.KeyF1},
		{input.KeyF11, glfw.KeyF11},
	}

	for _, spec := range specs {
		if int(spec.key) != int(spec.glfw) {
			t.Fatalf("%v = %d, GLFW uses %d", spec.key, int(spec.key), int(spec.glfw))
		}
	}
}

func TestKeyEvent(t *testing.T) {
	specs := []struct {
		action glfw.Action
		ok     bool
		want   event.KeyChanged
	}{
		{glfw.Press, true, event.KeyChanged{Key: input.KeyW, Pressed: true}},
		{glfw.Release, true, event.KeyChanged{Key: input.KeyW, Pressed: false}},
		{glfw.Repeat, false, event.KeyChanged{}},
	}

	for specIndex, spec := range specs {
		got, ok := keyEvent(glfw.KeyW, spec.action)
		if ok != spec.ok || got != spec.want {
			t.Fatalf("[spec %d] got %+v %v, want %+v %v", specIndex, got, ok, spec.want, spec.ok)
		}
	}
}

func TestEventQueueOrder(t *testing.T) {
	var q eventQueue
	q.push(event.KeyChanged{Key: input.KeyA, Pressed: true})
	q.push(resizedEvent(640, 480))
	q.push(event.CloseRequested{})

	events := q.drain()
	if len(events) != 3 {
		t.Fatalf("drained %d events", len(events))
	}
	if _, ok := events[0].(event.KeyChanged); !ok {
		t.Fatalf("first event %T", events[0])
	}
	if r, ok := events[1].(event.Resized); !ok || r.Extent != math.NewExtent2(640, 480) {
		t.Fatalf("second event %+v", events[1])
	}
	if _, ok := events[2].(event.CloseRequested); !ok {
		t.Fatalf("third event %T", events[2])
	}
	if len(q.drain()) != 0 {
		t.Fatal("queue not emptied")
	}
}

func TestResizedEventClampsNegative(t *testing.T) {
	if e := resizedEvent(-1, 10); e.Extent != math.NewExtent2(0, 10) {
		t.Fatalf("got %+v", e.Extent)
	}
}
