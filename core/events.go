package core

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"pathview/event"
	"pathview/input"
	"pathview/math"
)

type eventQueue struct {
	events []event.Event
}

func (q *eventQueue) push(e event.Event) {
	q.events = append(q.events, e)
}

// drain returns the queued events in arrival order and empties the queue.
func (q *eventQueue) drain() []event.Event {
	events := q.events
	q.events = nil
	return events
}

// keyEvent converts a GLFW key callback. Repeats carry no level change and
// are dropped.
func keyEvent(key glfw.Key, action glfw.Action) (event.KeyChanged, bool) {
	switch action {
	case glfw.Press:
		return event.KeyChanged{Key: input.Key(key), Pressed: true}, true
	case glfw.Release:
		return event.KeyChanged{Key: input.Key(key), Pressed: false}, true
	}
	return event.KeyChanged{}, false
}

func resizedEvent(width, height int) event.Resized {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return event.Resized{Extent: math.NewExtent2(uint32(width), uint32(height))}
}
