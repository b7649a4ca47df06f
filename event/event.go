// Package event defines the window-system notifications consumed by the
// frame loop.
package event

import (
	"pathview/input"
	"pathview/math"
)

// Event is one window-system notification.
type Event interface {
	isEvent()
}

// CloseRequested is sent when the user asks to close the window.
type CloseRequested struct{}

// Resized carries the new drawable size in pixels.
type Resized struct {
	Extent math.Extent2
}

// KeyChanged reports a key level change.
type KeyChanged struct {
	Key     input.Key
	Pressed bool
}

func (CloseRequested) isEvent() {}
func (Resized) isEvent()        {}
func (KeyChanged) isEvent()     {}
