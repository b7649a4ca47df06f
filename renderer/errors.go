package renderer

import "errors"

var (
	// ErrSurfaceUnavailable marks a transient failure to obtain a drawable
	// surface image, e.g. while the window is minimized. The frame should be
	// skipped and retried on the next redraw.
	ErrSurfaceUnavailable = errors.New("renderer: surface unavailable")

	// ErrDeviceLost wraps command submission failures. It is not recoverable.
	ErrDeviceLost = errors.New("renderer: device lost")

	// ErrNoTargets is returned when a pass is issued before the accumulation
	// targets have been allocated.
	ErrNoTargets = errors.New("renderer: accumulation targets not allocated")
)
