package renderer

import (
	"fmt"

	"pathview/math"
)

// Target is a GPU-resident accumulation image. Handles are owned by the
// Accumulator and lent to the passes of a single frame.
type Target interface {
	Extent() math.Extent2
}

// TargetAllocator creates and destroys accumulation targets.
type TargetAllocator interface {
	CreateTarget(extent math.Extent2) (Target, error)
	DestroyTarget(t Target)
}

// AccumulatorStats counts state transitions of an Accumulator.
type AccumulatorStats struct {
	Invalidations uint64
	Resizes       uint64
	Reallocations uint64
}

// Accumulator keeps a ping-pong pair of accumulation targets and the number
// of frames accumulated into them since the last reset.
//
// At frame N the target N&1 holds the history and (N+1)&1 receives the new
// pass. Any change of view or resolution resets N to zero.
type Accumulator struct {
	alloc TargetAllocator

	targets    [2]Target
	allocated  bool
	extent     math.Extent2
	frameIndex uint32

	stats AccumulatorStats
}

func NewAccumulator(alloc TargetAllocator) *Accumulator {
	return &Accumulator{alloc: alloc}
}

// SelectBuffers returns the (read, write) target indices for frameIndex.
func SelectBuffers(frameIndex uint32) (read, write int) {
	return int(frameIndex & 1), int((frameIndex + 1) & 1)
}

// Resize resets the frame counter and recreates both targets at extent. The
// targets are kept when they already match extent. A zero extent only
// releases them.
func (a *Accumulator) Resize(extent math.Extent2) error {
	a.frameIndex = 0
	a.stats.Resizes++

	if a.allocated && a.extent == extent {
		return nil
	}

	a.Release()
	a.extent = extent
	if extent.IsZero() {
		return nil
	}

	for i := range a.targets {
		t, err := a.alloc.CreateTarget(extent)
		if err != nil {
			a.Release()
			return fmt.Errorf("accumulation target %d (%dx%d): %w", i, extent.W, extent.H, err)
		}
		a.targets[i] = t
	}
	a.allocated = true
	a.stats.Reallocations++
	return nil
}

// Invalidate discards the accumulated history without touching the targets.
func (a *Accumulator) Invalidate() {
	a.frameIndex = 0
	a.stats.Invalidations++
}

// AdvanceFrame is called once per frame after its passes have been issued.
func (a *Accumulator) AdvanceFrame() {
	a.frameIndex++
}

func (a *Accumulator) FrameIndex() uint32 {
	return a.frameIndex
}

func (a *Accumulator) Extent() math.Extent2 {
	return a.extent
}

// Buffers returns the targets selected for the current frame. ok is false
// while no targets are allocated.
func (a *Accumulator) Buffers() (read, write Target, ok bool) {
	if !a.allocated {
		return nil, nil, false
	}
	r, w := SelectBuffers(a.frameIndex)
	return a.targets[r], a.targets[w], true
}

// Release destroys both targets. The frame counter and extent are kept.
func (a *Accumulator) Release() {
	for i, t := range a.targets {
		if t != nil {
			a.alloc.DestroyTarget(t)
			a.targets[i] = nil
		}
	}
	a.allocated = false
}

func (a *Accumulator) Stats() AccumulatorStats {
	return a.stats
}
