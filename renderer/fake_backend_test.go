package renderer

import (
	"errors"

	"pathview/math"
)

type fakeTarget struct {
	id     int
	extent math.Extent2
}

func (t *fakeTarget) Extent() math.Extent2 { return t.extent }

type pass struct {
	kind        string
	read, write Target
}

type fakeBackend struct {
	surface    math.Extent2
	configured []math.Extent2

	nextID    int
	live      map[Target]bool
	created   int
	destroyed int
	failAfter int // CreateTarget fails once created reaches this value, 0 disables

	camera []byte
	system [][]byte
	passes []pass

	submitErr        error
	submits          int
	destroyedBackend bool
}

func newFakeBackend(surface math.Extent2) *fakeBackend {
	return &fakeBackend{surface: surface, live: map[Target]bool{}}
}

func (b *fakeBackend) CreateTarget(extent math.Extent2) (Target, error) {
	if b.failAfter > 0 && b.created >= b.failAfter {
		return nil, errors.New("out of memory")
	}
	b.nextID++
	b.created++
	t := &fakeTarget{id: b.nextID, extent: extent}
	b.live[t] = true
	return t, nil
}

func (b *fakeBackend) DestroyTarget(t Target) {
	delete(b.live, t)
	b.destroyed++
}

func (b *fakeBackend) SurfaceExtent() math.Extent2 { return b.surface }

func (b *fakeBackend) ConfigureSurface(extent math.Extent2) {
	b.configured = append(b.configured, extent)
}

func (b *fakeBackend) WriteCamera(data []byte) { b.camera = data }

func (b *fakeBackend) WriteSystem(data []byte) { b.system = append(b.system, data) }

func (b *fakeBackend) Accumulate(read, write Target) {
	b.passes = append(b.passes, pass{kind: "accumulate", read: read, write: write})
}

func (b *fakeBackend) Present(src Target) {
	b.passes = append(b.passes, pass{kind: "present", read: src})
}

func (b *fakeBackend) Submit() error {
	b.submits++
	return b.submitErr
}

func (b *fakeBackend) Destroy() { b.destroyedBackend = true }
