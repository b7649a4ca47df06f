package math

// Extent2 is a pixel extent of a surface or render target.
type Extent2 struct {
	W, H uint32
}

func NewExtent2(w, h uint32) Extent2 {
	return Extent2{W: w, H: h}
}

// IsZero reports whether either dimension is zero. Such an extent cannot back
// a render target.
func (e Extent2) IsZero() bool {
	return e.W == 0 || e.H == 0
}

func (e Extent2) Min() uint32 {
	if e.W < e.H {
		return e.W
	}
	return e.H
}

func (e Extent2) Vec2() Vec2 {
	return Vec2{X: float32(e.W), Y: float32(e.H)}
}

// ProjectionExtent returns the aspect-correct image plane half-extents
// (W/min, H/min): the shorter side always spans [-1, 1].
func (e Extent2) ProjectionExtent() Vec2 {
	if e.IsZero() {
		return Vec2{}
	}
	m := float32(e.Min())
	return Vec2{X: float32(e.W) / m, Y: float32(e.H) / m}
}

// TexelSize returns the size of one pixel in normalized texture coordinates.
func (e Extent2) TexelSize() Vec2 {
	if e.IsZero() {
		return Vec2{}
	}
	return Vec2{X: 1 / float32(e.W), Y: 1 / float32(e.H)}
}
