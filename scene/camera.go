package scene

import (
	reMath "pathview/math"
	"pathview/renderer"
)

// degenerateEpsilon is the smallest vector length Set accepts for the view
// direction and for the cross product with the up hint.
const degenerateEpsilon = 1e-6

// Camera is a pinhole camera described by an orthonormal right-handed basis.
// Direction, Right and Up are recomputed together by Set and never drift apart.
type Camera struct {
	Location reMath.Vec3
	At       reMath.Vec3

	Direction reMath.Vec3
	Right     reMath.Vec3
	Up        reMath.Vec3
}

// NewCamera returns a camera at (0,0,1) looking at the origin.
func NewCamera() *Camera {
	return &Camera{
		Location:  reMath.NewVec3(0, 0, 1),
		At:        reMath.Vec3Zero,
		Direction: reMath.Vec3Back,
		Right:     reMath.Vec3Right,
		Up:        reMath.Vec3Up,
	}
}

// Set places the camera at location looking at at. approxUp only selects the
// roll; it does not have to be orthogonal to the view direction.
//
// Degenerate input (location == at, or approxUp parallel to the view
// direction) leaves the camera untouched and returns false.
func (c *Camera) Set(location, at, approxUp reMath.Vec3) bool {
	view := at.Sub(location)
	if view.Length() < degenerateEpsilon {
		return false
	}
	direction := view.Normalize()

	side := direction.Cross(approxUp)
	if side.Length() < degenerateEpsilon {
		return false
	}
	right := side.Normalize()

	c.Direction = direction
	c.Right = right
	c.Up = right.Cross(direction).Normalize()
	c.Location = location
	c.At = at
	return true
}

// SetPose applies p through Set.
func (c *Camera) SetPose(p Pose) bool {
	return c.Set(p.Location, p.At, p.Up)
}

// Record builds the uniform record for a render target of the given extent.
func (c *Camera) Record(near float32, extent reMath.Extent2) renderer.CameraRecord {
	return renderer.CameraRecord{
		Location:         c.Location,
		Direction:        c.Direction,
		Right:            c.Right,
		Up:               c.Up,
		Near:             near,
		ProjectionExtent: extent.ProjectionExtent(),
	}
}

// Pose is a camera placement before the basis is derived.
type Pose struct {
	Location reMath.Vec3
	At       reMath.Vec3
	Up       reMath.Vec3
}
