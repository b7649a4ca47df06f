package scene

import (
	"math"

	"pathview/input"
	reMath "pathview/math"
)

// ControllerConfig holds the tuning values of the fly-through controller.
type ControllerConfig struct {
	// World units per second at full axis deflection.
	MoveSpeed float32

	// Radians per second at full axis deflection.
	RotateSpeed float32

	// Axis magnitudes at or below this value are treated as no input.
	Threshold float32

	// Azimuth is kept inside [AzimuthMargin, pi-AzimuthMargin].
	AzimuthMargin float32
}

func DefaultControllerConfig() ControllerConfig {
	return ControllerConfig{
		MoveSpeed:     8.0,
		RotateSpeed:   2.0,
		Threshold:     0.01,
		AzimuthMargin: 0.01,
	}
}

// Axes is the controller input for one tick.
type Axes struct {
	// Camera-local movement: X along Right, Y along Up, Z along Direction.
	Move reMath.Vec3

	// X turns around the world up axis, Y tilts towards/away from it.
	Rotate reMath.Vec2
}

// Bindings maps opposing key pairs to controller axes.
type Bindings struct {
	Right, Left   input.Key
	Rise, Fall    input.Key
	Forward, Back input.Key
	TurnRight     input.Key
	TurnLeft      input.Key
	TiltDown      input.Key
	TiltUp        input.Key
}

func DefaultBindings() Bindings {
	return Bindings{
		Right:     input.KeyD,
		Left:      input.KeyA,
		Rise:      input.KeyR,
		Fall:      input.KeyF,
		Forward:   input.KeyW,
		Back:      input.KeyS,
		TurnRight: input.KeyRight,
		TurnLeft:  input.KeyLeft,
		TiltDown:  input.KeyDown,
		TiltUp:    input.KeyUp,
	}
}

// AxesFromSnapshot derives the controller axes from the pressed keys.
func AxesFromSnapshot(s input.Snapshot, b Bindings) Axes {
	return Axes{
		Move: reMath.NewVec3(
			s.Axis(b.Right, b.Left),
			s.Axis(b.Rise, b.Fall),
			s.Axis(b.Forward, b.Back),
		),
		Rotate: reMath.NewVec2(
			s.Axis(b.TurnRight, b.TurnLeft),
			s.Axis(b.TiltDown, b.TiltUp),
		),
	}
}

// Controller moves a Camera from per-tick axes.
type Controller struct {
	Config ControllerConfig
}

func NewController(config ControllerConfig) *Controller {
	return &Controller{Config: config}
}

// Idle reports whether axes are too small to move the camera.
func (cc *Controller) Idle(axes Axes) bool {
	return axes.Move.Length() <= cc.Config.Threshold && axes.Rotate.Length() <= cc.Config.Threshold
}

// Update applies one tick of movement and rotation to camera, scaled by dt
// seconds. It returns false, leaving the camera untouched, when the input is
// below the threshold.
//
// Angles are measured against +Y and the rebuilt basis always uses +Y as its
// up hint, so a start pose with another up is leveled by the first update.
func (cc *Controller) Update(camera *Camera, axes Axes, dt float32) bool {
	if cc.Idle(axes) {
		return false
	}

	delta := camera.Right.Mul(axes.Move.X).
		Add(camera.Up.Mul(axes.Move.Y)).
		Add(camera.Direction.Mul(axes.Move.Z)).
		Mul(dt * cc.Config.MoveSpeed)

	azimuth, elevation := SphericalAngles(camera.Direction)
	elevation += float64(axes.Rotate.X * dt * cc.Config.RotateSpeed)
	azimuth += float64(axes.Rotate.Y * dt * cc.Config.RotateSpeed)

	margin := float64(cc.Config.AzimuthMargin)
	azimuth = math.Max(margin, math.Min(math.Pi-margin, azimuth))

	location := camera.Location.Add(delta)
	return camera.Set(location, location.Add(DirectionFromAngles(azimuth, elevation)), reMath.Vec3Up)
}

// SphericalAngles splits a unit direction into its azimuth (polar angle from
// +Y) and elevation (angle of the XZ projection from +X, signed by Z).
func SphericalAngles(dir reMath.Vec3) (azimuth, elevation float64) {
	y := math.Max(-1, math.Min(1, float64(dir.Y)))
	azimuth = math.Acos(y)

	horizontal := math.Sqrt(float64(dir.X*dir.X + dir.Z*dir.Z))
	if horizontal == 0 {
		return azimuth, 0
	}
	cos := math.Max(-1, math.Min(1, float64(dir.X)/horizontal))
	elevation = math.Acos(cos)
	if dir.Z < 0 {
		elevation = -elevation
	}
	return azimuth, elevation
}

// DirectionFromAngles is the inverse of SphericalAngles.
func DirectionFromAngles(azimuth, elevation float64) reMath.Vec3 {
	sinAz := math.Sin(azimuth)
	return reMath.NewVec3(
		float32(sinAz*math.Cos(elevation)),
		float32(math.Cos(azimuth)),
		float32(sinAz*math.Sin(elevation)),
	)
}
