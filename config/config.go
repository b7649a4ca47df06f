// Package config holds the startup settings of pathview. Values come from
// Default, optionally overlaid by a JSON file and then by command line flags.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	gomath "math"
	"os"
	"time"

	reMath "pathview/math"
	"pathview/scene"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Window Window `json:"window"`
	Camera Camera `json:"camera"`
	Render Render `json:"render"`
}

type Window struct {
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Title      string `json:"title"`
	Resizable  bool   `json:"resizable"`
	VSync      bool   `json:"vsync"`
	Fullscreen bool   `json:"fullscreen"`
}

// Camera is the startup pose and the fly-through controller tuning.
type Camera struct {
	Location [3]float32 `json:"location"`
	At       [3]float32 `json:"at"`
	Up       [3]float32 `json:"up"`
	Near     float32    `json:"near"`

	MoveSpeed     float32 `json:"moveSpeed"`
	RotateSpeed   float32 `json:"rotateSpeed"`
	Threshold     float32 `json:"threshold"`
	AzimuthMargin float32 `json:"azimuthMargin"`

	// Optional glTF file whose first camera replaces the pose above.
	Scene string `json:"scene,omitempty"`
}

type Render struct {
	// GLSL fragment programs replacing the built-in ones.
	AccumulateShader string `json:"accumulateShader,omitempty"`
	PresentShader    string `json:"presentShader,omitempty"`

	// Seconds between frame rate reports.
	ReportInterval float64 `json:"reportInterval"`
}

func Default() Config {
	controller := scene.DefaultControllerConfig()
	return Config{
		Window: Window{
			Width:     1280,
			Height:    720,
			Title:     "pathview",
			Resizable: true,
		},
		Camera: Camera{
			Location:      [3]float32{-3.2, 2.8, 0.3},
			At:            [3]float32{-2.4, 2.4, -0.1},
			Up:            [3]float32{0, 1, 0},
			Near:          1.0,
			MoveSpeed:     controller.MoveSpeed,
			RotateSpeed:   controller.RotateSpeed,
			Threshold:     controller.Threshold,
			AzimuthMargin: controller.AzimuthMargin,
		},
		Render: Render{
			ReportInterval: 1.0,
		},
	}
}

// Load reads a JSON file over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("open config %q: %w", path, err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}

	cam := c.Camera
	if cam.Near <= 0 {
		return fmt.Errorf("%w: camera near %v", ErrInvalid, cam.Near)
	}
	if cam.MoveSpeed <= 0 || cam.RotateSpeed <= 0 {
		return fmt.Errorf("%w: camera speeds %v/%v", ErrInvalid, cam.MoveSpeed, cam.RotateSpeed)
	}
	if cam.Threshold <= 0 {
		return fmt.Errorf("%w: camera threshold %v", ErrInvalid, cam.Threshold)
	}
	if cam.AzimuthMargin <= 0 || float64(cam.AzimuthMargin) >= gomath.Pi/2 {
		return fmt.Errorf("%w: azimuth margin %v outside (0, pi/2)", ErrInvalid, cam.AzimuthMargin)
	}
	if !scene.NewCamera().SetPose(cam.Pose()) {
		return fmt.Errorf("%w: degenerate camera pose", ErrInvalid)
	}

	if c.Render.ReportInterval <= 0 {
		return fmt.Errorf("%w: report interval %v", ErrInvalid, c.Render.ReportInterval)
	}
	return nil
}

func vec3(v [3]float32) reMath.Vec3 {
	return reMath.NewVec3(v[0], v[1], v[2])
}

// Pose returns the configured startup pose.
func (c Camera) Pose() scene.Pose {
	return scene.Pose{Location: vec3(c.Location), At: vec3(c.At), Up: vec3(c.Up)}
}

// Controller returns the controller tuning. Up only affects the startup pose;
// the controller always works against +Y.
func (c Camera) Controller() scene.ControllerConfig {
	return scene.ControllerConfig{
		MoveSpeed:     c.MoveSpeed,
		RotateSpeed:   c.RotateSpeed,
		Threshold:     c.Threshold,
		AzimuthMargin: c.AzimuthMargin,
	}
}

func (r Render) ReportEvery() time.Duration {
	return time.Duration(r.ReportInterval * float64(time.Second))
}
