package main

import (
	"fmt"
	"time"

	"github.com/urfave/cli"

	"pathview/config"
	"pathview/core"
	"pathview/frameloop"
	"pathview/internal/opengl"
	"pathview/renderer"
	"pathview/scene"
)

// loadConfig builds the configuration from defaults, the optional config
// file and any flag the user set explicitly.
func loadConfig(ctx *cli.Context) (config.Config, error) {
	cfg := config.Default()
	if path := ctx.String("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return cfg, err
		}
	}

	if ctx.IsSet("width") {
		cfg.Window.Width = ctx.Int("width")
	}
	if ctx.IsSet("height") {
		cfg.Window.Height = ctx.Int("height")
	}
	if ctx.IsSet("vsync") {
		cfg.Window.VSync = ctx.Bool("vsync")
	}
	if ctx.IsSet("fullscreen") {
		cfg.Window.Fullscreen = ctx.Bool("fullscreen")
	}
	if ctx.IsSet("scene") {
		cfg.Camera.Scene = ctx.String("scene")
	}
	if ctx.IsSet("accumulate-shader") {
		cfg.Render.AccumulateShader = ctx.String("accumulate-shader")
	}
	if ctx.IsSet("present-shader") {
		cfg.Render.PresentShader = ctx.String("present-shader")
	}

	return cfg, cfg.Validate()
}

// startPose returns the configured pose, or the first camera of the glTF
// scene when one is given.
func startPose(cfg config.Camera) (scene.Pose, error) {
	if cfg.Scene == "" {
		return cfg.Pose(), nil
	}
	pose, err := scene.LoadCameraGLTF(cfg.Scene)
	if err != nil {
		return scene.Pose{}, err
	}
	logger.Infof("camera imported from %s", cfg.Scene)
	return pose, nil
}

// RunViewer opens the window and runs the frame loop until it is closed.
func RunViewer(ctx *cli.Context) error {
	setupLogging(ctx)

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	pose, err := startPose(cfg.Camera)
	if err != nil {
		return err
	}
	camera := scene.NewCamera()
	if !camera.SetPose(pose) {
		return fmt.Errorf("degenerate start camera %+v", pose)
	}

	shaders, err := renderer.LoadShaderSet(cfg.Render.AccumulateShader, cfg.Render.PresentShader, opengl.DefaultShaders())
	if err != nil {
		return err
	}

	window, err := core.NewWindow(core.WindowConfig{
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Title:      cfg.Window.Title,
		Resizable:  cfg.Window.Resizable,
		VSync:      cfg.Window.VSync,
		Fullscreen: cfg.Window.Fullscreen,
	})
	if err != nil {
		return err
	}
	defer window.Destroy()

	device, err := opengl.NewDevice(window, shaders)
	if err != nil {
		return fmt.Errorf("graphics device: %w", err)
	}
	engine := renderer.NewRenderEngine(device)
	defer engine.Close()

	loop := frameloop.New(engine, window, frameloop.Options{
		Camera:         camera,
		Controller:     scene.NewController(cfg.Camera.Controller()),
		StartPose:      &pose,
		Near:           cfg.Camera.Near,
		ReportInterval: cfg.Render.ReportEvery(),
		Title:          cfg.Window.Title,
	})

	start := time.Now()
	err = loop.Run()
	displaySessionStats(engine.Stats(), time.Since(start))
	return err
}
