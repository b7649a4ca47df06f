package main

import (
	"os"

	"github.com/urfave/cli"
)

var runFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "config, c",
		Usage: "JSON configuration file",
	},
	cli.IntFlag{
		Name:  "width",
		Value: 1280,
		Usage: "window width",
	},
	cli.IntFlag{
		Name:  "height",
		Value: 720,
		Usage: "window height",
	},
	cli.StringFlag{
		Name:  "scene, s",
		Usage: "glTF file providing the start camera",
	},
	cli.StringFlag{
		Name:  "accumulate-shader",
		Usage: "GLSL fragment program replacing the built-in accumulate pass",
	},
	cli.StringFlag{
		Name:  "present-shader",
		Usage: "GLSL fragment program replacing the built-in present pass",
	},
	cli.BoolFlag{
		Name:  "vsync",
		Usage: "synchronize buffer swaps with the display",
	},
	cli.BoolFlag{
		Name:  "fullscreen, f",
		Usage: "start in fullscreen mode",
	},
}

func main() {
	app := cli.NewApp()
	app.Name = "pathview"
	app.Usage = "interactive progressive path tracing viewer"
	app.Version = "0.1.0"
	app.Flags = append([]cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}, runFlags...)
	app.Action = RunViewer
	app.Commands = []cli.Command{
		{
			Name:  "run",
			Usage: "open the viewer window (default)",
			Description: `
Open a window and progressively refine the image while the camera is still.
Moving the camera or resizing the window restarts the accumulation.`,
			Flags:  runFlags,
			Action: RunViewer,
		},
		{
			Name:   "keys",
			Usage:  "list the key bindings",
			Action: ListKeys,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
