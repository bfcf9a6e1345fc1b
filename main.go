package main

import (
	"os"

	"github.com/achilleasa/spheretrace/cmd"
	"github.com/achilleasa/spheretrace/log"
	"github.com/urfave/cli"
)

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	sceneFlags := []cli.Flag{
		cli.StringFlag{
			Name:  "aspect",
			Value: "16:9",
			Usage: "frame aspect ratio as w:h or a decimal number",
		},
		cli.Int64Flag{
			Name:  "seed",
			Value: 0,
			Usage: "seed for procedural scenes and sampling (0 = seed sampling from the clock)",
		},
	}

	app := cli.NewApp()
	app.Name = "spheretrace"
	app.Usage = "render sphere scenes using path tracing"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.BoolFlag{
			Name:  "q",
			Usage: "only log warnings and errors",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "list-devices",
			Usage:  "list available cpus",
			Action: cmd.ListDevices,
		},
		{
			Name:  "render",
			Usage: "render a single frame",
			Description: `
Render a built-in scene, a .json scene file (local path or http/https URL)
or a JSON scene read from stdin when the scene argument is -.

The frame is split into equal horizontal bands, one per tracer. The frame
height must be divisible by the number of tracers; when --threads is 0 the
largest divisor of the frame height not exceeding the logical cpu count is
used.`,
			ArgsUsage: "scene",
			Flags: append([]cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 400,
					Usage: "frame width; the height is derived from the aspect ratio",
				},
				cli.IntFlag{
					Name:  "spp",
					Value: 32,
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "depth",
					Value: 16,
					Usage: "max number of ray bounces",
				},
				cli.IntFlag{
					Name:  "threads, t",
					Value: 0,
					Usage: "number of tracers (0 = auto)",
				},
				cli.BoolFlag{
					Name:  "no-jitter",
					Usage: "sample pixel corners instead of random positions inside each pixel",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "-",
					Usage: "image filename (.ppm or .png) for the rendered frame; - writes a PPM image to stdout",
				},
			}, sceneFlags...),
			Action: cmd.RenderFrame,
		},
		{
			Name:  "scene",
			Usage: "inspect scenes",
			Subcommands: []cli.Command{
				{
					Name:      "info",
					Usage:     "display scene information",
					ArgsUsage: "scene",
					Flags:     sceneFlags,
					Action:    cmd.ShowSceneInfo,
				},
				{
					Name:   "list",
					Usage:  "list built-in scenes",
					Action: cmd.ListScenes,
				},
			},
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.New("spheretrace").Error(err)
		os.Exit(1)
	}
}
