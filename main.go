package main

import (
	"os"

	"github.com/df07/go-sphere-raytracer/cmd"
	"github.com/df07/go-sphere-raytracer/pkg/log"
	"github.com/joho/godotenv"
	"github.com/urfave/cli"
)

const envPrefix = "SPHERETRACER_"

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	scenesDirFlag := cli.StringFlag{
		Name:   "scenes-dir",
		Value:  "scenes",
		Usage:  "directory scanned for JSON scene descriptors",
		EnvVar: envPrefix + "SCENES_DIR",
	}

	app := cli.NewApp()
	app.Name = "spheretracer"
	app.Usage = "render sphere scenes using Monte-Carlo path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a scene",
			Description: `
Render a built-in scene or a JSON scene descriptor. The image is written as a
plain-text PPM to stdout by default; --png and --thumbnail add PNG outputs.

Image height is derived from --width and the scene's aspect ratio. Output is
identical for a given seed regardless of the number of workers.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:   "scene, s",
					Value:  "default",
					Usage:  "scene id (see the scenes command)",
					EnvVar: envPrefix + "SCENE",
				},
				cli.StringFlag{
					Name:   "scene-file",
					Usage:  "render a JSON scene descriptor instead of a listed scene",
					EnvVar: envPrefix + "SCENE_FILE",
				},
				scenesDirFlag,
				cli.IntFlag{
					Name:   "width",
					Value:  400,
					Usage:  "image width",
					EnvVar: envPrefix + "WIDTH",
				},
				cli.Float64Flag{
					Name:   "aspect-ratio",
					Usage:  "override the scene's width/height ratio",
					EnvVar: envPrefix + "ASPECT_RATIO",
				},
				cli.IntFlag{
					Name:   "spp",
					Value:  50,
					Usage:  "samples per pixel",
					EnvVar: envPrefix + "SPP",
				},
				cli.IntFlag{
					Name:   "max-depth",
					Value:  50,
					Usage:  "maximum bounces per path",
					EnvVar: envPrefix + "MAX_DEPTH",
				},
				cli.Uint64Flag{
					Name:   "seed",
					Usage:  "random seed for sampling and the random scene",
					EnvVar: envPrefix + "SEED",
				},
				cli.IntFlag{
					Name:   "workers",
					Usage:  "number of render workers (0 = one per CPU)",
					EnvVar: envPrefix + "WORKERS",
				},
				cli.BoolFlag{
					Name:   "no-jitter",
					Usage:  "sample every pixel at its exact position",
					EnvVar: envPrefix + "NO_JITTER",
				},
				cli.StringFlag{
					Name:   "look-from",
					Usage:  "camera position as x,y,z",
					EnvVar: envPrefix + "LOOK_FROM",
				},
				cli.StringFlag{
					Name:   "look-at",
					Usage:  "camera target as x,y,z",
					EnvVar: envPrefix + "LOOK_AT",
				},
				cli.StringFlag{
					Name:   "vup",
					Usage:  "camera up vector as x,y,z",
					EnvVar: envPrefix + "VUP",
				},
				cli.Float64Flag{
					Name:   "vfov",
					Usage:  "vertical field of view in degrees",
					EnvVar: envPrefix + "VFOV",
				},
				cli.Float64Flag{
					Name:   "aperture",
					Usage:  "lens diameter for defocus blur",
					EnvVar: envPrefix + "APERTURE",
				},
				cli.Float64Flag{
					Name:   "focus-dist",
					Usage:  "distance to the plane in focus",
					EnvVar: envPrefix + "FOCUS_DIST",
				},
				cli.StringFlag{
					Name:   "out, o",
					Value:  "-",
					Usage:  "PPM output file; - writes to stdout, empty disables",
					EnvVar: envPrefix + "OUT",
				},
				cli.StringFlag{
					Name:   "png",
					Usage:  "also save the image as PNG",
					EnvVar: envPrefix + "PNG",
				},
				cli.StringFlag{
					Name:   "thumbnail",
					Usage:  "also save a resized PNG thumbnail",
					EnvVar: envPrefix + "THUMBNAIL",
				},
				cli.IntFlag{
					Name:   "thumbnail-width",
					Value:  160,
					Usage:  "thumbnail width",
					EnvVar: envPrefix + "THUMBNAIL_WIDTH",
				},
			},
			Action: cmd.RenderImage,
		},
		{
			Name:   "scenes",
			Usage:  "list available scenes",
			Flags:  []cli.Flag{scenesDirFlag},
			Action: cmd.ListScenes,
		},
		{
			Name:  "serve",
			Usage: "serve renders over HTTP",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:   "port, p",
					Value:  8080,
					Usage:  "port to listen on",
					EnvVar: envPrefix + "PORT",
				},
				scenesDirFlag,
			},
			Action: cmd.Serve,
		},
	}

	return app
}

func main() {
	// A missing .env file is fine; the flags carry their own defaults
	_ = godotenv.Load()

	if err := newApp().Run(os.Args); err != nil {
		log.New("spheretracer").Errorf("%v", err)
		os.Exit(1)
	}
}
