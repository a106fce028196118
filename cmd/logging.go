package cmd

import (
	"github.com/df07/go-sphere-raytracer/pkg/log"
	"github.com/urfave/cli"
)

var logger = log.New("spheretracer")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
