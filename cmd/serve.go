package cmd

import (
	"github.com/df07/go-sphere-raytracer/web/server"
	"github.com/urfave/cli"
)

// Run the HTTP render server.
func Serve(ctx *cli.Context) error {
	setupLogging(ctx)

	srv := server.NewServer(ctx.Int("port"), ctx.String("scenes-dir"))
	return srv.Start()
}
