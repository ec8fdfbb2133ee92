package main

import (
	"context"
	"log"
	"os"

	"github.com/py2dev/repeatermap/internal/buildinfo"
	"github.com/py2dev/repeatermap/internal/cli"
	"github.com/py2dev/repeatermap/internal/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
