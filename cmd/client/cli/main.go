package main

import (
	"context"
	"log"

	"github.com/whaletown/whaletown/internal/client/cli"
	"github.com/whaletown/whaletown/internal/client/config"
	"github.com/whaletown/whaletown/internal/logging"
)

func main() {
	ctx := context.Background()

	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg, logging.NewDefault())
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
