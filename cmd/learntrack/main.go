package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/xshsama/learntrack/internal/client/cli"
	"github.com/xshsama/learntrack/internal/client/config"
	"github.com/xshsama/learntrack/internal/logging"
)

func main() {
	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, slog.LevelWarn)

	ctx := context.Background()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
