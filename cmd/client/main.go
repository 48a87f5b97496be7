package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/proofpost/internal/client/cli"
	"github.com/dmitrijs2005/proofpost/internal/client/config"
	"github.com/dmitrijs2005/proofpost/internal/logging"
)

func main() {
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		logger.Error(context.Background(), "startup failed", "error", err.Error())
		os.Exit(1)
	}

	app.Run(context.Background())
}
