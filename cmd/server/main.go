package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/dougbrunos/go-rest-apis/internal/config"
	"github.com/dougbrunos/go-rest-apis/internal/platform/logger"
)

func main() {
	// Local development convenience; the file is absent in production.
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	log := logger.Setup(cfg.Server)
	log.Info("configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel))

	app := newApplication(cfg, log)

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		log.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}
