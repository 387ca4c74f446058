package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/onja-org/w2-scss-lab/internal/app"
	"github.com/onja-org/w2-scss-lab/internal/config"
	"github.com/onja-org/w2-scss-lab/internal/services/metrics"
	"github.com/onja-org/w2-scss-lab/pkg/logger"
)

const serviceName = "weatherlab"

// @title Madagascar Weather Lab API
// @version 1.0
// @description Autocomplete and canned weather lookup for five Madagascar cities
// @host localhost:8080
// @BasePath /api/
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Panicf("failed to load configuration: %v", err)
	}

	l, err := logger.NewLogger(logger.Options{
		Service:  serviceName,
		FilePath: cfg.LogsPath,
		Level:    cfg.LogLevel,
	})
	if err != nil {
		log.Panicf("failed to create logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application := app.New(*cfg, l, metrics.NewMetrics(serviceName))
	if err := application.Start(ctx); err != nil {
		l.Fatal().Err(err).Msg("application failed to run")
	}
}
