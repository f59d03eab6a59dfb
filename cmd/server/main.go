package main

import (
	"fmt"
	"log"

	"labelaudit/internal/app"
	"labelaudit/internal/config"
	"labelaudit/internal/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	zl, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync(zl)

	return app.Serve(cfg, config.NewEnvCredentials(), zl)
}
