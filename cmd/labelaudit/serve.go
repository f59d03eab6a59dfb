package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"labelaudit/internal/app"
	"labelaudit/internal/config"
	"labelaudit/internal/logger"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the extraction HTTP API",
	Long: `Start the labelaudit HTTP server.

Endpoints:
  GET  /healthz                      - liveness
  GET  /readyz                       - readiness (credential present)
  POST /api/v1/extractions           - extract from a JSON or multipart image
  POST /api/v1/extractions/export    - render extracted data as csv, xlsx or json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		applyInferenceFlags(&cfg.Inference)
		if servePort != "" {
			cfg.Server.Port = ":" + servePort
		}

		zl, err := logger.New(cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logger.Sync(zl)

		return app.Serve(cfg, config.NewEnvCredentials(), zl)
	},
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "port to listen on (default from config)")
}
