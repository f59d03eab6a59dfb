package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"labelaudit/internal/config"
	"labelaudit/internal/extractor"
	"labelaudit/internal/handler"
	"labelaudit/internal/inference"
	"labelaudit/internal/port"
	"labelaudit/internal/router"

	// Providers register themselves with the inference factory.
	_ "labelaudit/internal/inference/gemini"
	_ "labelaudit/internal/inference/openai"
)

// NewExtractor builds the configured inference client and an Extractor on top of it.
func NewExtractor(cfg *config.InferenceConfig, creds port.CredentialSource, logger *zap.Logger) (*extractor.Extractor, error) {
	client, err := inference.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	logger.Info("inference provider ready", zap.String("provider", client.Name()))
	return extractor.New(client, creds, logger)
}

// NewRouter wires handlers and middleware into a gin engine.
func NewRouter(cfg *config.Config, creds port.CredentialSource, logger *zap.Logger) (*gin.Engine, error) {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ext, err := NewExtractor(&cfg.Inference, creds, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize extractor: %w", err)
	}

	errs := handler.NewErrorHandler(logger)
	extractionH := handler.NewExtractionHandler(ext, errs, cfg.Upload.MaxImageBytes())
	healthH := handler.NewHealthHandler(creds)

	return router.Setup(logger, cfg.CORS.AllowedOrigins, extractionH, healthH), nil
}

// Serve runs the HTTP server until SIGINT/SIGTERM, then drains in-flight requests.
func Serve(cfg *config.Config, creds port.CredentialSource, logger *zap.Logger) error {
	r, err := NewRouter(cfg, creds, logger)
	if err != nil {
		return err
	}

	if creds.APIKey() == "" {
		logger.Warn("inference credential not set; extraction requests will fail until it is",
			zap.String("env", config.APIKeyEnv))
	}

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("addr", cfg.Server.Port))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
