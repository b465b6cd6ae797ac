package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/kailas-cloud/indexgen/internal/config"
	"github.com/kailas-cloud/indexgen/internal/domain"
	logpkg "github.com/kailas-cloud/indexgen/internal/logger"
	"github.com/kailas-cloud/indexgen/internal/metrics"
	settingsrepo "github.com/kailas-cloud/indexgen/internal/repository/settings"
	chiTransport "github.com/kailas-cloud/indexgen/internal/transport/chi"
	"github.com/kailas-cloud/indexgen/internal/transport/gemini"
	"github.com/kailas-cloud/indexgen/internal/transport/openai"
	advisoruc "github.com/kailas-cloud/indexgen/internal/usecase/advisor"
	artifactuc "github.com/kailas-cloud/indexgen/internal/usecase/artifact"
	healthuc "github.com/kailas-cloud/indexgen/internal/usecase/health"
	settingsuc "github.com/kailas-cloud/indexgen/internal/usecase/settings"
	"github.com/kailas-cloud/indexgen/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting indexgen server",
		zap.String("version", version.String()),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("advisor_provider", cfg.Advisor.Provider),
		zap.String("advisor_model", cfg.Advisor.Model),
	)

	// Register app metrics explicitly (no init())
	metrics.RegisterAppMetrics()

	initial, err := cfg.Generator.Initial()
	if err != nil {
		logger.Fatal("Invalid generator defaults", zap.Error(err))
	}

	credential := advisoruc.EnvCredential(cfg.Advisor.APIKeyEnv)
	advisor := advisoruc.New(
		buildCompleter(cfg.Advisor, logger),
		credential,
		cfg.Advisor.Provider,
		cfg.Advisor.Model,
		logger,
	)
	if !advisor.Configured() {
		logger.Warn("Advisor credential not set, analysis disabled until it is",
			zap.String("env_var", cfg.Advisor.APIKeyEnv),
		)
	}

	settings := settingsuc.New(settingsrepo.New(initial))
	artifacts := artifactuc.New(settings)
	healthSvc := healthuc.New(advisor)

	server, err := chiTransport.NewServer(settings, artifacts, advisor, healthSvc, initial, logger)
	if err != nil {
		logger.Fatal("Failed to build HTTP server", zap.Error(err))
	}
	server.WithAPIKeys(cfg.Auth.APIKeys)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(metrics.Middleware())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// buildCompleter picks the completion provider. Validate has already
// rejected unknown provider names.
func buildCompleter(cfg config.AdvisorConfig, logger *zap.Logger) advisoruc.Completer {
	if cfg.Provider == domain.ProviderOpenAI {
		return openai.NewCompleter(&openai.Config{
			BaseURL: cfg.BaseURL,
			Logger:  logger,
		})
	}
	return gemini.NewCompleter(&gemini.Config{
		BaseURL: cfg.BaseURL,
		Logger:  logger,
	})
}
