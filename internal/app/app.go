// Package app initializes and holds the long-lived services shared by the
// CLI commands: configuration, the logger, and the optional metrics endpoint.
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/webloom/spinneret/internal/config"
	"github.com/webloom/spinneret/internal/logging"
	"github.com/webloom/spinneret/internal/metrics"
)

// App holds the shared services for one CLI invocation. It is built once in
// the root command's PersistentPreRunE and torn down in PersistentPostRun.
type App struct {
	cfg        *config.Config
	logger     *zap.Logger
	metricsSrv *http.Server
}

// New builds an App. cfgPath may be empty for commands that operate without
// a crawl configuration (the standalone frequency counter); malformed
// configuration is fatal here, before any command logic runs.
func New(cfgPath string, debug bool) (*App, error) {
	var cfg *config.Config
	if cfgPath != "" {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			return nil, fmt.Errorf("load config %s: %w", cfgPath, err)
		}
		cfg = &loaded
		debug = debug || cfg.Agent.Debug
	}

	logger, err := logging.New(debug)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	metrics.Init()
	a := &App{cfg: cfg, logger: logger}

	if cfg != nil && cfg.Metrics.Addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		a.metricsSrv = &http.Server{
			Addr:              cfg.Metrics.Addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			logger.Info("Serving metrics", zap.String("addr", cfg.Metrics.Addr))
			if err := a.metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("Metrics server failed", zap.Error(err))
			}
		}()
	}

	return a, nil
}

// Config returns the loaded configuration, or nil when no config file was
// given.
func (a *App) Config() *config.Config { return a.cfg }

// Logger returns the shared zap logger.
func (a *App) Logger() *zap.Logger { return a.logger }

// Close shuts the metrics endpoint down and flushes the logger.
func (a *App) Close() {
	if a.metricsSrv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := a.metricsSrv.Shutdown(ctx); err != nil {
			a.logger.Warn("Error shutting down metrics server", zap.Error(err))
		}
	}
	// Sync can fail on stderr; nothing useful to do about it.
	_ = a.logger.Sync()
}
