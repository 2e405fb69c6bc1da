// Package app wires configuration into the adapters and services used by
// the commands.
package app

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/sentencemine/internal/adapter/ankiconnect"
	"github.com/heartmarshall/sentencemine/internal/config"
	"github.com/heartmarshall/sentencemine/pkg/ctxutil"
)

// Start loads configuration, initializes the logger and tags ctx with a new
// run id. name is the command name used in the startup record.
func Start(ctx context.Context, name string) (context.Context, *config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return ctx, nil, nil, err
	}

	logger := NewLogger(cfg.Log)
	ctx, runID := ctxutil.NewRun(ctx)

	logger.Info("starting "+name,
		slog.String("version", BuildVersion()),
		slog.String("run_id", runID.String()),
		slog.String("log_level", cfg.Log.Level),
	)

	return ctx, cfg, logger, nil
}

// NewAnkiClient creates the AnkiConnect client.
func NewAnkiClient(cfg config.AnkiConfig, logger *slog.Logger) *ankiconnect.Client {
	return ankiconnect.NewClient(cfg.URL, cfg.Version, cfg.Timeout, logger)
}
