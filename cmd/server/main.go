// Package main provides the entry point for the lexigraph API server
package main

import (
	"log/slog"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/lexigraph/lexigraph/domain/graph"
	"github.com/lexigraph/lexigraph/domain/health"
	"github.com/lexigraph/lexigraph/domain/relations"
	"github.com/lexigraph/lexigraph/domain/tracing"
	"github.com/lexigraph/lexigraph/domain/words"
	"github.com/lexigraph/lexigraph/internal/config"
	"github.com/lexigraph/lexigraph/internal/database"
	"github.com/lexigraph/lexigraph/internal/migrate"
	"github.com/lexigraph/lexigraph/internal/server"
	"github.com/lexigraph/lexigraph/pkg/logger"
)

func main() {
	// Load .env files if present (for local development)
	// Note: Load() won't overwrite existing vars, Overload() will
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")

	fx.New(
		// Logging
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),

		// Infrastructure modules
		logger.Module,
		config.Module,
		database.Module,
		migrate.Module,
		server.Module,
		tracing.Module,

		// Domain modules
		health.Module,
		words.Module,
		relations.Module,
		graph.Module,
	).Run()
}
