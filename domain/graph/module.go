package graph

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/lexigraph/lexigraph/internal/config"
)

// Module provides graph traversal dependencies
var Module = fx.Module("graph",
	fx.Provide(NewStore),
	fx.Provide(newService),
	fx.Provide(NewHandler),
	fx.Invoke(RegisterRoutes),
)

// newService binds the configured traversal bounds (fx constructor)
func newService(store Store, cfg *config.Config, log *slog.Logger) *Service {
	return NewService(store, cfg.Graph, log)
}
