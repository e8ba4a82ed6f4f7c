package relations

import (
	"go.uber.org/fx"

	"github.com/lexigraph/lexigraph/domain/words"
)

// Module provides relations dependencies
var Module = fx.Module("relations",
	fx.Provide(NewStore),
	fx.Provide(newService),
	fx.Provide(NewHandler),
	fx.Invoke(RegisterRoutes),
)

// newService wires the words store in as the existence checker (fx constructor)
func newService(store *Store, wordStore *words.Store) *Service {
	return NewService(store, wordStore)
}
