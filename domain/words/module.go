package words

import (
	"go.uber.org/fx"
)

// Module provides words dependencies
var Module = fx.Module("words",
	fx.Provide(NewStore),
	fx.Provide(newService),
	fx.Provide(NewHandler),
	fx.Invoke(RegisterRoutes),
)

// newService binds the concrete store (fx constructor)
func newService(store *Store) *Service {
	return NewService(store)
}
