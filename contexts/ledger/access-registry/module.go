package accessregistry

import (
	"log/slog"

	httpadapter "gemledger/contexts/ledger/access-registry/adapters/http"
	"gemledger/contexts/ledger/access-registry/adapters/memory"
	"gemledger/contexts/ledger/access-registry/application"
	"gemledger/contexts/ledger/access-registry/ports"
)

// Module is the access-registry composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

// Dependencies captures all runtime ports required by NewModule.
type Dependencies struct {
	Repository ports.Repository
	Events     ports.EventRecorder
	Clock      ports.Clock
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:   deps.Repository,
		Events: deps.Events,
		Clock:  deps.Clock,
		Logger: deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
		Service: service,
	}
}

// NewInMemoryModule builds a development/testing module with in-memory
// adapters, seeded with the genesis admin.
func NewInMemoryModule(genesisAdmin string, events ports.EventRecorder, logger *slog.Logger) Module {
	store := memory.NewStore(genesisAdmin)
	module := NewModule(Dependencies{
		Repository: store,
		Events:     events,
		Clock:      store,
		Logger:     logger,
	})
	module.Store = store
	return module
}
