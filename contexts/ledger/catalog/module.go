package catalog

import (
	"log/slog"

	httpadapter "gemledger/contexts/ledger/catalog/adapters/http"
	"gemledger/contexts/ledger/catalog/adapters/memory"
	"gemledger/contexts/ledger/catalog/application"
	"gemledger/contexts/ledger/catalog/ports"
)

// Module is the catalog composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

// Dependencies captures all runtime ports required by NewModule. Roles and
// Prices are references into the access-registry and price-oracle modules;
// the catalog never owns that state.
type Dependencies struct {
	Repository ports.Repository
	Roles      ports.RoleDirectory
	Prices     ports.PriceConverter
	Events     ports.EventRecorder
	Clock      ports.Clock
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:   deps.Repository,
		Roles:  deps.Roles,
		Prices: deps.Prices,
		Events: deps.Events,
		Clock:  deps.Clock,
		Logger: deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
		Service: service,
	}
}

// NewInMemoryModule builds a development/testing module with an in-memory
// item store; role and price references still come from the caller.
func NewInMemoryModule(
	roles ports.RoleDirectory,
	prices ports.PriceConverter,
	events ports.EventRecorder,
	logger *slog.Logger,
) Module {
	store := NewStore()
	module := NewModule(Dependencies{
		Repository: store,
		Roles:      roles,
		Prices:     prices,
		Events:     events,
		Clock:      store,
		Logger:     logger,
	})
	module.Store = store
	return module
}

// NewStore exposes the memory store for settlement wiring and tests.
func NewStore() *memory.Store {
	return memory.NewStore()
}
