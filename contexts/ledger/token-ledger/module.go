package tokenledger

import (
	"log/slog"

	httpadapter "gemledger/contexts/ledger/token-ledger/adapters/http"
	"gemledger/contexts/ledger/token-ledger/adapters/memory"
	"gemledger/contexts/ledger/token-ledger/application"
	"gemledger/contexts/ledger/token-ledger/ports"
)

// Module is the token-ledger composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

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

// NewInMemoryModule builds a development/testing module with an in-memory
// token store.
func NewInMemoryModule(events ports.EventRecorder, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repository: store,
		Events:     events,
		Clock:      store,
		Logger:     logger,
	})
	module.Store = store
	return module
}
