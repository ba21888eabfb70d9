package audit

import (
	"log/slog"

	httpadapter "gemledger/contexts/ledger/audit/adapters/http"
	"gemledger/contexts/ledger/audit/adapters/memory"
	"gemledger/contexts/ledger/audit/application"
	"gemledger/contexts/ledger/audit/application/workers"
	"gemledger/contexts/ledger/audit/ports"
)

// Module is the audit composition root exposed to runtime wiring. The
// Service field is what the other ledger modules receive as their event
// recorder.
type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Log    ports.Log
	Clock  ports.Clock
	Logger *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Log:    deps.Log,
		Clock:  deps.Clock,
		Logger: deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
		Service: service,
	}
}

// NewInMemoryModule builds a development/testing module with an in-memory
// append-only log.
func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Log:    store,
		Clock:  store,
		Logger: logger,
	})
	module.Store = store
	return module
}

// NewRelay builds the outbox relay for this module's log.
func (m Module) NewRelay(publisher ports.EventPublisher, topic string, batchSize int, logger *slog.Logger) workers.OutboxRelay {
	return workers.OutboxRelay{
		Log:       m.Service.Log,
		Publisher: publisher,
		Topic:     topic,
		Clock:     m.Service.Clock,
		BatchSize: batchSize,
		Logger:    logger,
	}
}
