package contentstore

import (
	"log/slog"

	httpadapter "gemledger/contexts/ledger/content-store/adapters/http"
	"gemledger/contexts/ledger/content-store/adapters/memory"
	"gemledger/contexts/ledger/content-store/application"
	"gemledger/contexts/ledger/content-store/ports"
)

// Module is the content-store composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Blobs  ports.BlobStore
	Logger *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{Blobs: deps.Blobs, Logger: deps.Logger}
	return Module{
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
		Service: service,
	}
}

// NewInMemoryModule builds a development/testing module with in-process
// content-addressed storage.
func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{Blobs: store, Logger: logger})
	module.Store = store
	return module
}
