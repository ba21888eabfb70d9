package settlement

import (
	"log/slog"

	httpadapter "gemledger/contexts/ledger/settlement/adapters/http"
	"gemledger/contexts/ledger/settlement/adapters/memory"
	"gemledger/contexts/ledger/settlement/application"
	"gemledger/contexts/ledger/settlement/ports"
)

// Module is the settlement composition root exposed to runtime wiring.
// It never owns catalog or token state; both arrive through Dependencies.
type Module struct {
	Handler  httpadapter.Handler
	Service  application.Service
	Treasury *memory.Treasury
}

type Dependencies struct {
	Items    ports.Items
	Tokens   ports.Tokens
	Payments ports.Payments
	Events   ports.EventRecorder
	Clock    ports.Clock
	Logger   *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Items:    deps.Items,
		Tokens:   deps.Tokens,
		Payments: deps.Payments,
		Events:   deps.Events,
		Clock:    deps.Clock,
		Logger:   deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
		Service: service,
	}
}

// NewInMemoryModule builds a development/testing module backed by an
// in-memory treasury. Catalog and token surfaces are shared with their
// owning modules and passed in.
func NewInMemoryModule(
	items ports.Items,
	tokens ports.Tokens,
	events ports.EventRecorder,
	logger *slog.Logger,
) Module {
	treasury := memory.NewTreasury()
	module := NewModule(Dependencies{
		Items:    items,
		Tokens:   tokens,
		Payments: treasury,
		Events:   events,
		Clock:    treasury,
		Logger:   logger,
	})
	module.Treasury = treasury
	return module
}
