package priceoracle

import (
	"log/slog"

	httpadapter "gemledger/contexts/ledger/price-oracle/adapters/http"
	"gemledger/contexts/ledger/price-oracle/adapters/memory"
	"gemledger/contexts/ledger/price-oracle/application"
	"gemledger/contexts/ledger/price-oracle/ports"
)

// Module is the price-oracle composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Feed    *memory.Feed
}

type Dependencies struct {
	Feed           ports.PriceFeed
	NativeDecimals uint8
	Logger         *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Feed:           deps.Feed,
		NativeDecimals: deps.NativeDecimals,
		Logger:         deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
		Service: service,
	}
}

// NewInMemoryModule builds a module over the fixed development feed.
func NewInMemoryModule(logger *slog.Logger) Module {
	feed := memory.NewFeed()
	module := NewModule(Dependencies{
		Feed:           feed,
		NativeDecimals: application.DefaultNativeDecimals,
		Logger:         logger,
	})
	module.Feed = feed
	return module
}
