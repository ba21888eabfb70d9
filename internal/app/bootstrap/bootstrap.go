package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	accessregistry "gemledger/contexts/ledger/access-registry"
	registrypostgres "gemledger/contexts/ledger/access-registry/adapters/postgres"
	audit "gemledger/contexts/ledger/audit"
	auditpostgres "gemledger/contexts/ledger/audit/adapters/postgres"
	auditworkers "gemledger/contexts/ledger/audit/application/workers"
	catalog "gemledger/contexts/ledger/catalog"
	catalogpostgres "gemledger/contexts/ledger/catalog/adapters/postgres"
	contentstore "gemledger/contexts/ledger/content-store"
	priceoracle "gemledger/contexts/ledger/price-oracle"
	oraclehttp "gemledger/contexts/ledger/price-oracle/adapters/http"
	oraclememory "gemledger/contexts/ledger/price-oracle/adapters/memory"
	oracleports "gemledger/contexts/ledger/price-oracle/ports"
	settlement "gemledger/contexts/ledger/settlement"
	settlementmemory "gemledger/contexts/ledger/settlement/adapters/memory"
	tokenledger "gemledger/contexts/ledger/token-ledger"
	tokenpostgres "gemledger/contexts/ledger/token-ledger/adapters/postgres"
	"gemledger/internal/platform/config"
	"gemledger/internal/platform/db"
	"gemledger/internal/platform/httpserver"
	"gemledger/internal/platform/messaging"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

type WorkerApp struct {
	postgres     *db.Postgres
	outboxRelay  auditworkers.OutboxRelay
	pollInterval time.Duration
	logger       *slog.Logger
}

// BuildAPI wires the full ledger. With POSTGRES_DSN set, every stateful
// module runs on postgres; without it the process runs entirely in memory
// for local development.
func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.GenesisAdmin) == "" {
		return nil, errors.New("GENESIS_ADMIN is required")
	}

	var pg *db.Postgres
	if strings.TrimSpace(cfg.PostgresDSN) != "" {
		pg, err = db.Connect(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
	}

	oracleModule := buildOracle(cfg, logger)

	var modules httpserver.Modules
	if pg == nil {
		auditModule := audit.NewInMemoryModule(logger)
		registryModule := accessregistry.NewInMemoryModule(cfg.GenesisAdmin, auditModule.Service, logger)
		catalogModule := catalog.NewInMemoryModule(registryModule.Service, oracleModule.Service, auditModule.Service, logger)
		tokenModule := tokenledger.NewInMemoryModule(auditModule.Service, logger)
		settlementModule := settlement.NewInMemoryModule(
			catalogModule.Store,
			tokenModule.Service,
			auditModule.Service,
			logger,
		)

		modules = httpserver.Modules{
			Registry:   registryModule,
			Catalog:    catalogModule,
			Settlement: settlementModule,
			Tokens:     tokenModule,
			Oracle:     oracleModule,
			Content:    contentstore.NewInMemoryModule(logger),
			Audit:      auditModule,
		}
	} else {
		auditRepo := auditpostgres.NewRepository(pg.DB, logger)
		auditModule := audit.NewModule(audit.Dependencies{
			Log:    auditRepo,
			Clock:  auditpostgres.SystemClock{},
			Logger: logger,
		})

		registryRepo := registrypostgres.NewRepository(pg.DB, logger)
		if err := registryRepo.SeedGenesisAdmin(context.Background(), cfg.GenesisAdmin, time.Now().UTC()); err != nil {
			_ = pg.Close()
			return nil, err
		}
		registryModule := accessregistry.NewModule(accessregistry.Dependencies{
			Repository: registryRepo,
			Events:     auditModule.Service,
			Clock:      registrypostgres.SystemClock{},
			Logger:     logger,
		})

		catalogRepo := catalogpostgres.NewRepository(pg.DB, logger)
		catalogModule := catalog.NewModule(catalog.Dependencies{
			Repository: catalogRepo,
			Roles:      registryModule.Service,
			Prices:     oracleModule.Service,
			Events:     auditModule.Service,
			Clock:      catalogpostgres.SystemClock{},
			Logger:     logger,
		})

		tokenModule := tokenledger.NewModule(tokenledger.Dependencies{
			Repository: tokenpostgres.NewRepository(pg.DB, logger),
			Events:     auditModule.Service,
			Clock:      tokenpostgres.SystemClock{},
			Logger:     logger,
		})

		// Value transfer stays in process: funds move on the payment rail,
		// not in this database.
		treasury := settlementmemory.NewTreasury()
		settlementModule := settlement.NewModule(settlement.Dependencies{
			Items:    catalogRepo,
			Tokens:   tokenModule.Service,
			Payments: treasury,
			Events:   auditModule.Service,
			Clock:    catalogpostgres.SystemClock{},
			Logger:   logger,
		})
		settlementModule.Treasury = treasury

		modules = httpserver.Modules{
			Registry:   registryModule,
			Catalog:    catalogModule,
			Settlement: settlementModule,
			Tokens:     tokenModule,
			Oracle:     oracleModule,
			Content:    contentstore.NewInMemoryModule(logger),
			Audit:      auditModule,
		}
	}

	server := httpserver.New(modules, logger, normalizeAddr(cfg.HTTPPort))
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

// BuildWorker wires the audit outbox relay that drains committed ledger
// events onto the bus.
func BuildWorker() (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	kafka, err := messaging.NewKafka(cfg.KafkaBrokers, logger)
	if err != nil {
		return nil, err
	}

	pollInterval := time.Duration(cfg.RelayPollSeconds) * time.Second
	if pollInterval <= 0 {
		pollInterval = time.Second
	}

	return &WorkerApp{
		postgres: pg,
		outboxRelay: auditworkers.OutboxRelay{
			Log:       auditpostgres.NewRepository(pg.DB, logger),
			Publisher: kafka,
			Topic:     cfg.EventTopic,
			Clock:     auditpostgres.SystemClock{},
			BatchSize: 100,
			Logger:    logger,
		},
		pollInterval: pollInterval,
		logger:       logger,
	}, nil
}

func buildOracle(cfg config.Config, logger *slog.Logger) priceoracle.Module {
	var feed oracleports.PriceFeed
	if strings.TrimSpace(cfg.PriceFeedURL) != "" {
		feed = oraclehttp.NewFeedClient(cfg.PriceFeedURL)
	} else {
		feed = oraclememory.NewFeed()
	}
	return priceoracle.NewModule(priceoracle.Dependencies{
		Feed:           feed,
		NativeDecimals: 18,
		Logger:         logger,
	})
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func (w *WorkerApp) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"poll_interval", w.pollInterval.String(),
	)

	for {
		if err := w.outboxRelay.RunOnce(ctx); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (w *WorkerApp) Close() error {
	if w.postgres != nil {
		return w.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
