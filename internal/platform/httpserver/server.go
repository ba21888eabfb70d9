package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	accessregistry "gemledger/contexts/ledger/access-registry"
	audit "gemledger/contexts/ledger/audit"
	catalog "gemledger/contexts/ledger/catalog"
	contentstore "gemledger/contexts/ledger/content-store"
	priceoracle "gemledger/contexts/ledger/price-oracle"
	settlement "gemledger/contexts/ledger/settlement"
	tokenledger "gemledger/contexts/ledger/token-ledger"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "gemledger/internal/platform/httpserver/docs"
)

// Server mounts every ledger module on one mux. Caller identity arrives on
// the X-Caller-Address header, set by the wallet connectivity layer in
// front of this service.
type Server struct {
	mux        *http.ServeMux
	logger     *slog.Logger
	addr       string
	registry   accessregistry.Module
	catalog    catalog.Module
	settlement settlement.Module
	tokens     tokenledger.Module
	oracle     priceoracle.Module
	content    contentstore.Module
	audit      audit.Module
}

type Modules struct {
	Registry   accessregistry.Module
	Catalog    catalog.Module
	Settlement settlement.Module
	Tokens     tokenledger.Module
	Oracle     priceoracle.Module
	Content    contentstore.Module
	Audit      audit.Module
}

func New(modules Modules, logger *slog.Logger, addr string) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:        http.NewServeMux(),
		logger:     logger,
		addr:       addr,
		registry:   modules.Registry,
		catalog:    modules.Catalog,
		settlement: modules.Settlement,
		tokens:     modules.Tokens,
		oracle:     modules.Oracle,
		content:    modules.Content,
		audit:      modules.Audit,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler exposes the mux for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /api/ledger/v1/admins", s.handleAddAdmin)
	s.mux.HandleFunc("DELETE /api/ledger/v1/admins/{address}", s.handleRemoveAdmin)
	s.mux.HandleFunc("POST /api/ledger/v1/suppliers", s.handleAddSupplier)
	s.mux.HandleFunc("POST /api/ledger/v1/suppliers/{address}/activate", s.handleActivateSupplier)
	s.mux.HandleFunc("POST /api/ledger/v1/suppliers/{address}/deactivate", s.handleDeactivateSupplier)
	s.mux.HandleFunc("GET /api/ledger/v1/suppliers/{address}", s.handleGetSupplier)
	s.mux.HandleFunc("GET /api/ledger/v1/roles/{address}", s.handleRoleCheck)

	s.mux.HandleFunc("POST /api/ledger/v1/items", s.handleAddItem)
	s.mux.HandleFunc("GET /api/ledger/v1/items", s.handleListAvailableItems)
	s.mux.HandleFunc("GET /api/ledger/v1/items/{sku}", s.handleGetItem)
	s.mux.HandleFunc("POST /api/ledger/v1/items/{sku}/buy", s.handleBuyItem)

	s.mux.HandleFunc("POST /api/ledger/v1/tokens/{token_id}/transfer", s.handleTransferToken)
	s.mux.HandleFunc("GET /api/ledger/v1/tokens/{token_id}/uri", s.handleTokenURI)
	s.mux.HandleFunc("GET /api/ledger/v1/owners/{address}/balance", s.handleBalanceOf)
	s.mux.HandleFunc("GET /api/ledger/v1/owners/{address}/tokens/{index}", s.handleTokenOfOwnerByIndex)

	s.mux.HandleFunc("GET /api/ledger/v1/price/quote", s.handlePriceQuote)
	s.mux.HandleFunc("GET /api/ledger/v1/price/convert", s.handlePriceConvert)

	s.mux.HandleFunc("POST /api/ledger/v1/content", s.handlePutContent)
	s.mux.HandleFunc("GET /api/ledger/v1/content/{ref}", s.handleGetContent)
	s.mux.HandleFunc("GET /api/ledger/v1/content/{ref}/metadata", s.handleResolveMetadata)

	s.mux.HandleFunc("GET /api/ledger/v1/audit/events", s.handleAuditTrail)
	s.mux.HandleFunc("GET /api/ledger/v1/audit/{entity_type}/{entity_id}", s.handleAuditEntityHistory)
}

// resolveCaller extracts the verified wallet address of the request sender.
func resolveCaller(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get("X-Caller-Address"))
}

func parseUint(raw string) (uint64, bool) {
	value, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
