package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	catalogerrors "gemledger/contexts/ledger/catalog/domain/errors"
	cataloghttp "gemledger/contexts/ledger/catalog/transport/http"
	oracleerrors "gemledger/contexts/ledger/price-oracle/domain/errors"
)

func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	caller := resolveCaller(r)
	if caller == "" {
		writeCatalogError(w, http.StatusUnauthorized, "missing_caller", "X-Caller-Address header is required")
		return
	}

	var req cataloghttp.AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeCatalogError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.catalog.Handler.AddItemHandler(r.Context(), caller, req)
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListAvailableItems(w http.ResponseWriter, r *http.Request) {
	resp, err := s.catalog.Handler.ListAvailableItemsHandler(r.Context())
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetItem(w http.ResponseWriter, r *http.Request) {
	sku, ok := parseUint(r.PathValue("sku"))
	if !ok {
		writeCatalogError(w, http.StatusBadRequest, "invalid_sku", "sku must be an unsigned integer")
		return
	}

	resp, err := s.catalog.Handler.GetItemHandler(r.Context(), sku)
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeCatalogDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalogerrors.ErrNotSupplier):
		writeCatalogError(w, http.StatusForbidden, "not_a_supplier", err.Error())
	case errors.Is(err, catalogerrors.ErrItemNotFound):
		writeCatalogError(w, http.StatusNotFound, "item_not_found", err.Error())
	case errors.Is(err, catalogerrors.ErrItemNotForSale):
		writeCatalogError(w, http.StatusConflict, "not_for_sale", err.Error())
	case errors.Is(err, catalogerrors.ErrNotPaidEnough):
		writeCatalogError(w, http.StatusPaymentRequired, "not_paid_enough", err.Error())
	case errors.Is(err, catalogerrors.ErrInvalidItem):
		writeCatalogError(w, http.StatusBadRequest, "invalid_item", err.Error())
	case errors.Is(err, oracleerrors.ErrOracleUnavailable):
		writeCatalogError(w, http.StatusServiceUnavailable, "price_feed_unavailable", err.Error())
	default:
		writeCatalogError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeCatalogError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, cataloghttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
