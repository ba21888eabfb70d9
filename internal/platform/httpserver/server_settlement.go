package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	catalogerrors "gemledger/contexts/ledger/catalog/domain/errors"
	settlementerrors "gemledger/contexts/ledger/settlement/domain/errors"
	settlementhttp "gemledger/contexts/ledger/settlement/transport/http"
	tokenerrors "gemledger/contexts/ledger/token-ledger/domain/errors"
)

func (s *Server) handleBuyItem(w http.ResponseWriter, r *http.Request) {
	caller := resolveCaller(r)
	if caller == "" {
		writeSettlementError(w, http.StatusUnauthorized, "missing_caller", "X-Caller-Address header is required")
		return
	}

	sku, ok := parseUint(r.PathValue("sku"))
	if !ok {
		writeSettlementError(w, http.StatusBadRequest, "invalid_sku", "sku must be an unsigned integer")
		return
	}

	var req settlementhttp.BuyItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeSettlementError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.settlement.Handler.BuyItemHandler(r.Context(), caller, sku, req)
	if err != nil {
		writeSettlementDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeSettlementDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalogerrors.ErrItemNotFound):
		writeSettlementError(w, http.StatusNotFound, "item_not_found", err.Error())
	case errors.Is(err, catalogerrors.ErrItemNotForSale):
		writeSettlementError(w, http.StatusConflict, "not_for_sale", err.Error())
	case errors.Is(err, catalogerrors.ErrNotPaidEnough):
		writeSettlementError(w, http.StatusPaymentRequired, "not_paid_enough", err.Error())
	case errors.Is(err, settlementerrors.ErrInvalidPurchase):
		writeSettlementError(w, http.StatusBadRequest, "invalid_purchase", err.Error())
	case errors.Is(err, tokenerrors.ErrInvalidRecipient):
		writeSettlementError(w, http.StatusBadRequest, "invalid_recipient", err.Error())
	default:
		writeSettlementError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeSettlementError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, settlementhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
