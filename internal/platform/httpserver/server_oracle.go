package httpserver

import (
	"errors"
	"net/http"

	oracleerrors "gemledger/contexts/ledger/price-oracle/domain/errors"
	oraclehttp "gemledger/contexts/ledger/price-oracle/transport/http"
)

func (s *Server) handlePriceQuote(w http.ResponseWriter, r *http.Request) {
	resp, err := s.oracle.Handler.QuoteHandler(r.Context())
	if err != nil {
		writeOracleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePriceConvert(w http.ResponseWriter, r *http.Request) {
	amountUsd, ok := parseUint(r.URL.Query().Get("usd"))
	if !ok {
		writeOracleError(w, http.StatusBadRequest, "invalid_amount", "usd must be an unsigned integer")
		return
	}

	resp, err := s.oracle.Handler.ConvertHandler(r.Context(), amountUsd)
	if err != nil {
		writeOracleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeOracleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, oracleerrors.ErrOracleUnavailable):
		writeOracleError(w, http.StatusServiceUnavailable, "price_feed_unavailable", err.Error())
	case errors.Is(err, oracleerrors.ErrInvalidAmount):
		writeOracleError(w, http.StatusBadRequest, "invalid_amount", err.Error())
	default:
		writeOracleError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeOracleError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, oraclehttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
