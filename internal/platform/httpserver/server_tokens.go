package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	tokenerrors "gemledger/contexts/ledger/token-ledger/domain/errors"
	tokenhttp "gemledger/contexts/ledger/token-ledger/transport/http"
)

func (s *Server) handleTransferToken(w http.ResponseWriter, r *http.Request) {
	caller := resolveCaller(r)
	if caller == "" {
		writeTokenError(w, http.StatusUnauthorized, "missing_caller", "X-Caller-Address header is required")
		return
	}

	tokenID, ok := parseUint(r.PathValue("token_id"))
	if !ok {
		writeTokenError(w, http.StatusBadRequest, "invalid_token_id", "token id must be an unsigned integer")
		return
	}

	var req tokenhttp.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeTokenError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.tokens.Handler.TransferHandler(r.Context(), caller, tokenID, req)
	if err != nil {
		writeTokenDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleTokenURI(w http.ResponseWriter, r *http.Request) {
	tokenID, ok := parseUint(r.PathValue("token_id"))
	if !ok {
		writeTokenError(w, http.StatusBadRequest, "invalid_token_id", "token id must be an unsigned integer")
		return
	}

	resp, err := s.tokens.Handler.TokenURIHandler(r.Context(), tokenID)
	if err != nil {
		writeTokenDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleBalanceOf(w http.ResponseWriter, r *http.Request) {
	resp, err := s.tokens.Handler.BalanceOfHandler(r.Context(), r.PathValue("address"))
	if err != nil {
		writeTokenDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleTokenOfOwnerByIndex(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(strings.TrimSpace(r.PathValue("index")))
	if err != nil {
		writeTokenError(w, http.StatusBadRequest, "invalid_index", "index must be an integer")
		return
	}

	resp, err := s.tokens.Handler.TokenOfOwnerByIndexHandler(r.Context(), r.PathValue("address"), index)
	if err != nil {
		writeTokenDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeTokenDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, tokenerrors.ErrTokenNotFound):
		writeTokenError(w, http.StatusNotFound, "token_not_found", err.Error())
	case errors.Is(err, tokenerrors.ErrNotTokenOwner):
		writeTokenError(w, http.StatusForbidden, "not_token_owner", err.Error())
	case errors.Is(err, tokenerrors.ErrInvalidRecipient):
		writeTokenError(w, http.StatusBadRequest, "invalid_recipient", err.Error())
	case errors.Is(err, tokenerrors.ErrIndexOutOfRange):
		writeTokenError(w, http.StatusRequestedRangeNotSatisfiable, "index_out_of_range", err.Error())
	default:
		writeTokenError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeTokenError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, tokenhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
