package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	contenterrors "gemledger/contexts/ledger/content-store/domain/errors"
	contenthttp "gemledger/contexts/ledger/content-store/transport/http"
)

func (s *Server) handlePutContent(w http.ResponseWriter, r *http.Request) {
	var req contenthttp.PutContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeContentError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.content.Handler.PutContentHandler(r.Context(), req)
	if err != nil {
		writeContentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetContent(w http.ResponseWriter, r *http.Request) {
	resp, err := s.content.Handler.GetContentHandler(r.Context(), r.PathValue("ref"))
	if err != nil {
		writeContentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleResolveMetadata(w http.ResponseWriter, r *http.Request) {
	resp, err := s.content.Handler.ResolveMetadataHandler(r.Context(), r.PathValue("ref"))
	if err != nil {
		writeContentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeContentDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, contenterrors.ErrContentNotFound):
		writeContentError(w, http.StatusNotFound, "content_not_found", err.Error())
	case errors.Is(err, contenterrors.ErrEmptyContent):
		writeContentError(w, http.StatusBadRequest, "empty_content", err.Error())
	default:
		writeContentError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeContentError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, contenthttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
