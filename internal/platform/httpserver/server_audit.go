package httpserver

import (
	"net/http"

	audithttp "gemledger/contexts/ledger/audit/transport/http"
)

func (s *Server) handleAuditTrail(w http.ResponseWriter, r *http.Request) {
	resp, err := s.audit.Handler.ListTrailHandler(r.Context())
	if err != nil {
		writeAuditError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAuditEntityHistory(w http.ResponseWriter, r *http.Request) {
	resp, err := s.audit.Handler.EntityHistoryHandler(r.Context(), r.PathValue("entity_type"), r.PathValue("entity_id"))
	if err != nil {
		writeAuditError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeAuditError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, audithttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
