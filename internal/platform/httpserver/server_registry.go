package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	registryerrors "gemledger/contexts/ledger/access-registry/domain/errors"
	registryhttp "gemledger/contexts/ledger/access-registry/transport/http"
)

func (s *Server) handleAddAdmin(w http.ResponseWriter, r *http.Request) {
	caller := resolveCaller(r)
	if caller == "" {
		writeRegistryError(w, http.StatusUnauthorized, "missing_caller", "X-Caller-Address header is required")
		return
	}

	var req registryhttp.AddAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRegistryError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.registry.Handler.AddAdminHandler(r.Context(), caller, req)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRemoveAdmin(w http.ResponseWriter, r *http.Request) {
	caller := resolveCaller(r)
	if caller == "" {
		writeRegistryError(w, http.StatusUnauthorized, "missing_caller", "X-Caller-Address header is required")
		return
	}

	resp, err := s.registry.Handler.RemoveAdminHandler(r.Context(), caller, r.PathValue("address"))
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAddSupplier(w http.ResponseWriter, r *http.Request) {
	caller := resolveCaller(r)
	if caller == "" {
		writeRegistryError(w, http.StatusUnauthorized, "missing_caller", "X-Caller-Address header is required")
		return
	}

	var req registryhttp.AddSupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRegistryError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.registry.Handler.AddSupplierHandler(r.Context(), caller, req)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleActivateSupplier(w http.ResponseWriter, r *http.Request) {
	caller := resolveCaller(r)
	if caller == "" {
		writeRegistryError(w, http.StatusUnauthorized, "missing_caller", "X-Caller-Address header is required")
		return
	}

	resp, err := s.registry.Handler.ActivateSupplierHandler(r.Context(), caller, r.PathValue("address"))
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeactivateSupplier(w http.ResponseWriter, r *http.Request) {
	caller := resolveCaller(r)
	if caller == "" {
		writeRegistryError(w, http.StatusUnauthorized, "missing_caller", "X-Caller-Address header is required")
		return
	}

	resp, err := s.registry.Handler.DeactivateSupplierHandler(r.Context(), caller, r.PathValue("address"))
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetSupplier(w http.ResponseWriter, r *http.Request) {
	resp, err := s.registry.Handler.GetSupplierHandler(r.Context(), r.PathValue("address"))
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRoleCheck(w http.ResponseWriter, r *http.Request) {
	resp, err := s.registry.Handler.RoleCheckHandler(r.Context(), r.PathValue("address"))
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeRegistryDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, registryerrors.ErrNotAdmin):
		writeRegistryError(w, http.StatusForbidden, "not_an_admin", err.Error())
	case errors.Is(err, registryerrors.ErrSupplierNotFound):
		writeRegistryError(w, http.StatusNotFound, "supplier_not_found", err.Error())
	case errors.Is(err, registryerrors.ErrInvalidAddress),
		errors.Is(err, registryerrors.ErrInvalidSupplier):
		writeRegistryError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeRegistryError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeRegistryError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, registryhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
