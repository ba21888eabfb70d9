package httpadapter

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"gemledger/contexts/ledger/access-registry/application"
	httptransport "gemledger/contexts/ledger/access-registry/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) AddAdminHandler(
	ctx context.Context,
	caller string,
	req httptransport.AddAdminRequest,
) (httptransport.RoleChangeResponse, error) {
	if err := h.Service.AddAdmin(ctx, caller, strings.TrimSpace(req.Address)); err != nil {
		return httptransport.RoleChangeResponse{}, err
	}
	return roleChangeResponse(req.Address), nil
}

func (h Handler) RemoveAdminHandler(
	ctx context.Context,
	caller string,
	addr string,
) (httptransport.RoleChangeResponse, error) {
	if err := h.Service.RemoveAdmin(ctx, caller, strings.TrimSpace(addr)); err != nil {
		return httptransport.RoleChangeResponse{}, err
	}
	return roleChangeResponse(addr), nil
}

func (h Handler) AddSupplierHandler(
	ctx context.Context,
	caller string,
	req httptransport.AddSupplierRequest,
) (httptransport.RoleChangeResponse, error) {
	err := h.Service.AddSupplier(ctx, caller, strings.TrimSpace(req.Address), strings.TrimSpace(req.Name))
	if err != nil {
		return httptransport.RoleChangeResponse{}, err
	}
	return roleChangeResponse(req.Address), nil
}

func (h Handler) ActivateSupplierHandler(
	ctx context.Context,
	caller string,
	addr string,
) (httptransport.RoleChangeResponse, error) {
	if err := h.Service.ActivateSupplier(ctx, caller, strings.TrimSpace(addr)); err != nil {
		return httptransport.RoleChangeResponse{}, err
	}
	return roleChangeResponse(addr), nil
}

func (h Handler) DeactivateSupplierHandler(
	ctx context.Context,
	caller string,
	addr string,
) (httptransport.RoleChangeResponse, error) {
	if err := h.Service.DeactivateSupplier(ctx, caller, strings.TrimSpace(addr)); err != nil {
		return httptransport.RoleChangeResponse{}, err
	}
	return roleChangeResponse(addr), nil
}

func (h Handler) RoleCheckHandler(
	ctx context.Context,
	addr string,
) (httptransport.RoleCheckResponse, error) {
	isAdmin, err := h.Service.IsAdmin(ctx, addr)
	if err != nil {
		return httptransport.RoleCheckResponse{}, err
	}
	isSupplier, err := h.Service.IsSupplier(ctx, addr)
	if err != nil {
		return httptransport.RoleCheckResponse{}, err
	}

	resp := httptransport.RoleCheckResponse{Status: "success"}
	resp.Data.Address = strings.TrimSpace(addr)
	resp.Data.IsAdmin = isAdmin
	resp.Data.IsSupplier = isSupplier
	return resp, nil
}

func (h Handler) GetSupplierHandler(
	ctx context.Context,
	addr string,
) (httptransport.SupplierResponse, error) {
	supplier, err := h.Service.GetSupplier(ctx, addr)
	if err != nil {
		return httptransport.SupplierResponse{}, err
	}

	resp := httptransport.SupplierResponse{Status: "success"}
	resp.Data.Address = supplier.Address
	resp.Data.Name = supplier.Name
	resp.Data.Active = supplier.Active
	resp.Data.AddedAt = supplier.AddedAt.UTC().Format(time.RFC3339)
	resp.Data.UpdatedAt = supplier.UpdatedAt.UTC().Format(time.RFC3339)
	return resp, nil
}

func roleChangeResponse(addr string) httptransport.RoleChangeResponse {
	resp := httptransport.RoleChangeResponse{Status: "success"}
	resp.Data.Address = strings.TrimSpace(addr)
	return resp
}
