package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"gemledger/contexts/ledger/access-registry/domain/entities"
	domainerrors "gemledger/contexts/ledger/access-registry/domain/errors"
	"gemledger/contexts/ledger/access-registry/ports"
	"gemledger/internal/shared/address"
)

// Service enforces the authorization model: binary role membership, any
// admin may manage any other admin or supplier, including itself. Removing
// the last admin is permitted; the registry never self-locks.
type Service struct {
	Repo   ports.Repository
	Events ports.EventRecorder
	Clock  ports.Clock
	Logger *slog.Logger
}

func (s Service) IsAdmin(ctx context.Context, addr string) (bool, error) {
	if address.IsZero(addr) {
		return false, nil
	}
	return s.Repo.IsAdmin(ctx, address.Normalize(addr))
}

func (s Service) IsSupplier(ctx context.Context, addr string) (bool, error) {
	if address.IsZero(addr) {
		return false, nil
	}
	supplier, found, err := s.Repo.GetSupplier(ctx, address.Normalize(addr))
	if err != nil {
		return false, err
	}
	return found && supplier.Active, nil
}

// IsActiveSupplier is the catalog-facing alias of IsSupplier.
func (s Service) IsActiveSupplier(ctx context.Context, addr string) (bool, error) {
	return s.IsSupplier(ctx, addr)
}

// SupplierName resolves the display name joined onto item views.
func (s Service) SupplierName(ctx context.Context, addr string) (string, error) {
	supplier, err := s.GetSupplier(ctx, addr)
	if err != nil {
		return "", err
	}
	return supplier.Name, nil
}

func (s Service) GetSupplier(ctx context.Context, addr string) (entities.Supplier, error) {
	supplier, found, err := s.Repo.GetSupplier(ctx, address.Normalize(addr))
	if err != nil {
		return entities.Supplier{}, err
	}
	if !found {
		return entities.Supplier{}, domainerrors.ErrSupplierNotFound
	}
	return supplier, nil
}

func (s Service) AddAdmin(ctx context.Context, caller string, addr string) error {
	if err := s.requireAdmin(ctx, caller); err != nil {
		return err
	}
	if address.IsZero(addr) {
		return domainerrors.ErrInvalidAddress
	}

	admin, err := s.Repo.AddAdmin(ctx, address.Normalize(addr), s.now())
	if err != nil {
		return err
	}
	s.record(ctx, "ledger.admin_added", "admin", admin.Address, map[string]string{
		"admin_address": admin.Address,
		"added_by":      address.Normalize(caller),
	})

	resolveLogger(s.Logger).Info("admin added",
		"event", "access_registry_admin_added",
		"module", "ledger/access-registry",
		"layer", "application",
		"admin_address", admin.Address,
	)
	return nil
}

func (s Service) RemoveAdmin(ctx context.Context, caller string, addr string) error {
	if err := s.requireAdmin(ctx, caller); err != nil {
		return err
	}
	if address.IsZero(addr) {
		return domainerrors.ErrInvalidAddress
	}

	normalized := address.Normalize(addr)
	if err := s.Repo.RemoveAdmin(ctx, normalized); err != nil {
		return err
	}
	s.record(ctx, "ledger.admin_removed", "admin", normalized, map[string]string{
		"admin_address": normalized,
		"removed_by":    address.Normalize(caller),
	})

	resolveLogger(s.Logger).Info("admin removed",
		"event", "access_registry_admin_removed",
		"module", "ledger/access-registry",
		"layer", "application",
		"admin_address", normalized,
	)
	return nil
}

// AddSupplier creates an active supplier record. Re-adding an existing
// address overwrites the name and reactivates the record.
func (s Service) AddSupplier(ctx context.Context, caller string, addr string, name string) error {
	if err := s.requireAdmin(ctx, caller); err != nil {
		return err
	}
	if address.IsZero(addr) {
		return domainerrors.ErrInvalidAddress
	}
	if strings.TrimSpace(name) == "" {
		return domainerrors.ErrInvalidSupplier
	}

	supplier, err := s.Repo.UpsertSupplier(ctx, address.Normalize(addr), strings.TrimSpace(name), s.now())
	if err != nil {
		return err
	}
	s.record(ctx, "ledger.supplier_added", "supplier", supplier.Address, map[string]string{
		"supplier_address": supplier.Address,
		"supplier_name":    supplier.Name,
		"added_by":         address.Normalize(caller),
	})

	resolveLogger(s.Logger).Info("supplier added",
		"event", "access_registry_supplier_added",
		"module", "ledger/access-registry",
		"layer", "application",
		"supplier_address", supplier.Address,
		"supplier_name", supplier.Name,
	)
	return nil
}

func (s Service) ActivateSupplier(ctx context.Context, caller string, addr string) error {
	return s.setSupplierActive(ctx, caller, addr, true)
}

func (s Service) DeactivateSupplier(ctx context.Context, caller string, addr string) error {
	return s.setSupplierActive(ctx, caller, addr, false)
}

func (s Service) setSupplierActive(ctx context.Context, caller string, addr string, active bool) error {
	if err := s.requireAdmin(ctx, caller); err != nil {
		return err
	}
	if address.IsZero(addr) {
		return domainerrors.ErrInvalidAddress
	}

	supplier, err := s.Repo.SetSupplierActive(ctx, address.Normalize(addr), active, s.now())
	if err != nil {
		return err
	}

	eventType := "ledger.supplier_deactivated"
	logEvent := "access_registry_supplier_deactivated"
	if active {
		eventType = "ledger.supplier_activated"
		logEvent = "access_registry_supplier_activated"
	}
	s.record(ctx, eventType, "supplier", supplier.Address, map[string]string{
		"supplier_address": supplier.Address,
		"changed_by":       address.Normalize(caller),
	})

	resolveLogger(s.Logger).Info("supplier state changed",
		"event", logEvent,
		"module", "ledger/access-registry",
		"layer", "application",
		"supplier_address", supplier.Address,
		"active", active,
	)
	return nil
}

func (s Service) requireAdmin(ctx context.Context, caller string) error {
	ok, err := s.IsAdmin(ctx, caller)
	if err != nil {
		return err
	}
	if !ok {
		return domainerrors.ErrNotAdmin
	}
	return nil
}

func (s Service) record(ctx context.Context, eventType string, entityType string, entityID string, payload any) {
	if s.Events == nil {
		return
	}
	if err := s.Events.Record(ctx, eventType, entityType, entityID, payload); err != nil {
		resolveLogger(s.Logger).Error("audit record failed",
			"event", "access_registry_audit_record_failed",
			"module", "ledger/access-registry",
			"layer", "application",
			"event_type", eventType,
			"error", err.Error(),
		)
	}
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}
