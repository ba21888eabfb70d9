package application

import (
	"context"
	"errors"
	"testing"

	"gemledger/contexts/ledger/access-registry/adapters/memory"
	domainerrors "gemledger/contexts/ledger/access-registry/domain/errors"
)

const (
	genesisAdmin = "0xAAAA000000000000000000000000000000000001"
	secondAdmin  = "0xAAAA000000000000000000000000000000000002"
	supplierAddr = "0xBBBB000000000000000000000000000000000003"
	strangerAddr = "0xCCCC000000000000000000000000000000000004"
)

func newService() Service {
	store := memory.NewStore(genesisAdmin)
	return Service{Repo: store, Clock: store}
}

func TestGenesisAdminIsAdmin(t *testing.T) {
	service := newService()

	isAdmin, err := service.IsAdmin(context.Background(), genesisAdmin)
	if err != nil {
		t.Fatalf("is admin failed: %v", err)
	}
	if !isAdmin {
		t.Fatal("expected genesis admin to be an admin")
	}
}

func TestAddAndRemoveAdmin(t *testing.T) {
	service := newService()
	ctx := context.Background()

	if err := service.AddAdmin(ctx, genesisAdmin, secondAdmin); err != nil {
		t.Fatalf("add admin failed: %v", err)
	}
	isAdmin, _ := service.IsAdmin(ctx, secondAdmin)
	if !isAdmin {
		t.Fatal("expected added account to be an admin")
	}

	if err := service.RemoveAdmin(ctx, genesisAdmin, secondAdmin); err != nil {
		t.Fatalf("remove admin failed: %v", err)
	}
	isAdmin, _ = service.IsAdmin(ctx, secondAdmin)
	if isAdmin {
		t.Fatal("expected removed account to not be an admin")
	}
}

func TestAddAdminRequiresAdminCaller(t *testing.T) {
	service := newService()

	err := service.AddAdmin(context.Background(), strangerAddr, secondAdmin)
	if !errors.Is(err, domainerrors.ErrNotAdmin) {
		t.Fatalf("expected ErrNotAdmin, got %v", err)
	}
}

func TestAdminSelfRemovalIsNotGuarded(t *testing.T) {
	service := newService()
	ctx := context.Background()

	// Removing the last admin is permitted; the registry never self-locks.
	if err := service.RemoveAdmin(ctx, genesisAdmin, genesisAdmin); err != nil {
		t.Fatalf("self removal failed: %v", err)
	}
	isAdmin, _ := service.IsAdmin(ctx, genesisAdmin)
	if isAdmin {
		t.Fatal("expected genesis admin to be removed")
	}

	err := service.AddAdmin(ctx, genesisAdmin, secondAdmin)
	if !errors.Is(err, domainerrors.ErrNotAdmin) {
		t.Fatalf("expected removed admin to be unauthorized, got %v", err)
	}
}

func TestSupplierLifecycle(t *testing.T) {
	service := newService()
	ctx := context.Background()

	if err := service.AddSupplier(ctx, genesisAdmin, supplierAddr, "Supplier 1"); err != nil {
		t.Fatalf("add supplier failed: %v", err)
	}
	isSupplier, _ := service.IsSupplier(ctx, supplierAddr)
	if !isSupplier {
		t.Fatal("expected supplier to be active")
	}

	name, err := service.SupplierName(ctx, supplierAddr)
	if err != nil {
		t.Fatalf("supplier name failed: %v", err)
	}
	if name != "Supplier 1" {
		t.Fatalf("expected supplier name Supplier 1, got %q", name)
	}

	if err := service.DeactivateSupplier(ctx, genesisAdmin, supplierAddr); err != nil {
		t.Fatalf("deactivate supplier failed: %v", err)
	}
	isSupplier, _ = service.IsSupplier(ctx, supplierAddr)
	if isSupplier {
		t.Fatal("expected deactivated supplier to not count as supplier")
	}

	if err := service.ActivateSupplier(ctx, genesisAdmin, supplierAddr); err != nil {
		t.Fatalf("activate supplier failed: %v", err)
	}
	isSupplier, _ = service.IsSupplier(ctx, supplierAddr)
	if !isSupplier {
		t.Fatal("expected reactivated supplier to be active")
	}
}

func TestReAddSupplierOverwritesNameAndReactivates(t *testing.T) {
	service := newService()
	ctx := context.Background()

	if err := service.AddSupplier(ctx, genesisAdmin, supplierAddr, "Old Name"); err != nil {
		t.Fatalf("add supplier failed: %v", err)
	}
	if err := service.DeactivateSupplier(ctx, genesisAdmin, supplierAddr); err != nil {
		t.Fatalf("deactivate supplier failed: %v", err)
	}
	if err := service.AddSupplier(ctx, genesisAdmin, supplierAddr, "New Name"); err != nil {
		t.Fatalf("re-add supplier failed: %v", err)
	}

	isSupplier, _ := service.IsSupplier(ctx, supplierAddr)
	if !isSupplier {
		t.Fatal("expected re-added supplier to be active")
	}
	name, _ := service.SupplierName(ctx, supplierAddr)
	if name != "New Name" {
		t.Fatalf("expected overwritten name, got %q", name)
	}
}

func TestAddSupplierRequiresAdmin(t *testing.T) {
	service := newService()

	err := service.AddSupplier(context.Background(), strangerAddr, supplierAddr, "Supplier 1")
	if !errors.Is(err, domainerrors.ErrNotAdmin) {
		t.Fatalf("expected ErrNotAdmin, got %v", err)
	}

	isSupplier, _ := service.IsSupplier(context.Background(), supplierAddr)
	if isSupplier {
		t.Fatal("expected no supplier record after unauthorized attempt")
	}
}

func TestRoleChecksNeverFailForUnknownAddresses(t *testing.T) {
	service := newService()

	isAdmin, err := service.IsAdmin(context.Background(), "")
	if err != nil || isAdmin {
		t.Fatalf("expected false admin check for empty address, got %v %v", isAdmin, err)
	}
	isSupplier, err := service.IsSupplier(context.Background(), strangerAddr)
	if err != nil || isSupplier {
		t.Fatalf("expected false supplier check, got %v %v", isSupplier, err)
	}
}
