package application

import (
	"context"
	"errors"
	"math/big"
	"testing"

	registrymemory "gemledger/contexts/ledger/access-registry/adapters/memory"
	registryapp "gemledger/contexts/ledger/access-registry/application"
	"gemledger/contexts/ledger/catalog/adapters/memory"
	domainerrors "gemledger/contexts/ledger/catalog/domain/errors"
	oraclememory "gemledger/contexts/ledger/price-oracle/adapters/memory"
	oracleapp "gemledger/contexts/ledger/price-oracle/application"
)

const (
	adminAddr    = "0xAAAA000000000000000000000000000000000001"
	supplierAddr = "0xBBBB000000000000000000000000000000000002"
	strangerAddr = "0xCCCC000000000000000000000000000000000003"
)

type fixture struct {
	service Service
	feed    *oraclememory.Feed
	roles   registryapp.Service
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	registryStore := registrymemory.NewStore(adminAddr)
	roles := registryapp.Service{Repo: registryStore, Clock: registryStore}
	if err := roles.AddSupplier(context.Background(), adminAddr, supplierAddr, "Supplier 1"); err != nil {
		t.Fatalf("seed supplier failed: %v", err)
	}

	feed := oraclememory.NewFeed()
	oracle := oracleapp.Service{Feed: feed}

	store := memory.NewStore()
	return fixture{
		service: Service{
			Repo:   store,
			Roles:  roles,
			Prices: oracle,
			Clock:  store,
		},
		feed:  feed,
		roles: roles,
	}
}

func TestAddItemAllocatesSequentialSKUs(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for want := uint64(0); want < 3; want++ {
		item, err := f.service.AddItem(ctx, supplierAddr, "QmHash", 100)
		if err != nil {
			t.Fatalf("add item failed: %v", err)
		}
		if item.SKU != want {
			t.Fatalf("expected sku %d, got %d", want, item.SKU)
		}
	}
}

func TestFailedListingConsumesNoSKU(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.service.AddItem(ctx, strangerAddr, "QmHash", 100); !errors.Is(err, domainerrors.ErrNotSupplier) {
		t.Fatalf("expected ErrNotSupplier, got %v", err)
	}

	item, err := f.service.AddItem(ctx, supplierAddr, "QmHash", 100)
	if err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if item.SKU != 0 {
		t.Fatalf("expected first successful listing to take sku 0, got %d", item.SKU)
	}
}

func TestAddItemSnapshotsOraclePrice(t *testing.T) {
	f := newFixture(t)

	item, err := f.service.AddItem(context.Background(), supplierAddr, "QmHash", 10000)
	if err != nil {
		t.Fatalf("add item failed: %v", err)
	}

	want, _ := new(big.Int).SetString("2458375102241398388", 10)
	if item.PriceWei.Cmp(want) != 0 {
		t.Fatalf("expected price %s wei, got %s", want, item.PriceWei)
	}
}

func TestAddItemAbortsOnOracleFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.feed.Fail(errors.New("feed offline"))
	if _, err := f.service.AddItem(ctx, supplierAddr, "QmHash", 100); err == nil {
		t.Fatal("expected listing to abort on oracle failure")
	}

	// No item was created on oracle failure: the next listing takes sku 0.
	f.feed.Fail(nil)
	item, err := f.service.AddItem(ctx, supplierAddr, "QmHash", 100)
	if err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if item.SKU != 0 {
		t.Fatalf("expected sku 0 after aborted listing, got %d", item.SKU)
	}
}

func TestDeactivatedSupplierCannotList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if err := f.roles.DeactivateSupplier(ctx, adminAddr, supplierAddr); err != nil {
		t.Fatalf("deactivate supplier failed: %v", err)
	}

	_, err := f.service.AddItem(ctx, supplierAddr, "QmHash", 100)
	if !errors.Is(err, domainerrors.ErrNotSupplier) {
		t.Fatalf("expected ErrNotSupplier, got %v", err)
	}
}

func TestGetAvailableItemsJoinsSupplierName(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.service.AddItem(ctx, supplierAddr, "QmHash1", 100); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if _, err := f.service.AddItem(ctx, supplierAddr, "QmHash2", 200); err != nil {
		t.Fatalf("add item failed: %v", err)
	}

	views, err := f.service.GetAvailableItems(ctx)
	if err != nil {
		t.Fatalf("get available items failed: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 available items, got %d", len(views))
	}
	if views[0].SKU != 0 || views[1].SKU != 1 {
		t.Fatalf("expected ascending sku order, got %d then %d", views[0].SKU, views[1].SKU)
	}
	if views[0].SupplierName != "Supplier 1" {
		t.Fatalf("expected joined supplier name, got %q", views[0].SupplierName)
	}
}

func TestDeactivationLeavesExistingListingsAvailable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.service.AddItem(ctx, supplierAddr, "QmHash", 100); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if err := f.roles.DeactivateSupplier(ctx, adminAddr, supplierAddr); err != nil {
		t.Fatalf("deactivate supplier failed: %v", err)
	}

	views, err := f.service.GetAvailableItems(ctx)
	if err != nil {
		t.Fatalf("get available items failed: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected existing listing to stay available, got %d items", len(views))
	}
}

func TestGetItemUnknownSKU(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.GetItem(context.Background(), 42)
	if !errors.Is(err, domainerrors.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}
