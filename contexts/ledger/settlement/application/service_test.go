package application

import (
	"context"
	"errors"
	"math/big"
	"testing"

	catalogmemory "gemledger/contexts/ledger/catalog/adapters/memory"
	catalogentities "gemledger/contexts/ledger/catalog/domain/entities"
	catalogerrors "gemledger/contexts/ledger/catalog/domain/errors"
	"gemledger/contexts/ledger/settlement/adapters/memory"
	domainerrors "gemledger/contexts/ledger/settlement/domain/errors"
	tokenmemory "gemledger/contexts/ledger/token-ledger/adapters/memory"
	tokenapp "gemledger/contexts/ledger/token-ledger/application"
)

type harness struct {
	service  Service
	items    *catalogmemory.Store
	tokens   tokenapp.Service
	treasury *memory.Treasury
}

func newHarness(t *testing.T) harness {
	t.Helper()

	items := catalogmemory.NewStore()
	tokenStore := tokenmemory.NewStore()
	tokens := tokenapp.Service{Repo: tokenStore, Clock: tokenStore}
	treasury := memory.NewTreasury()

	return harness{
		service: Service{
			Items:    items,
			Tokens:   tokens,
			Payments: treasury,
			Clock:    treasury,
		},
		items:    items,
		tokens:   tokens,
		treasury: treasury,
	}
}

func (h harness) listItem(t *testing.T, priceWei int64) uint64 {
	t.Helper()

	item, err := h.items.InsertItem(context.Background(), catalogentities.Item{
		Supplier:    "0xsupplier",
		State:       catalogentities.StateForSale,
		PriceUsd:    10000,
		PriceWei:    big.NewInt(priceWei),
		ContentHash: "QmStone",
	})
	if err != nil {
		t.Fatalf("insert item: unexpected error: %v", err)
	}
	return item.SKU
}

func TestBuyItemExactPayment(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	sku := h.listItem(t, 1000)

	receipt, err := h.service.BuyItem(ctx, sku, "0xBuyer", big.NewInt(1000))
	if err != nil {
		t.Fatalf("buy item: unexpected error: %v", err)
	}
	if receipt.TokenID != 1 {
		t.Fatalf("expected token id 1, got %d", receipt.TokenID)
	}
	if receipt.Refund.Sign() != 0 {
		t.Fatalf("expected zero refund, got %s", receipt.Refund)
	}

	item, err := h.items.GetItem(ctx, sku)
	if err != nil {
		t.Fatalf("get item: unexpected error: %v", err)
	}
	if item.State != catalogentities.StateSold {
		t.Fatalf("expected item sold, got %s", item.State)
	}
	if item.Buyer != "0xbuyer" {
		t.Fatalf("expected buyer recorded, got %q", item.Buyer)
	}
	if item.TokenID != receipt.TokenID {
		t.Fatalf("expected item token id %d, got %d", receipt.TokenID, item.TokenID)
	}

	if got := h.treasury.Balance(); got.Cmp(big.NewInt(1000)) != 0 {
		t.Fatalf("expected treasury balance 1000, got %s", got)
	}

	balance, err := h.tokens.BalanceOf(ctx, "0xbuyer")
	if err != nil {
		t.Fatalf("balance of: unexpected error: %v", err)
	}
	if balance != 1 {
		t.Fatalf("expected buyer token balance 1, got %d", balance)
	}
}

func TestBuyItemRefundsOverpayment(t *testing.T) {
	h := newHarness(t)
	sku := h.listItem(t, 1000)

	receipt, err := h.service.BuyItem(context.Background(), sku, "0xBuyer", big.NewInt(1500))
	if err != nil {
		t.Fatalf("buy item: unexpected error: %v", err)
	}
	if receipt.Refund.Cmp(big.NewInt(500)) != 0 {
		t.Fatalf("expected refund 500, got %s", receipt.Refund)
	}
	if got := h.treasury.Balance(); got.Cmp(big.NewInt(1000)) != 0 {
		t.Fatalf("expected treasury to keep only the price, got %s", got)
	}
	if got := h.treasury.RefundedTo("0xbuyer"); got.Cmp(big.NewInt(500)) != 0 {
		t.Fatalf("expected 500 refunded to buyer, got %s", got)
	}
}

func TestBuyItemUnderpaymentRejected(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	sku := h.listItem(t, 1000)

	if _, err := h.service.BuyItem(ctx, sku, "0xBuyer", big.NewInt(999)); !errors.Is(err, catalogerrors.ErrNotPaidEnough) {
		t.Fatalf("expected ErrNotPaidEnough, got %v", err)
	}

	item, err := h.items.GetItem(ctx, sku)
	if err != nil {
		t.Fatalf("get item: unexpected error: %v", err)
	}
	if item.State != catalogentities.StateForSale {
		t.Fatalf("expected item to stay for sale, got %s", item.State)
	}
}

func TestBuyItemSoldItemRejected(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	sku := h.listItem(t, 1000)

	if _, err := h.service.BuyItem(ctx, sku, "0xFirst", big.NewInt(1000)); err != nil {
		t.Fatalf("first buy: unexpected error: %v", err)
	}
	if _, err := h.service.BuyItem(ctx, sku, "0xSecond", big.NewInt(1000)); !errors.Is(err, catalogerrors.ErrItemNotForSale) {
		t.Fatalf("expected ErrItemNotForSale, got %v", err)
	}
}

func TestBuyItemUnknownSKU(t *testing.T) {
	h := newHarness(t)

	if _, err := h.service.BuyItem(context.Background(), 42, "0xBuyer", big.NewInt(1000)); !errors.Is(err, catalogerrors.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestBuyItemNullBuyerRejected(t *testing.T) {
	h := newHarness(t)
	sku := h.listItem(t, 1000)

	if _, err := h.service.BuyItem(context.Background(), sku, "0x0000000000000000000000000000000000000000", big.NewInt(1000)); !errors.Is(err, domainerrors.ErrInvalidPurchase) {
		t.Fatalf("expected ErrInvalidPurchase, got %v", err)
	}
}

func TestBuyItemPaymentFailureRollsBack(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	sku := h.listItem(t, 1000)

	boom := errors.New("treasury offline")
	h.treasury.Fail(boom)

	if _, err := h.service.BuyItem(ctx, sku, "0xBuyer", big.NewInt(1000)); !errors.Is(err, boom) {
		t.Fatalf("expected treasury error, got %v", err)
	}

	item, err := h.items.GetItem(ctx, sku)
	if err != nil {
		t.Fatalf("get item: unexpected error: %v", err)
	}
	if item.State != catalogentities.StateForSale {
		t.Fatalf("expected rollback to leave item for sale, got %s", item.State)
	}
	if item.Buyer != "" {
		t.Fatalf("expected rollback to clear buyer, got %q", item.Buyer)
	}

	balance, err := h.tokens.BalanceOf(ctx, "0xbuyer")
	if err != nil {
		t.Fatalf("balance of: unexpected error: %v", err)
	}
	if balance != 0 {
		t.Fatalf("expected mint to be reverted, balance %d", balance)
	}

	// The reverted mint released its id, so recovery reuses it.
	h.treasury.Fail(nil)
	receipt, err := h.service.BuyItem(ctx, sku, "0xBuyer", big.NewInt(1000))
	if err != nil {
		t.Fatalf("retry buy: unexpected error: %v", err)
	}
	if receipt.TokenID != 1 {
		t.Fatalf("expected retry to mint token 1, got %d", receipt.TokenID)
	}
}
