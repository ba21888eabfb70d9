package application

import (
	"context"
	"errors"
	"testing"

	"gemledger/contexts/ledger/token-ledger/adapters/memory"
	domainerrors "gemledger/contexts/ledger/token-ledger/domain/errors"
)

func newService() (Service, *memory.Store) {
	store := memory.NewStore()
	return Service{Repo: store, Clock: store}, store
}

func TestMintAssignsSequentialIDsStartingAtOne(t *testing.T) {
	service, _ := newService()

	for want := uint64(1); want <= 3; want++ {
		got, err := service.Mint(context.Background(), "0xbuyer", "QmMeta")
		if err != nil {
			t.Fatalf("mint %d: unexpected error: %v", want, err)
		}
		if got != want {
			t.Fatalf("expected token id %d, got %d", want, got)
		}
	}
}

func TestMintToNullAddressRejected(t *testing.T) {
	service, _ := newService()

	if _, err := service.Mint(context.Background(), "0x0000000000000000000000000000000000000000", "QmMeta"); !errors.Is(err, domainerrors.ErrInvalidRecipient) {
		t.Fatalf("expected ErrInvalidRecipient, got %v", err)
	}
}

func TestRevertMintReleasesMostRecentID(t *testing.T) {
	service, _ := newService()
	ctx := context.Background()

	first, err := service.Mint(ctx, "0xbuyer", "QmOne")
	if err != nil {
		t.Fatalf("mint: unexpected error: %v", err)
	}
	if err := service.RevertMint(ctx, first); err != nil {
		t.Fatalf("revert mint: unexpected error: %v", err)
	}

	if _, err := service.TokenURI(ctx, first); !errors.Is(err, domainerrors.ErrTokenNotFound) {
		t.Fatalf("expected reverted token to be gone, got %v", err)
	}

	again, err := service.Mint(ctx, "0xbuyer", "QmTwo")
	if err != nil {
		t.Fatalf("mint after revert: unexpected error: %v", err)
	}
	if again != first {
		t.Fatalf("expected reissued id %d after revert, got %d", first, again)
	}
}

func TestRevertMintRejectsStaleID(t *testing.T) {
	service, _ := newService()
	ctx := context.Background()

	older, err := service.Mint(ctx, "0xbuyer", "QmOne")
	if err != nil {
		t.Fatalf("mint: unexpected error: %v", err)
	}
	if _, err := service.Mint(ctx, "0xbuyer", "QmTwo"); err != nil {
		t.Fatalf("mint: unexpected error: %v", err)
	}

	if err := service.RevertMint(ctx, older); !errors.Is(err, domainerrors.ErrTokenNotFound) {
		t.Fatalf("expected revert of non-latest mint to fail, got %v", err)
	}
}

func TestTransferMovesOwnershipAndEnumeration(t *testing.T) {
	service, _ := newService()
	ctx := context.Background()

	tokenID, err := service.Mint(ctx, "0xAlice", "QmMeta")
	if err != nil {
		t.Fatalf("mint: unexpected error: %v", err)
	}

	if err := service.Transfer(ctx, "0xAlice", "0xBob", tokenID); err != nil {
		t.Fatalf("transfer: unexpected error: %v", err)
	}

	fromBalance, err := service.BalanceOf(ctx, "0xalice")
	if err != nil {
		t.Fatalf("balance of sender: unexpected error: %v", err)
	}
	if fromBalance != 0 {
		t.Fatalf("expected sender balance 0, got %d", fromBalance)
	}

	toBalance, err := service.BalanceOf(ctx, "0xbob")
	if err != nil {
		t.Fatalf("balance of recipient: unexpected error: %v", err)
	}
	if toBalance != 1 {
		t.Fatalf("expected recipient balance 1, got %d", toBalance)
	}

	got, err := service.TokenOfOwnerByIndex(ctx, "0xbob", 0)
	if err != nil {
		t.Fatalf("token of owner by index: unexpected error: %v", err)
	}
	if got != tokenID {
		t.Fatalf("expected token %d at index 0, got %d", tokenID, got)
	}
}

func TestTransferByNonOwnerRejected(t *testing.T) {
	service, _ := newService()
	ctx := context.Background()

	tokenID, err := service.Mint(ctx, "0xAlice", "QmMeta")
	if err != nil {
		t.Fatalf("mint: unexpected error: %v", err)
	}

	if err := service.Transfer(ctx, "0xMallory", "0xBob", tokenID); !errors.Is(err, domainerrors.ErrNotTokenOwner) {
		t.Fatalf("expected ErrNotTokenOwner, got %v", err)
	}
}

func TestTransferToNullAddressRejected(t *testing.T) {
	service, _ := newService()
	ctx := context.Background()

	tokenID, err := service.Mint(ctx, "0xAlice", "QmMeta")
	if err != nil {
		t.Fatalf("mint: unexpected error: %v", err)
	}

	if err := service.Transfer(ctx, "0xAlice", "", tokenID); !errors.Is(err, domainerrors.ErrInvalidRecipient) {
		t.Fatalf("expected ErrInvalidRecipient, got %v", err)
	}
}

func TestTokenURIPrefixesMetadataRef(t *testing.T) {
	service, _ := newService()
	ctx := context.Background()

	tokenID, err := service.Mint(ctx, "0xAlice", "QmHash123")
	if err != nil {
		t.Fatalf("mint: unexpected error: %v", err)
	}

	uri, err := service.TokenURI(ctx, tokenID)
	if err != nil {
		t.Fatalf("token uri: unexpected error: %v", err)
	}
	if uri != "ipfs://QmHash123" {
		t.Fatalf("expected ipfs://QmHash123, got %q", uri)
	}
}

func TestTokenURIUnknownToken(t *testing.T) {
	service, _ := newService()

	if _, err := service.TokenURI(context.Background(), 42); !errors.Is(err, domainerrors.ErrTokenNotFound) {
		t.Fatalf("expected ErrTokenNotFound, got %v", err)
	}
}

func TestTokenOfOwnerByIndexOutOfRange(t *testing.T) {
	service, _ := newService()
	ctx := context.Background()

	if _, err := service.Mint(ctx, "0xAlice", "QmMeta"); err != nil {
		t.Fatalf("mint: unexpected error: %v", err)
	}

	if _, err := service.TokenOfOwnerByIndex(ctx, "0xalice", 1); !errors.Is(err, domainerrors.ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
}
