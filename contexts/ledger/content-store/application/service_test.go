package application

import (
	"context"
	"errors"
	"testing"

	"gemledger/contexts/ledger/content-store/adapters/memory"
	domainerrors "gemledger/contexts/ledger/content-store/domain/errors"
)

func newService() Service {
	return Service{Blobs: memory.NewStore()}
}

func TestPutAndGetRoundTrip(t *testing.T) {
	service := newService()
	ctx := context.Background()

	ref, err := service.Put(ctx, []byte("hello stones"))
	if err != nil {
		t.Fatalf("put: unexpected error: %v", err)
	}
	if ref == "" {
		t.Fatal("expected a non-empty reference")
	}

	data, err := service.Get(ctx, ref)
	if err != nil {
		t.Fatalf("get: unexpected error: %v", err)
	}
	if string(data) != "hello stones" {
		t.Fatalf("expected stored bytes back, got %q", data)
	}
}

func TestPutIsContentAddressed(t *testing.T) {
	service := newService()
	ctx := context.Background()

	first, err := service.Put(ctx, []byte("same payload"))
	if err != nil {
		t.Fatalf("put: unexpected error: %v", err)
	}
	second, err := service.Put(ctx, []byte("same payload"))
	if err != nil {
		t.Fatalf("put: unexpected error: %v", err)
	}
	if first != second {
		t.Fatalf("expected identical payloads to share a reference, got %q and %q", first, second)
	}
}

func TestPutEmptyContentRejected(t *testing.T) {
	service := newService()

	if _, err := service.Put(context.Background(), nil); !errors.Is(err, domainerrors.ErrEmptyContent) {
		t.Fatalf("expected ErrEmptyContent, got %v", err)
	}
}

func TestGetUnknownRef(t *testing.T) {
	service := newService()

	if _, err := service.Get(context.Background(), "deadbeef"); !errors.Is(err, domainerrors.ErrContentNotFound) {
		t.Fatalf("expected ErrContentNotFound, got %v", err)
	}
}

func TestResolveExtractsEmbeddedDocument(t *testing.T) {
	service := newService()
	ctx := context.Background()

	content := `preamble {"name":"Star of Adamant","color":"D","clarity":"IF","cut":"Round","caratWeight":"2.5","image":"ipfs://QmImage"} trailer`
	ref, err := service.Put(ctx, []byte(content))
	if err != nil {
		t.Fatalf("put: unexpected error: %v", err)
	}

	meta, err := service.Resolve(ctx, ref)
	if err != nil {
		t.Fatalf("resolve: unexpected error: %v", err)
	}
	if meta.Name != "Star of Adamant" {
		t.Fatalf("expected name extracted, got %q", meta.Name)
	}
	if meta.Color != "D" || meta.Clarity != "IF" || meta.Cut != "Round" {
		t.Fatalf("expected grading fields extracted, got %+v", meta)
	}
	if meta.CaratWeight != "2.5" {
		t.Fatalf("expected carat weight extracted, got %q", meta.CaratWeight)
	}
	if meta.Image != "ipfs://QmImage" {
		t.Fatalf("expected image extracted, got %q", meta.Image)
	}
}

func TestResolveMalformedDocumentYieldsEmptyMetadata(t *testing.T) {
	service := newService()
	ctx := context.Background()

	for _, content := range []string{"no braces at all", "{broken json}", "}{"} {
		ref, err := service.Put(ctx, []byte(content))
		if err != nil {
			t.Fatalf("put %q: unexpected error: %v", content, err)
		}
		meta, err := service.Resolve(ctx, ref)
		if err != nil {
			t.Fatalf("resolve %q: unexpected error: %v", content, err)
		}
		if meta.Name != "" || meta.Image != "" {
			t.Fatalf("expected empty metadata for %q, got %+v", content, meta)
		}
	}
}
