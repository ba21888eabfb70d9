package application

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"gemledger/contexts/ledger/price-oracle/adapters/memory"
	domainerrors "gemledger/contexts/ledger/price-oracle/domain/errors"
)

func TestLatestPriceReturnsFeedRound(t *testing.T) {
	feed := memory.NewFeed()
	service := Service{Feed: feed}

	quote, err := service.LatestPrice(context.Background())
	if err != nil {
		t.Fatalf("latest price failed: %v", err)
	}
	if quote.Rate.Cmp(big.NewInt(406772749646)) != 0 {
		t.Fatalf("unexpected rate %s", quote.Rate)
	}
	if quote.Precision != 8 {
		t.Fatalf("unexpected precision %d", quote.Precision)
	}
}

func TestUsdToNativeUsesFloorDivision(t *testing.T) {
	feed := memory.NewFeed()
	service := Service{Feed: feed}

	// 10000 USD at 4067.72749646 USD/unit:
	// 10000 * 10^(18+8) / 406772749646, truncated.
	want, _ := new(big.Int).SetString("2458375102241398388", 10)
	got, err := service.UsdToNative(context.Background(), 10000)
	if err != nil {
		t.Fatalf("usd to native failed: %v", err)
	}
	if got.Cmp(want) != 0 {
		t.Fatalf("expected %s wei, got %s", want, got)
	}

	// The 1 USD conversion does not divide evenly; the truncated value
	// must be reproduced exactly, no rounding.
	want, _ = new(big.Int).SetString("245837510224139", 10)
	got, err = service.UsdToNative(context.Background(), 1)
	if err != nil {
		t.Fatalf("usd to native failed: %v", err)
	}
	if got.Cmp(want) != 0 {
		t.Fatalf("expected %s wei, got %s", want, got)
	}
}

func TestUsdToNativeFailsWhenFeedUnreachable(t *testing.T) {
	feed := memory.NewFeed()
	feed.Fail(errors.New("feed offline"))
	service := Service{Feed: feed}

	_, err := service.UsdToNative(context.Background(), 100)
	if !errors.Is(err, domainerrors.ErrOracleUnavailable) {
		t.Fatalf("expected ErrOracleUnavailable, got %v", err)
	}
}

func TestUsdToNativeFailsOnNonPositiveRate(t *testing.T) {
	feed := memory.NewFeed()
	feed.SetQuote(big.NewInt(0), 8)
	service := Service{Feed: feed}

	_, err := service.LatestPrice(context.Background())
	if !errors.Is(err, domainerrors.ErrOracleUnavailable) {
		t.Fatalf("expected ErrOracleUnavailable for zero rate, got %v", err)
	}

	feed.SetQuote(big.NewInt(-5), 8)
	_, err = service.UsdToNative(context.Background(), 100)
	if !errors.Is(err, domainerrors.ErrOracleUnavailable) {
		t.Fatalf("expected ErrOracleUnavailable for negative rate, got %v", err)
	}
}

func TestUsdToNativeRejectsZeroAmount(t *testing.T) {
	service := Service{Feed: memory.NewFeed()}

	_, err := service.UsdToNative(context.Background(), 0)
	if !errors.Is(err, domainerrors.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}
