package application

import (
	"context"
	"log/slog"
	"math/big"

	domainerrors "gemledger/contexts/ledger/price-oracle/domain/errors"
	"gemledger/contexts/ledger/price-oracle/ports"
)

// DefaultNativeDecimals is the wei precision of the native currency.
const DefaultNativeDecimals = 18

var bigTen = big.NewInt(10)

// Service wraps the external feed and owns the USD→native conversion. A
// failed or non-positive read is a hard stop for any caller that needs a
// conversion; there is no stale-price fallback.
type Service struct {
	Feed           ports.PriceFeed
	NativeDecimals uint8
	Logger         *slog.Logger
}

func (s Service) LatestPrice(ctx context.Context) (ports.Quote, error) {
	if s.Feed == nil {
		return ports.Quote{}, domainerrors.ErrOracleUnavailable
	}

	quote, err := s.Feed.LatestPrice(ctx)
	if err != nil {
		resolveLogger(s.Logger).Warn("price feed read failed",
			"event", "price_oracle_feed_read_failed",
			"module", "ledger/price-oracle",
			"layer", "application",
			"error", err.Error(),
		)
		return ports.Quote{}, domainerrors.ErrOracleUnavailable
	}
	if quote.Rate == nil || quote.Rate.Sign() <= 0 {
		return ports.Quote{}, domainerrors.ErrOracleUnavailable
	}
	return ports.Quote{Rate: new(big.Int).Set(quote.Rate), Precision: quote.Precision}, nil
}

// UsdToNative converts a USD amount to the native integer unit using a fresh
// quote: amountUsd * 10^(nativeDecimals + precision) / rate, floor division.
// Truncation is deliberate; it biases slightly in the buyer's favor.
func (s Service) UsdToNative(ctx context.Context, amountUsd uint64) (*big.Int, error) {
	if amountUsd == 0 {
		return nil, domainerrors.ErrInvalidAmount
	}

	quote, err := s.LatestPrice(ctx)
	if err != nil {
		return nil, err
	}

	exponent := big.NewInt(int64(s.nativeDecimals()) + int64(quote.Precision))
	scale := new(big.Int).Exp(bigTen, exponent, nil)
	scaled := new(big.Int).Mul(new(big.Int).SetUint64(amountUsd), scale)
	return scaled.Quo(scaled, quote.Rate), nil
}

func (s Service) nativeDecimals() uint8 {
	if s.NativeDecimals == 0 {
		return DefaultNativeDecimals
	}
	return s.NativeDecimals
}
