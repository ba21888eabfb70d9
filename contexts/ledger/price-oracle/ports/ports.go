package ports

import (
	"context"
	"math/big"
)

// Quote is a fresh oracle read: the price of one unit of native currency in
// fixed-point USD with Precision decimal digits. Quotes are never persisted
// beyond the computation that uses them.
type Quote struct {
	Rate      *big.Int
	Precision uint8
}

// PriceFeed reads the external exchange-rate feed.
type PriceFeed interface {
	LatestPrice(ctx context.Context) (Quote, error)
}
