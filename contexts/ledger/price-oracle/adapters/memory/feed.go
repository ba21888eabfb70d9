package memory

import (
	"context"
	"math/big"
	"sync"

	"gemledger/contexts/ledger/price-oracle/ports"
)

// Feed is the in-process stand-in for the external aggregator, fixed to the
// same round the development mock reports: 4067.72749646 USD per unit.
type Feed struct {
	mu        sync.RWMutex
	rate      *big.Int
	precision uint8
	err       error
}

func NewFeed() *Feed {
	return &Feed{
		rate:      big.NewInt(406772749646),
		precision: 8,
	}
}

func (f *Feed) LatestPrice(_ context.Context) (ports.Quote, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.err != nil {
		return ports.Quote{}, f.err
	}
	return ports.Quote{Rate: new(big.Int).Set(f.rate), Precision: f.precision}, nil
}

// SetQuote overrides the reported round.
func (f *Feed) SetQuote(rate *big.Int, precision uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.rate = new(big.Int).Set(rate)
	f.precision = precision
}

// Fail makes every subsequent read return err; nil restores the feed.
func (f *Feed) Fail(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.err = err
}
