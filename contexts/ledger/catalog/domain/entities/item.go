package entities

import (
	"math/big"
	"time"
)

// State is the item lifecycle. The transition is one-way: a sold item is
// never re-listed.
type State string

const (
	StateForSale State = "for_sale"
	StateSold    State = "sold"
)

// Item is a listed precious stone. The catalog exclusively owns these
// records; the settlement flow mutates State, Buyer and TokenID exactly
// once per item, at purchase time.
type Item struct {
	SKU         uint64
	Supplier    string
	State       State
	PriceUsd    uint64
	PriceWei    *big.Int
	ContentHash string
	Buyer       string
	TokenID     uint64
	ListedAt    time.Time
	UpdatedAt   time.Time
}

// Clone returns a deep copy so callers never alias the store's big.Int.
func (i Item) Clone() Item {
	out := i
	if i.PriceWei != nil {
		out.PriceWei = new(big.Int).Set(i.PriceWei)
	}
	return out
}
