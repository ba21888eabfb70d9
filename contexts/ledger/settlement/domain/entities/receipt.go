package entities

import (
	"math/big"
	"time"
)

// Receipt summarizes a completed purchase: what was bought, by whom, the
// token that proves it and how the payment split between price and refund.
type Receipt struct {
	SKU       uint64
	Buyer     string
	TokenID   uint64
	PriceWei  *big.Int
	Paid      *big.Int
	Refund    *big.Int
	SettledAt time.Time
}
