package memory

import (
	"context"
	"math/big"
	"sync"
	"time"
)

// Treasury is an in-process value store. It keeps the price portion of each
// settlement and returns the remainder as a refund, the way an on-chain
// treasury would push change back to the payer.
type Treasury struct {
	mu      sync.Mutex
	balance *big.Int
	refunds map[string]*big.Int
	failErr error
}

func NewTreasury() *Treasury {
	return &Treasury{
		balance: big.NewInt(0),
		refunds: make(map[string]*big.Int),
	}
}

func (t *Treasury) Now() time.Time {
	return time.Now().UTC()
}

func (t *Treasury) Settle(_ context.Context, payer string, payment *big.Int, price *big.Int) (*big.Int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.failErr != nil {
		return nil, t.failErr
	}

	t.balance.Add(t.balance, price)

	refund := new(big.Int).Sub(payment, price)
	if refund.Sign() > 0 {
		total, ok := t.refunds[payer]
		if !ok {
			total = big.NewInt(0)
			t.refunds[payer] = total
		}
		total.Add(total, refund)
		return refund, nil
	}
	return big.NewInt(0), nil
}

// Balance reports the accumulated price total.
func (t *Treasury) Balance() *big.Int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return new(big.Int).Set(t.balance)
}

// RefundedTo reports the total change pushed back to a payer.
func (t *Treasury) RefundedTo(payer string) *big.Int {
	t.mu.Lock()
	defer t.mu.Unlock()
	total, ok := t.refunds[payer]
	if !ok {
		return big.NewInt(0)
	}
	return new(big.Int).Set(total)
}

// Fail makes every subsequent Settle return err until reset with nil.
func (t *Treasury) Fail(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.failErr = err
}
