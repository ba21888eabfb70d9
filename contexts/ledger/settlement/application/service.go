package application

import (
	"context"
	"log/slog"
	"math/big"
	"strconv"
	"time"

	catalogentities "gemledger/contexts/ledger/catalog/domain/entities"
	"gemledger/contexts/ledger/settlement/domain/entities"
	domainerrors "gemledger/contexts/ledger/settlement/domain/errors"
	"gemledger/contexts/ledger/settlement/ports"
	"gemledger/internal/shared/address"
)

// Service is the settlement engine. It coordinates the catalog's state
// transition, the token mint and the value transfer so that a purchase
// either fully completes or leaves no trace.
type Service struct {
	Items    ports.Items
	Tokens   ports.Tokens
	Payments ports.Payments
	Events   ports.EventRecorder
	Clock    ports.Clock
	Logger   *slog.Logger
}

// BuyItem settles a purchase. The item transitions to sold before the mint
// and the value transfer run, and any failure inside the settle section
// restores the prior record. Overpayment is refunded to the buyer.
func (s Service) BuyItem(ctx context.Context, sku uint64, buyer string, payment *big.Int) (entities.Receipt, error) {
	if address.IsZero(buyer) || payment == nil {
		return entities.Receipt{}, domainerrors.ErrInvalidPurchase
	}

	now := s.now()
	buyerAddr := address.Normalize(buyer)

	var (
		tokenID uint64
		refund  *big.Int
	)
	settled, err := s.Items.SettleItem(ctx, sku, buyerAddr, payment, now,
		func(item catalogentities.Item) (uint64, error) {
			minted, mintErr := s.Tokens.Mint(ctx, buyerAddr, item.ContentHash)
			if mintErr != nil {
				return 0, mintErr
			}

			paid, payErr := s.Payments.Settle(ctx, buyerAddr, payment, item.PriceWei)
			if payErr != nil {
				if revertErr := s.Tokens.RevertMint(ctx, minted); revertErr != nil {
					resolveLogger(s.Logger).Error("mint revert failed",
						"event", "settlement_revert_mint_failed",
						"module", "ledger/settlement",
						"layer", "application",
						"token_id", minted,
						"error", revertErr.Error(),
					)
				}
				return 0, payErr
			}

			tokenID = minted
			refund = paid
			return minted, nil
		})
	if err != nil {
		resolveLogger(s.Logger).Warn("purchase rejected",
			"event", "settlement_purchase_rejected",
			"module", "ledger/settlement",
			"layer", "application",
			"sku", sku,
			"buyer", buyerAddr,
			"error", err.Error(),
		)
		return entities.Receipt{}, err
	}

	receipt := entities.Receipt{
		SKU:       settled.SKU,
		Buyer:     settled.Buyer,
		TokenID:   tokenID,
		PriceWei:  settled.PriceWei,
		Paid:      new(big.Int).Set(payment),
		Refund:    refund,
		SettledAt: now,
	}
	if receipt.Refund == nil {
		receipt.Refund = big.NewInt(0)
	}

	s.record(ctx, "ledger.item_sold", "item", strconv.FormatUint(settled.SKU, 10), map[string]string{
		"sku":       strconv.FormatUint(settled.SKU, 10),
		"buyer":     settled.Buyer,
		"token_id":  strconv.FormatUint(tokenID, 10),
		"price_wei": settled.PriceWei.String(),
		"paid_wei":  payment.String(),
	})

	resolveLogger(s.Logger).Info("item sold",
		"event", "settlement_item_sold",
		"module", "ledger/settlement",
		"layer", "application",
		"sku", settled.SKU,
		"buyer", settled.Buyer,
		"token_id", tokenID,
	)
	return receipt, nil
}

func (s Service) record(ctx context.Context, eventType string, entityType string, entityID string, payload any) {
	if s.Events == nil {
		return
	}
	if err := s.Events.Record(ctx, eventType, entityType, entityID, payload); err != nil {
		resolveLogger(s.Logger).Error("audit record failed",
			"event", "settlement_audit_record_failed",
			"module", "ledger/settlement",
			"layer", "application",
			"event_type", eventType,
			"error", err.Error(),
		)
	}
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}
