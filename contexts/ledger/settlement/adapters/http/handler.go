package httpadapter

import (
	"context"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"gemledger/contexts/ledger/settlement/application"
	domainerrors "gemledger/contexts/ledger/settlement/domain/errors"
	httptransport "gemledger/contexts/ledger/settlement/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// BuyItemHandler settles a purchase for the calling buyer.
func (h Handler) BuyItemHandler(
	ctx context.Context,
	caller string,
	sku uint64,
	req httptransport.BuyItemRequest,
) (httptransport.BuyItemResponse, error) {
	payment, ok := new(big.Int).SetString(strings.TrimSpace(req.PaymentWei), 10)
	if !ok || payment.Sign() < 0 {
		return httptransport.BuyItemResponse{}, domainerrors.ErrInvalidPurchase
	}

	receipt, err := h.Service.BuyItem(ctx, sku, caller, payment)
	if err != nil {
		return httptransport.BuyItemResponse{}, err
	}

	resp := httptransport.BuyItemResponse{Status: "success"}
	resp.Data.SKU = receipt.SKU
	resp.Data.Buyer = receipt.Buyer
	resp.Data.TokenID = receipt.TokenID
	resp.Data.PriceWei = receipt.PriceWei.String()
	resp.Data.PaidWei = receipt.Paid.String()
	resp.Data.RefundWei = receipt.Refund.String()
	resp.Data.SettledAt = receipt.SettledAt.UTC().Format(time.RFC3339)
	return resp, nil
}
