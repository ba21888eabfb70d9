package httpadapter

import (
	"context"
	"log/slog"

	"gemledger/contexts/ledger/price-oracle/application"
	httptransport "gemledger/contexts/ledger/price-oracle/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) QuoteHandler(ctx context.Context) (httptransport.QuoteResponse, error) {
	quote, err := h.Service.LatestPrice(ctx)
	if err != nil {
		return httptransport.QuoteResponse{}, err
	}

	resp := httptransport.QuoteResponse{Status: "success"}
	resp.Data.Rate = quote.Rate.String()
	resp.Data.Precision = quote.Precision
	return resp, nil
}

func (h Handler) ConvertHandler(ctx context.Context, amountUsd uint64) (httptransport.ConvertResponse, error) {
	priceWei, err := h.Service.UsdToNative(ctx, amountUsd)
	if err != nil {
		return httptransport.ConvertResponse{}, err
	}

	resp := httptransport.ConvertResponse{Status: "success"}
	resp.Data.AmountUsd = amountUsd
	resp.Data.PriceWei = priceWei.String()
	return resp, nil
}
