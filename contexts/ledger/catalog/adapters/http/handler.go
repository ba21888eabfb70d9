package httpadapter

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"gemledger/contexts/ledger/catalog/application"
	"gemledger/contexts/ledger/catalog/domain/entities"
	httptransport "gemledger/contexts/ledger/catalog/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) AddItemHandler(
	ctx context.Context,
	caller string,
	req httptransport.AddItemRequest,
) (httptransport.ItemResponse, error) {
	item, err := h.Service.AddItem(ctx, caller, strings.TrimSpace(req.ContentHash), req.PriceUsd)
	if err != nil {
		return httptransport.ItemResponse{}, err
	}
	return httptransport.ItemResponse{Status: "success", Data: toItemData(item, "")}, nil
}

func (h Handler) ListAvailableItemsHandler(ctx context.Context) (httptransport.ItemListResponse, error) {
	views, err := h.Service.GetAvailableItems(ctx)
	if err != nil {
		return httptransport.ItemListResponse{}, err
	}

	resp := httptransport.ItemListResponse{Status: "success", Data: make([]httptransport.ItemData, 0, len(views))}
	for _, view := range views {
		resp.Data = append(resp.Data, toItemData(view.Item, view.SupplierName))
	}
	return resp, nil
}

func (h Handler) GetItemHandler(ctx context.Context, sku uint64) (httptransport.ItemResponse, error) {
	item, err := h.Service.GetItem(ctx, sku)
	if err != nil {
		return httptransport.ItemResponse{}, err
	}
	return httptransport.ItemResponse{Status: "success", Data: toItemData(item, "")}, nil
}

func toItemData(item entities.Item, supplierName string) httptransport.ItemData {
	data := httptransport.ItemData{
		SKU:          item.SKU,
		Supplier:     item.Supplier,
		SupplierName: supplierName,
		State:        string(item.State),
		PriceUsd:     item.PriceUsd,
		ContentHash:  item.ContentHash,
		Buyer:        item.Buyer,
		TokenID:      item.TokenID,
		ListedAt:     item.ListedAt.UTC().Format(time.RFC3339),
	}
	if item.PriceWei != nil {
		data.PriceWei = item.PriceWei.String()
	}
	return data
}
