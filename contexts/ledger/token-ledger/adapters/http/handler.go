package httpadapter

import (
	"context"
	"log/slog"
	"strings"

	"gemledger/contexts/ledger/token-ledger/application"
	httptransport "gemledger/contexts/ledger/token-ledger/transport/http"
	"gemledger/internal/shared/address"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// TransferHandler moves a token. The caller address comes from the wallet
// connectivity layer and must match the request's from field when set.
func (h Handler) TransferHandler(
	ctx context.Context,
	caller string,
	tokenID uint64,
	req httptransport.TransferRequest,
) (httptransport.TransferResponse, error) {
	from := strings.TrimSpace(req.From)
	if from == "" {
		from = caller
	}

	if err := h.Service.Transfer(ctx, from, strings.TrimSpace(req.To), tokenID); err != nil {
		return httptransport.TransferResponse{}, err
	}

	resp := httptransport.TransferResponse{Status: "success"}
	resp.Data.TokenID = tokenID
	resp.Data.From = address.Normalize(from)
	resp.Data.To = address.Normalize(req.To)
	return resp, nil
}

func (h Handler) TokenURIHandler(ctx context.Context, tokenID uint64) (httptransport.TokenURIResponse, error) {
	uri, err := h.Service.TokenURI(ctx, tokenID)
	if err != nil {
		return httptransport.TokenURIResponse{}, err
	}

	resp := httptransport.TokenURIResponse{Status: "success"}
	resp.Data.TokenID = tokenID
	resp.Data.URI = uri
	return resp, nil
}

func (h Handler) BalanceOfHandler(ctx context.Context, owner string) (httptransport.BalanceResponse, error) {
	balance, err := h.Service.BalanceOf(ctx, owner)
	if err != nil {
		return httptransport.BalanceResponse{}, err
	}

	resp := httptransport.BalanceResponse{Status: "success"}
	resp.Data.Owner = address.Normalize(owner)
	resp.Data.Balance = balance
	return resp, nil
}

func (h Handler) TokenOfOwnerByIndexHandler(
	ctx context.Context,
	owner string,
	index int,
) (httptransport.TokenByIndexResponse, error) {
	tokenID, err := h.Service.TokenOfOwnerByIndex(ctx, owner, index)
	if err != nil {
		return httptransport.TokenByIndexResponse{}, err
	}

	resp := httptransport.TokenByIndexResponse{Status: "success"}
	resp.Data.Owner = address.Normalize(owner)
	resp.Data.Index = index
	resp.Data.TokenID = tokenID
	return resp, nil
}
