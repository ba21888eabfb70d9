package httpadapter

import (
	"context"
	"log/slog"

	"gemledger/contexts/ledger/content-store/application"
	httptransport "gemledger/contexts/ledger/content-store/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) PutContentHandler(ctx context.Context, req httptransport.PutContentRequest) (httptransport.PutContentResponse, error) {
	ref, err := h.Service.Put(ctx, []byte(req.Content))
	if err != nil {
		return httptransport.PutContentResponse{}, err
	}

	resp := httptransport.PutContentResponse{Status: "success"}
	resp.Data.Ref = ref
	return resp, nil
}

func (h Handler) GetContentHandler(ctx context.Context, ref string) (httptransport.GetContentResponse, error) {
	data, err := h.Service.Get(ctx, ref)
	if err != nil {
		return httptransport.GetContentResponse{}, err
	}

	resp := httptransport.GetContentResponse{Status: "success"}
	resp.Data.Ref = ref
	resp.Data.Content = string(data)
	return resp, nil
}

func (h Handler) ResolveMetadataHandler(ctx context.Context, ref string) (httptransport.MetadataResponse, error) {
	meta, err := h.Service.Resolve(ctx, ref)
	if err != nil {
		return httptransport.MetadataResponse{}, err
	}

	resp := httptransport.MetadataResponse{Status: "success"}
	resp.Data.Ref = ref
	resp.Data.Name = meta.Name
	resp.Data.Color = meta.Color
	resp.Data.Clarity = meta.Clarity
	resp.Data.Cut = meta.Cut
	resp.Data.CaratWeight = meta.CaratWeight
	resp.Data.Image = meta.Image
	return resp, nil
}
