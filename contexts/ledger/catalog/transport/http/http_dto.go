package httptransport

type AddItemRequest struct {
	ContentHash string `json:"content_hash"`
	PriceUsd    uint64 `json:"price_usd"`
}

type ItemData struct {
	SKU          uint64 `json:"sku"`
	Supplier     string `json:"supplier"`
	SupplierName string `json:"supplier_name,omitempty"`
	State        string `json:"state"`
	PriceUsd     uint64 `json:"price_usd"`
	PriceWei     string `json:"price_wei"`
	ContentHash  string `json:"content_hash"`
	Buyer        string `json:"buyer,omitempty"`
	TokenID      uint64 `json:"token_id,omitempty"`
	ListedAt     string `json:"listed_at"`
}

type ItemResponse struct {
	Status string   `json:"status"`
	Data   ItemData `json:"data"`
}

type ItemListResponse struct {
	Status string     `json:"status"`
	Data   []ItemData `json:"data"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
