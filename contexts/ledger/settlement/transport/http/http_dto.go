package httptransport

type BuyItemRequest struct {
	// PaymentWei is a base-10 wei amount; it exceeds uint64 range for
	// realistic prices, so it travels as a string.
	PaymentWei string `json:"payment_wei"`
}

type BuyItemResponse struct {
	Status string `json:"status"`
	Data   struct {
		SKU       uint64 `json:"sku"`
		Buyer     string `json:"buyer"`
		TokenID   uint64 `json:"token_id"`
		PriceWei  string `json:"price_wei"`
		PaidWei   string `json:"paid_wei"`
		RefundWei string `json:"refund_wei"`
		SettledAt string `json:"settled_at"`
	} `json:"data"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
