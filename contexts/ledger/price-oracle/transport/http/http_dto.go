package httptransport

type QuoteResponse struct {
	Status string `json:"status"`
	Data   struct {
		Rate      string `json:"rate"`
		Precision uint8  `json:"precision"`
	} `json:"data"`
}

type ConvertResponse struct {
	Status string `json:"status"`
	Data   struct {
		AmountUsd uint64 `json:"amount_usd"`
		PriceWei  string `json:"price_wei"`
	} `json:"data"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
