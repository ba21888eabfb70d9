package httptransport

type TransferRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type TransferResponse struct {
	Status string `json:"status"`
	Data   struct {
		TokenID uint64 `json:"token_id"`
		From    string `json:"from"`
		To      string `json:"to"`
	} `json:"data"`
}

type TokenURIResponse struct {
	Status string `json:"status"`
	Data   struct {
		TokenID uint64 `json:"token_id"`
		URI     string `json:"uri"`
	} `json:"data"`
}

type BalanceResponse struct {
	Status string `json:"status"`
	Data   struct {
		Owner   string `json:"owner"`
		Balance int    `json:"balance"`
	} `json:"data"`
}

type TokenByIndexResponse struct {
	Status string `json:"status"`
	Data   struct {
		Owner   string `json:"owner"`
		Index   int    `json:"index"`
		TokenID uint64 `json:"token_id"`
	} `json:"data"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
