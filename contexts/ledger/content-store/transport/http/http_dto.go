package httptransport

type PutContentRequest struct {
	Content string `json:"content"`
}

type PutContentResponse struct {
	Status string `json:"status"`
	Data   struct {
		Ref string `json:"ref"`
	} `json:"data"`
}

type GetContentResponse struct {
	Status string `json:"status"`
	Data   struct {
		Ref     string `json:"ref"`
		Content string `json:"content"`
	} `json:"data"`
}

type MetadataResponse struct {
	Status string `json:"status"`
	Data   struct {
		Ref         string `json:"ref"`
		Name        string `json:"name"`
		Color       string `json:"color"`
		Clarity     string `json:"clarity"`
		Cut         string `json:"cut"`
		CaratWeight string `json:"carat_weight"`
		Image       string `json:"image"`
	} `json:"data"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
