package httptransport

type AddAdminRequest struct {
	Address string `json:"address"`
}

type AddSupplierRequest struct {
	Address string `json:"address"`
	Name    string `json:"name"`
}

type RoleCheckResponse struct {
	Status string `json:"status"`
	Data   struct {
		Address    string `json:"address"`
		IsAdmin    bool   `json:"is_admin"`
		IsSupplier bool   `json:"is_supplier"`
	} `json:"data"`
}

type RoleChangeResponse struct {
	Status string `json:"status"`
	Data   struct {
		Address string `json:"address"`
	} `json:"data"`
}

type SupplierResponse struct {
	Status string `json:"status"`
	Data   struct {
		Address   string `json:"address"`
		Name      string `json:"name"`
		Active    bool   `json:"active"`
		AddedAt   string `json:"added_at"`
		UpdatedAt string `json:"updated_at"`
	} `json:"data"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
