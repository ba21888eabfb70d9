package entities

// Metadata is the stone descriptor embedded in stored content. Fields
// absent from the document simply stay zero; display layers render what
// they get.
type Metadata struct {
	Name        string `json:"name"`
	Color       string `json:"color"`
	Clarity     string `json:"clarity"`
	Cut         string `json:"cut"`
	CaratWeight string `json:"caratWeight"`
	Image       string `json:"image"`
}
