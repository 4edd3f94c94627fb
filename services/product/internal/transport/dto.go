package transport

type CreateProductRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price"`
	Updated     *string   `json:"updated"`
	Expired     *bool     `json:"expired"`
	Categories  *[]string `json:"categories"`
}
