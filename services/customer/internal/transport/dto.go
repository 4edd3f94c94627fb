package transport

type CreateCustomerRequest struct {
	Name          *string   `json:"name"`
	Email         *string   `json:"email"`
	Address       *string   `json:"address"`
	Updated       *string   `json:"updated"`
	Confirmed     *bool     `json:"confirmed"`
	OrdersHistory *[]string `json:"orders_history"`
}
