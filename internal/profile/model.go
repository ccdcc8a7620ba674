package profile

import "time"

// Address rows pass through to the caller unmodified, so they stay opaque.
type Address map[string]any

type PaymentMethod struct {
	ID        string `json:"id"`
	Brand     string `json:"brand"`
	Last4     string `json:"last4"`
	ExpMonth  int    `json:"exp_month"`
	ExpYear   int    `json:"exp_year"`
	IsDefault bool   `json:"is_default"`
}

type Order struct {
	ID            string    `json:"id"`
	OrderNumber   string    `json:"order_number"`
	CreatedAt     time.Time `json:"created_at"`
	TotalAmount   string    `json:"total_amount"` // NUMERIC -> string
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
}

// Data is the aggregated commerce profile for one user. The three collections
// are independent; an empty one is always an empty list, never null.
type Data struct {
	Addresses      []Address       `json:"addresses"`
	PaymentMethods []PaymentMethod `json:"paymentMethods"`
	Orders         []Order         `json:"orders"`
}
