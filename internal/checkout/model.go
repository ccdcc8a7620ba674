package checkout

import (
	"time"

	"github.com/shopspring/decimal"
)

type CartItem struct {
	ID           string          `json:"id"`
	Manufacturer string          `json:"manufacturer"`
	PartNumber   string          `json:"part_number"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	LineTotal    decimal.Decimal `json:"line_total"`
}

// FreightQuote is a priced shipping option produced by the external rate
// service. CustomerRate is what the buyer pays; TotalCharges is the carrier
// list price.
type FreightQuote struct {
	ServiceCode  string          `json:"service_code"`
	ServiceName  string          `json:"service_name"`
	TotalCharges decimal.Decimal `json:"total_charges"`
	CustomerRate decimal.Decimal `json:"customer_rate"`
	TransitDays  int             `json:"transit_days,omitempty"`
	DeliveryDate *time.Time      `json:"delivery_date,omitempty"`
}

type Profile struct {
	UserID             string          `json:"user_id"`
	Email              string          `json:"email,omitempty"`
	CompanyName        string          `json:"company_name,omitempty"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
}

// PaymentRequest is everything the payment collaborator needs to run its flow.
type PaymentRequest struct {
	CartItems    []CartItem      `json:"cartItems"`
	CartTotal    decimal.Decimal `json:"cartTotal"`
	UserDiscount decimal.Decimal `json:"userDiscount"`
	UserProfile  Profile         `json:"userProfile"`
}
