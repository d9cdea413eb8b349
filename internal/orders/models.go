package orders

import "time"

type Address struct {
	Line1      string `json:"line1,omitempty"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country,omitempty"`
}

type Order struct {
	ID              string    `json:"id"`
	SessionID       string    `json:"session_id"` // payment processor checkout session
	Email           string    `json:"email,omitempty"`
	TotalPence      int       `json:"total_pence"`
	Status          Status    `json:"status"`
	BuyerName       string    `json:"buyer_name,omitempty"`
	ShippingAddress *Address  `json:"shipping_address,omitempty"`
	BillingAddress  *Address  `json:"billing_address,omitempty"`
	PaymentRef      string    `json:"payment_ref,omitempty"`
	CancelReason    string    `json:"cancel_reason,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// PaidDetails is what a completed-checkout event contributes to an order.
type PaidDetails struct {
	BuyerName       string
	ShippingAddress *Address
	BillingAddress  *Address
	PaymentRef      string
}
