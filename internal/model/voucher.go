package model

import "time"

// VoucherType distinguishes value vouchers from event vouchers.
type VoucherType string

const (
	VoucherAmount VoucherType = "amount"
	VoucherEvent  VoucherType = "event"
)

// VoucherDelivery is how the buyer wants the voucher delivered.
type VoucherDelivery string

const (
	VoucherDeliveryEmail  VoucherDelivery = "email"
	VoucherDeliveryPickup VoucherDelivery = "pickup"
)

// VoucherStatus tracks a voucher order through payment and redemption.
type VoucherStatus string

const (
	VoucherPending   VoucherStatus = "pending"
	VoucherPaid      VoucherStatus = "paid"
	VoucherSent      VoucherStatus = "sent"
	VoucherRedeemed  VoucherStatus = "redeemed"
	VoucherCancelled VoucherStatus = "cancelled"
)

// VoucherOrder is a gift voucher purchase from the public voucher form.
// Amount and EventName are mutually exclusive by VoucherType: amount
// vouchers carry a value in euros, event vouchers name the show.
type VoucherOrder struct {
	ID             int             `json:"id"`
	VoucherType    VoucherType     `json:"voucherType"`
	Amount         float64         `json:"amount,omitempty"`
	EventName      string          `json:"eventName,omitempty"`
	BuyerName      string          `json:"buyerName"`
	BuyerEmail     string          `json:"buyerEmail"`
	BuyerPhone     string          `json:"buyerPhone,omitempty"`
	RecipientName  string          `json:"recipientName,omitempty"`
	RecipientEmail string          `json:"recipientEmail,omitempty"`
	Message        string          `json:"message,omitempty"`
	Delivery       VoucherDelivery `json:"delivery"`
	Status         VoucherStatus   `json:"status"`
	Notes          string          `json:"notes,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
}
