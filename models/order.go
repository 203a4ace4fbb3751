package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string
type PaymentStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // Order placed, awaiting confirmation
	OrderStatusConfirmed OrderStatus = "confirmed" // Payment captured
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusCancelled OrderStatus = "cancelled"

	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// OrderSummary is the price breakdown for a cart and checkout selection.
type OrderSummary struct {
	Subtotal         decimal.Decimal `json:"subtotal"`
	Discount         decimal.Decimal `json:"discount"`
	PromoCode        string          `json:"promoCode,omitempty"` // Set only when the discount applied
	Shipping         decimal.Decimal `json:"shipping"`
	ShippingSelected bool            `json:"shippingSelected"`
	Tax              decimal.Decimal `json:"tax"`
	Total            decimal.Decimal `json:"total"`
}

// OrderConfirmation is the finalized order snapshot returned by order placement.
type OrderConfirmation struct {
	OrderID           string          `json:"orderId"`
	Status            OrderStatus     `json:"status"`
	PaymentStatus     PaymentStatus   `json:"paymentStatus"`
	Items             []LineItem      `json:"items"`
	Summary           OrderSummary    `json:"summary"`
	ShippingAddress   Address         `json:"shippingAddress"`
	BillingAddress    Address         `json:"billingAddress"`
	ShippingOption    ShippingOption  `json:"shippingOption"`
	PaymentType       PaymentType     `json:"paymentType"`
	PromoCode         string          `json:"promoCode,omitempty"`
	EstimatedDelivery time.Time       `json:"estimatedDelivery"`
	CreatedAt         time.Time       `json:"createdAt"`
}
