package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// PromoCode is a named discount rule. Codes match case-sensitively.
type PromoCode struct {
	Code           string           `json:"code" yaml:"code"`
	Discount       decimal.Decimal  `json:"discount" yaml:"discount"`
	Type           DiscountType     `json:"type" yaml:"type"`
	Description    string           `json:"description" yaml:"description"`
	MinOrderAmount *decimal.Decimal `json:"minOrderAmount,omitempty" yaml:"min_order_amount,omitempty"`
	MaxDiscount    *decimal.Decimal `json:"maxDiscount,omitempty" yaml:"max_discount,omitempty"`
	ExpiryDate     *time.Time       `json:"expiryDate,omitempty" yaml:"expiry_date,omitempty"`
	UsageLimit     *int             `json:"usageLimit,omitempty" yaml:"usage_limit,omitempty"`
	UsedCount      int              `json:"usedCount" yaml:"used_count"`
}

// ShippingOption is one selectable fulfillment tier with a flat price.
type ShippingOption struct {
	ID                string          `json:"id" yaml:"id"`
	Name              string          `json:"name" yaml:"name"`
	Description       string          `json:"description" yaml:"description"`
	Price             decimal.Decimal `json:"price" yaml:"price"`
	EstimatedDays     int             `json:"estimatedDays" yaml:"estimated_days"`
	Carrier           string          `json:"carrier" yaml:"carrier"`
	TrackingAvailable bool            `json:"trackingAvailable" yaml:"tracking_available"`
}
