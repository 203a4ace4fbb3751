package catalog

import (
	"github.com/junaidrashid-git/paintstore-api/models"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

// Default is the catalog used when no catalog file is configured.
func Default() File {
	return File{
		PromoCodes: []models.PromoCode{
			{
				Code:        "WELCOME10",
				Discount:    dec("10"),
				Type:        models.DiscountPercentage,
				Description: "10% off your first order, up to $50",
				MaxDiscount: decPtr("50"),
			},
			{
				Code:           "PAINT25",
				Discount:       dec("25"),
				Type:           models.DiscountFixed,
				Description:    "$25 off orders of $200 or more",
				MinOrderAmount: decPtr("200"),
			},
			{
				Code:           "PRO15",
				Discount:       dec("15"),
				Type:           models.DiscountPercentage,
				Description:    "15% off for trade accounts on orders over $500",
				MinOrderAmount: decPtr("500"),
				MaxDiscount:    decPtr("300"),
			},
		},
		ShippingOptions: []models.ShippingOption{
			{
				ID:                "standard",
				Name:              "Standard Shipping",
				Description:       "Ground delivery",
				Price:             dec("9.99"),
				EstimatedDays:     5,
				Carrier:           "UPS",
				TrackingAvailable: true,
			},
			{
				ID:                "express",
				Name:              "Express Shipping",
				Description:       "Two business days",
				Price:             dec("19.99"),
				EstimatedDays:     2,
				Carrier:           "FedEx",
				TrackingAvailable: true,
			},
			{
				ID:            "pickup",
				Name:          "Store Pickup",
				Description:   "Collect from your nearest store",
				Price:         dec("0"),
				EstimatedDays: 1,
				Carrier:       "In store",
			},
		},
		TaxRates: map[string]decimal.Decimal{
			"CA": dec("0.0725"),
			"NY": dec("0.04"),
			"TX": dec("0.0625"),
			"OR": dec("0"),
		},
		DefaultTaxRate: dec("0.05"),
	}
}
