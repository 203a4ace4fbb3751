// Package pricing derives order summaries. Everything here is pure: the same
// inputs always produce the same breakdown and nothing is mutated.
package pricing

import (
	"github.com/junaidrashid-git/paintstore-api/models"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Discount returns the amount promo takes off subtotal. It is zero when promo
// is nil or its minimum order amount is not met, never more than subtotal, and
// capped at MaxDiscount for percentage codes.
func Discount(subtotal decimal.Decimal, promo *models.PromoCode) decimal.Decimal {
	if promo == nil || !subtotal.IsPositive() {
		return decimal.Zero
	}
	if promo.MinOrderAmount != nil && subtotal.LessThan(*promo.MinOrderAmount) {
		return decimal.Zero
	}

	var discount decimal.Decimal
	switch promo.Type {
	case models.DiscountPercentage:
		pct := decimal.Max(decimal.Zero, decimal.Min(promo.Discount, hundred))
		discount = subtotal.Mul(pct).Div(hundred)
		if promo.MaxDiscount != nil {
			discount = decimal.Min(discount, *promo.MaxDiscount)
		}
	case models.DiscountFixed:
		discount = decimal.Min(promo.Discount, subtotal)
	default:
		return decimal.Zero
	}
	if discount.IsNegative() {
		return decimal.Zero
	}
	return discount.Round(2)
}

// ShippingCost is the option's flat price, or zero while nothing is selected.
func ShippingCost(option *models.ShippingOption) decimal.Decimal {
	if option == nil {
		return decimal.Zero
	}
	return option.Price
}

// Summarize builds the breakdown for subtotal with an optional promo and
// shipping option. tax comes from a TaxCalculator and is taken as given.
func Summarize(subtotal decimal.Decimal, promo *models.PromoCode, option *models.ShippingOption, tax decimal.Decimal) models.OrderSummary {
	discount := Discount(subtotal, promo)
	shipping := ShippingCost(option)

	total := subtotal.Sub(discount).Add(shipping).Add(tax)
	if total.IsNegative() {
		total = decimal.Zero
	}

	summary := models.OrderSummary{
		Subtotal:         subtotal.Round(2),
		Discount:         discount,
		Shipping:         shipping.Round(2),
		ShippingSelected: option != nil,
		Tax:              tax.Round(2),
		Total:            total.Round(2),
	}
	if promo != nil && discount.IsPositive() {
		summary.PromoCode = promo.Code
	}
	return summary
}

// Quote computes tax through calc on the discounted subtotal and summarizes.
func Quote(subtotal decimal.Decimal, promo *models.PromoCode, option *models.ShippingOption, addr *models.Address, calc TaxCalculator) models.OrderSummary {
	tax := decimal.Zero
	if calc != nil {
		tax = calc.Tax(subtotal.Sub(Discount(subtotal, promo)), addr)
	}
	return Summarize(subtotal, promo, option, tax)
}
