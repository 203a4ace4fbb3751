package pricing

import (
	"testing"

	"github.com/junaidrashid-git/paintstore-api/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func dp(s string) *decimal.Decimal {
	v := d(s)
	return &v
}

func assertDec(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, d(want).Equal(got), append([]interface{}{"want %s, got %s", want, got.String()}, msgAndArgs...)...)
}

func TestDiscount(t *testing.T) {
	paint25 := &models.PromoCode{Code: "PAINT25", Type: models.DiscountFixed, Discount: d("25"), MinOrderAmount: dp("200")}
	welcome := &models.PromoCode{Code: "WELCOME10", Type: models.DiscountPercentage, Discount: d("10"), MaxDiscount: dp("50")}
	big := &models.PromoCode{Code: "BIG", Type: models.DiscountFixed, Discount: d("500")}

	tests := []struct {
		name     string
		subtotal string
		promo    *models.PromoCode
		want     string
	}{
		{"no promo", "100", nil, "0"},
		{"below minimum", "150", paint25, "0"},
		{"at minimum", "200", paint25, "25"},
		{"above minimum", "250", paint25, "25"},
		{"percentage", "120", welcome, "12"},
		{"percentage capped", "900", welcome, "50"},
		{"fixed larger than subtotal", "40", big, "40"},
		{"empty cart", "0", welcome, "0"},
		{"unknown type", "100", &models.PromoCode{Type: "bogus", Discount: d("10")}, "0"},
		{"rounds to cents", "33.33", &models.PromoCode{Type: models.DiscountPercentage, Discount: d("15")}, "5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertDec(t, tt.want, Discount(d(tt.subtotal), tt.promo))
		})
	}
}

func TestSummarize(t *testing.T) {
	standard := &models.ShippingOption{ID: "standard", Price: d("9.99")}
	paint25 := &models.PromoCode{Code: "PAINT25", Type: models.DiscountFixed, Discount: d("25"), MinOrderAmount: dp("200")}

	s := Summarize(d("250"), paint25, standard, d("16.25"))
	assertDec(t, "250", s.Subtotal)
	assertDec(t, "25", s.Discount)
	assertDec(t, "9.99", s.Shipping)
	assertDec(t, "16.25", s.Tax)
	assertDec(t, "251.24", s.Total)
	assert.Equal(t, "PAINT25", s.PromoCode)
	assert.True(t, s.ShippingSelected)

	s = Summarize(d("150"), paint25, nil, decimal.Zero)
	assertDec(t, "0", s.Discount)
	assertDec(t, "0", s.Shipping)
	assertDec(t, "150", s.Total)
	assert.Empty(t, s.PromoCode, "promo that does not apply is not reported")
	assert.False(t, s.ShippingSelected)
}

func TestSummarizeNeverNegative(t *testing.T) {
	s := Summarize(d("10"), &models.PromoCode{Type: models.DiscountFixed, Discount: d("10")}, nil, decimal.Zero)
	assertDec(t, "0", s.Total)
	assert.False(t, s.Total.IsNegative())
}

func TestSummarizeOversizedDiscountKeepsShippingAndTax(t *testing.T) {
	promo := &models.PromoCode{Code: "BIG", Type: models.DiscountFixed, Discount: d("500")}
	opt := &models.ShippingOption{ID: "standard", Price: d("9.99")}

	s := Summarize(d("40"), promo, opt, d("2.50"))

	assertDec(t, "40", s.Discount, "discount is clamped to the subtotal")
	assertDec(t, "9.99", s.Shipping)
	assertDec(t, "2.50", s.Tax)
	assertDec(t, "12.49", s.Total, "total is shipping plus tax")
	assert.True(t, s.Total.Equal(s.Shipping.Add(s.Tax)))
}

func TestQuoteIsDeterministic(t *testing.T) {
	calc := RegionalTax{Rates: map[string]decimal.Decimal{"CA": d("0.0725")}, Default: d("0.05")}
	addr := &models.Address{State: "ca"}
	promo := &models.PromoCode{Code: "WELCOME10", Type: models.DiscountPercentage, Discount: d("10"), MaxDiscount: dp("50")}
	opt := &models.ShippingOption{ID: "express", Price: d("19.99")}

	first := Quote(d("100"), promo, opt, addr, calc)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Quote(d("100"), promo, opt, addr, calc))
	}

	// 100 - 10 = 90 taxable at 7.25%
	assertDec(t, "6.53", first.Tax)
	assertDec(t, "116.52", first.Total)
}

func TestRegionalTax(t *testing.T) {
	calc := RegionalTax{Rates: map[string]decimal.Decimal{"OR": decimal.Zero, "NY": d("0.04")}, Default: d("0.05")}

	assertDec(t, "0", calc.Tax(d("100"), nil), "no address yet")
	assertDec(t, "0", calc.Tax(d("100"), &models.Address{State: "OR"}))
	assertDec(t, "4", calc.Tax(d("100"), &models.Address{State: " ny "}))
	assertDec(t, "5", calc.Tax(d("100"), &models.Address{State: "WA"}))
	assertDec(t, "0", calc.Tax(d("-5"), &models.Address{State: "WA"}))
	assertDec(t, "0", NoTax{}.Tax(d("100"), &models.Address{State: "WA"}))
}
