package pricing

import (
	"strings"

	"github.com/junaidrashid-git/paintstore-api/models"
	"github.com/shopspring/decimal"
)

// TaxCalculator prices tax for a taxable amount shipped to addr.
type TaxCalculator interface {
	Tax(taxable decimal.Decimal, addr *models.Address) decimal.Decimal
}

// RegionalTax applies a flat rate per state (keyed by upper-cased state code),
// falling back to Default. Rates are fractions: 0.0825 is 8.25%.
type RegionalTax struct {
	Rates   map[string]decimal.Decimal
	Default decimal.Decimal
}

// Tax is zero until a destination is known.
func (r RegionalTax) Tax(taxable decimal.Decimal, addr *models.Address) decimal.Decimal {
	if addr == nil || !taxable.IsPositive() {
		return decimal.Zero
	}
	rate, ok := r.Rates[strings.ToUpper(strings.TrimSpace(addr.State))]
	if !ok {
		rate = r.Default
	}
	return taxable.Mul(rate).Round(2)
}

// NoTax is a TaxCalculator that always returns zero.
type NoTax struct{}

func (NoTax) Tax(decimal.Decimal, *models.Address) decimal.Decimal { return decimal.Zero }
