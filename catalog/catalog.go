// Package catalog holds the promo code and shipping option lookup tables and
// the regional tax rates, loaded from YAML.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/junaidrashid-git/paintstore-api/models"
	"github.com/junaidrashid-git/paintstore-api/pricing"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownPromo          = errors.New("unknown promo code")
	ErrPromoExpired          = errors.New("promo code has expired")
	ErrPromoExhausted        = errors.New("promo code usage limit reached")
	ErrUnknownShippingOption = errors.New("unknown shipping option")
)

// File models the catalog YAML document.
type File struct {
	PromoCodes      []models.PromoCode         `yaml:"promo_codes"`
	ShippingOptions []models.ShippingOption    `yaml:"shipping_options"`
	TaxRates        map[string]decimal.Decimal `yaml:"tax_rates"`
	DefaultTaxRate  decimal.Decimal            `yaml:"default_tax_rate"`
}

// Catalog is safe for concurrent use. Lookups return copies; only Redeem
// changes promo state.
type Catalog struct {
	mu       sync.Mutex
	promos   map[string]*models.PromoCode
	shipping map[string]models.ShippingOption
	tax      pricing.RegionalTax
}

// New builds a catalog from a parsed file, rejecting duplicate or malformed
// entries.
func New(f File) (*Catalog, error) {
	c := &Catalog{
		promos:   make(map[string]*models.PromoCode, len(f.PromoCodes)),
		shipping: make(map[string]models.ShippingOption, len(f.ShippingOptions)),
		tax:      pricing.RegionalTax{Rates: map[string]decimal.Decimal{}, Default: f.DefaultTaxRate},
	}
	for i := range f.PromoCodes {
		p := f.PromoCodes[i]
		if p.Code == "" {
			return nil, fmt.Errorf("catalog: promo_codes[%d]: code is required", i)
		}
		if p.Type != models.DiscountPercentage && p.Type != models.DiscountFixed {
			return nil, fmt.Errorf("catalog: promo %q: unknown type %q", p.Code, p.Type)
		}
		if p.Discount.IsNegative() || (p.Type == models.DiscountPercentage && p.Discount.GreaterThan(decimal.NewFromInt(100))) {
			return nil, fmt.Errorf("catalog: promo %q: discount %s out of range", p.Code, p.Discount)
		}
		if _, dup := c.promos[p.Code]; dup {
			return nil, fmt.Errorf("catalog: duplicate promo code %q", p.Code)
		}
		c.promos[p.Code] = &p
	}
	for i, o := range f.ShippingOptions {
		if o.ID == "" {
			return nil, fmt.Errorf("catalog: shipping_options[%d]: id is required", i)
		}
		if o.Price.IsNegative() {
			return nil, fmt.Errorf("catalog: shipping option %q: negative price", o.ID)
		}
		if _, dup := c.shipping[o.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate shipping option %q", o.ID)
		}
		c.shipping[o.ID] = o
	}
	for state, rate := range f.TaxRates {
		c.tax.Rates[normalizeState(state)] = rate
	}
	return c, nil
}

// Load reads a catalog file. An empty path returns the built-in catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return New(Default())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("catalog: parse: %w", err)
	}
	return New(f)
}

// Promo looks up code as of now. Codes match exactly, case included.
func (c *Catalog) Promo(code string, now time.Time) (models.PromoCode, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.promos[code]
	if !ok {
		return models.PromoCode{}, fmt.Errorf("%w: %s", ErrUnknownPromo, code)
	}
	if p.ExpiryDate != nil && now.After(*p.ExpiryDate) {
		return models.PromoCode{}, fmt.Errorf("%w: %s", ErrPromoExpired, code)
	}
	if p.UsageLimit != nil && p.UsedCount >= *p.UsageLimit {
		return models.PromoCode{}, fmt.Errorf("%w: %s", ErrPromoExhausted, code)
	}
	return *p, nil
}

// Redeem records one use of code. It is the only place usage counters move.
func (c *Catalog) Redeem(code string, now time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.promos[code]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPromo, code)
	}
	if p.ExpiryDate != nil && now.After(*p.ExpiryDate) {
		return fmt.Errorf("%w: %s", ErrPromoExpired, code)
	}
	if p.UsageLimit != nil && p.UsedCount >= *p.UsageLimit {
		return fmt.Errorf("%w: %s", ErrPromoExhausted, code)
	}
	p.UsedCount++
	return nil
}

// Release gives back a use taken by Redeem when the order it was for failed.
func (c *Catalog) Release(code string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if p, ok := c.promos[code]; ok && p.UsedCount > 0 {
		p.UsedCount--
	}
}

func (c *Catalog) Shipping(id string) (models.ShippingOption, error) {
	o, ok := c.shipping[id]
	if !ok {
		return models.ShippingOption{}, fmt.Errorf("%w: %s", ErrUnknownShippingOption, id)
	}
	return o, nil
}

// ShippingOptions lists options cheapest first.
func (c *Catalog) ShippingOptions() []models.ShippingOption {
	out := make([]models.ShippingOption, 0, len(c.shipping))
	for _, o := range c.shipping {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Price.Equal(out[j].Price) {
			return out[i].Price.LessThan(out[j].Price)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (c *Catalog) PromoCodes() []models.PromoCode {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.PromoCode, 0, len(c.promos))
	for _, p := range c.promos {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// TaxCalculator returns the regional tax table as a pricing.TaxCalculator.
func (c *Catalog) TaxCalculator() pricing.TaxCalculator {
	return c.tax
}

func normalizeState(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
