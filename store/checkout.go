package store

import (
	"fmt"

	"github.com/junaidrashid-git/paintstore-api/models"
)

// Checkout wizard steps.
const (
	StepAddress  = 1
	StepShipping = 2
	StepPayment  = 3
	StepReview   = 4

	MaxStep = StepReview
)

// Checkout is the multi-step checkout wizard state for one session.
//
// NextStep and PrevStep clamp at [1, MaxStep]. GoToStep rejects targets
// outside that range. Nothing here gates progression on completed data; that
// belongs to the caller.
type Checkout struct {
	form        models.CheckoutFormData
	currentStep int
	orderData   *models.OrderConfirmation
	// lastOrder survives ClearCheckoutData so a finished checkout can still
	// show its confirmation.
	lastOrder *models.OrderConfirmation
}

func NewCheckout() *Checkout {
	c := &Checkout{}
	c.ClearCheckoutData()
	return c
}

// SetShippingAddress stores addr. With sameAsShipping the billing address
// mirrors shipping and no separate copy is kept; without it, any billing
// address already supplied is left alone.
func (c *Checkout) SetShippingAddress(addr models.Address, sameAsShipping bool) {
	c.form.ShippingAddress = &addr
	c.form.SameAsShipping = sameAsShipping
	if sameAsShipping {
		c.form.BillingAddress = nil
	}
}

// SetBillingAddress stores a distinct billing address and turns off mirroring.
func (c *Checkout) SetBillingAddress(addr models.Address) {
	c.form.BillingAddress = &addr
	c.form.SameAsShipping = false
}

// EffectiveBillingAddress resolves the billing address, following the
// shipping address while mirrored. It returns nil if nothing applies yet.
func (c *Checkout) EffectiveBillingAddress() *models.Address {
	if c.form.SameAsShipping {
		return copyAddress(c.form.ShippingAddress)
	}
	return copyAddress(c.form.BillingAddress)
}

func (c *Checkout) SetShippingOption(opt models.ShippingOption) {
	c.form.ShippingOption = &opt
}

func (c *Checkout) SetPaymentMethod(pm models.PaymentMethod) {
	c.form.PaymentMethod = &pm
}

// SetPromoCode records code; nil removes any applied code.
func (c *Checkout) SetPromoCode(code *string) {
	if code == nil {
		c.form.PromoCode = nil
		return
	}
	v := *code
	c.form.PromoCode = &v
}

func (c *Checkout) NextStep() {
	if c.currentStep < MaxStep {
		c.currentStep++
	}
}

func (c *Checkout) PrevStep() {
	if c.currentStep > 1 {
		c.currentStep--
	}
}

// GoToStep jumps to step n without discarding data captured in other steps.
func (c *Checkout) GoToStep(n int) error {
	if n < 1 || n > MaxStep {
		return fmt.Errorf("%w: %d is outside 1..%d", ErrInvalidStep, n, MaxStep)
	}
	c.currentStep = n
	return nil
}

// SetOrderData records the confirmation of a placed order, both as the
// current order data and as the session's last order.
func (c *Checkout) SetOrderData(data models.OrderConfirmation) {
	c.orderData = &data
	last := data
	c.lastOrder = &last
}

// ClearCheckoutData resets the form, step and order data to the initial
// defaults. The last placed order is kept.
func (c *Checkout) ClearCheckoutData() {
	c.form = models.CheckoutFormData{SameAsShipping: true}
	c.currentStep = 1
	c.orderData = nil
}

func (c *Checkout) CurrentStep() int {
	return c.currentStep
}

// FormData returns a deep copy of the captured form data.
func (c *Checkout) FormData() models.CheckoutFormData {
	f := c.form
	f.ShippingAddress = copyAddress(f.ShippingAddress)
	f.BillingAddress = copyAddress(f.BillingAddress)
	if f.ShippingOption != nil {
		opt := *f.ShippingOption
		f.ShippingOption = &opt
	}
	if f.PaymentMethod != nil {
		pm := *f.PaymentMethod
		f.PaymentMethod = &pm
	}
	if f.PromoCode != nil {
		code := *f.PromoCode
		f.PromoCode = &code
	}
	return f
}

func (c *Checkout) OrderData() *models.OrderConfirmation {
	if c.orderData == nil {
		return nil
	}
	data := *c.orderData
	return &data
}

func (c *Checkout) LastOrder() *models.OrderConfirmation {
	if c.lastOrder == nil {
		return nil
	}
	data := *c.lastOrder
	return &data
}

func (c *Checkout) Snapshot() models.CheckoutSnapshot {
	return models.CheckoutSnapshot{
		FormData:    c.FormData(),
		CurrentStep: c.currentStep,
		OrderData:   c.OrderData(),
		LastOrder:   c.LastOrder(),
	}
}

// Restore loads a persisted snapshot. An out-of-range step is clamped so a
// stale snapshot cannot leave the wizard in an impossible position.
func (c *Checkout) Restore(snap models.CheckoutSnapshot) {
	c.form = snap.FormData
	if c.form.SameAsShipping {
		c.form.BillingAddress = nil
	}
	c.currentStep = snap.CurrentStep
	if c.currentStep < 1 {
		c.currentStep = 1
	}
	if c.currentStep > MaxStep {
		c.currentStep = MaxStep
	}
	c.orderData = snap.OrderData
	c.lastOrder = snap.LastOrder
}

func copyAddress(a *models.Address) *models.Address {
	if a == nil {
		return nil
	}
	cp := *a
	return &cp
}
