package store

import (
	"fmt"
	"strings"

	"github.com/junaidrashid-git/paintstore-api/models"
)

// CheckoutOp is one of the closed set of checkout mutations.
type CheckoutOp interface {
	validate() error
	apply(c *Checkout) error
}

type SetShippingAddressOp struct {
	Address        models.Address
	SameAsShipping bool
}

type SetBillingAddressOp struct {
	Address models.Address
}

type SetShippingOptionOp struct {
	Option models.ShippingOption
}

type SetPaymentMethodOp struct {
	Method models.PaymentMethod
}

// SetPromoCodeOp applies Code, or removes the current code when Code is nil.
type SetPromoCodeOp struct {
	Code *string
}

type NextStepOp struct{}

type PrevStepOp struct{}

type GoToStepOp struct {
	Step int
}

type ClearCheckoutOp struct{}

func (op SetShippingAddressOp) validate() error { return ValidateAddress(op.Address) }
func (op SetShippingAddressOp) apply(c *Checkout) error {
	c.SetShippingAddress(op.Address, op.SameAsShipping)
	return nil
}

func (op SetBillingAddressOp) validate() error { return ValidateAddress(op.Address) }
func (op SetBillingAddressOp) apply(c *Checkout) error {
	c.SetBillingAddress(op.Address)
	return nil
}

func (op SetShippingOptionOp) validate() error { return ValidateShippingOption(op.Option) }
func (op SetShippingOptionOp) apply(c *Checkout) error {
	c.SetShippingOption(op.Option)
	return nil
}

func (op SetPaymentMethodOp) validate() error { return ValidatePaymentMethod(op.Method) }
func (op SetPaymentMethodOp) apply(c *Checkout) error {
	c.SetPaymentMethod(op.Method)
	return nil
}

func (op SetPromoCodeOp) validate() error {
	if op.Code != nil && strings.TrimSpace(*op.Code) == "" {
		return fmt.Errorf("%w: promo code cannot be blank", ErrInvalidPromo)
	}
	return nil
}

func (op SetPromoCodeOp) apply(c *Checkout) error {
	c.SetPromoCode(op.Code)
	return nil
}

func (NextStepOp) validate() error { return nil }
func (NextStepOp) apply(c *Checkout) error {
	c.NextStep()
	return nil
}

func (PrevStepOp) validate() error { return nil }
func (PrevStepOp) apply(c *Checkout) error {
	c.PrevStep()
	return nil
}

func (op GoToStepOp) validate() error {
	if op.Step < 1 || op.Step > MaxStep {
		return fmt.Errorf("%w: %d is outside 1..%d", ErrInvalidStep, op.Step, MaxStep)
	}
	return nil
}

func (op GoToStepOp) apply(c *Checkout) error { return c.GoToStep(op.Step) }

func (ClearCheckoutOp) validate() error { return nil }
func (ClearCheckoutOp) apply(c *Checkout) error {
	c.ClearCheckoutData()
	return nil
}

// Apply validates op and applies it to the checkout.
func (c *Checkout) Apply(op CheckoutOp) error {
	if op == nil {
		return fmt.Errorf("%w: nil operation", ErrInvalidStep)
	}
	if err := op.validate(); err != nil {
		return err
	}
	return op.apply(c)
}
