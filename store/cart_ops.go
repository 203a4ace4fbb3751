package store

import (
	"fmt"

	"github.com/junaidrashid-git/paintstore-api/models"
)

// CartOp is one of the closed set of cart mutations. Apply validates the
// operation before touching the cart.
type CartOp interface {
	validate() error
	apply(c *Cart)
}

type AddItemOp struct {
	Item models.LineItem
}

type RemoveItemOp struct {
	Key models.ItemKey
}

type UpdateQuantityOp struct {
	Key      models.ItemKey
	Quantity int
}

type ClearCartOp struct{}

type SetOpenOp struct {
	Open bool
}

func (op AddItemOp) validate() error { return ValidateLineItem(op.Item) }
func (op AddItemOp) apply(c *Cart) { c.AddItem(op.Item) }

func (op RemoveItemOp) validate() error { return ValidateKey(op.Key) }
func (op RemoveItemOp) apply(c *Cart) { c.RemoveItem(op.Key) }

// Quantities <= 0 are allowed and mean removal.
func (op UpdateQuantityOp) validate() error {
	if err := ValidateKey(op.Key); err != nil {
		return err
	}
	if op.Quantity > models.MaxQuantity {
		return fmt.Errorf("%w: quantity must be at most %d, got %d", ErrInvalidQuantity, models.MaxQuantity, op.Quantity)
	}
	return nil
}

func (op UpdateQuantityOp) apply(c *Cart) { c.UpdateQuantity(op.Key, op.Quantity) }

func (ClearCartOp) validate() error { return nil }
func (ClearCartOp) apply(c *Cart) { c.ClearCart() }

func (SetOpenOp) validate() error { return nil }
func (op SetOpenOp) apply(c *Cart) { c.SetIsOpen(op.Open) }

// Apply validates op and applies it. A validation failure leaves the cart
// unchanged.
func (c *Cart) Apply(op CartOp) error {
	if op == nil {
		return fmt.Errorf("%w: nil operation", ErrInvalidLineItem)
	}
	if err := op.validate(); err != nil {
		return err
	}
	op.apply(c)
	return nil
}
