package store

import (
	"fmt"
	"sort"
	"strings"

	"github.com/junaidrashid-git/paintstore-api/models"
)

// ValidateKey checks that every part of the identity triple is present.
func ValidateKey(key models.ItemKey) error {
	switch {
	case strings.TrimSpace(key.ProductID) == "":
		return fmt.Errorf("%w: productId is required", ErrInvalidLineItem)
	case strings.TrimSpace(key.ColorID) == "":
		return fmt.Errorf("%w: colorId is required", ErrInvalidLineItem)
	case strings.TrimSpace(key.FinishID) == "":
		return fmt.Errorf("%w: finishId is required", ErrInvalidLineItem)
	}
	return nil
}

// ValidateLineItem enforces the line item invariants before an add.
func ValidateLineItem(item models.LineItem) error {
	if err := ValidateKey(item.Key()); err != nil {
		return err
	}
	if item.Quantity < 1 || item.Quantity > models.MaxQuantity {
		return fmt.Errorf("%w: quantity must be between 1 and %d, got %d", ErrInvalidQuantity, models.MaxQuantity, item.Quantity)
	}
	if !item.Price.IsPositive() {
		return fmt.Errorf("%w: price must be greater than zero", ErrInvalidPrice)
	}
	return nil
}

func ValidateAddress(addr models.Address) error {
	missing := []string{}
	for field, value := range map[string]string{
		"name":     addr.Name,
		"address1": addr.Address1,
		"city":     addr.City,
		"state":    addr.State,
		"zip":      addr.Zip,
		"country":  addr.Country,
	} {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("%w: missing %s", ErrInvalidAddress, strings.Join(missing, ", "))
	}
	return nil
}

func ValidatePaymentMethod(pm models.PaymentMethod) error {
	switch pm.Type {
	case models.PaymentTypeCard:
		if strings.TrimSpace(pm.CardholderName) == "" {
			return fmt.Errorf("%w: cardholderName is required for card payments", ErrInvalidPayment)
		}
		if len(pm.Last4) != 4 || strings.Trim(pm.Last4, "0123456789") != "" {
			return fmt.Errorf("%w: last4 must be four digits", ErrInvalidPayment)
		}
	case models.PaymentTypePayPal, models.PaymentTypeBankTransfer:
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidPayment, pm.Type)
	}
	return nil
}

func ValidateShippingOption(opt models.ShippingOption) error {
	if strings.TrimSpace(opt.ID) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidOption)
	}
	if opt.Price.IsNegative() {
		return fmt.Errorf("%w: price cannot be negative", ErrInvalidOption)
	}
	return nil
}
