package store

import "errors"

var (
	ErrInvalidLineItem = errors.New("invalid line item")
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrInvalidPrice    = errors.New("invalid price")
	ErrInvalidStep     = errors.New("invalid checkout step")
	ErrInvalidAddress  = errors.New("invalid address")
	ErrInvalidPayment  = errors.New("invalid payment method")
	ErrInvalidOption   = errors.New("invalid shipping option")
	ErrInvalidPromo    = errors.New("invalid promo code")
)

// IsValidation reports whether err came from boundary validation.
func IsValidation(err error) bool {
	for _, target := range []error{
		ErrInvalidLineItem, ErrInvalidQuantity, ErrInvalidPrice, ErrInvalidStep,
		ErrInvalidAddress, ErrInvalidPayment, ErrInvalidOption, ErrInvalidPromo,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
