package models

type PaymentType string

const (
	PaymentTypeCard         PaymentType = "card"
	PaymentTypePayPal       PaymentType = "paypal"
	PaymentTypeBankTransfer PaymentType = "bank_transfer"
)

// Address is used for both shipping and billing.
type Address struct {
	Name     string `json:"name"`
	Company  string `json:"company,omitempty"`
	Address1 string `json:"address1"`
	Address2 string `json:"address2,omitempty"`
	City     string `json:"city"`
	State    string `json:"state"`
	Zip      string `json:"zip"`
	Country  string `json:"country"`
	Phone    string `json:"phone,omitempty"`
}

type PaymentMethod struct {
	Type           PaymentType `json:"type"`
	CardholderName string      `json:"cardholderName,omitempty"`
	Last4          string      `json:"last4,omitempty"`
	Expiry         string      `json:"expiry,omitempty"` // MM/YY
}

// CheckoutFormData holds everything captured by the checkout wizard.
type CheckoutFormData struct {
	ShippingAddress *Address        `json:"shippingAddress"`
	BillingAddress  *Address        `json:"billingAddress"` // nil while SameAsShipping
	SameAsShipping  bool            `json:"sameAsShipping"`
	ShippingOption  *ShippingOption `json:"shippingOption"`
	PaymentMethod   *PaymentMethod  `json:"paymentMethod"`
	PromoCode       *string         `json:"promoCode"`
}

// CheckoutSnapshot is the persisted shape of checkout state.
type CheckoutSnapshot struct {
	FormData    CheckoutFormData   `json:"formData"`
	CurrentStep int                `json:"currentStep"`
	OrderData   *OrderConfirmation `json:"orderData"`
	LastOrder   *OrderConfirmation `json:"lastOrder,omitempty"`
}
