package models

import "github.com/shopspring/decimal"

// MaxQuantity is the largest quantity a single line item may hold.
const MaxQuantity = 999

// LineItem is one purchasable product/color/finish configuration in a cart.
type LineItem struct {
	ProductID string          `json:"productId"`
	ColorID   string          `json:"colorId"`
	FinishID  string          `json:"finishId"`
	Name      string          `json:"name,omitempty"` // Display name, carried onto receipts
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"` // Unit price at add-time
}

// ItemKey is the identity triple of a line item.
type ItemKey struct {
	ProductID string `json:"productId"`
	ColorID   string `json:"colorId"`
	FinishID  string `json:"finishId"`
}

func (i LineItem) Key() ItemKey {
	return ItemKey{ProductID: i.ProductID, ColorID: i.ColorID, FinishID: i.FinishID}
}

// LineTotal is price * quantity.
func (i LineItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// CartSnapshot is the persisted shape of a cart.
type CartSnapshot struct {
	Items []LineItem `json:"items"`
}
