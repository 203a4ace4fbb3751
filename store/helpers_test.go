package store

import (
	"github.com/junaidrashid-git/paintstore-api/models"
	"github.com/shopspring/decimal"
)

func item(product, color, finish string, qty int, price string) models.LineItem {
	return models.LineItem{
		ProductID: product,
		ColorID:   color,
		FinishID:  finish,
		Name:      product + " " + color,
		Quantity:  qty,
		Price:     decimal.RequireFromString(price),
	}
}

func key(product, color, finish string) models.ItemKey {
	return models.ItemKey{ProductID: product, ColorID: color, FinishID: finish}
}

func address(name, state string) models.Address {
	return models.Address{
		Name:     name,
		Address1: "1 Main St",
		City:     "Springfield",
		State:    state,
		Zip:      "12345",
		Country:  "US",
	}
}
