// Package order turns a session's cart and checkout into a placed order.
package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/junaidrashid-git/paintstore-api/jsondb"
	"github.com/junaidrashid-git/paintstore-api/models"
)

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrCheckoutIncomplete = errors.New("checkout is incomplete")
	ErrPaymentDeclined    = errors.New("payment declined")
)

// OrdersCollection is where RecordingPlacer keeps placed orders.
const OrdersCollection = "orders"

// Request is everything a Placer needs to place one order.
type Request struct {
	SessionID      string
	Items          []models.LineItem
	Shipping       models.Address
	Billing        models.Address
	ShippingOption models.ShippingOption
	Payment        models.PaymentMethod
	Summary        models.OrderSummary
}

// Placer captures payment and records an order.
type Placer interface {
	Place(ctx context.Context, req Request) (models.OrderConfirmation, error)
}

// DeclinedCardLast4 is the card ending RecordingPlacer always declines.
const DeclinedCardLast4 = "0002"

// RecordingPlacer simulates payment capture and appends confirmed orders to
// a jsondb collection.
type RecordingPlacer struct {
	db  *jsondb.DB
	now func() time.Time
}

func NewRecordingPlacer(db *jsondb.DB) *RecordingPlacer {
	return &RecordingPlacer{db: db, now: time.Now}
}

func (p *RecordingPlacer) Place(ctx context.Context, req Request) (models.OrderConfirmation, error) {
	if err := ctx.Err(); err != nil {
		return models.OrderConfirmation{}, err
	}
	if req.Payment.Type == models.PaymentTypeCard && req.Payment.Last4 == DeclinedCardLast4 {
		return models.OrderConfirmation{}, fmt.Errorf("%w: card ending %s", ErrPaymentDeclined, req.Payment.Last4)
	}

	now := p.now().UTC()
	conf := models.OrderConfirmation{
		OrderID:           generateOrderRef(now),
		Status:            models.OrderStatusConfirmed,
		PaymentStatus:     models.PaymentStatusPaid,
		Items:             req.Items,
		Summary:           req.Summary,
		ShippingAddress:   req.Shipping,
		BillingAddress:    req.Billing,
		ShippingOption:    req.ShippingOption,
		PaymentType:       req.Payment.Type,
		PromoCode:         req.Summary.PromoCode,
		EstimatedDelivery: EstimatedDelivery(now, req.ShippingOption.EstimatedDays),
		CreatedAt:         now,
	}

	err := jsondb.Update(p.db, OrdersCollection, func(orders []models.OrderConfirmation) ([]models.OrderConfirmation, error) {
		return append(orders, conf), nil
	})
	if err != nil {
		return models.OrderConfirmation{}, fmt.Errorf("record order: %w", err)
	}
	return conf, nil
}

// Orders lists every order recorded in db, newest first.
func Orders(db *jsondb.DB) ([]models.OrderConfirmation, error) {
	orders, err := jsondb.Read[models.OrderConfirmation](db, OrdersCollection)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(orders)-1; i < j; i, j = i+1, j-1 {
		orders[i], orders[j] = orders[j], orders[i]
	}
	return orders, nil
}

// EstimatedDelivery adds transit days to placed, skipping weekends.
func EstimatedDelivery(placed time.Time, days int) time.Time {
	d := placed
	for added := 0; added < days; {
		d = d.AddDate(0, 0, 1)
		if d.Weekday() != time.Saturday && d.Weekday() != time.Sunday {
			added++
		}
	}
	return d
}

// e.g. 20250908130500-<uuid4>
func generateOrderRef(now time.Time) string {
	return now.Format("20060102150405") + "-" + uuid.NewString()
}
