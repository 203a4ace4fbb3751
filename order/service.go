package order

import (
	"context"
	"fmt"
	"time"

	"github.com/junaidrashid-git/paintstore-api/catalog"
	"github.com/junaidrashid-git/paintstore-api/models"
	"github.com/junaidrashid-git/paintstore-api/pricing"
	"github.com/junaidrashid-git/paintstore-api/store"
	"go.uber.org/zap"
)

// Notifier is told about every placed order.
type Notifier interface {
	Publish(models.OrderConfirmation)
}

type Service struct {
	catalog  *catalog.Catalog
	placer   Placer
	notifier Notifier
	logger   *zap.Logger
	now      func() time.Time
}

// NewService wires order placement. notifier may be nil.
func NewService(cat *catalog.Catalog, placer Placer, notifier Notifier, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{catalog: cat, placer: placer, notifier: notifier, logger: logger, now: time.Now}
}

// Quote prices the cart against the checkout's current selections. A promo
// code that no longer resolves (expired, used up) simply stops discounting.
func (s *Service) Quote(cart *store.Cart, checkout *store.Checkout) models.OrderSummary {
	form := checkout.FormData()
	var promo *models.PromoCode
	if form.PromoCode != nil {
		if p, err := s.catalog.Promo(*form.PromoCode, s.now()); err == nil {
			promo = &p
		}
	}
	return pricing.Quote(cart.TotalPrice(), promo, form.ShippingOption, form.ShippingAddress, s.catalog.TaxCalculator())
}

// Place places an order for the session. On success the order data is
// recorded on the checkout, then the checkout and cart are cleared; the
// confirmation stays available as the checkout's last order. On any
// failure both stores are left exactly as they were.
func (s *Service) Place(ctx context.Context, sessionID string, cart *store.Cart, checkout *store.Checkout) (models.OrderConfirmation, error) {
	if cart.IsEmpty() {
		return models.OrderConfirmation{}, ErrEmptyCart
	}
	form := checkout.FormData()
	billing := checkout.EffectiveBillingAddress()
	switch {
	case form.ShippingAddress == nil:
		return models.OrderConfirmation{}, fmt.Errorf("%w: shipping address is required", ErrCheckoutIncomplete)
	case billing == nil:
		return models.OrderConfirmation{}, fmt.Errorf("%w: billing address is required", ErrCheckoutIncomplete)
	case form.ShippingOption == nil:
		return models.OrderConfirmation{}, fmt.Errorf("%w: shipping option is required", ErrCheckoutIncomplete)
	case form.PaymentMethod == nil:
		return models.OrderConfirmation{}, fmt.Errorf("%w: payment method is required", ErrCheckoutIncomplete)
	}

	now := s.now()
	var promo *models.PromoCode
	if form.PromoCode != nil {
		p, err := s.catalog.Promo(*form.PromoCode, now)
		if err != nil {
			return models.OrderConfirmation{}, err
		}
		promo = &p
	}
	summary := pricing.Quote(cart.TotalPrice(), promo, form.ShippingOption, form.ShippingAddress, s.catalog.TaxCalculator())

	if summary.PromoCode != "" {
		if err := s.catalog.Redeem(summary.PromoCode, now); err != nil {
			return models.OrderConfirmation{}, err
		}
	}

	conf, err := s.placer.Place(ctx, Request{
		SessionID:      sessionID,
		Items:          cart.Items(),
		Shipping:       *form.ShippingAddress,
		Billing:        *billing,
		ShippingOption: *form.ShippingOption,
		Payment:        *form.PaymentMethod,
		Summary:        summary,
	})
	if err != nil {
		if summary.PromoCode != "" {
			s.catalog.Release(summary.PromoCode)
		}
		s.logger.Warn("order placement failed", zap.String("session_id", sessionID), zap.Error(err))
		return models.OrderConfirmation{}, fmt.Errorf("place order: %w", err)
	}

	checkout.SetOrderData(conf)
	checkout.ClearCheckoutData()
	cart.ClearCart()

	s.logger.Info("order placed",
		zap.String("session_id", sessionID),
		zap.String("order_id", conf.OrderID),
		zap.String("total", conf.Summary.Total.StringFixed(2)),
	)
	if s.notifier != nil {
		s.notifier.Publish(conf)
	}
	return conf, nil
}
