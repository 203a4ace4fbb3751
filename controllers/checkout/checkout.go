package checkoutControllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/paintstore-api/backendclient"
	"github.com/junaidrashid-git/paintstore-api/catalog"
	"github.com/junaidrashid-git/paintstore-api/controllers/httperr"
	"github.com/junaidrashid-git/paintstore-api/models"
	"github.com/junaidrashid-git/paintstore-api/order"
	"github.com/junaidrashid-git/paintstore-api/pricing"
	"github.com/junaidrashid-git/paintstore-api/session"
	"github.com/junaidrashid-git/paintstore-api/store"
)

type ShippingAddressInput struct {
	Address        *models.Address `json:"address"`
	SavedAddressID string          `json:"savedAddressId"`
	SameAsShipping *bool           `json:"sameAsShipping"`
}

type ShippingOptionInput struct {
	ID string `json:"id" binding:"required"`
}

type PromoCodeInput struct {
	Code string `json:"code" binding:"required"`
}

// CheckoutView is the checkout state as returned to clients.
type CheckoutView struct {
	FormData                models.CheckoutFormData   `json:"formData"`
	EffectiveBillingAddress *models.Address           `json:"effectiveBillingAddress"`
	CurrentStep             int                       `json:"currentStep"`
	MaxStep                 int                       `json:"maxStep"`
	OrderData               *models.OrderConfirmation `json:"orderData"`
	LastOrder               *models.OrderConfirmation `json:"lastOrder"`
}

func NewCheckoutView(c *store.Checkout) CheckoutView {
	return CheckoutView{
		FormData:                c.FormData(),
		EffectiveBillingAddress: c.EffectiveBillingAddress(),
		CurrentStep:             c.CurrentStep(),
		MaxStep:                 store.MaxStep,
		OrderData:               c.OrderData(),
		LastOrder:               c.LastOrder(),
	}
}

// GET /checkout
func GetCheckout(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var view CheckoutView
		err := sessions.View(c.Request.Context(), c.GetString("session_id"), func(st *session.State) error {
			view = NewCheckoutView(st.Checkout)
			return nil
		})
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

// PUT /checkout/shipping-address
//
// Takes either an inline address or the id of an address saved on the
// caller's account. sameAsShipping defaults to true.
func SetShippingAddress(sessions *session.Manager, backend *backendclient.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ShippingAddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		sameAsShipping := true
		if input.SameAsShipping != nil {
			sameAsShipping = *input.SameAsShipping
		}

		var addr models.Address
		switch {
		case input.SavedAddressID != "":
			userID := c.GetString("user_id")
			if backend == nil || userID == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Saved addresses require a signed-in account"})
				return
			}
			saved, err := backend.FindAddress(c.Request.Context(), userID, input.SavedAddressID)
			if err != nil {
				httperr.Abort(c, err)
				return
			}
			addr = saved.Address
		case input.Address != nil:
			addr = *input.Address
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "address or savedAddressId is required"})
			return
		}

		applyCheckoutOp(c, sessions, store.SetShippingAddressOp{Address: addr, SameAsShipping: sameAsShipping})
	}
}

// PUT /checkout/billing-address
func SetBillingAddress(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var addr models.Address
		if err := c.ShouldBindJSON(&addr); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		applyCheckoutOp(c, sessions, store.SetBillingAddressOp{Address: addr})
	}
}

// PUT /checkout/shipping-option
func SetShippingOption(sessions *session.Manager, cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ShippingOptionInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		opt, err := cat.Shipping(input.ID)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		applyCheckoutOp(c, sessions, store.SetShippingOptionOp{Option: opt})
	}
}

// PUT /checkout/payment-method
func SetPaymentMethod(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var pm models.PaymentMethod
		if err := c.ShouldBindJSON(&pm); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		applyCheckoutOp(c, sessions, store.SetPaymentMethodOp{Method: pm})
	}
}

// PUT /checkout/promo-code
//
// Unknown, expired or used-up codes are rejected. A known code whose minimum
// order is not met is still recorded; the response says whether it applies.
func SetPromoCode(sessions *session.Manager, cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input PromoCodeInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		promo, err := cat.Promo(input.Code, time.Now())
		if err != nil {
			httperr.Abort(c, err)
			return
		}

		var view CheckoutView
		var applies bool
		err = sessions.With(c.Request.Context(), c.GetString("session_id"), func(st *session.State) error {
			code := promo.Code
			if err := st.Checkout.Apply(store.SetPromoCodeOp{Code: &code}); err != nil {
				return err
			}
			applies = pricing.Discount(st.Cart.TotalPrice(), &promo).IsPositive()
			view = NewCheckoutView(st.Checkout)
			return nil
		})
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"checkout": view, "promo": promo, "applies": applies})
	}
}

// DELETE /checkout/promo-code
func RemovePromoCode(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		applyCheckoutOp(c, sessions, store.SetPromoCodeOp{})
	}
}

// POST /checkout/next
func NextStep(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		applyCheckoutOp(c, sessions, store.NextStepOp{})
	}
}

// POST /checkout/prev
func PrevStep(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		applyCheckoutOp(c, sessions, store.PrevStepOp{})
	}
}

// POST /checkout/step/:step
func GoToStep(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		step, err := strconv.Atoi(c.Param("step"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid step"})
			return
		}
		applyCheckoutOp(c, sessions, store.GoToStepOp{Step: step})
	}
}

// DELETE /checkout
func ClearCheckout(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		applyCheckoutOp(c, sessions, store.ClearCheckoutOp{})
	}
}

// GET /checkout/summary
func GetSummary(sessions *session.Manager, orders *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var summary models.OrderSummary
		err := sessions.View(c.Request.Context(), c.GetString("session_id"), func(st *session.State) error {
			summary = orders.Quote(st.Cart, st.Checkout)
			return nil
		})
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}

// POST /checkout/place-order
func PlaceOrder(sessions *session.Manager, orders *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetString("session_id")
		var conf models.OrderConfirmation
		err := sessions.With(c.Request.Context(), sessionID, func(st *session.State) error {
			var err error
			conf, err = orders.Place(c.Request.Context(), sessionID, st.Cart, st.Checkout)
			return err
		})
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		c.JSON(http.StatusCreated, conf)
	}
}

func applyCheckoutOp(c *gin.Context, sessions *session.Manager, op store.CheckoutOp) {
	var view CheckoutView
	err := sessions.With(c.Request.Context(), c.GetString("session_id"), func(st *session.State) error {
		if err := st.Checkout.Apply(op); err != nil {
			return err
		}
		view = NewCheckoutView(st.Checkout)
		return nil
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
