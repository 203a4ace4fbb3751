package routes

import (
	"github.com/gin-gonic/gin"
	checkoutControllers "github.com/junaidrashid-git/paintstore-api/controllers/checkout"
)

func SetupCheckoutRoutes(r *gin.Engine, d StoreDeps) {
	checkout := sessionGroup(r, d, "/checkout")
	{
		checkout.GET("", checkoutControllers.GetCheckout(d.Sessions))
		checkout.DELETE("", checkoutControllers.ClearCheckout(d.Sessions))

		// ─────────── Form data ───────────
		checkout.PUT("/shipping-address", checkoutControllers.SetShippingAddress(d.Sessions, d.Backend))
		checkout.PUT("/billing-address", checkoutControllers.SetBillingAddress(d.Sessions))
		checkout.PUT("/shipping-option", checkoutControllers.SetShippingOption(d.Sessions, d.Catalog))
		checkout.PUT("/payment-method", checkoutControllers.SetPaymentMethod(d.Sessions))
		checkout.PUT("/promo-code", checkoutControllers.SetPromoCode(d.Sessions, d.Catalog))
		checkout.DELETE("/promo-code", checkoutControllers.RemovePromoCode(d.Sessions))

		// ─────────── Steps ───────────
		checkout.POST("/next", checkoutControllers.NextStep(d.Sessions))
		checkout.POST("/prev", checkoutControllers.PrevStep(d.Sessions))
		checkout.POST("/step/:step", checkoutControllers.GoToStep(d.Sessions))

		// ─────────── Summary & placement ───────────
		checkout.GET("/summary", checkoutControllers.GetSummary(d.Sessions, d.Orders))
		checkout.POST("/place-order", checkoutControllers.PlaceOrder(d.Sessions, d.Orders))
	}
}
