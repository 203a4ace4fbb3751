package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/junaidrashid-git/paintstore-api/controllers/cart"
)

func SetupCartRoutes(r *gin.Engine, d StoreDeps) {
	cart := sessionGroup(r, d, "/cart")
	{
		cart.GET("", cartControllers.GetCart(d.Sessions))
		cart.DELETE("", cartControllers.ClearCart(d.Sessions))
		cart.PUT("/open", cartControllers.SetCartOpen(d.Sessions))

		cart.POST("/items", cartControllers.AddCartItem(d.Sessions))
		cart.PATCH("/items", cartControllers.UpdateCartItem(d.Sessions))
		cart.DELETE("/items", cartControllers.DeleteCartItem(d.Sessions))
	}
}
