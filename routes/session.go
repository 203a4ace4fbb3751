package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/paintstore-api/auth"
	catalogControllers "github.com/junaidrashid-git/paintstore-api/controllers/catalog"
	"github.com/junaidrashid-git/paintstore-api/middleware"
)

func SetupSessionRoutes(r *gin.Engine, d StoreDeps) {
	r.POST("/session", auth.CreateGuestSession(d.Sessions, d.Issuer, d.Logger))
}

func SetupCatalogRoutes(r *gin.Engine, d StoreDeps) {
	catalogGroup := r.Group("/catalog")
	{
		catalogGroup.GET("/shipping-options", catalogControllers.GetShippingOptions(d.Catalog))
		catalogGroup.GET("/promo-codes/:code", catalogControllers.GetPromoCode(d.Catalog))
	}
}

// sessionGroup returns a group that requires a token naming a session.
func sessionGroup(r *gin.Engine, d StoreDeps, path string) *gin.RouterGroup {
	g := r.Group(path)
	g.Use(middleware.ValidateToken(d.Issuer), middleware.RequireSession)
	return g
}
