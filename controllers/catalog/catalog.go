package catalogControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/paintstore-api/catalog"
	"github.com/junaidrashid-git/paintstore-api/controllers/httperr"
)

// GET /catalog/shipping-options
func GetShippingOptions(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cat.ShippingOptions())
	}
}

// GET /catalog/promo-codes/:code
func GetPromoCode(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		promo, err := cat.Promo(c.Param("code"), time.Now())
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, promo)
	}
}
