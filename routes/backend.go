package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/paintstore-api/auth"
	accountControllers "github.com/junaidrashid-git/paintstore-api/controllers/account"
	resourceControllers "github.com/junaidrashid-git/paintstore-api/controllers/resource"
	"github.com/junaidrashid-git/paintstore-api/jsondb"
	"go.uber.org/zap"
)

// SetupBackendRoutes wires the mock account backend served from a JSON file.
func SetupBackendRoutes(r *gin.Engine, db *jsondb.DB, issuer *auth.Issuer, logger *zap.Logger) {
	r.POST("/register", auth.Register(db, issuer, logger))
	r.POST("/login", auth.Login(db, issuer, logger))

	addresses := r.Group("/account/addresses")
	{
		addresses.GET("", accountControllers.ListAddresses(db))
		addresses.POST("", accountControllers.CreateAddress(db, logger))
		addresses.PUT("/:id", accountControllers.UpdateAddress(db, logger))
		addresses.DELETE("/:id", accountControllers.DeleteAddress(db, logger))
	}

	// Any other top-level collection in the file.
	r.GET("/:resource", resourceControllers.GetResource(db))
}
