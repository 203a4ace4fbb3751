package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/paintstore-api/auth"
	"github.com/junaidrashid-git/paintstore-api/backendclient"
	"github.com/junaidrashid-git/paintstore-api/catalog"
	orderControllers "github.com/junaidrashid-git/paintstore-api/controllers/order"
	"github.com/junaidrashid-git/paintstore-api/jsondb"
	"github.com/junaidrashid-git/paintstore-api/order"
	"github.com/junaidrashid-git/paintstore-api/session"
	"go.uber.org/zap"
)

// StoreDeps is everything the storefront handlers need.
type StoreDeps struct {
	Sessions    *session.Manager
	Issuer      *auth.Issuer
	Catalog     *catalog.Catalog
	Orders      *order.Service
	OrdersDB    *jsondb.DB
	Hub         *orderControllers.Hub
	Backend     *backendclient.Client // optional
	AdminAPIKey string
	Logger      *zap.Logger
}

// SetupStoreRoutes is the single entry-point that wires up the storefront.
func SetupStoreRoutes(r *gin.Engine, d StoreDeps) {
	// 1️⃣ Public routes (no middleware)
	SetupSessionRoutes(r, d)
	SetupCatalogRoutes(r, d)

	// 2️⃣ Session routes (JWT-protected)
	SetupCartRoutes(r, d)
	SetupCheckoutRoutes(r, d)

	// 3️⃣ Order feed + admin (API-Key-protected)
	SetupOrderRoutes(r, d)
	SetupAdminRoutes(r, d)
}
