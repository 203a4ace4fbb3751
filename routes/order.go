package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/junaidrashid-git/paintstore-api/controllers/order"
	"github.com/junaidrashid-git/paintstore-api/middleware"
)

func SetupOrderRoutes(r *gin.Engine, d StoreDeps) {
	orders := r.Group("/orders")
	{
		// websocket endpoint for real-time order updates
		orders.GET("/ws", d.Hub.ServeWS)
	}
}

// SetupAdminRoutes registers all “/admin/*” endpoints. Requires API-Key middleware.
func SetupAdminRoutes(r *gin.Engine, d StoreDeps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey(d.AdminAPIKey))
	{
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(d.OrdersDB))
			orderAdmin.GET("/export-excel", orderControllers.ExportOrdersToExcel(d.OrdersDB))
			orderAdmin.GET("/:orderID", orderControllers.GetOrderByIDHandler(d.OrdersDB))
			orderAdmin.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(d.OrdersDB, d.Logger))
		}
	}
}
