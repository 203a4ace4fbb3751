package orderControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/paintstore-api/jsondb"
	"github.com/junaidrashid-git/paintstore-api/models"
	"github.com/junaidrashid-git/paintstore-api/order"
	"github.com/tealeg/xlsx"
	"go.uber.org/zap"
)

var errOrderNotFound = errors.New("order not found")

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Map string to OrderStatus
func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusConfirmed):
		return models.OrderStatusConfirmed, nil
	case string(models.OrderStatusShipped):
		return models.OrderStatusShipped, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

func GetAllOrdersHandler(db *jsondb.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := order.Orders(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

func GetOrderByIDHandler(db *jsondb.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("orderID")
		orders, err := order.Orders(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		for _, o := range orders {
			if o.OrderID == id {
				c.JSON(http.StatusOK, o)
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
	}
}

// Update order status
func UpdateOrderStatusHandler(db *jsondb.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		status, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var updated models.OrderConfirmation
		err = jsondb.Update(db, order.OrdersCollection, func(orders []models.OrderConfirmation) ([]models.OrderConfirmation, error) {
			for i := range orders {
				if orders[i].OrderID == orderID {
					orders[i].Status = status
					updated = orders[i]
					return orders, nil
				}
			}
			return nil, errOrderNotFound
		})
		if errors.Is(err, errOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		logger.Info("order status updated", zap.String("order_id", orderID), zap.String("status", string(status)))
		c.JSON(http.StatusOK, updated)
	}
}

func ExportOrdersToExcel(db *jsondb.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := order.Orders(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"OrderID", "Status", "PaymentStatus", "Items", "Subtotal", "Discount",
			"PromoCode", "Shipping", "Tax", "Total", "ShippingOption", "PaymentType",
			"ShipTo", "State", "EstimatedDelivery", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range orders {
			row := sheet.AddRow()

			items := 0
			for _, it := range o.Items {
				items += it.Quantity
			}

			row.AddCell().SetValue(o.OrderID)
			row.AddCell().SetValue(string(o.Status))
			row.AddCell().SetValue(string(o.PaymentStatus))
			row.AddCell().SetValue(items)
			row.AddCell().SetValue(o.Summary.Subtotal.StringFixed(2))
			row.AddCell().SetValue(o.Summary.Discount.StringFixed(2))
			row.AddCell().SetValue(o.PromoCode)
			row.AddCell().SetValue(o.Summary.Shipping.StringFixed(2))
			row.AddCell().SetValue(o.Summary.Tax.StringFixed(2))
			row.AddCell().SetValue(o.Summary.Total.StringFixed(2))
			row.AddCell().SetValue(o.ShippingOption.Name)
			row.AddCell().SetValue(string(o.PaymentType))
			row.AddCell().SetValue(o.ShippingAddress.Name)
			row.AddCell().SetValue(o.ShippingAddress.State)
			row.AddCell().SetValue(o.EstimatedDelivery.Format("2006-01-02"))
			row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
