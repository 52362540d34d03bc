package orderControllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/eucamart/eucamart-api/models"
	"github.com/eucamart/eucamart-api/storage"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderInput struct {
	UserID      string   `json:"user_id" binding:"required"`
	TotalAmount *float64 `json:"total_amount" binding:"required,gte=0"`
}

type OrderItemInput struct {
	ProductID   string   `json:"product_id" binding:"required"`
	Quantity    int      `json:"quantity" binding:"required,min=1"`
	UnitPrice   *float64 `json:"unit_price" binding:"required,gte=0"`
	IsBulkOrder bool     `json:"is_bulk_order"`
}

type PlaceOrderRequest struct {
	Order      OrderInput       `json:"order" binding:"required"`
	OrderItems []OrderItemInput `json:"order_items" binding:"required,min=1,dive"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AddTrackingNumberRequest struct {
	TrackingNumber string `json:"tracking_number" binding:"required"`
}

// generateOrderNumber derives a human-facing order number from the low-order
// digits of the current timestamp. Not proven collision-free under
// concurrent checkout load; the unique constraint on order_number rejects
// the rare clash.
func generateOrderNumber() string {
	millis := fmt.Sprintf("%d", time.Now().UnixMilli())
	return "EUCA" + millis[len(millis)-8:]
}

// POST /api/orders
func PlaceOrder(store *storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order data", "errors": err.Error()})
			return
		}

		order := models.Order{
			OrderNumber:   generateOrderNumber(),
			UserID:        req.Order.UserID,
			Status:        models.OrderStatusPending,
			PaymentStatus: models.PaymentStatusPending,
			TotalAmount:   *req.Order.TotalAmount,
		}
		items := make([]models.OrderItem, 0, len(req.OrderItems))
		for _, item := range req.OrderItems {
			items = append(items, models.OrderItem{
				ProductID:   item.ProductID,
				Quantity:    item.Quantity,
				UnitPrice:   *item.UnitPrice,
				IsBulkOrder: item.IsBulkOrder,
			})
		}

		if err := store.CreateOrder(c.Request.Context(), &order, items); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create order"})
			return
		}

		broadcastNewOrder(order)
		c.JSON(http.StatusCreated, order)
	}
}

// GET /api/orders?userId=
func GetOrders(store *storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := store.GetOrders(c.Request.Context(), c.Query("userId"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /api/orders/:id
func GetOrder(store *storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := store.GetOrder(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// PUT /api/orders/:id/status
func UpdateOrderStatus(store *storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status data", "errors": err.Error()})
			return
		}
		status, err := models.ParseOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order status"})
			return
		}

		order, err := store.UpdateOrderStatus(c.Request.Context(), c.Param("id"), status)
		if err != nil {
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			case errors.Is(err, storage.ErrInvalidTransition):
				c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status transition"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update order status"})
			}
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// PUT /api/orders/:id/tracking
func AddTrackingNumber(store *storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddTrackingNumberRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid tracking data", "errors": err.Error()})
			return
		}

		order, err := store.SetTrackingNumber(c.Request.Context(), c.Param("id"), req.TrackingNumber)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add tracking number"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
