package trackingControllers

import (
	"errors"
	"net/http"

	"github.com/eucamart/eucamart-api/models"
	"github.com/eucamart/eucamart-api/storage"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AddTrackingEventInput struct {
	Status   string `json:"status" binding:"required"`
	Message  string `json:"message"`
	Location string `json:"location"`
}

// GET /api/orders/:id/tracking
func GetDeliveryTracking(store *storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		events, err := store.GetDeliveryTracking(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch delivery tracking"})
			return
		}
		c.JSON(http.StatusOK, events)
	}
}

// POST /api/orders/:id/tracking
func AddDeliveryTracking(store *storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddTrackingEventInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid tracking data", "errors": err.Error()})
			return
		}

		orderID := c.Param("id")
		if _, err := store.GetOrder(c.Request.Context(), orderID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to validate order"})
			return
		}

		event := models.DeliveryTracking{
			OrderID:  orderID,
			Status:   input.Status,
			Message:  input.Message,
			Location: input.Location,
		}
		if err := store.AddDeliveryTracking(c.Request.Context(), &event); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add delivery tracking"})
			return
		}
		c.JSON(http.StatusCreated, event)
	}
}
