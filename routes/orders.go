package routes

import (
	orderControllers "github.com/eucamart/eucamart-api/controllers/order"
	trackingControllers "github.com/eucamart/eucamart-api/controllers/tracking"
	"github.com/eucamart/eucamart-api/storage"
	"github.com/gin-gonic/gin"
)

func SetupOrderRoutes(api *gin.RouterGroup, store *storage.Storage) {
	orders := api.Group("/orders")
	{
		orders.POST("", orderControllers.PlaceOrder(store))
		orders.GET("", orderControllers.GetOrders(store))
		orders.GET("/:id", orderControllers.GetOrder(store))
		orders.PUT("/:id/status", orderControllers.UpdateOrderStatus(store))
		orders.PUT("/:id/tracking", orderControllers.AddTrackingNumber(store))

		// delivery timeline
		orders.GET("/:id/tracking", trackingControllers.GetDeliveryTracking(store))
		orders.POST("/:id/tracking", trackingControllers.AddDeliveryTracking(store))

		// realtime feed for the admin dashboard
		orders.GET("/ws", orderControllers.OrderFeed)
	}
}
