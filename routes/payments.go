package routes

import (
	paymentControllers "github.com/eucamart/eucamart-api/controllers/payment"
	"github.com/eucamart/eucamart-api/gateway"
	"github.com/eucamart/eucamart-api/storage"
	"github.com/gin-gonic/gin"
)

func SetupPaymentRoutes(api *gin.RouterGroup, store *storage.Storage, gw gateway.Gateway) {
	api.POST("/create-payment-intent", paymentControllers.CreatePaymentIntent(store, gw))
	api.POST("/confirm-payment", paymentControllers.ConfirmPayment(store))
	api.GET("/payments", paymentControllers.ListPayments(store))
}
