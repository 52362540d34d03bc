package routes

import (
	cartControllers "github.com/eucamart/eucamart-api/controllers/cart"
	"github.com/eucamart/eucamart-api/storage"
	"github.com/gin-gonic/gin"
)

func SetupCartRoutes(api *gin.RouterGroup, store *storage.Storage) {
	cart := api.Group("/cart")
	{
		cart.GET("/:userId", cartControllers.GetCart(store))
		cart.POST("", cartControllers.AddToCart(store))
		cart.PUT("/:id", cartControllers.UpdateCartItem(store))
		cart.DELETE("/:id", cartControllers.RemoveCartItem(store))
		cart.DELETE("/user/:userId", cartControllers.ClearCart(store))
	}
}
