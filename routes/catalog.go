package routes

import (
	productControllers "github.com/eucamart/eucamart-api/controllers/product"
	reviewControllers "github.com/eucamart/eucamart-api/controllers/review"
	"github.com/eucamart/eucamart-api/storage"
	"github.com/gin-gonic/gin"
)

func SetupCatalogRoutes(api *gin.RouterGroup, store *storage.Storage) {
	products := api.Group("/products")
	{
		products.GET("", productControllers.GetProducts(store))
		products.GET("/:id", productControllers.GetProductByID(store))
		products.POST("", productControllers.CreateProduct(store))
		products.PUT("/:id", productControllers.UpdateProduct(store))

		products.GET("/:id/reviews", reviewControllers.GetProductReviews(store))
	}

	api.POST("/reviews", reviewControllers.CreateReview(store))
}
