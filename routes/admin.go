package routes

import (
	adminControllers "github.com/eucamart/eucamart-api/controllers/admin"
	productControllers "github.com/eucamart/eucamart-api/controllers/product"
	"github.com/eucamart/eucamart-api/middleware"
	"github.com/eucamart/eucamart-api/storage"
	"github.com/gin-gonic/gin"
)

func SetupAdminRoutes(api *gin.RouterGroup, store *storage.Storage, apiKey string) {
	admin := api.Group("/admin", middleware.RequireAPIKey(apiKey))
	{
		admin.GET("/stats", adminControllers.GetStats(store))
		admin.POST("/seed", adminControllers.SeedProducts(store))
		admin.GET("/products/export", productControllers.ExportProductsToExcel(store))
	}
}
