package routes

import (
	"github.com/eucamart/eucamart-api/config"
	"github.com/eucamart/eucamart-api/gateway"
	"github.com/eucamart/eucamart-api/storage"
	"github.com/gin-gonic/gin"
)

// SetupRoutes is the single entry point that wires every route group.
func SetupRoutes(r *gin.Engine, store *storage.Storage, gw gateway.Gateway, cfg *config.Config) {
	api := r.Group("/api")

	SetupCatalogRoutes(api, store)
	SetupCartRoutes(api, store)
	SetupOrderRoutes(api, store)
	SetupPaymentRoutes(api, store, gw)
	SetupUserRoutes(api, store, cfg.JWTSecret)
	SetupAdminRoutes(api, store, cfg.AdminAPIKey)
}
