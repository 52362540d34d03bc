package routes

import (
	authControllers "github.com/eucamart/eucamart-api/controllers/auth"
	reviewControllers "github.com/eucamart/eucamart-api/controllers/review"
	userControllers "github.com/eucamart/eucamart-api/controllers/user"
	"github.com/eucamart/eucamart-api/middleware"
	"github.com/eucamart/eucamart-api/storage"
	"github.com/gin-gonic/gin"
)

func SetupUserRoutes(api *gin.RouterGroup, store *storage.Storage, jwtSecret string) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", authControllers.Register(store, jwtSecret))
		auth.POST("/login", authControllers.Login(store, jwtSecret))
	}

	users := api.Group("/users")
	{
		users.GET("/:id", userControllers.GetUser(store))
		users.POST("", userControllers.CreateUser(store))
		users.PUT("/:id", userControllers.UpdateUser(store))

		users.GET("/:id/reviews", reviewControllers.GetUserReviews(store))
	}

	me := api.Group("/me", middleware.RequireAuth(jwtSecret))
	{
		me.GET("", userControllers.GetMe(store))
		me.PUT("", userControllers.UpdateMe(store))
	}
}
