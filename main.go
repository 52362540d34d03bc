package main

import (
	"os"
	"time"

	"github.com/eucamart/eucamart-api/config"
	"github.com/eucamart/eucamart-api/gateway"
	"github.com/eucamart/eucamart-api/routes"
	"github.com/eucamart/eucamart-api/storage"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()

	log := newLogger()
	defer log.Sync()

	cfg := config.Load(log)

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}

	store := storage.New(db)
	if err := store.AutoMigrate(); err != nil {
		log.Fatal("auto-migrate failed", zap.Error(err))
	}

	// Nil when STRIPE_SECRET_KEY is unset; the payment path reports the
	// missing configuration instead of crashing.
	gw := gateway.NewStripeClient(cfg.StripeSecretKey, log)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(r, store, gw, cfg)

	log.Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}

func newLogger() *zap.Logger {
	if os.Getenv("APP_ENV") == "production" {
		log, err := zap.NewProduction()
		if err != nil {
			panic(err)
		}
		return log
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	return log
}
