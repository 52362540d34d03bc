package config

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

type Config struct {
	Port            string
	DatabaseURL     string
	DB              DB
	StripeSecretKey string
	AdminAPIKey     string
	JWTSecret       string
}

type DB struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// Load reads configuration from the environment. Database settings and the
// JWT secret are required; the Stripe key is optional and its absence is
// reported by the payment path, not here.
func Load(log *zap.Logger) *Config {
	cfg := &Config{
		Port:            getEnvDefault("PORT", "8080"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		AdminAPIKey:     mustEnv("ADMIN_API_KEY", log),
		JWTSecret:       mustEnv("JWT_SECRET", log),
	}
	if cfg.DatabaseURL == "" {
		cfg.DB = DB{
			Host:     mustEnv("DB_HOST", log),
			Port:     getEnvDefault("DB_PORT", "5432"),
			User:     mustEnv("DB_USER", log),
			Password: mustEnv("DB_PASSWORD", log),
			Name:     mustEnv("DB_NAME", log),
			SSLMode:  getEnvDefault("DB_SSLMODE", "disable"),
		}
	}
	if cfg.StripeSecretKey == "" {
		log.Warn("STRIPE_SECRET_KEY not set, payment intents will be unavailable")
	}
	return cfg
}

// DSN returns the Postgres connection string, preferring DATABASE_URL.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DB.Host, c.DB.User, c.DB.Password, c.DB.Name, c.DB.Port, c.DB.SSLMode,
	)
}

func getEnvDefault(key, def string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return def
}

func mustEnv(key string, log *zap.Logger) string {
	val, exists := os.LookupEnv(key)
	if !exists {
		log.Error("required environment variable not set", zap.String("key", key))
		panic("missing required environment variable: " + key)
	}
	return val
}
