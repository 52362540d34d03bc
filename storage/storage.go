package storage

import (
	"errors"

	"github.com/eucamart/eucamart-api/models"
	"gorm.io/gorm"
)

var (
	// ErrInvalidTransition is returned when an order status update would move
	// backwards along the fulfilment chain or name an unknown status.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Storage wraps the process-wide GORM handle. It is constructed once at
// startup and injected into handlers.
type Storage struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Storage {
	return &Storage{db: db}
}

// AutoMigrate creates or updates the schema for every model.
func (s *Storage) AutoMigrate() error {
	return s.db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.DeliveryTracking{},
		&models.PaymentTransaction{},
		&models.Review{},
	)
}
