package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CartItem is a transient per-user working-set row. The composite unique
// index closes the concurrent-add race: two simultaneous adds for the same
// (user, product, bulk) key cannot both insert.
type CartItem struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      string    `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"user_id"`
	ProductID   string    `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"product_id"`
	Product     Product   `gorm:"foreignKey:ProductID" json:"product"`
	Quantity    int       `gorm:"not null" json:"quantity"`
	IsBulkOrder bool      `gorm:"default:false;uniqueIndex:idx_cart_user_product" json:"is_bulk_order"`
	CreatedAt   time.Time `json:"created_at"`
}

func (ci *CartItem) BeforeCreate(tx *gorm.DB) error {
	if ci.ID == "" {
		ci.ID = uuid.NewString()
	}
	return nil
}
