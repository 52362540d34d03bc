package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeliveryTracking rows are append-only; nothing ever mutates or deletes one.
type DeliveryTracking struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID   string    `gorm:"not null;index" json:"order_id"`
	Status    string    `gorm:"not null" json:"status"`
	Message   string    `json:"message"`
	Location  string    `json:"location"`
	Timestamp time.Time `json:"timestamp"`
}

func (dt *DeliveryTracking) BeforeCreate(tx *gorm.DB) error {
	if dt.ID == "" {
		dt.ID = uuid.NewString()
	}
	if dt.Timestamp.IsZero() {
		dt.Timestamp = time.Now()
	}
	return nil
}
