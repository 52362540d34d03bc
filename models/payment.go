package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentTransaction records one payment attempt against the external
// gateway; one row per attempt, linked to its order by a weak reference.
type PaymentTransaction struct {
	ID              string    `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID         string    `gorm:"not null;index" json:"order_id"`
	UserID          string    `gorm:"not null;index" json:"user_id"`
	PaymentIntentID string    `gorm:"index" json:"payment_intent_id"`
	Amount          float64   `gorm:"not null" json:"amount"`
	Currency        string    `gorm:"not null" json:"currency"`
	Status          string    `gorm:"not null" json:"status"`
	PaymentMethod   string    `json:"payment_method"`
	CreatedAt       time.Time `json:"created_at"`
}

func (pt *PaymentTransaction) BeforeCreate(tx *gorm.DB) error {
	if pt.ID == "" {
		pt.ID = uuid.NewString()
	}
	return nil
}
