package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ImageList stores an ordered list of image URLs as a JSON text column so the
// same schema works on Postgres and the in-memory test database.
type ImageList []string

func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		l = ImageList{}
	}
	return json.Marshal(l)
}

func (l *ImageList) Scan(value interface{}) error {
	if value == nil {
		*l = ImageList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("unsupported type for ImageList")
	}
}

type Product struct {
	ID              string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name            string    `gorm:"not null" json:"name"`
	Description     string    `json:"description"`
	Category        string    `gorm:"not null;index" json:"category"`
	Price           float64   `gorm:"not null" json:"price"`
	BulkPrice       float64   `json:"bulk_price"`
	MinBulkQuantity int       `json:"min_bulk_quantity"`
	StockQuantity   int       `json:"stock_quantity"`
	Unit            string    `gorm:"not null" json:"unit"`
	Images          ImageList `gorm:"type:text" json:"images"`
	// No column default: a bool zero value would be dropped in favor of the
	// default on insert, turning an explicitly inactive product active.
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
