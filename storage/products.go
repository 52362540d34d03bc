package storage

import (
	"context"

	"github.com/eucamart/eucamart-api/models"
	"gorm.io/gorm"
)

// ListProducts returns active products, optionally filtered by exact
// category. Inactive products never appear.
func (s *Storage) ListProducts(ctx context.Context, category string) ([]models.Product, error) {
	q := s.db.WithContext(ctx).Where("is_active = ?", true)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var products []models.Product
	if err := q.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *Storage) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *Storage) CreateProduct(ctx context.Context, product *models.Product) error {
	return s.db.WithContext(ctx).Create(product).Error
}

func (s *Storage) UpdateProduct(ctx context.Context, id string, updates map[string]interface{}) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&product).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return &product, nil
}

// DecrementStock performs an unconditional atomic decrement. There is no
// floor check: stock can go negative under concurrent orders, preserving the
// observed oversell behavior.
func (s *Storage) DecrementStock(ctx context.Context, id string, quantity int) error {
	return s.db.WithContext(ctx).Model(&models.Product{}).
		Where("id = ?", id).
		UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", quantity)).Error
}
