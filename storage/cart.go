package storage

import (
	"context"
	"errors"

	"github.com/eucamart/eucamart-api/models"
	"gorm.io/gorm"
)

// GetCartItems returns the user's cart rows with product data preloaded.
func (s *Storage) GetCartItems(ctx context.Context, userID string) ([]models.CartItem, error) {
	var items []models.CartItem
	err := s.db.WithContext(ctx).Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// AddCartItem inserts a cart row, or merges quantities when a row for the
// same (user, product, bulk) key already exists. The lookup and the merge run
// in one transaction; together with the unique index this keeps the
// at-most-one-row invariant under concurrent adds.
func (s *Storage) AddCartItem(ctx context.Context, item *models.CartItem) (*models.CartItem, error) {
	var result *models.CartItem
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.CartItem
		err := tx.Where("user_id = ? AND product_id = ? AND is_bulk_order = ?",
			item.UserID, item.ProductID, item.IsBulkOrder).
			First(&existing).Error
		if err == nil {
			if err := tx.Model(&existing).
				UpdateColumn("quantity", gorm.Expr("quantity + ?", item.Quantity)).Error; err != nil {
				return err
			}
			existing.Quantity += item.Quantity
			result = &existing
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := tx.Create(item).Error; err != nil {
			return err
		}
		result = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateCartItem overwrites the quantity of a cart row. A quantity of zero or
// less removes the row: no row with quantity <= 0 ever persists.
func (s *Storage) UpdateCartItem(ctx context.Context, id string, quantity int) (*models.CartItem, error) {
	var item models.CartItem
	if err := s.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if quantity <= 0 {
		if err := s.db.WithContext(ctx).Delete(&item).Error; err != nil {
			return nil, err
		}
		return nil, nil
	}
	if err := s.db.WithContext(ctx).Model(&item).Update("quantity", quantity).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// RemoveCartItem deletes a cart row. Deleting a row that does not exist is a
// no-op success.
func (s *Storage) RemoveCartItem(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Delete(&models.CartItem{}, "id = ?", id).Error
}

// ClearCart deletes every cart row for a user.
func (s *Storage) ClearCart(ctx context.Context, userID string) error {
	return s.db.WithContext(ctx).Delete(&models.CartItem{}, "user_id = ?", userID).Error
}
