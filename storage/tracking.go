package storage

import (
	"context"

	"github.com/eucamart/eucamart-api/models"
)

// AddDeliveryTracking appends one event to an order's timeline. Insert-only.
func (s *Storage) AddDeliveryTracking(ctx context.Context, tracking *models.DeliveryTracking) error {
	return s.db.WithContext(ctx).Create(tracking).Error
}

// GetDeliveryTracking returns all events for an order, most recent first.
func (s *Storage) GetDeliveryTracking(ctx context.Context, orderID string) ([]models.DeliveryTracking, error) {
	var events []models.DeliveryTracking
	err := s.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("timestamp DESC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}
