package storage

import (
	"context"

	"github.com/eucamart/eucamart-api/models"
	"gorm.io/gorm"
)

// OrderDetail is an order with its delivery timeline attached.
type OrderDetail struct {
	models.Order
	DeliveryTracking []models.DeliveryTracking `json:"delivery_tracking"`
}

// CreateOrder persists the order header, its line items and the per-item
// stock decrements in a single transaction, so a failure partway leaves no
// partial state. Each item's total price snapshots unit price times quantity
// at order time. Stock decrements have no floor check.
func (s *Storage) CreateOrder(ctx context.Context, order *models.Order, items []models.OrderItem) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
			items[i].TotalPrice = items[i].UnitPrice * float64(items[i].Quantity)
			if err := tx.Omit("Product").Create(&items[i]).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Product{}).
				Where("id = ?", items[i].ProductID).
				UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", items[i].Quantity)).Error; err != nil {
				return err
			}
		}
		order.Items = items
		return nil
	})
}

// GetOrders lists orders newest first, items and product data preloaded.
// An empty userID lists every order (admin view).
func (s *Storage) GetOrders(ctx context.Context, userID string) ([]models.Order, error) {
	q := s.db.WithContext(ctx).Preload("Items").Preload("Items.Product")
	if userID != "" {
		q = q.Where("user_id = ?", userID)
	}
	var orders []models.Order
	if err := q.Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrder returns one order with line items and the tracking timeline.
func (s *Storage) GetOrder(ctx context.Context, id string) (*OrderDetail, error) {
	var order models.Order
	err := s.db.WithContext(ctx).Preload("Items").Preload("Items.Product").
		First(&order, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	tracking, err := s.GetDeliveryTracking(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: order, DeliveryTracking: tracking}, nil
}

// UpdateOrderStatus moves an order along the fulfilment chain. Backward or
// unknown transitions are rejected with ErrInvalidTransition.
func (s *Storage) UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) (*models.Order, error) {
	var order models.Order
	if err := s.db.WithContext(ctx).First(&order, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(status) {
		return nil, ErrInvalidTransition
	}
	if err := s.db.WithContext(ctx).Model(&order).Update("status", status).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *Storage) UpdateOrderPaymentStatus(ctx context.Context, id string, status models.PaymentStatus) (*models.Order, error) {
	var order models.Order
	if err := s.db.WithContext(ctx).First(&order, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&order).Update("payment_status", status).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// SetTrackingNumber attaches a shipment tracking number to an order.
func (s *Storage) SetTrackingNumber(ctx context.Context, id, trackingNumber string) (*models.Order, error) {
	var order models.Order
	if err := s.db.WithContext(ctx).First(&order, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&order).Update("tracking_number", trackingNumber).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// ConfirmPayment flips the order to paid/confirmed, marks the gateway
// transaction succeeded and appends the initial tracking event, all in one
// transaction. Confirming an already-paid order is a no-op regardless of how
// far fulfilment has progressed since: a replay never drags the status
// backwards and never appends a duplicate event.
func (s *Storage) ConfirmPayment(ctx context.Context, orderID, paymentIntentID string) (*models.Order, error) {
	var order models.Order
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&order, "id = ?", orderID).Error; err != nil {
			return err
		}
		if order.PaymentStatus == models.PaymentStatusPaid {
			return nil
		}
		newStatus := order.Status
		if order.Status.CanTransitionTo(models.OrderStatusConfirmed) {
			newStatus = models.OrderStatusConfirmed
		}
		if err := tx.Model(&order).Updates(map[string]interface{}{
			"payment_status": models.PaymentStatusPaid,
			"status":         newStatus,
		}).Error; err != nil {
			return err
		}
		order.PaymentStatus = models.PaymentStatusPaid
		order.Status = newStatus
		if paymentIntentID != "" {
			if err := tx.Model(&models.PaymentTransaction{}).
				Where("payment_intent_id = ?", paymentIntentID).
				Update("status", "succeeded").Error; err != nil {
				return err
			}
		}
		return tx.Create(&models.DeliveryTracking{
			OrderID:  order.ID,
			Status:   "Order Confirmed",
			Message:  "Your order has been confirmed and is being prepared for shipment.",
			Location: "Warehouse",
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}
