package storage

import (
	"context"

	"github.com/eucamart/eucamart-api/models"
)

func (s *Storage) CreatePaymentTransaction(ctx context.Context, txn *models.PaymentTransaction) error {
	return s.db.WithContext(ctx).Create(txn).Error
}

// UpdatePaymentTransactionStatus updates every attempt recorded under the
// given gateway intent id.
func (s *Storage) UpdatePaymentTransactionStatus(ctx context.Context, paymentIntentID, status string) error {
	return s.db.WithContext(ctx).Model(&models.PaymentTransaction{}).
		Where("payment_intent_id = ?", paymentIntentID).
		Update("status", status).Error
}

// ListPaymentTransactions lists payment attempts newest first, optionally
// scoped to one user.
func (s *Storage) ListPaymentTransactions(ctx context.Context, userID string) ([]models.PaymentTransaction, error) {
	q := s.db.WithContext(ctx).Model(&models.PaymentTransaction{})
	if userID != "" {
		q = q.Where("user_id = ?", userID)
	}
	var txns []models.PaymentTransaction
	if err := q.Order("created_at DESC").Find(&txns).Error; err != nil {
		return nil, err
	}
	return txns, nil
}
