package storage

import (
	"context"

	"github.com/eucamart/eucamart-api/models"
)

// ProductReview is a review enriched with the reviewer's name.
type ProductReview struct {
	models.Review
	ReviewerFirstName string `json:"reviewer_first_name"`
	ReviewerLastName  string `json:"reviewer_last_name"`
}

// UserReview is a review enriched with the reviewed product's name.
type UserReview struct {
	models.Review
	ProductName string `json:"product_name"`
}

func (s *Storage) CreateReview(ctx context.Context, review *models.Review) error {
	return s.db.WithContext(ctx).Create(review).Error
}

func (s *Storage) GetProductReviews(ctx context.Context, productID string) ([]ProductReview, error) {
	var out []ProductReview
	err := s.db.WithContext(ctx).Table("reviews").
		Select("reviews.*, users.first_name AS reviewer_first_name, users.last_name AS reviewer_last_name").
		Joins("JOIN users ON users.id = reviews.user_id").
		Where("reviews.product_id = ?", productID).
		Order("reviews.created_at DESC").
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Storage) GetUserReviews(ctx context.Context, userID string) ([]UserReview, error) {
	var out []UserReview
	err := s.db.WithContext(ctx).Table("reviews").
		Select("reviews.*, products.name AS product_name").
		Joins("JOIN products ON products.id = reviews.product_id").
		Where("reviews.user_id = ?", userID).
		Order("reviews.created_at DESC").
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
