package reviewControllers

import (
	"net/http"

	"github.com/eucamart/eucamart-api/models"
	"github.com/eucamart/eucamart-api/storage"
	"github.com/gin-gonic/gin"
)

type CreateReviewInput struct {
	UserID    string `json:"user_id" binding:"required"`
	ProductID string `json:"product_id" binding:"required"`
	OrderID   string `json:"order_id"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Title     string `json:"title"`
	Comment   string `json:"comment"`
}

// POST /api/reviews
func CreateReview(store *storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid review data", "errors": err.Error()})
			return
		}

		review := models.Review{
			UserID:             input.UserID,
			ProductID:          input.ProductID,
			OrderID:            input.OrderID,
			Rating:             input.Rating,
			Title:              input.Title,
			Comment:            input.Comment,
			IsVerifiedPurchase: input.OrderID != "",
		}
		if err := store.CreateReview(c.Request.Context(), &review); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create review"})
			return
		}
		c.JSON(http.StatusCreated, review)
	}
}

// GET /api/products/:id/reviews
func GetProductReviews(store *storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		reviews, err := store.GetProductReviews(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch reviews"})
			return
		}
		c.JSON(http.StatusOK, reviews)
	}
}

// GET /api/users/:id/reviews
func GetUserReviews(store *storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		reviews, err := store.GetUserReviews(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch user reviews"})
			return
		}
		c.JSON(http.StatusOK, reviews)
	}
}
