package cartControllers

import (
	"errors"
	"net/http"

	"github.com/eucamart/eucamart-api/models"
	"github.com/eucamart/eucamart-api/storage"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AddCartItemInput struct {
	UserID      string `json:"user_id" binding:"required"`
	ProductID   string `json:"product_id" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required,min=1"`
	IsBulkOrder bool   `json:"is_bulk_order"`
}

type UpdateCartItemInput struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// GET /api/cart/:userId
func GetCart(store *storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := store.GetCartItems(c.Request.Context(), c.Param("userId"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// POST /api/cart
func AddToCart(store *storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddCartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid cart item data", "errors": err.Error()})
			return
		}

		// Reject adds for products that do not exist.
		if _, err := store.GetProduct(c.Request.Context(), input.ProductID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Product does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to validate product"})
			return
		}

		item, err := store.AddCartItem(c.Request.Context(), &models.CartItem{
			UserID:      input.UserID,
			ProductID:   input.ProductID,
			Quantity:    input.Quantity,
			IsBulkOrder: input.IsBulkOrder,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add to cart"})
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// PUT /api/cart/:id
// A quantity of zero or less removes the item.
func UpdateCartItem(store *storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateCartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid cart item data", "errors": err.Error()})
			return
		}

		item, err := store.UpdateCartItem(c.Request.Context(), c.Param("id"), *input.Quantity)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Cart item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update cart item"})
			return
		}
		if item == nil {
			c.Status(http.StatusNoContent)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// DELETE /api/cart/:id
// Removing an item that does not exist is a no-op success.
func RemoveCartItem(store *storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.RemoveCartItem(c.Request.Context(), c.Param("id")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to remove cart item"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// DELETE /api/cart/user/:userId
func ClearCart(store *storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.ClearCart(c.Request.Context(), c.Param("userId")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to clear cart"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
