package productControllers

import (
	"errors"
	"net/http"

	"github.com/eucamart/eucamart-api/models"
	"github.com/eucamart/eucamart-api/storage"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateProductInput struct {
	Name            string   `json:"name" binding:"required"`
	Description     string   `json:"description"`
	Category        string   `json:"category" binding:"required"`
	Price           *float64 `json:"price" binding:"required,gte=0"`
	BulkPrice       float64  `json:"bulk_price" binding:"gte=0"`
	MinBulkQuantity int      `json:"min_bulk_quantity" binding:"gte=0"`
	StockQuantity   int      `json:"stock_quantity" binding:"gte=0"`
	Unit            string   `json:"unit" binding:"required"`
	Images          []string `json:"images"`
	IsActive        *bool    `json:"is_active"`
}

type UpdateProductInput struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	Category        *string  `json:"category"`
	Price           *float64 `json:"price"`
	BulkPrice       *float64 `json:"bulk_price"`
	MinBulkQuantity *int     `json:"min_bulk_quantity"`
	StockQuantity   *int     `json:"stock_quantity"`
	Unit            *string  `json:"unit"`
	IsActive        *bool    `json:"is_active"`
}

// GET /api/products?category=
func GetProducts(store *storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := store.ListProducts(c.Request.Context(), c.Query("category"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GET /api/products/:id
func GetProductByID(store *storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := store.GetProduct(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// POST /api/products
func CreateProduct(store *storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product data", "errors": err.Error()})
			return
		}

		isActive := true
		if input.IsActive != nil {
			isActive = *input.IsActive
		}

		product := models.Product{
			Name:            input.Name,
			Description:     input.Description,
			Category:        input.Category,
			Price:           *input.Price,
			BulkPrice:       input.BulkPrice,
			MinBulkQuantity: input.MinBulkQuantity,
			StockQuantity:   input.StockQuantity,
			Unit:            input.Unit,
			Images:          models.ImageList(input.Images),
			IsActive:        isActive,
		}
		if err := store.CreateProduct(c.Request.Context(), &product); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

// PUT /api/products/:id
func UpdateProduct(store *storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product data", "errors": err.Error()})
			return
		}

		updates := map[string]interface{}{}
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.Description != nil {
			updates["description"] = *input.Description
		}
		if input.Category != nil {
			updates["category"] = *input.Category
		}
		if input.Price != nil {
			updates["price"] = *input.Price
		}
		if input.BulkPrice != nil {
			updates["bulk_price"] = *input.BulkPrice
		}
		if input.MinBulkQuantity != nil {
			updates["min_bulk_quantity"] = *input.MinBulkQuantity
		}
		if input.StockQuantity != nil {
			updates["stock_quantity"] = *input.StockQuantity
		}
		if input.Unit != nil {
			updates["unit"] = *input.Unit
		}
		if input.IsActive != nil {
			updates["is_active"] = *input.IsActive
		}

		product, err := store.UpdateProduct(c.Request.Context(), c.Param("id"), updates)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
