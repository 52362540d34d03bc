package adminControllers

import (
	"net/http"

	"github.com/eucamart/eucamart-api/models"
	"github.com/eucamart/eucamart-api/storage"
	"github.com/gin-gonic/gin"
)

// GET /api/admin/stats
func GetStats(store *storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := store.GetOrderStats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch stats"})
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

// POST /api/admin/seed
// Development convenience: inserts the sample catalog.
func SeedProducts(store *storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		samples := []models.Product{
			{
				Name:            "Fresh Eucalyptus Leaves",
				Description:     "Premium eucalyptus leaves, naturally harvested and chemical-free. Perfect for aromatherapy, steam therapy, and wellness rituals.",
				Category:        "eucalyptus",
				Price:           59.00,
				BulkPrice:       45.00,
				MinBulkQuantity: 50,
				StockQuantity:   100,
				Unit:            "bunch",
				IsActive:        true,
			},
			{
				Name:            "Eucalyptus Powder",
				Description:     "Finely ground eucalyptus powder for Ayurvedic preparations and natural wellness applications.",
				Category:        "eucalyptus",
				Price:           89.00,
				BulkPrice:       70.00,
				MinBulkQuantity: 25,
				StockQuantity:   50,
				Unit:            "kg",
				IsActive:        true,
			},
			{
				Name:            "Fresh Curry Leaves",
				Description:     "Fresh, aromatic curry leaves picked from organic farms. Essential for authentic Indian cooking and traditional remedies.",
				Category:        "curry_leaves",
				Price:           49.00,
				BulkPrice:       35.00,
				MinBulkQuantity: 75,
				StockQuantity:   200,
				Unit:            "bunch",
				IsActive:        true,
			},
			{
				Name:            "Curry Leaves Powder",
				Description:     "Premium curry leaves powder with concentrated flavor and nutrients. Perfect for seasoning and health benefits.",
				Category:        "curry_leaves",
				Price:           79.00,
				BulkPrice:       60.00,
				MinBulkQuantity: 30,
				StockQuantity:   75,
				Unit:            "kg",
				IsActive:        true,
			},
		}

		for i := range samples {
			if err := store.CreateProduct(c.Request.Context(), &samples[i]); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to seed data"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"message": "Sample data seeded successfully!"})
	}
}
