package paymentControllers

import (
	"errors"
	"math"
	"net/http"

	"github.com/eucamart/eucamart-api/gateway"
	"github.com/eucamart/eucamart-api/models"
	"github.com/eucamart/eucamart-api/storage"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateIntentRequest struct {
	Amount   *float64 `json:"amount" binding:"required,gt=0"`
	Currency string   `json:"currency"`
	OrderID  string   `json:"order_id" binding:"required"`
	UserID   string   `json:"user_id" binding:"required"`
}

type ConfirmPaymentRequest struct {
	PaymentIntentID string `json:"payment_intent_id" binding:"required"`
	OrderID         string `json:"order_id" binding:"required"`
}

// POST /api/create-payment-intent
func CreatePaymentIntent(store *storage.Storage, gw gateway.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateIntentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payment data", "errors": err.Error()})
			return
		}
		currency := req.Currency
		if currency == "" {
			currency = "usd"
		}

		amountMinorUnits := int64(math.Round(*req.Amount * 100))
		intent, err := gw.CreateIntent(c.Request.Context(), amountMinorUnits, currency, map[string]string{
			"orderId": req.OrderID,
			"userId":  req.UserID,
		})
		if err != nil {
			if errors.Is(err, gateway.ErrNotConfigured) {
				c.JSON(http.StatusInternalServerError, gin.H{"message": gateway.ErrNotConfigured.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create payment intent"})
			return
		}

		txn := models.PaymentTransaction{
			OrderID:         req.OrderID,
			UserID:          req.UserID,
			PaymentIntentID: intent.ID,
			Amount:          *req.Amount,
			Currency:        currency,
			Status:          "pending",
			PaymentMethod:   "stripe",
		}
		if err := store.CreatePaymentTransaction(c.Request.Context(), &txn); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to record payment transaction"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"clientSecret":    intent.ClientSecret,
			"paymentIntentId": intent.ID,
		})
	}
}

// POST /api/confirm-payment
// The client reports completion after authorizing with the gateway; there is
// no server-to-gateway verification in this flow.
func ConfirmPayment(store *storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ConfirmPaymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payment data", "errors": err.Error()})
			return
		}

		if _, err := store.ConfirmPayment(c.Request.Context(), req.OrderID, req.PaymentIntentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to confirm payment"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Payment confirmed successfully"})
	}
}

// GET /api/payments?userId=
func ListPayments(store *storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		txns, err := store.ListPaymentTransactions(c.Request.Context(), c.Query("userId"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch payment transactions"})
			return
		}
		c.JSON(http.StatusOK, txns)
	}
}
