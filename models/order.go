package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderStatus string
type PaymentStatus string

const (
	// Order statuses (typical e-commerce flow)
	OrderStatusPending    OrderStatus = "pending"    // Order placed, awaiting confirmation
	OrderStatusConfirmed  OrderStatus = "confirmed"  // Payment confirmed
	OrderStatusProcessing OrderStatus = "processing" // Being packed
	OrderStatusShipped    OrderStatus = "shipped"    // Out for delivery
	OrderStatusDelivered  OrderStatus = "delivered"  // Customer received the item

	// Payment statuses
	PaymentStatusPending PaymentStatus = "pending" // Payment not completed yet
	PaymentStatusPaid    PaymentStatus = "paid"    // Payment completed successfully
	PaymentStatusFailed  PaymentStatus = "failed"  // Payment attempt failed
)

// orderStatusRank orders the statuses along the fulfilment chain.
var orderStatusRank = map[OrderStatus]int{
	OrderStatusPending:    0,
	OrderStatusConfirmed:  1,
	OrderStatusProcessing: 2,
	OrderStatusShipped:    3,
	OrderStatusDelivered:  4,
}

// ParseOrderStatus maps a request string onto the closed status set.
func ParseOrderStatus(status string) (OrderStatus, error) {
	s := OrderStatus(strings.ToLower(status))
	if _, ok := orderStatusRank[s]; !ok {
		return "", errors.New("invalid order status")
	}
	return s, nil
}

// ParsePaymentStatus maps a request string onto the closed payment status set.
func ParsePaymentStatus(status string) (PaymentStatus, error) {
	switch s := PaymentStatus(strings.ToLower(status)); s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed:
		return s, nil
	default:
		return "", errors.New("invalid payment status")
	}
}

// CanTransitionTo allows only forward movement along the fulfilment chain.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	from, ok := orderStatusRank[s]
	if !ok {
		return false
	}
	to, ok := orderStatusRank[next]
	if !ok {
		return false
	}
	return to > from
}

type Order struct {
	ID             string        `gorm:"type:uuid;primaryKey" json:"id"`
	OrderNumber    string        `gorm:"unique;not null" json:"order_number"`
	UserID         string        `gorm:"not null;index" json:"user_id"`
	Items          []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Status         OrderStatus   `gorm:"type:varchar(20);default:'pending'" json:"status"`
	PaymentStatus  PaymentStatus `gorm:"type:varchar(20);default:'pending'" json:"payment_status"`
	TotalAmount    float64       `json:"total_amount"`
	TrackingNumber string        `json:"tracking_number"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// OrderItem snapshots the product price at order time; later price changes
// never touch it.
type OrderItem struct {
	ID          string  `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID     string  `gorm:"not null;index" json:"order_id"`
	ProductID   string  `gorm:"not null" json:"product_id"`
	Product     Product `gorm:"foreignKey:ProductID" json:"product"`
	Quantity    int     `gorm:"not null" json:"quantity"`
	UnitPrice   float64 `gorm:"not null" json:"unit_price"`
	TotalPrice  float64 `gorm:"not null" json:"total_price"`
	IsBulkOrder bool    `gorm:"default:false" json:"is_bulk_order"`
}

func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == "" {
		oi.ID = uuid.NewString()
	}
	return nil
}
