package storage_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/eucamart/eucamart-api/models"
	"github.com/eucamart/eucamart-api/storage"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupStorage(t *testing.T) *storage.Storage {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	s := storage.New(db)
	require.NoError(t, s.AutoMigrate())
	return s
}

func createProduct(t *testing.T, s *storage.Storage, name string, price float64, stock int, active bool) *models.Product {
	t.Helper()
	p := &models.Product{
		Name:          name,
		Category:      "eucalyptus",
		Price:         price,
		StockQuantity: stock,
		Unit:          "bunch",
		IsActive:      active,
	}
	require.NoError(t, s.CreateProduct(context.Background(), p))
	return p
}

func createUser(t *testing.T, s *storage.Storage, email string) *models.User {
	t.Helper()
	u := &models.User{Email: email, FirstName: "Asha", LastName: "Nair"}
	require.NoError(t, s.CreateUser(context.Background(), u))
	return u
}

func TestListProductsSkipsInactive(t *testing.T) {
	s := setupStorage(t)
	ctx := context.Background()

	createProduct(t, s, "Fresh Eucalyptus Leaves", 59, 100, true)
	createProduct(t, s, "Retired Product", 10, 0, false)

	products, err := s.ListProducts(ctx, "")
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.Equal(t, "Fresh Eucalyptus Leaves", products[0].Name)
}

func TestCreateProductPersistsInactiveFlag(t *testing.T) {
	s := setupStorage(t)
	ctx := context.Background()

	product := createProduct(t, s, "Retired Product", 10, 0, false)

	got, err := s.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	require.False(t, got.IsActive)
}

func TestListProductsByCategory(t *testing.T) {
	s := setupStorage(t)
	ctx := context.Background()

	createProduct(t, s, "Fresh Eucalyptus Leaves", 59, 100, true)
	curry := &models.Product{
		Name: "Fresh Curry Leaves", Category: "curry_leaves",
		Price: 49, StockQuantity: 200, Unit: "bunch", IsActive: true,
	}
	require.NoError(t, s.CreateProduct(ctx, curry))

	products, err := s.ListProducts(ctx, "curry_leaves")
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.Equal(t, "Fresh Curry Leaves", products[0].Name)
}

func TestAddCartItemMergesDuplicates(t *testing.T) {
	s := setupStorage(t)
	ctx := context.Background()

	user := createUser(t, s, "asha@example.com")
	product := createProduct(t, s, "Fresh Eucalyptus Leaves", 59, 100, true)

	first, err := s.AddCartItem(ctx, &models.CartItem{UserID: user.ID, ProductID: product.ID, Quantity: 2})
	require.NoError(t, err)
	second, err := s.AddCartItem(ctx, &models.CartItem{UserID: user.ID, ProductID: product.ID, Quantity: 3})
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)

	items, err := s.GetCartItems(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, 5, items[0].Quantity)
}

func TestAddCartItemBulkFlagSeparatesRows(t *testing.T) {
	s := setupStorage(t)
	ctx := context.Background()

	user := createUser(t, s, "asha@example.com")
	product := createProduct(t, s, "Fresh Eucalyptus Leaves", 59, 100, true)

	_, err := s.AddCartItem(ctx, &models.CartItem{UserID: user.ID, ProductID: product.ID, Quantity: 2})
	require.NoError(t, err)
	_, err = s.AddCartItem(ctx, &models.CartItem{UserID: user.ID, ProductID: product.ID, Quantity: 50, IsBulkOrder: true})
	require.NoError(t, err)

	items, err := s.GetCartItems(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
}

func TestUpdateCartItemZeroQuantityRemovesRow(t *testing.T) {
	s := setupStorage(t)
	ctx := context.Background()

	user := createUser(t, s, "asha@example.com")
	product := createProduct(t, s, "Fresh Eucalyptus Leaves", 59, 100, true)

	item, err := s.AddCartItem(ctx, &models.CartItem{UserID: user.ID, ProductID: product.ID, Quantity: 2})
	require.NoError(t, err)

	updated, err := s.UpdateCartItem(ctx, item.ID, 0)
	require.NoError(t, err)
	require.Nil(t, updated)

	items, err := s.GetCartItems(ctx, user.ID)
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestUpdateCartItemOverwritesQuantity(t *testing.T) {
	s := setupStorage(t)
	ctx := context.Background()

	user := createUser(t, s, "asha@example.com")
	product := createProduct(t, s, "Fresh Eucalyptus Leaves", 59, 100, true)

	item, err := s.AddCartItem(ctx, &models.CartItem{UserID: user.ID, ProductID: product.ID, Quantity: 2})
	require.NoError(t, err)

	updated, err := s.UpdateCartItem(ctx, item.ID, 7)
	require.NoError(t, err)
	require.Equal(t, 7, updated.Quantity)
}

func TestUpdateCartItemMissingRow(t *testing.T) {
	s := setupStorage(t)

	_, err := s.UpdateCartItem(context.Background(), "does-not-exist", 3)
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestRemoveCartItemMissingIsNoOp(t *testing.T) {
	s := setupStorage(t)
	require.NoError(t, s.RemoveCartItem(context.Background(), "does-not-exist"))
}

func TestClearCart(t *testing.T) {
	s := setupStorage(t)
	ctx := context.Background()

	user := createUser(t, s, "asha@example.com")
	p1 := createProduct(t, s, "Fresh Eucalyptus Leaves", 59, 100, true)
	p2 := createProduct(t, s, "Eucalyptus Powder", 89, 50, true)

	_, err := s.AddCartItem(ctx, &models.CartItem{UserID: user.ID, ProductID: p1.ID, Quantity: 1})
	require.NoError(t, err)
	_, err = s.AddCartItem(ctx, &models.CartItem{UserID: user.ID, ProductID: p2.ID, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, s.ClearCart(ctx, user.ID))
	items, err := s.GetCartItems(ctx, user.ID)
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestCreateOrderSnapshotsItemsAndDecrementsStock(t *testing.T) {
	s := setupStorage(t)
	ctx := context.Background()

	user := createUser(t, s, "asha@example.com")
	p1 := createProduct(t, s, "Fresh Eucalyptus Leaves", 59, 100, true)
	p2 := createProduct(t, s, "Eucalyptus Powder", 89, 50, true)

	order := &models.Order{
		OrderNumber:   "EUCA00000001",
		UserID:        user.ID,
		Status:        models.OrderStatusPending,
		PaymentStatus: models.PaymentStatusPending,
		TotalAmount:   2*59.00 + 3*89.00,
	}
	items := []models.OrderItem{
		{ProductID: p1.ID, Quantity: 2, UnitPrice: 59.00},
		{ProductID: p2.ID, Quantity: 3, UnitPrice: 89.00},
	}
	require.NoError(t, s.CreateOrder(ctx, order, items))

	detail, err := s.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, detail.Items, 2)
	for _, item := range detail.Items {
		require.Equal(t, item.UnitPrice*float64(item.Quantity), item.TotalPrice)
	}

	got1, err := s.GetProduct(ctx, p1.ID)
	require.NoError(t, err)
	require.Equal(t, 98, got1.StockQuantity)
	got2, err := s.GetProduct(ctx, p2.ID)
	require.NoError(t, err)
	require.Equal(t, 47, got2.StockQuantity)
}

func TestCreateOrderStockCanGoNegative(t *testing.T) {
	s := setupStorage(t)
	ctx := context.Background()

	user := createUser(t, s, "asha@example.com")
	product := createProduct(t, s, "Fresh Eucalyptus Leaves", 59, 1, true)

	order := &models.Order{OrderNumber: "EUCA00000002", UserID: user.ID, TotalAmount: 5 * 59.00}
	items := []models.OrderItem{{ProductID: product.ID, Quantity: 5, UnitPrice: 59.00}}
	require.NoError(t, s.CreateOrder(ctx, order, items))

	got, err := s.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	require.Equal(t, -4, got.StockQuantity)
}

func TestCreateOrderRollsBackOnMidPlacementFailure(t *testing.T) {
	s := setupStorage(t)
	ctx := context.Background()

	user := createUser(t, s, "asha@example.com")
	product := createProduct(t, s, "Fresh Eucalyptus Leaves", 59, 100, true)

	// The duplicated primary key makes the second item insert fail after the
	// first item and its stock decrement have already been applied.
	dupID := uuid.NewString()
	order := &models.Order{OrderNumber: "EUCA00000010", UserID: user.ID, TotalAmount: 4 * 59.00}
	items := []models.OrderItem{
		{ID: dupID, ProductID: product.ID, Quantity: 2, UnitPrice: 59.00},
		{ID: dupID, ProductID: product.ID, Quantity: 2, UnitPrice: 59.00},
	}
	require.Error(t, s.CreateOrder(ctx, order, items))

	orders, err := s.GetOrders(ctx, user.ID)
	require.NoError(t, err)
	require.Empty(t, orders)

	got, err := s.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	require.Equal(t, 100, got.StockQuantity)
}

func TestUpdateOrderStatusForwardOnly(t *testing.T) {
	s := setupStorage(t)
	ctx := context.Background()

	user := createUser(t, s, "asha@example.com")
	order := &models.Order{OrderNumber: "EUCA00000003", UserID: user.ID, Status: models.OrderStatusPending}
	require.NoError(t, s.CreateOrder(ctx, order, nil))

	updated, err := s.UpdateOrderStatus(ctx, order.ID, models.OrderStatusShipped)
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusShipped, updated.Status)

	_, err = s.UpdateOrderStatus(ctx, order.ID, models.OrderStatusConfirmed)
	require.True(t, errors.Is(err, storage.ErrInvalidTransition))

	detail, err := s.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusShipped, detail.Status)
}

func TestSetTrackingNumber(t *testing.T) {
	s := setupStorage(t)
	ctx := context.Background()

	user := createUser(t, s, "asha@example.com")
	order := &models.Order{OrderNumber: "EUCA00000004", UserID: user.ID}
	require.NoError(t, s.CreateOrder(ctx, order, nil))

	updated, err := s.SetTrackingNumber(ctx, order.ID, "TRK123456")
	require.NoError(t, err)
	require.Equal(t, "TRK123456", updated.TrackingNumber)

	_, err = s.SetTrackingNumber(ctx, "does-not-exist", "TRK999")
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestConfirmPaymentIsIdempotent(t *testing.T) {
	s := setupStorage(t)
	ctx := context.Background()

	user := createUser(t, s, "asha@example.com")
	order := &models.Order{
		OrderNumber:   "EUCA00000005",
		UserID:        user.ID,
		Status:        models.OrderStatusPending,
		PaymentStatus: models.PaymentStatusPending,
	}
	require.NoError(t, s.CreateOrder(ctx, order, nil))
	require.NoError(t, s.CreatePaymentTransaction(ctx, &models.PaymentTransaction{
		OrderID: order.ID, UserID: user.ID, PaymentIntentID: "pi_test_1",
		Amount: 118, Currency: "usd", Status: "pending", PaymentMethod: "stripe",
	}))

	confirmed, err := s.ConfirmPayment(ctx, order.ID, "pi_test_1")
	require.NoError(t, err)
	require.Equal(t, models.PaymentStatusPaid, confirmed.PaymentStatus)
	require.Equal(t, models.OrderStatusConfirmed, confirmed.Status)
	_, err = s.ConfirmPayment(ctx, order.ID, "pi_test_1")
	require.NoError(t, err)

	detail, err := s.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, models.PaymentStatusPaid, detail.PaymentStatus)
	require.Equal(t, models.OrderStatusConfirmed, detail.Status)
	require.Len(t, detail.DeliveryTracking, 1)
	require.Equal(t, "Order Confirmed", detail.DeliveryTracking[0].Status)

	txns, err := s.ListPaymentTransactions(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	require.Equal(t, "succeeded", txns[0].Status)
}

func TestConfirmPaymentReplayKeepsLaterStatus(t *testing.T) {
	s := setupStorage(t)
	ctx := context.Background()

	user := createUser(t, s, "asha@example.com")
	order := &models.Order{
		OrderNumber:   "EUCA00000011",
		UserID:        user.ID,
		Status:        models.OrderStatusPending,
		PaymentStatus: models.PaymentStatusPending,
	}
	require.NoError(t, s.CreateOrder(ctx, order, nil))

	_, err := s.ConfirmPayment(ctx, order.ID, "pi_test_4")
	require.NoError(t, err)
	_, err = s.UpdateOrderStatus(ctx, order.ID, models.OrderStatusShipped)
	require.NoError(t, err)

	// replay after fulfilment has moved on
	_, err = s.ConfirmPayment(ctx, order.ID, "pi_test_4")
	require.NoError(t, err)

	detail, err := s.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusShipped, detail.Status)
	require.Equal(t, models.PaymentStatusPaid, detail.PaymentStatus)
	require.Len(t, detail.DeliveryTracking, 1)
}

func TestDeliveryTrackingMostRecentFirst(t *testing.T) {
	s := setupStorage(t)
	ctx := context.Background()

	user := createUser(t, s, "asha@example.com")
	order := &models.Order{OrderNumber: "EUCA00000006", UserID: user.ID}
	require.NoError(t, s.CreateOrder(ctx, order, nil))

	base := time.Now().Add(-time.Hour)
	for i, status := range []string{"Order Confirmed", "Shipped", "Out for Delivery"} {
		require.NoError(t, s.AddDeliveryTracking(ctx, &models.DeliveryTracking{
			OrderID:   order.ID,
			Status:    status,
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	events, err := s.GetDeliveryTracking(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, events, 3)
	require.Equal(t, "Out for Delivery", events[0].Status)
	require.Equal(t, "Order Confirmed", events[2].Status)
}

func TestReviewsJoinCounterpartNames(t *testing.T) {
	s := setupStorage(t)
	ctx := context.Background()

	user := createUser(t, s, "asha@example.com")
	product := createProduct(t, s, "Fresh Eucalyptus Leaves", 59, 100, true)

	require.NoError(t, s.CreateReview(ctx, &models.Review{
		UserID: user.ID, ProductID: product.ID, Rating: 5,
		Title: "Wonderful", Comment: "Fresh and aromatic.", IsVerifiedPurchase: true,
	}))

	byProduct, err := s.GetProductReviews(ctx, product.ID)
	require.NoError(t, err)
	require.Len(t, byProduct, 1)
	require.Equal(t, "Asha", byProduct[0].ReviewerFirstName)
	require.Equal(t, "Nair", byProduct[0].ReviewerLastName)

	byUser, err := s.GetUserReviews(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, byUser, 1)
	require.Equal(t, "Fresh Eucalyptus Leaves", byUser[0].ProductName)
}

func TestGetOrderStats(t *testing.T) {
	s := setupStorage(t)
	ctx := context.Background()

	user := createUser(t, s, "asha@example.com")
	require.NoError(t, s.CreateOrder(ctx, &models.Order{
		OrderNumber: "EUCA00000007", UserID: user.ID,
		Status: models.OrderStatusPending, TotalAmount: 118,
	}, nil))
	require.NoError(t, s.CreateOrder(ctx, &models.Order{
		OrderNumber: "EUCA00000008", UserID: user.ID,
		Status: models.OrderStatusDelivered, TotalAmount: 49,
	}, nil))

	stats, err := s.GetOrderStats(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), stats.TotalOrders)
	require.InDelta(t, 167.0, stats.TotalRevenue, 0.001)
	require.Equal(t, int64(1), stats.PendingOrders)
}

func TestDecrementStock(t *testing.T) {
	s := setupStorage(t)
	ctx := context.Background()

	product := createProduct(t, s, "Fresh Eucalyptus Leaves", 59, 3, true)

	require.NoError(t, s.DecrementStock(ctx, product.ID, 2))
	require.NoError(t, s.DecrementStock(ctx, product.ID, 2))

	got, err := s.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	require.Equal(t, -1, got.StockQuantity)
}

func TestUpdateOrderPaymentStatus(t *testing.T) {
	s := setupStorage(t)
	ctx := context.Background()

	user := createUser(t, s, "asha@example.com")
	order := &models.Order{OrderNumber: "EUCA00000009", UserID: user.ID, PaymentStatus: models.PaymentStatusPending}
	require.NoError(t, s.CreateOrder(ctx, order, nil))

	updated, err := s.UpdateOrderPaymentStatus(ctx, order.ID, models.PaymentStatusFailed)
	require.NoError(t, err)
	require.Equal(t, models.PaymentStatusFailed, updated.PaymentStatus)

	_, err = s.UpdateOrderPaymentStatus(ctx, "does-not-exist", models.PaymentStatusPaid)
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestUpdatePaymentTransactionStatus(t *testing.T) {
	s := setupStorage(t)
	ctx := context.Background()

	user := createUser(t, s, "asha@example.com")
	require.NoError(t, s.CreatePaymentTransaction(ctx, &models.PaymentTransaction{
		OrderID: "order-1", UserID: user.ID, PaymentIntentID: "pi_test_2",
		Amount: 59, Currency: "usd", Status: "pending", PaymentMethod: "stripe",
	}))

	require.NoError(t, s.UpdatePaymentTransactionStatus(ctx, "pi_test_2", "failed"))

	txns, err := s.ListPaymentTransactions(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	require.Equal(t, "failed", txns[0].Status)
}

func TestGetUserByEmail(t *testing.T) {
	s := setupStorage(t)
	ctx := context.Background()

	createUser(t, s, "asha@example.com")

	user, err := s.GetUserByEmail(ctx, "asha@example.com")
	require.NoError(t, err)
	require.Equal(t, "asha@example.com", user.Email)

	_, err = s.GetUserByEmail(ctx, "nobody@example.com")
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
