package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseOrderStatus(t *testing.T) {
	status, err := ParseOrderStatus("Shipped")
	require.NoError(t, err)
	require.Equal(t, OrderStatusShipped, status)

	_, err = ParseOrderStatus("teleported")
	require.Error(t, err)
}

func TestParsePaymentStatus(t *testing.T) {
	status, err := ParsePaymentStatus("PAID")
	require.NoError(t, err)
	require.Equal(t, PaymentStatusPaid, status)

	_, err = ParsePaymentStatus("maybe")
	require.Error(t, err)
}

func TestOrderStatusTransitions(t *testing.T) {
	require.True(t, OrderStatusPending.CanTransitionTo(OrderStatusConfirmed))
	require.True(t, OrderStatusPending.CanTransitionTo(OrderStatusDelivered))
	require.True(t, OrderStatusConfirmed.CanTransitionTo(OrderStatusProcessing))

	require.False(t, OrderStatusShipped.CanTransitionTo(OrderStatusConfirmed))
	require.False(t, OrderStatusDelivered.CanTransitionTo(OrderStatusPending))
	require.False(t, OrderStatusPending.CanTransitionTo(OrderStatusPending))
	require.False(t, OrderStatus("teleported").CanTransitionTo(OrderStatusShipped))
}
