package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNilClientReportsNotConfigured(t *testing.T) {
	client := NewStripeClient("", zap.NewNop())
	require.Nil(t, client)

	_, err := client.CreateIntent(context.Background(), 11800, "usd", nil)
	require.True(t, errors.Is(err, ErrNotConfigured))
}

func TestCreateIntentParsesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/payment_intents", r.URL.Path)
		require.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))
		require.NoError(t, r.ParseForm())
		require.Equal(t, "11800", r.PostForm.Get("amount"))
		require.Equal(t, "usd", r.PostForm.Get("currency"))
		require.Equal(t, "order-1", r.PostForm.Get("metadata[orderId]"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"pi_123","client_secret":"pi_123_secret"}`))
	}))
	defer srv.Close()

	client := &StripeClient{
		secretKey:  "sk_test_123",
		apiURL:     srv.URL,
		httpClient: &http.Client{Timeout: time.Second},
		log:        zap.NewNop(),
	}

	intent, err := client.CreateIntent(context.Background(), 11800, "usd", map[string]string{"orderId": "order-1"})
	require.NoError(t, err)
	require.Equal(t, "pi_123", intent.ID)
	require.Equal(t, "pi_123_secret", intent.ClientSecret)
}

func TestCreateIntentSurfacesGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error":{"type":"card_error","message":"Your card was declined."}}`))
	}))
	defer srv.Close()

	client := &StripeClient{
		secretKey:  "sk_test_123",
		apiURL:     srv.URL,
		httpClient: &http.Client{Timeout: time.Second},
		log:        zap.NewNop(),
	}

	_, err := client.CreateIntent(context.Background(), 11800, "usd", nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "declined")
}
