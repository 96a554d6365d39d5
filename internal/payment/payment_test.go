package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/orders", r.URL.Path)
		require.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "premium", body["productId"])

		json.NewEncoder(w).Encode(map[string]any{
			"message": "Order created successfully",
			"razorpayOrder": map[string]any{
				"id":       "order_xyz",
				"amount":   PremiumAmount,
				"currency": PremiumCurrency,
			},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok-123")
	ref, err := c.CreateOrder(context.Background(), "premium", "monthly")
	require.NoError(t, err)
	assert.Equal(t, "order_xyz", ref.OrderID)
	assert.Equal(t, PremiumAmount, ref.Amount)
	assert.Equal(t, "INR", ref.Currency)
}

func TestCreateOrderErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "User not logged in"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")

	_, err := c.CreateOrder(context.Background(), "", "monthly")
	require.Error(t, err)

	_, err = c.CreateOrder(context.Background(), "premium", "monthly")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "User not logged in")
}

func TestVerifySignature(t *testing.T) {
	const secret = "shhh"
	sig := Sign("order_xyz", "pay_abc", secret)

	assert.True(t, VerifySignature("order_xyz", "pay_abc", sig, secret))
	assert.False(t, VerifySignature("order_xyz", "pay_abc", sig, "other-secret"))
	assert.False(t, VerifySignature("order_xyz", "pay_other", sig, secret))
	assert.False(t, VerifySignature("order_xyz", "pay_abc", "forged", secret))
	assert.False(t, VerifySignature("", "pay_abc", sig, secret))
}
