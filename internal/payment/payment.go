// Package payment handles the premium upgrade purchase flow: creating
// an order through the account service and verifying the payment
// provider's signature.
package payment

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Premium price in minor units (paise).
const (
	PremiumAmount   = 900 * 100
	PremiumCurrency = "INR"
)

// OrderRef identifies a created payment order.
type OrderRef struct {
	OrderID  string `json:"id"`
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
}

// Client creates payment orders through the account service.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient creates an authenticated payment client.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// CreateOrder asks the service to create a payment order for the given
// product.
func (c *Client) CreateOrder(ctx context.Context, productID, variant string) (OrderRef, error) {
	if productID == "" || variant == "" {
		return OrderRef{}, fmt.Errorf("productID and variant are required")
	}

	raw, err := json.Marshal(map[string]string{"productId": productID, "varient": variant})
	if err != nil {
		return OrderRef{}, fmt.Errorf("encode order request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/orders", bytes.NewReader(raw))
	if err != nil {
		return OrderRef{}, fmt.Errorf("build order request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return OrderRef{}, fmt.Errorf("create order: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Message == "" {
			apiErr.Message = resp.Status
		}
		return OrderRef{}, fmt.Errorf("create order: %s", apiErr.Message)
	}

	var body struct {
		RazorpayOrder OrderRef `json:"razorpayOrder"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return OrderRef{}, fmt.Errorf("decode order response: %w", err)
	}
	if body.RazorpayOrder.OrderID == "" {
		return OrderRef{}, fmt.Errorf("order response missing order id")
	}
	return body.RazorpayOrder, nil
}

// Sign computes the provider signature over an order and payment pair.
func Sign(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks a payment callback signature in constant time.
func VerifySignature(orderID, paymentID, signature, secret string) bool {
	if orderID == "" || paymentID == "" || signature == "" {
		return false
	}
	want := Sign(orderID, paymentID, secret)
	return hmac.Equal([]byte(want), []byte(signature))
}
