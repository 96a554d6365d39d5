// Package account talks to the hosted account service: login, profile,
// premium upgrades, and result sync. All state beyond the session token
// lives server side.
package account

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/typerush/typerush/internal/store"
)

// User is the account profile returned by the service.
type User struct {
	ID           string     `json:"id"`
	Fullname     string     `json:"fullname"`
	Email        string     `json:"email"`
	Username     string     `json:"username"`
	IsPremium    bool       `json:"isPremium"`
	PremiumSince *time.Time `json:"premiumSince,omitempty"`
}

// APIError is a non-2xx response from the account service.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("account service: %s (status %d)", e.Message, e.Status)
}

// Client is an authenticated account service client.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient creates a client for the service at baseURL. token may be
// empty for login.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}
	var resp struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/user/login", body, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", &APIError{Status: http.StatusOK, Message: "login response missing token"}
	}
	return resp.Token, nil
}

// Me fetches the authenticated user's profile.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var resp struct {
		Data struct {
			User User `json:"user"`
		} `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/user/me", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data.User, nil
}

// UpgradePremium reports a completed payment and returns the upgraded
// profile.
func (c *Client) UpgradePremium(ctx context.Context, orderID, paymentID string) (*User, error) {
	body := map[string]string{"orderId": orderID, "paymentId": paymentID}
	var resp struct {
		Data struct {
			User User `json:"user"`
		} `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/user/upgrade-premium", body, &resp); err != nil {
		return nil, err
	}
	return &resp.Data.User, nil
}

// SyncResult pushes one local session result to the service.
func (c *Client) SyncResult(ctx context.Context, r store.Result) error {
	body := map[string]any{
		"id":          r.ID,
		"createdAt":   r.CreatedAt.Format(time.RFC3339Nano),
		"mode":        r.Mode,
		"challengeId": r.ChallengeID,
		"wpm":         r.WPM,
		"accuracy":    r.Accuracy,
		"completed":   r.Completed,
		"durationSec": r.DurationSec,
		"charsTyped":  r.CharsTyped,
	}
	return c.do(ctx, http.MethodPost, "/api/user/results", body, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(raw)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		msg := apiErr.Error
		if msg == "" {
			msg = apiErr.Message
		}
		if msg == "" {
			msg = resp.Status
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
