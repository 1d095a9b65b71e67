// Package api implements the HTTP client for the AuthGate server.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
)

// Account mirrors the server's outward account representation. The password
// digest never crosses the wire, so it has no field here.
type Account struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginResult carries the session token minted by the server.
type LoginResult struct {
	Token  string `json:"token"`
	UserID int64  `json:"userId"`
}

// Health is the server's health report.
type Health struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Users     int64  `json:"users"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// doJSON sends a request and decodes the response into out (when out is
// non-nil). Transport-level failures map to ErrUnavailable; an HTTP error
// status is reported with the server's error message.
func (c *Client) doJSON(ctx context.Context, method, path, token string, in, out any) error {

	var body *bytes.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return ErrUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr errorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Error != "" {
			if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
				return fmt.Errorf("%w: %s", ErrUnauthorized, apiErr.Error)
			}
			return errors.New(apiErr.Error)
		}
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return err
		}
	}

	return nil
}

func (c *Client) Register(ctx context.Context, username, email, password string) (*Account, error) {
	in := map[string]string{"username": username, "email": email, "password": password}
	account := &Account{}
	if err := c.doJSON(ctx, http.MethodPost, "/register", "", in, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	in := map[string]string{"email": email, "password": password}
	result := &LoginResult{}
	if err := c.doJSON(ctx, http.MethodPost, "/login", "", in, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) Profile(ctx context.Context, token string) (*Account, error) {
	account := &Account{}
	if err := c.doJSON(ctx, http.MethodGet, "/profile", token, nil, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (c *Client) Health(ctx context.Context) (*Health, error) {
	health := &Health{}
	if err := c.doJSON(ctx, http.MethodGet, "/health", "", nil, health); err != nil {
		return nil, err
	}
	return health, nil
}
