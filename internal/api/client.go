// Package api is the HTTP client for the tutoring backend. It fetches the
// concept catalog and the learner's progress ledger, and drives the auth
// endpoints the access gate depends on.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/abhisek/sikshya/internal/auth"
	"github.com/abhisek/sikshya/internal/catalog"
	"github.com/abhisek/sikshya/internal/ledger"
)

var (
	// ErrUnauthorized signals a missing or rejected credential.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrBadCredentials signals a failed login attempt.
	ErrBadCredentials = errors.New("invalid email or password")
)

// Client talks to the backend API.
type Client struct {
	baseURL  string
	token    string
	clientID string
	hc       *http.Client
}

var _ auth.Provider = (*Client)(nil)

// NewClient creates a client for the given base URL. token may be empty
// (logged out); each client instance sends a stable instance id so the
// backend can correlate requests from one device.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		token:    token,
		clientID: uuid.NewString(),
		hc:       &http.Client{},
	}
}

// Token returns the current bearer token ("" when logged out).
func (c *Client) Token() string {
	return c.token
}

// SetToken replaces the bearer token used for subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Client-ID", c.clientID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}
	return data, nil
}

// Concepts fetches and validates the full concept catalog.
// Any failure is a fetch failure; there is no partial catalog.
func (c *Client) Concepts(ctx context.Context) (*catalog.Catalog, error) {
	data, err := c.do(ctx, http.MethodGet, "/api/concepts", nil)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	cat, err := catalog.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	return cat, nil
}

// Progress fetches the learner's progress ledger.
func (c *Client) Progress(ctx context.Context, userID string) (ledger.Ledger, error) {
	data, err := c.do(ctx, http.MethodGet, "/api/progress/"+userID, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch progress: %w", err)
	}
	led, err := ledger.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("fetch progress: %w", err)
	}
	return led, nil
}

// Current implements auth.Provider. A missing token or a 401 means
// "logged out", which is not an error; the gate handles the nil session.
func (c *Client) Current(ctx context.Context) (*auth.Session, error) {
	if c.token == "" {
		return nil, nil
	}
	data, err := c.do(ctx, http.MethodGet, "/api/auth/me", nil)
	if errors.Is(err, ErrUnauthorized) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var session auth.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &session, nil
}

type loginResponse struct {
	Token string       `json:"token"`
	User  auth.Session `json:"user"`
}

// Login exchanges credentials for a token and adopts it on success.
func (c *Client) Login(ctx context.Context, email, password string) (*auth.Session, error) {
	data, err := c.do(ctx, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if errors.Is(err, ErrUnauthorized) {
		return nil, ErrBadCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	var resp loginResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("decode login response: %w", err)
	}
	c.token = resp.Token
	return &resp.User, nil
}

// CompleteOnboarding records the learner's class and marks onboarding done.
func (c *Client) CompleteOnboarding(ctx context.Context, class int) (*auth.Session, error) {
	data, err := c.do(ctx, http.MethodPost, "/api/auth/onboarding", map[string]int{
		"class": class,
	})
	if err != nil {
		return nil, fmt.Errorf("complete onboarding: %w", err)
	}

	var session auth.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &session, nil
}
