// Package auth exposes the current learner session to the rest of the
// client. Sessions are owned by the backend auth service; this package
// only reads them and caches the bearer token locally.
package auth

import (
	"context"

	"github.com/abhisek/sikshya/internal/prefs"
	"github.com/abhisek/sikshya/internal/store"
)

// Session describes the authenticated learner.
type Session struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Class          int    `json:"class"`
	OnboardingDone bool   `json:"onboardingDone"`
}

// Provider exposes the current session, or nil when logged out.
// It is consulted on every navigation attempt; nothing is cached between
// attempts, so an externally invalidated session is re-gated immediately.
type Provider interface {
	Current(ctx context.Context) (*Session, error)
}

const keyToken = "token"

// TokenCache persists the bearer token across restarts.
type TokenCache struct {
	kv store.KV
}

// NewTokenCache wraps a KV store for token storage.
func NewTokenCache(kv store.KV) *TokenCache {
	return &TokenCache{kv: kv}
}

// Load returns the cached token, or "" when absent or unreadable.
// A broken stored token just means logging in again.
func (c *TokenCache) Load(ctx context.Context) string {
	if c.kv == nil {
		return ""
	}
	token, ok, err := c.kv.Get(ctx, prefs.Namespace, keyToken)
	if err != nil || !ok {
		return ""
	}
	return token
}

// Save stores the token; best-effort.
func (c *TokenCache) Save(ctx context.Context, token string) {
	if c.kv == nil {
		return
	}
	_ = c.kv.Set(ctx, prefs.Namespace, keyToken, token)
}

// Clear removes the cached token.
func (c *TokenCache) Clear(ctx context.Context) {
	if c.kv == nil {
		return
	}
	_ = c.kv.Delete(ctx, prefs.Namespace, keyToken)
}
