package platform

import (
	"context"
	"sync"
)

// Credentials guards the stored bearer token. Reads and clears are serialized
// so a cleared token is never handed out again until Set stores a new one.
type Credentials struct {
	mu      sync.RWMutex
	storage Storage
}

// NewCredentials returns a credential store backed by s.
func NewCredentials(s Storage) *Credentials {
	return &Credentials{storage: s}
}

// Token returns the stored token and whether one is present.
func (c *Credentials) Token(ctx context.Context) (string, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	tok, err := c.storage.Get(ctx, TokenKey)
	if IsNotFound(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return tok, tok != "", nil
}

// Set stores a new token.
func (c *Credentials) Set(ctx context.Context, token string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.storage.Set(ctx, TokenKey, token)
}

// Clear removes the token.
func (c *Credentials) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.storage.Remove(ctx, TokenKey)
}
