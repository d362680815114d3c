package monite

import (
	"context"
	"fmt"
	"sync"
)

// SessionManager owns the single live API client. It replaces a
// process-global singleton: one manager is constructed at startup and
// handed to every service, so tests can run multiple managers side by
// side. Reset and the credential exchange are serialized behind one
// mutex, so a reset can never race an in-flight exchange.
type SessionManager struct {
	mu     sync.Mutex
	cfg    Config
	client *Client
}

func NewSessionManager(cfg Config) *SessionManager {
	return &SessionManager{cfg: cfg}
}

// GetClient returns the live client, performing the client-credentials
// exchange first when none exists. Exactly one client instance exists
// between Reset calls.
func (m *SessionManager) GetClient(ctx context.Context) (*Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client != nil {
		return m.client, nil
	}

	client := newClient(m.cfg)
	client.mu.Lock()
	err := client.fetchToken(ctx)
	client.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("credential exchange failed: %w", err)
	}

	m.client = client
	return m.client, nil
}

// Active reports whether a live session exists. Services use this as
// their fail-fast guard so "not signed in" never turns into a network
// call.
func (m *SessionManager) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.client != nil
}

// Reset discards the held client. Idempotent; safe to call when no
// session exists.
func (m *SessionManager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.client = nil
}
