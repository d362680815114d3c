package monite

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTokenServer(t *testing.T, exchanges *int) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/token" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		*exchanges++
		json.NewEncoder(w).Encode(map[string]interface{}{"access_token": "tok", "expires_in": 3600})
	}))
	t.Cleanup(server.Close)
	return server
}

func TestSessionManagerExchangesOnce(t *testing.T) {
	var exchanges int
	server := newTokenServer(t, &exchanges)

	m := NewSessionManager(testConfig(server.URL))
	require.False(t, m.Active())

	first, err := m.GetClient(context.Background())
	require.NoError(t, err)
	require.True(t, m.Active())

	second, err := m.GetClient(context.Background())
	require.NoError(t, err)
	require.Same(t, first, second)
	require.Equal(t, 1, exchanges)
}

func TestSessionManagerResetDiscardsClient(t *testing.T) {
	var exchanges int
	server := newTokenServer(t, &exchanges)

	m := NewSessionManager(testConfig(server.URL))
	first, err := m.GetClient(context.Background())
	require.NoError(t, err)

	m.Reset()
	require.False(t, m.Active())

	second, err := m.GetClient(context.Background())
	require.NoError(t, err)
	require.NotSame(t, first, second)
	require.Equal(t, 2, exchanges)
}

func TestSessionManagerResetWithoutSession(t *testing.T) {
	m := NewSessionManager(testConfig("http://localhost"))
	m.Reset()
	require.False(t, m.Active())
}

func TestSessionManagerFailedExchange(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{"message": "bad credentials"},
		})
	}))
	defer server.Close()

	m := NewSessionManager(testConfig(server.URL))
	_, err := m.GetClient(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "credential exchange failed")
	require.False(t, m.Active())
}
