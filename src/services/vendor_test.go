package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"wonderpay-server/src/monite"

	"github.com/stretchr/testify/require"
)

// vendorLog counts requests by "METHOD /path".
type vendorLog struct {
	mu     sync.Mutex
	counts map[string]int
}

func (l *vendorLog) bump(r *http.Request) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.counts[r.Method+" "+r.URL.Path]++
}

func (l *vendorLog) count(method, path string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.counts[method+" "+path]
}

// newVendor starts a fake vendor API. routes maps "METHOD /path" to a
// handler; the token endpoint is installed automatically.
func newVendor(t *testing.T, routes map[string]http.HandlerFunc) (*httptest.Server, *vendorLog) {
	t.Helper()
	log := &vendorLog{counts: make(map[string]int)}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.bump(r)

		if r.Method == http.MethodPost && r.URL.Path == "/auth/token" {
			vendorJSON(w, http.StatusOK, map[string]interface{}{"access_token": "tok", "expires_in": 3600})
			return
		}
		if handler, ok := routes[r.Method+" "+r.URL.Path]; ok {
			handler(w, r)
			return
		}
		vendorJSON(w, http.StatusNotFound, map[string]interface{}{
			"error": map[string]string{"message": "no route for " + r.Method + " " + r.URL.Path},
		})
	}))
	t.Cleanup(server.Close)
	return server, log
}

func vendorJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// signedIn returns a session manager with the credential exchange
// already done against the fake vendor.
func signedIn(t *testing.T, url string) *monite.SessionManager {
	t.Helper()
	sessions := monite.NewSessionManager(monite.Config{
		APIURL:       url,
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		EntityID:     "entity-id",
		APIVersion:   "2024-01-31",
	})
	_, err := sessions.GetClient(context.Background())
	require.NoError(t, err)
	return sessions
}

// signedOut returns a session manager that never performed the
// credential exchange.
func signedOut() *monite.SessionManager {
	return monite.NewSessionManager(monite.Config{APIURL: "http://127.0.0.1:1"})
}
