package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
}

func TestCORSAllowsKnownOrigin(t *testing.T) {
	handler := CORSMiddleware(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/bank-accounts", nil)
	req.Header.Set("Origin", "https://wonderpay.app")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, "https://wonderpay.app", rr.Header().Get("Access-Control-Allow-Origin"))
	require.Equal(t, http.StatusOK, rr.Code)
}

func TestCORSIgnoresUnknownOrigin(t *testing.T) {
	handler := CORSMiddleware(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/bank-accounts", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSPreflightShortCircuits(t *testing.T) {
	called := false
	handler := CORSMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/payments/submit", nil)
	req.Header.Set("Origin", "https://wonderpay.app")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.False(t, called)
}

func TestDemoModeBlocksWrites(t *testing.T) {
	handler := DemoModeMiddleware(true)(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/api/payments/submit", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusForbidden, rr.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/payables", nil)
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
}

func TestDemoModeAllowsLogin(t *testing.T) {
	handler := DemoModeMiddleware(true)(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
}

func TestDemoModeDisabledPassesThrough(t *testing.T) {
	handler := DemoModeMiddleware(false)(okHandler())

	req := httptest.NewRequest(http.MethodDelete, "/api/bank-accounts/ba_1", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestJWTAuthMiddlewareAcceptsValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	var email string
	handler := JWTAuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, _ = r.Context().Value("email").(string)
	}))

	signed := signToken(t, "test-secret", jwt.MapClaims{
		"email": "ops@wonderpay.app",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/payables", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "ops@wonderpay.app", email)
}

func TestJWTAuthMiddlewareRejectsBadToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	handler := JWTAuthMiddleware(okHandler())

	cases := map[string]string{
		"missing token": "",
		"wrong secret": signToken(t, "other-secret", jwt.MapClaims{
			"email": "ops@wonderpay.app",
			"exp":   time.Now().Add(time.Hour).Unix(),
		}),
		"expired": signToken(t, "test-secret", jwt.MapClaims{
			"email": "ops@wonderpay.app",
			"exp":   time.Now().Add(-time.Hour).Unix(),
		}),
		"no email claim": signToken(t, "test-secret", jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		}),
	}

	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/payables", nil)
			if token != "" {
				req.Header.Set("Authorization", "Bearer "+token)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)
			require.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}
