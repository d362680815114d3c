package monite

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"wonderpay-server/src/models"

	"github.com/stretchr/testify/require"
)

func testConfig(url string) Config {
	return Config{
		APIURL:       url,
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		EntityID:     "entity-id",
		APIVersion:   "2024-01-31",
	}
}

func TestClientTokenExchange(t *testing.T) {
	var tokenRequests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/token":
			tokenRequests++
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.Equal(t, "2024-01-31", r.Header.Get("x-monite-version"))

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			require.Equal(t, "client_credentials", body["grant_type"])
			require.Equal(t, "client-id", body["client_id"])
			require.Equal(t, "client-secret", body["client_secret"])

			json.NewEncoder(w).Encode(map[string]interface{}{
				"access_token": "tok-1",
				"expires_in":   3600,
			})
		case "/bank_accounts":
			require.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
			require.Equal(t, "entity-id", r.Header.Get("x-monite-entity-id"))
			require.Equal(t, "2024-01-31", r.Header.Get("x-monite-version"))
			json.NewEncoder(w).Encode(map[string]interface{}{"data": []models.BankAccount{{ID: "ba_1"}}})
		default:
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer server.Close()

	client := newClient(testConfig(server.URL))

	accounts, err := client.ListBankAccounts(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	require.Equal(t, "ba_1", accounts[0].ID)

	// A second call reuses the token.
	_, err = client.ListBankAccounts(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, tokenRequests)
}

func TestClientRefreshesExpiringToken(t *testing.T) {
	var tokenRequests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/token":
			tokenRequests++
			// Expires inside the refresh buffer, forcing a new exchange
			// on the next call.
			json.NewEncoder(w).Encode(map[string]interface{}{
				"access_token": "tok",
				"expires_in":   1,
			})
		default:
			json.NewEncoder(w).Encode(map[string]interface{}{"data": []models.BankAccount{}})
		}
	}))
	defer server.Close()

	client := newClient(testConfig(server.URL))

	_, err := client.ListBankAccounts(context.Background())
	require.NoError(t, err)
	_, err = client.ListBankAccounts(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, tokenRequests)
}

func TestClientRejectsEmptyToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"expires_in": 3600})
	}))
	defer server.Close()

	client := newClient(testConfig(server.URL))
	_, err := client.ListBankAccounts(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "access_token")
}

func TestClientParsesVendorError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/token" {
			json.NewEncoder(w).Encode(map[string]interface{}{"access_token": "tok", "expires_in": 3600})
			return
		}
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{"message": "IBAN is invalid"},
		})
	}))
	defer server.Close()

	client := newClient(testConfig(server.URL))
	_, err := client.CreateBankAccount(context.Background(), models.CreateBankAccountRequest{Name: "x"})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	require.Equal(t, "IBAN is invalid", apiErr.Message)
}

func TestClientDefaultTimeout(t *testing.T) {
	client := newClient(testConfig("http://localhost"))
	require.Equal(t, defaultTimeout, client.httpClient.Timeout)
}
