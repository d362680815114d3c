package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"wonderpay-server/src/config"
	"wonderpay-server/src/models"
	"wonderpay-server/src/monite"
	"wonderpay-server/src/notify"
	"wonderpay-server/src/retry"
	"wonderpay-server/src/services"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testEmail    = "ops@wonderpay.app"
	testPassword = "password123"
	testSecret   = "router-test-secret"
)

// newStack wires a full router against a fake vendor API.
func newStack(t *testing.T, vendor http.HandlerFunc) (*httptest.Server, *monite.SessionManager) {
	t.Helper()
	t.Setenv("JWT_SECRET", testSecret)

	vendorServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && r.URL.Path == "/auth/token" {
			json.NewEncoder(w).Encode(map[string]interface{}{"access_token": "tok", "expires_in": 3600})
			return
		}
		if vendor != nil {
			vendor(w, r)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(vendorServer.Close)

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := config.Config{
		Port:                  "8080",
		MoniteAPIURL:          vendorServer.URL,
		MoniteClientID:        "client-id",
		MoniteClientSecret:    "client-secret",
		MoniteEntityID:        "entity-id",
		MoniteAPIVersion:      "2024-01-31",
		JWTSecret:             testSecret,
		DashboardEmail:        testEmail,
		DashboardPasswordHash: string(hash),
		NotificationTTL:       time.Minute,
	}

	center := notify.NewCenter(cfg.NotificationTTL)
	sessions := monite.NewSessionManager(monite.Config{
		APIURL:       cfg.MoniteAPIURL,
		ClientID:     cfg.MoniteClientID,
		ClientSecret: cfg.MoniteClientSecret,
		EntityID:     cfg.MoniteEntityID,
		APIVersion:   cfg.MoniteAPIVersion,
	})

	svc := Services{
		Sessions:     sessions,
		Center:       center,
		Banking:      services.NewBankingService(sessions, center),
		Counterparts: services.NewCounterpartsService(sessions, center),
		Payables:     services.NewPayablesService(sessions, center),
		Payments:     services.NewPaymentsService(sessions, center),
		OCR:          services.NewOCRService(sessions, center, retry.Policy{MaxAttempts: 3, Delay: time.Millisecond}),
		Workflows:    services.NewWorkflowsService(sessions, center),
		Analytics:    services.NewAnalyticsService(sessions, center),
		Entity:       services.NewEntityService(sessions, center),
	}

	app := httptest.NewServer(NewRouter(cfg, svc))
	t.Cleanup(app.Close)
	return app, sessions
}

func login(t *testing.T, app *httptest.Server) string {
	t.Helper()
	body := `{"email":"` + testEmail + `","password":"` + testPassword + `"}`
	resp, err := http.Post(app.URL+"/api/login", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotEmpty(t, out["token"])
	return out["token"]
}

func authedRequest(t *testing.T, method, url, token string, body *bytes.Buffer) *http.Request {
	t.Helper()
	var req *http.Request
	var err error
	if body == nil {
		req, err = http.NewRequest(method, url, nil)
	} else {
		req, err = http.NewRequest(method, url, body)
	}
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestHealth(t *testing.T) {
	app, _ := newStack(t, nil)

	resp, err := http.Get(app.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLoginEstablishesSession(t *testing.T) {
	app, sessions := newStack(t, nil)
	require.False(t, sessions.Active())

	login(t, app)
	require.True(t, sessions.Active())
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app, sessions := newStack(t, nil)

	cases := []struct {
		name   string
		body   string
		status int
	}{
		{"wrong password", `{"email":"` + testEmail + `","password":"nope"}`, http.StatusUnauthorized},
		{"unknown email", `{"email":"other@wonderpay.app","password":"` + testPassword + `"}`, http.StatusUnauthorized},
		{"malformed email", `{"email":"not-an-email","password":"x"}`, http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := http.Post(app.URL+"/api/login", "application/json", strings.NewReader(tc.body))
			require.NoError(t, err)
			resp.Body.Close()
			require.Equal(t, tc.status, resp.StatusCode)
		})
	}

	// No credential exchange happened for rejected sign-ins.
	require.False(t, sessions.Active())
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app, _ := newStack(t, nil)

	resp, err := http.Get(app.URL + "/api/notifications")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestNotificationFeedAfterFailure(t *testing.T) {
	app, _ := newStack(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{"message": "upstream down"},
		})
	})
	token := login(t, app)

	// A failing list emits one destructive notification.
	req := authedRequest(t, http.MethodGet, app.URL+"/api/bank-accounts", token, nil)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusBadGateway, resp.StatusCode)

	req = authedRequest(t, http.MethodGet, app.URL+"/api/notifications", token, nil)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var feed []notify.Notification
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&feed))
	require.Len(t, feed, 1)
	require.Equal(t, notify.KindDestructive, feed[0].Kind)
	require.Equal(t, "Failed to fetch bank accounts", feed[0].Description)
}

func TestSessionResetLocksOutResourceCalls(t *testing.T) {
	app, sessions := newStack(t, nil)
	token := login(t, app)

	req := authedRequest(t, http.MethodPost, app.URL+"/api/session/reset", token, bytes.NewBuffer(nil))
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.False(t, sessions.Active())

	// The JWT is still valid but the vendor session is gone.
	req = authedRequest(t, http.MethodGet, app.URL+"/api/bank-accounts", token, nil)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestScanDocumentEndToEnd(t *testing.T) {
	app, _ := newStack(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/documents":
			json.NewEncoder(w).Encode(models.Document{ID: "doc_1", FileName: "invoice.pdf"})
		case r.Method == http.MethodPost && r.URL.Path == "/documents/doc_1/process":
			json.NewEncoder(w).Encode(models.Payable{
				ID: "pay_1", Amount: 250, Currency: "usd", Status: "draft", DocumentID: "doc_1",
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	token := login(t, app)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="invoice.pdf"`)
	header.Set("Content-Type", "application/pdf")
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	part.Write([]byte("%PDF-1.4 test"))
	require.NoError(t, writer.Close())

	req := authedRequest(t, http.MethodPost, app.URL+"/api/documents/scan", token, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Payable  models.Payable `json:"payable"`
		Attempts int            `json:"attempts"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Equal(t, "pay_1", out.Payable.ID)
	require.Equal(t, 0, out.Attempts)
}

func TestSubmitPaymentEndpointValidation(t *testing.T) {
	app, _ := newStack(t, nil)
	token := login(t, app)

	// Missing method maps to 400 with the selection message.
	body := bytes.NewBufferString(`{"amount":100,"currency":"usd"}`)
	req := authedRequest(t, http.MethodPost, app.URL+"/api/payments/submit", token, body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
