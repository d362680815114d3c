package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"wonderpay-server/src/config"
	"wonderpay-server/src/monite"
	"wonderpay-server/src/util"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Login checks the configured dashboard credential, establishes the
// vendor session, and issues the session-marker JWT the browser holds.
func Login(cfg config.Config, sessions *monite.SessionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var credentials struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}

		if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
			log.Printf("ERROR: Failed to decode login request body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		credentials.Email = strings.TrimSpace(credentials.Email)
		if !util.ValidateEmail(credentials.Email) {
			log.Printf("ERROR: Email validation failed during login - Email: %s", credentials.Email)
			http.Error(w, "invalid email format", http.StatusBadRequest)
			return
		}

		if !strings.EqualFold(credentials.Email, cfg.DashboardEmail) {
			log.Printf("ERROR: Invalid login attempt for email %s from IP %s", credentials.Email, r.RemoteAddr)
			http.Error(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(cfg.DashboardPasswordHash), []byte(credentials.Password)); err != nil {
			log.Printf("ERROR: Invalid password attempt for email %s from IP %s", credentials.Email, r.RemoteAddr)
			http.Error(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}

		// Sign-in owns session initialization: the credential exchange
		// happens here, not lazily inside a resource call.
		if _, err := sessions.GetClient(r.Context()); err != nil {
			log.Printf("ERROR: Failed to establish vendor session for %s: %v", credentials.Email, err)
			http.Error(w, "Authentication failed", http.StatusBadGateway)
			return
		}

		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"email": credentials.Email,
			"exp":   time.Now().Add(time.Hour * 168).Unix(),
		})

		tokenString, err := token.SignedString([]byte(cfg.JWTSecret))
		if err != nil {
			log.Printf("ERROR: Failed to generate JWT token for %s: %v", credentials.Email, err)
			http.Error(w, "Error generating token", http.StatusInternalServerError)
			return
		}

		log.Printf("INFO: Successful login - %s", credentials.Email)

		writeJSON(w, http.StatusOK, map[string]string{
			"token": tokenString,
		})
	}
}

// ResetSession discards the vendor session. The next sign-in performs a
// fresh credential exchange.
func ResetSession(sessions *monite.SessionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessions.Reset()
		log.Printf("INFO: Vendor session reset")
		writeJSON(w, http.StatusOK, map[string]string{"message": "session reset"})
	}
}
