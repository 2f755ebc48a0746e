package security

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

// GeneratePlayerID creates a new UUID identifying an anonymous device
func GeneratePlayerID() string {
	return uuid.New().String()
}

// IsSecureRequest determines if the request is over HTTPS.
// Checks TLS connection, X-Forwarded-Proto header (for reverse proxies), and URL scheme.
func IsSecureRequest(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto == "https" {
		return true
	}
	if r.URL.Scheme == "https" {
		return true
	}
	return false
}

// CreatePlayerCookie creates the long-lived player identity cookie with
// proper security flags. Sessions persist indefinitely, so the cookie is
// given a far-future expiry rather than a session lifetime.
func CreatePlayerCookie(r *http.Request, name, value string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  time.Now().AddDate(5, 0, 0),
		HttpOnly: true,
		Secure:   IsSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
	}
}
