package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"wikiguess/internal/security"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const PlayerContextKey ContextKey = "player"

// Middleware holds dependencies for middleware functions
type Middleware struct {
	tokenSecret string
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(tokenSecret string) *Middleware {
	return &Middleware{tokenSecret: tokenSecret}
}

// WithPlayer resolves the anonymous player identity for a request. A valid
// signed cookie is reused; anything else (first visit, tampered or corrupt
// cookie) gets a fresh player ID and a new cookie. The request never fails
// on identity problems.
func (m *Middleware) WithPlayer(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var playerID string

		if cookie, err := r.Cookie(PlayerCookieName); err == nil {
			if id, err := security.VerifyPlayerToken(cookie.Value, m.tokenSecret); err == nil {
				playerID = id
			}
		}

		if playerID == "" {
			playerID = security.GeneratePlayerID()

			token, err := security.SignPlayerToken(playerID, m.tokenSecret)
			if err != nil {
				respondWithError(w, http.StatusInternalServerError, ErrMsgInternal, "Failed to sign player token", err)
				return
			}
			http.SetCookie(w, security.CreatePlayerCookie(r, PlayerCookieName, token))
		}

		ctx := context.WithValue(r.Context(), PlayerContextKey, playerID)
		next(w, r.WithContext(ctx))
	}
}

// GetPlayerFromContext retrieves the player ID from the request context
func GetPlayerFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(PlayerContextKey).(string); ok {
		return id
	}
	return ""
}

// Logging wraps a handler with request logging
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		next.ServeHTTP(w, r)

		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}
