package middleware

import (
	"context"
	"net/http"

	"github.com/kulturboden/api/pkg/token"
)

// SessionHeader carries the back-office session token. The admin frontend
// sends it verbatim, without a Bearer prefix.
const SessionHeader = "x-session-id"

// SessionValidator checks a session token and returns its claims, or nil
// for any invalid token.
type SessionValidator interface {
	Validate(token string) *token.Claims
}

// Session returns a middleware that gates admin routes behind a valid
// session token. Every failure mode gets the same generic 401 so the
// response leaks nothing about why the token was rejected.
func Session(validator SessionValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := validator.Validate(r.Header.Get(SessionHeader))
			if claims == nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"success":false,"error":"unauthorized"}`))
				return
			}

			ctx := context.WithValue(r.Context(), AdminIDKey, claims.AdminID)
			ctx = context.WithValue(ctx, UsernameKey, claims.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetAdminID extracts the authenticated admin id from context
func GetAdminID(ctx context.Context) int {
	if id, ok := ctx.Value(AdminIDKey).(int); ok {
		return id
	}
	return 0
}

// GetUsername extracts the authenticated admin username from context
func GetUsername(ctx context.Context) string {
	if username, ok := ctx.Value(UsernameKey).(string); ok {
		return username
	}
	return ""
}
