package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kulturboden/api/pkg/token"
)

type mockValidator struct {
	claims *token.Claims
}

func (m *mockValidator) Validate(string) *token.Claims {
	return m.claims
}

func TestSession_MissingToken(t *testing.T) {
	t.Parallel()

	handler := Session(&mockValidator{claims: nil})(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/events", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"unauthorized"}`, rec.Body.String())
}

func TestSession_InvalidToken(t *testing.T) {
	t.Parallel()

	handler := Session(&mockValidator{claims: nil})(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	req.Header.Set(SessionHeader, "abgelaufen")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSession_ValidToken(t *testing.T) {
	t.Parallel()

	validator := &mockValidator{claims: &token.Claims{AdminID: 7, Username: "verwaltung"}}

	var adminID int
	var username string
	handler := Session(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		adminID = GetAdminID(r.Context())
		username = GetUsername(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	req.Header.Set(SessionHeader, "gueltig")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 7, adminID)
	assert.Equal(t, "verwaltung", username)
}
