package token

import (
	"strings"
	"testing"
	"time"
)

// ============================================================================
// Test Helpers
// ============================================================================

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService(Config{
		Secret: []byte("test-secret"),
		Issuer: "test-issuer",
	})
	if err != nil {
		t.Fatalf("failed to create token service: %v", err)
	}
	return svc
}

// ============================================================================
// Claims.Valid() Tests
// ============================================================================

func TestClaims_Valid_NoExpiration_ReturnsNil(t *testing.T) {
	t.Parallel()
	claims := Claims{
		AdminID:  1,
		Username: "admin",
	}

	err := claims.Valid()

	if err != nil {
		t.Errorf("expected no error for claims without expiration, got %v", err)
	}
}

func TestClaims_Valid_Expired_ReturnsErrTokenExpired(t *testing.T) {
	t.Parallel()
	claims := Claims{
		AdminID:   1,
		ExpiresAt: time.Now().Add(-1 * time.Hour).Unix(),
	}

	err := claims.Valid()

	if err != ErrTokenExpired {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestClaims_Valid_NotYetValid_ReturnsErrTokenNotYetValid(t *testing.T) {
	t.Parallel()
	claims := Claims{
		AdminID:   1,
		NotBefore: time.Now().Add(1 * time.Hour).Unix(),
	}

	err := claims.Valid()

	if err != ErrTokenNotYetValid {
		t.Errorf("expected ErrTokenNotYetValid, got %v", err)
	}
}

// ============================================================================
// Service Tests
// ============================================================================

func TestNewService_EmptySecret_ReturnsError(t *testing.T) {
	t.Parallel()
	_, err := NewService(Config{Issuer: "test-issuer"})

	if err != ErrMissingSecret {
		t.Errorf("expected ErrMissingSecret, got %v", err)
	}
}

func TestNewService_DefaultExpiration_Is24Hours(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	if svc.Expiration() != 24*time.Hour {
		t.Errorf("expected 24h default expiration, got %v", svc.Expiration())
	}
}

func TestSign_ThenValidate_ReturnsClaims(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	tok, err := svc.Sign(Claims{AdminID: 7, Username: "verein"})
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	claims, err := svc.Validate(tok)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}
	if claims.AdminID != 7 {
		t.Errorf("expected admin id 7, got %d", claims.AdminID)
	}
	if claims.Username != "verein" {
		t.Errorf("expected username verein, got %q", claims.Username)
	}
	if claims.Issuer != "test-issuer" {
		t.Errorf("expected issuer test-issuer, got %q", claims.Issuer)
	}
}

func TestSign_SetsExpirationFromService(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	tok, err := svc.Sign(Claims{AdminID: 1})
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	claims, err := svc.Validate(tok)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}

	want := time.Now().Add(24 * time.Hour).Unix()
	if claims.ExpiresAt < want-5 || claims.ExpiresAt > want+5 {
		t.Errorf("expected expiry near %d, got %d", want, claims.ExpiresAt)
	}
}

func TestValidate_ExpiredToken_ReturnsErrTokenExpired(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	tok, err := svc.Sign(Claims{
		AdminID:   1,
		ExpiresAt: time.Now().Add(-1 * time.Hour).Unix(),
	})
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	_, err = svc.Validate(tok)

	if err != ErrTokenExpired {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestValidate_DifferentSecret_ReturnsErrInvalidSignature(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	other, err := NewService(Config{
		Secret: []byte("other-secret"),
		Issuer: "test-issuer",
	})
	if err != nil {
		t.Fatalf("failed to create token service: %v", err)
	}

	tok, err := svc.Sign(Claims{AdminID: 1})
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	_, err = other.Validate(tok)

	if err != ErrInvalidSignature {
		t.Errorf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestValidate_TamperedClaims_ReturnsErrInvalidSignature(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	tok, err := svc.Sign(Claims{AdminID: 1, Username: "admin"})
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	parts := strings.Split(tok, ".")
	parts[1] = base64URLEncode([]byte(`{"admin_id":99,"username":"intruder"}`))

	_, err = svc.Validate(strings.Join(parts, "."))

	if err != ErrInvalidSignature {
		t.Errorf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestValidate_Malformed_ReturnsErrInvalidToken(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	cases := []string{
		"",
		"not-a-token",
		"only.two",
		"a.b.c.d",
	}
	for _, tok := range cases {
		if _, err := svc.Validate(tok); err != ErrInvalidToken {
			t.Errorf("token %q: expected ErrInvalidToken, got %v", tok, err)
		}
	}
}

func TestValidate_WrongIssuer_ReturnsErrInvalidToken(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	other, err := NewService(Config{
		Secret: []byte("test-secret"),
		Issuer: "other-issuer",
	})
	if err != nil {
		t.Fatalf("failed to create token service: %v", err)
	}

	tok, err := other.Sign(Claims{AdminID: 1})
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	_, err = svc.Validate(tok)

	if err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}
