package service

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/kulturboden/api/internal/model"
	"github.com/kulturboden/api/internal/repository"
	"github.com/kulturboden/api/pkg/token"
)

const (
	// bcrypt cost factor (10-14 recommended for production)
	bcryptCost = 12

	// legacySalt is the static salt of the legacy sha256 digest scheme.
	// Kept only to verify admin records imported from the old system; every
	// successful login upgrades the stored hash to bcrypt.
	legacySalt = "kulturboden-2019"
)

// AuthService authenticates back-office users and issues session tokens.
type AuthService struct {
	admins *repository.Admins
	tokens *token.Service
}

// NewAuthService creates the auth service.
func NewAuthService(admins *repository.Admins, tokens *token.Service) *AuthService {
	return &AuthService{admins: admins, tokens: tokens}
}

// LoginResult is a successful login.
type LoginResult struct {
	Token    string
	Username string
	AdminID  int
}

// Login verifies the credentials and issues a session token. Unknown
// usernames and wrong passwords yield the same error.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	admin, err := s.admins.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.verifyPassword(ctx, admin, password) {
		return nil, ErrInvalidCredentials
	}

	tok, err := s.tokens.Sign(token.Claims{
		AdminID:  admin.ID,
		Username: admin.Username,
	})
	if err != nil {
		return nil, fmt.Errorf("sign session token: %w", err)
	}

	return &LoginResult{Token: tok, Username: admin.Username, AdminID: admin.ID}, nil
}

// Validate checks a session token and returns its claims, or nil on any
// failure (missing, malformed, expired, bad signature).
func (s *AuthService) Validate(tok string) *token.Claims {
	if tok == "" {
		return nil
	}
	claims, err := s.tokens.Validate(tok)
	if err != nil {
		return nil
	}
	return claims
}

// Seed creates the initial admin when the collection is empty. Without a
// seed password the back office stays locked until one is configured.
func (s *AuthService) Seed(ctx context.Context, username, password string) error {
	admins, err := s.admins.List(ctx)
	if err != nil {
		return err
	}
	if len(admins) > 0 {
		return nil
	}
	if password == "" {
		slog.Warn("admin collection is empty and no seed password is configured")
		return nil
	}

	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	if _, err := s.admins.Create(ctx, model.Admin{Username: username, PasswordHash: hash}); err != nil {
		return err
	}
	slog.Info("seeded initial admin", slog.String("username", username))
	return nil
}

func (s *AuthService) verifyPassword(ctx context.Context, admin model.Admin, password string) bool {
	if strings.HasPrefix(admin.PasswordHash, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) == nil
	}

	// Legacy record: static-salt sha256 digest. Verify, then upgrade the
	// stored hash so the legacy path is one-way.
	if !verifyLegacyDigest(admin.PasswordHash, password) {
		return false
	}
	if hash, err := HashPassword(password); err == nil {
		if err := s.admins.SetPasswordHash(ctx, admin.ID, hash); err != nil {
			slog.Error("failed to upgrade legacy password hash",
				slog.Int("admin_id", admin.ID),
				slog.String("error", err.Error()),
			)
		}
	}
	return true
}

// HashPassword hashes a password with bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// LegacyDigest computes the old static-salt digest. Exported for data
// import tooling only; new hashes are always bcrypt.
func LegacyDigest(password string) string {
	sum := sha256.Sum256([]byte(password + legacySalt))
	return hex.EncodeToString(sum[:])
}

func verifyLegacyDigest(stored, password string) bool {
	computed := LegacyDigest(password)
	return subtle.ConstantTimeCompare([]byte(stored), []byte(computed)) == 1
}
