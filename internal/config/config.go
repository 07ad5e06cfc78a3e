package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server ServerConfig
	Store  StoreConfig
	Auth   AuthConfig
	Mail   MailConfig
	Site   SiteConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port           string
	Env            string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	AllowedOrigins []string
}

// StoreConfig holds persistence settings. The backend is decided once at
// load time: when both KVURL and KVPassword are present the hosted key-value
// backend is used, otherwise collections live as local JSON files in DataDir.
type StoreConfig struct {
	KVURL       string
	KVUser      string
	KVPassword  string
	KVNamespace string
	KVDatabase  string
	DataDir     string
}

// UseHosted reports whether the hosted key-value backend is configured.
func (s StoreConfig) UseHosted() bool {
	return s.KVURL != "" && s.KVPassword != ""
}

// AuthConfig holds session token settings
type AuthConfig struct {
	SessionSecret string
	SessionTTL    time.Duration
	Issuer        string
	SeedUsername  string
	SeedPassword  string
}

// MailConfig holds transactional email settings
type MailConfig struct {
	ResendAPIKey string
	FromAddress  string
	AdminAddress string
}

// Enabled reports whether a real mail provider is configured.
func (m MailConfig) Enabled() bool {
	return m.ResendAPIKey != ""
}

// SiteConfig holds public site settings
type SiteConfig struct {
	BaseURL string
	Name    string
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	return &Config{
		Server: ServerConfig{
			Port:           getEnv("SERVER_PORT", "8080"),
			Env:            getEnv("SERVER_ENV", "development"),
			ReadTimeout:    getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:   getDurationEnv("SERVER_WRITE_TIMEOUT", 60*time.Second),
			AllowedOrigins: getSliceEnv("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		},
		Store: StoreConfig{
			KVURL:       getEnv("KV_URL", ""),
			KVUser:      getEnv("KV_USER", "root"),
			KVPassword:  getEnv("KV_PASSWORD", ""),
			KVNamespace: getEnv("KV_NAMESPACE", "kulturboden"),
			KVDatabase:  getEnv("KV_DATABASE", "main"),
			DataDir:     getEnv("DATA_DIR", "./data"),
		},
		Auth: AuthConfig{
			SessionSecret: getEnv("SESSION_SECRET", ""),
			SessionTTL:    getDurationEnv("SESSION_TTL", 24*time.Hour),
			Issuer:        getEnv("SESSION_ISSUER", "kulturboden-api"),
			SeedUsername:  getEnv("ADMIN_SEED_USERNAME", "admin"),
			SeedPassword:  getEnv("ADMIN_SEED_PASSWORD", ""),
		},
		Mail: MailConfig{
			ResendAPIKey: getEnv("RESEND_API_KEY", ""),
			FromAddress:  getEnv("MAIL_FROM", ""),
			AdminAddress: getEnv("MAIL_ADMIN", ""),
		},
		Site: SiteConfig{
			BaseURL: getEnv("SITE_BASE_URL", "http://localhost:8080"),
			Name:    getEnv("SITE_NAME", "Kulturboden"),
		},
	}, nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// Validate checks that all required configuration values are present and valid.
// It returns an error describing all validation failures, or nil if valid.
func (c *Config) Validate() error {
	var errs []error

	// Server validation
	if c.Server.Port == "" {
		errs = append(errs, errors.New("SERVER_PORT is required"))
	}
	if c.Server.Env != "development" && c.Server.Env != "production" && c.Server.Env != "test" {
		errs = append(errs, fmt.Errorf("SERVER_ENV must be 'development', 'production', or 'test', got '%s'", c.Server.Env))
	}
	if len(c.Server.AllowedOrigins) == 0 {
		errs = append(errs, errors.New("CORS_ALLOWED_ORIGINS must have at least one origin"))
	}

	// Store validation: either the hosted backend is fully configured or a
	// local data directory is set. KV_URL without KV_PASSWORD (or vice versa)
	// is a misconfiguration, not a silent fallback.
	if (c.Store.KVURL == "") != (c.Store.KVPassword == "") {
		errs = append(errs, errors.New("KV_URL and KV_PASSWORD must be set together"))
	}
	if !c.Store.UseHosted() && c.Store.DataDir == "" {
		errs = append(errs, errors.New("DATA_DIR is required when no hosted store is configured"))
	}

	// Session validation: the signing secret must be supplied, there is no
	// built-in fallback.
	if c.Auth.SessionSecret == "" {
		errs = append(errs, errors.New("SESSION_SECRET is required"))
	}
	if c.Auth.SessionTTL <= 0 {
		errs = append(errs, errors.New("SESSION_TTL must be positive"))
	}

	// Mail validation: only when a provider key is set
	if c.Mail.Enabled() {
		if c.Mail.FromAddress == "" {
			errs = append(errs, errors.New("MAIL_FROM is required when RESEND_API_KEY is set"))
		}
		if c.Mail.AdminAddress == "" {
			errs = append(errs, errors.New("MAIL_ADMIN is required when RESEND_API_KEY is set"))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getSliceEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return defaultValue
}
