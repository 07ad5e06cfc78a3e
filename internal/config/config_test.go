package config

import (
	"strings"
	"testing"
	"time"
)

func validBaseConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           "8080",
			Env:            "development",
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Store: StoreConfig{
			DataDir: "./data",
		},
		Auth: AuthConfig{
			SessionSecret: "test-secret",
			SessionTTL:    24 * time.Hour,
			Issuer:        "kulturboden-api",
		},
	}
}

func TestConfig_Validate_ValidConfig(t *testing.T) {
	cfg := validBaseConfig()

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got error: %v", err)
	}
}

func TestConfig_Validate_InvalidServerEnv(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Server.Env = "invalid"

	err := cfg.Validate()
	if err == nil {
		t.Error("expected error for invalid SERVER_ENV")
	}
	if !strings.Contains(err.Error(), "SERVER_ENV") {
		t.Errorf("expected error to mention SERVER_ENV, got: %v", err)
	}
}

func TestConfig_Validate_MissingPort(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Server.Port = ""

	err := cfg.Validate()
	if err == nil {
		t.Error("expected error for missing SERVER_PORT")
	}
	if !strings.Contains(err.Error(), "SERVER_PORT") {
		t.Errorf("expected error to mention SERVER_PORT, got: %v", err)
	}
}

func TestConfig_Validate_MissingSessionSecret(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Auth.SessionSecret = ""

	err := cfg.Validate()
	if err == nil {
		t.Error("expected error for missing SESSION_SECRET")
	}
	if !strings.Contains(err.Error(), "SESSION_SECRET") {
		t.Errorf("expected error to mention SESSION_SECRET, got: %v", err)
	}
}

func TestConfig_Validate_KVURLWithoutPassword(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Store.KVURL = "ws://kv.example.com:8000"
	cfg.Store.KVPassword = ""

	err := cfg.Validate()
	if err == nil {
		t.Error("expected error for KV_URL without KV_PASSWORD")
	}
	if !strings.Contains(err.Error(), "KV_URL and KV_PASSWORD") {
		t.Errorf("expected error to mention KV_URL and KV_PASSWORD, got: %v", err)
	}
}

func TestConfig_Validate_NoStoreAtAll(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Store.DataDir = ""

	err := cfg.Validate()
	if err == nil {
		t.Error("expected error for missing DATA_DIR")
	}
	if !strings.Contains(err.Error(), "DATA_DIR") {
		t.Errorf("expected error to mention DATA_DIR, got: %v", err)
	}
}

func TestConfig_Validate_MailRequiresAddresses(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Mail.ResendAPIKey = "re_test"

	err := cfg.Validate()
	if err == nil {
		t.Error("expected error for mail key without addresses")
	}
	if !strings.Contains(err.Error(), "MAIL_FROM") {
		t.Errorf("expected error to mention MAIL_FROM, got: %v", err)
	}
	if !strings.Contains(err.Error(), "MAIL_ADMIN") {
		t.Errorf("expected error to mention MAIL_ADMIN, got: %v", err)
	}
}

func TestStoreConfig_UseHosted(t *testing.T) {
	cases := []struct {
		name     string
		url      string
		password string
		want     bool
	}{
		{"both set", "ws://kv:8000", "secret", true},
		{"url only", "ws://kv:8000", "", false},
		{"password only", "", "secret", false},
		{"neither", "", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := StoreConfig{KVURL: tc.url, KVPassword: tc.password}
			if got := s.UseHosted(); got != tc.want {
				t.Errorf("UseHosted() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestConfig_Validate_NonPositiveSessionTTL(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Auth.SessionTTL = 0

	err := cfg.Validate()
	if err == nil {
		t.Error("expected error for zero SESSION_TTL")
	}
	if !strings.Contains(err.Error(), "SESSION_TTL") {
		t.Errorf("expected error to mention SESSION_TTL, got: %v", err)
	}
}
