// Package config manages application configuration for the Kulturboden API.
//
// The config package loads and validates configuration from environment
// variables. All configuration is centralized here to provide a single source
// of truth; in particular the store backend (hosted key-value vs. local JSON
// files) is decided once at load time, never re-checked per request.
//
// # Configuration Loading
//
//	cfg, err := config.Load()
//	if err := cfg.Validate(); err != nil { ... }
//
// # Configuration Groups
//
//   - ServerConfig: HTTP server settings (port, timeouts, CORS origins)
//   - StoreConfig: persistence backend selection and connection settings
//   - AuthConfig: session token signing and admin seeding
//   - MailConfig: transactional email provider settings
//   - SiteConfig: public site base URL and display name
//
// # Environment Variables
//
// Key environment variables:
//
//	SERVER_PORT          - HTTP server port (default: 8080)
//	KV_URL, KV_PASSWORD  - hosted key-value store; both present enables it
//	DATA_DIR             - local JSON file directory (default: ./data)
//	SESSION_SECRET       - session token signing secret (required, no fallback)
//	SESSION_TTL          - session token lifetime (default: 24h)
//	RESEND_API_KEY       - mail provider key; empty disables real sends
//	MAIL_FROM, MAIL_ADMIN - sender and admin notification addresses
package config
