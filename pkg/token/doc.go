// Package token provides signed session tokens for the admin back office.
//
// Tokens are HMAC-SHA256 signed, carry the admin id and username, and expire
// after a fixed duration (24 hours by default). They are stateless: logout is
// a client-side discard, and a leaked token remains valid until expiry.
//
// # Signing
//
//	service, err := token.NewService(token.Config{
//	    Secret: []byte(cfg.Auth.SessionSecret),
//	    Issuer: "kulturboden-api",
//	})
//
//	tok, err := service.Sign(token.Claims{AdminID: admin.ID, Username: admin.Username})
//
// # Validation
//
//	claims, err := service.Validate(tok)
//	if err != nil {
//	    // Invalid, expired, or tampered token
//	}
package token
