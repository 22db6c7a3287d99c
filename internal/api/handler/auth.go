package handler

import (
	"cartscan/internal/config"
	"cartscan/pkg/serrors"
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// SecHandlerOptions configure scan ingestion authentication.
type SecHandlerOptions struct {
	// Token is the shared static secret.
	Token string
	// DeviceTokenSecret verifies per-device JWTs; empty disables them.
	DeviceTokenSecret string
}

// NewSecHandlerOptions maps ingestion auth settings from the configuration.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{
		Token:             cfg.Ingest.Token,
		DeviceTokenSecret: cfg.Ingest.DeviceTokenSecret,
	}
}

// SecHandler authenticates scan submissions. A request may present either the
// static ingest token or a signed device token, in the body, an Authorization
// bearer header, or the token query parameter.
type SecHandler struct {
	opts *SecHandlerOptions
}

// NewSecHandler constructs a SecHandler.
func NewSecHandler(opts *SecHandlerOptions) *SecHandler {
	return &SecHandler{opts: opts}
}

// Verify checks the credential on the request. bodyToken is the token field
// extracted from the request body, when present.
func (s *SecHandler) Verify(r *http.Request, bodyToken string) error {
	token := bodyToken
	if token == "" {
		if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
			token = strings.TrimPrefix(auth, "Bearer ")
		}
	}
	if token == "" {
		token = r.URL.Query().Get("token")
	}
	if token == "" {
		return serrors.With(serrors.ErrUnauthorized, "missing ingest token")
	}

	if subtle.ConstantTimeCompare([]byte(token), []byte(s.opts.Token)) == 1 {
		return nil
	}

	if s.opts.DeviceTokenSecret != "" && s.verifyDeviceToken(token) {
		return nil
	}

	return serrors.With(serrors.ErrUnauthorized, "invalid ingest token")
}

// verifyDeviceToken validates a signed device JWT.
func (s *SecHandler) verifyDeviceToken(token string) bool {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		return []byte(s.opts.DeviceTokenSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	return err == nil && parsed.Valid
}
