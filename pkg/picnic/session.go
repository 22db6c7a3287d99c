package picnic

import (
	"cartscan/pkg/serrors"
	"context"
)

// Session holds the authentication credential for the catalog. It is owned by
// the caller for the lifetime of one process invocation and passed explicitly
// into each pipeline stage; an empty AuthKey means "not logged in yet".
type Session struct {
	AuthKey string
}

// Authenticated reports whether the session carries a credential.
func (s *Session) Authenticated() bool { return s != nil && s.AuthKey != "" }

// Credentials carries the login inputs for the lazy session bootstrap.
type Credentials struct {
	Username string
	Password string
}

// EnsureAuthenticated establishes a session credential lazily. It is
// idempotent: when the session already carries an auth key it returns without
// any network call. Otherwise both username and password must be present or
// an ErrConfiguration is returned; a rejected login exchange yields
// ErrAuthentication. On success the session is mutated in place. At most one
// login call is made per invocation and it is never retried.
func EnsureAuthenticated(ctx context.Context, catalog Catalog, session *Session, creds Credentials) error {
	if session.Authenticated() {
		return nil
	}
	if creds.Username == "" || creds.Password == "" {
		return serrors.With(serrors.ErrConfiguration, "authentication required, credentials not supplied")
	}

	authKey, err := catalog.Login(ctx, creds.Username, creds.Password)
	if err != nil {
		return serrors.Wrap(serrors.ErrAuthentication, err, "could not login to catalog")
	}
	session.AuthKey = authKey

	return nil
}
