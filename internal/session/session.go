// Package session owns the login lifecycle: exchanging credentials for a
// token, keeping the token in secure storage, and feeding the display
// identity into the auth store. The domain stores never touch credentials.
package session

import (
	"context"
	"log/slog"
	"strings"

	"github.com/vowsync/vowsync/internal/api"
	"github.com/vowsync/vowsync/internal/auth"
	"github.com/vowsync/vowsync/internal/state"
)

// AuthAPI is the slice of the REST client the session depends on.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, email, password string) error
}

// Session orchestrates authentication for one user.
type Session struct {
	api    AuthAPI
	tokens TokenStore
	auth   *state.AuthStore
}

// New wires a session over the auth API, a token store, and the identity
// cache it should populate.
func New(authAPI AuthAPI, tokens TokenStore, authStore *state.AuthStore) *Session {
	return &Session{api: authAPI, tokens: tokens, auth: authStore}
}

// Token returns the stored bearer token. It satisfies api.TokenSource.
func (s *Session) Token(ctx context.Context) (string, error) {
	return s.tokens.Token()
}

// LoggedIn reports whether a token is currently stored.
func (s *Session) LoggedIn() bool {
	_, err := s.tokens.Token()
	return err == nil
}

// Login validates the form, exchanges credentials for a token, stores the
// token, and fills the identity cache from the token's claims. On failure
// nothing is stored and prior state is untouched.
func (s *Session) Login(ctx context.Context, email, password string) error {
	if err := validateCredentials(email, password); err != nil {
		return err
	}

	token, err := s.api.Login(ctx, email, password)
	if err != nil {
		return err
	}
	if err := s.tokens.SetToken(token); err != nil {
		return err
	}

	// The signature is the server's concern; the client only reads its own
	// identity out of the claims. Fall back to the form email if the token
	// is opaque.
	if claims, err := auth.Decode(token); err == nil {
		s.auth.SetUserID(claims.UserID)
		s.auth.SetEmail(claims.Email)
	} else {
		slog.Debug("token claims not decodable, using form email", "error", err)
		s.auth.SetEmail(email)
	}
	return nil
}

// Resume rebuilds the identity cache from a previously stored token, so
// a restarted client knows who it is without logging in again. Returns
// ErrNoToken when no session is stored.
func (s *Session) Resume() error {
	token, err := s.tokens.Token()
	if err != nil {
		return err
	}
	claims, err := auth.Decode(token)
	if err != nil {
		return err
	}
	s.auth.SetUserID(claims.UserID)
	s.auth.SetEmail(claims.Email)
	return nil
}

// Register creates an account. The caller logs in separately afterwards.
func (s *Session) Register(ctx context.Context, email, password string) error {
	if err := validateCredentials(email, password); err != nil {
		return err
	}
	return s.api.Register(ctx, email, password)
}

// Logout removes the stored token and wipes the identity cache.
func (s *Session) Logout() error {
	if err := s.tokens.Clear(); err != nil {
		return err
	}
	s.auth.Clear()
	return nil
}

func validateCredentials(email, password string) error {
	if email == "" || !strings.Contains(email, "@") {
		return &api.ValidationError{Field: "email", Reason: "a valid email address is required"}
	}
	if password == "" {
		return &api.ValidationError{Field: "password", Reason: "required"}
	}
	return nil
}
