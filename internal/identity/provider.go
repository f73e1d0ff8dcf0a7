// Package identity delegates registration, login and token checks to an
// identity provider.
package identity

import (
	"context"
	"errors"
)

var (
	// ErrSignUpRejected means the provider refused the registration, usually a duplicate email.
	ErrSignUpRejected     = errors.New("identity: sign-up rejected")
	ErrInvalidCredentials = errors.New("identity: invalid credentials")
	ErrInvalidToken       = errors.New("identity: invalid or expired token")
)

// Identity is the account the provider created.
type Identity struct {
	ID    string
	Email string
	// PasswordHash is set only by providers that keep credentials on the profile row.
	PasswordHash string
}

// Session is the result of a successful login.
type Session struct {
	AccessToken string
	UserID      string
}

// Provider is an identity provider.
type Provider interface {
	SignUp(ctx context.Context, email, password string) (*Identity, error)
	SignIn(ctx context.Context, email, password string) (*Session, error)
	// Verify resolves an access token to the user id it was issued for.
	Verify(ctx context.Context, accessToken string) (string, error)
}

var (
	_ Provider = (*Local)(nil)
	_ Provider = (*GoTrue)(nil)
)
