package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/01moynul/aguadelivery-golang/internal/auth"
	"github.com/01moynul/aguadelivery-golang/internal/models"
	"github.com/01moynul/aguadelivery-golang/internal/store"
)

// Local is a Provider that keeps bcrypt hashes on the profile rows and issues
// its own JWTs.
type Local struct {
	users  store.UserRepository
	tokens *auth.TokenIssuer
	newID  func() string
}

func NewLocal(users store.UserRepository, tokens *auth.TokenIssuer) *Local {
	return &Local{users: users, tokens: tokens, newID: uuid.NewString}
}

func (l *Local) SignUp(ctx context.Context, email, password string) (*Identity, error) {
	// 1. --- Reject taken emails ---
	_, err := l.users.FindUserByEmail(ctx, email)
	if err == nil {
		return nil, ErrSignUpRejected
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("look up email: %w", err)
	}

	// 2. --- Hash the Password ---
	var p models.Password
	if err := p.Set(password); err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return &Identity{ID: l.newID(), Email: email, PasswordHash: p.Hash}, nil
}

func (l *Local) SignIn(ctx context.Context, email, password string) (*Session, error) {
	u, err := l.users.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("look up email: %w", err)
	}
	if u.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}

	p := models.Password{Hash: u.PasswordHash}
	ok, err := p.Matches(password)
	if err != nil {
		return nil, fmt.Errorf("compare password: %w", err)
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	token, err := l.tokens.GenerateToken(u.ID)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	return &Session{AccessToken: token, UserID: u.ID}, nil
}

func (l *Local) Verify(_ context.Context, accessToken string) (string, error) {
	userID, err := l.tokens.ValidateToken(accessToken)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return userID, nil
}
