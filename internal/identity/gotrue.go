package identity

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/supabase-community/gotrue-go"
	"github.com/supabase-community/gotrue-go/types"
)

// GoTrue is a Provider backed by a Supabase (GoTrue) auth server. The
// gotrue-go client takes no context, so cancellation is only checked before
// a call is sent; the HTTP timeout bounds the call itself.
type GoTrue struct {
	client gotrue.Client
}

// NewGoTrue points the provider at a Supabase project URL, e.g.
// https://xyz.supabase.co, authenticating with the project's anon key.
func NewGoTrue(baseURL, apiKey string, timeout time.Duration) *GoTrue {
	client := gotrue.New("", apiKey).
		WithCustomGoTrueURL(strings.TrimRight(baseURL, "/") + "/auth/v1").
		WithClient(http.Client{Timeout: timeout})
	return &GoTrue{client: client}
}

// gotrue-go reports non-2xx answers as "response status code N: <body>".
var statusPattern = regexp.MustCompile(`^response status code (\d{3})`)

// rejected reports whether err is a 4xx answer from the auth server.
func rejected(err error) bool {
	m := statusPattern.FindStringSubmatch(err.Error())
	if m == nil {
		return false
	}
	status, _ := strconv.Atoi(m[1])
	return status >= 400 && status < 500
}

func (g *GoTrue) SignUp(ctx context.Context, email, password string) (*Identity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resp, err := g.client.Signup(types.SignupRequest{Email: email, Password: password})
	if err != nil {
		if rejected(err) {
			return nil, fmt.Errorf("%w: %v", ErrSignUpRejected, err)
		}
		return nil, fmt.Errorf("gotrue signup: %w", err)
	}

	// Signup copies the session user into the embedded one when auto-confirm is on.
	u := resp.User
	if u.ID == uuid.Nil {
		return nil, errors.New("gotrue signup: response carried no user id")
	}
	if u.Email == "" {
		u.Email = email
	}
	return &Identity{ID: u.ID.String(), Email: u.Email}, nil
}

func (g *GoTrue) SignIn(ctx context.Context, email, password string) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resp, err := g.client.SignInWithEmailPassword(email, password)
	if err != nil {
		if rejected(err) || errors.Is(err, types.ErrInvalidTokenRequest) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
		}
		return nil, fmt.Errorf("gotrue token: %w", err)
	}
	if resp.AccessToken == "" || resp.User.ID == uuid.Nil {
		return nil, errors.New("gotrue token: incomplete session in response")
	}
	return &Session{AccessToken: resp.AccessToken, UserID: resp.User.ID.String()}, nil
}

func (g *GoTrue) Verify(ctx context.Context, accessToken string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	resp, err := g.client.WithToken(accessToken).GetUser()
	if err != nil {
		if rejected(err) {
			return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
		}
		return "", fmt.Errorf("gotrue user: %w", err)
	}
	if resp.ID == uuid.Nil {
		return "", ErrInvalidToken
	}
	return resp.ID.String(), nil
}
