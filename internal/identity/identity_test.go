package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/01moynul/aguadelivery-golang/internal/auth"
	"github.com/01moynul/aguadelivery-golang/internal/models"
	"github.com/01moynul/aguadelivery-golang/internal/store"
)

func TestLocalSignUpSignInVerify(t *testing.T) {
	ctx := context.Background()
	users := store.NewMemory()
	p := NewLocal(users, auth.NewTokenIssuer("test-secret", time.Hour))

	id, err := p.SignUp(ctx, "maria@email.com", "s3nh4-forte")
	require.NoError(t, err)
	require.NotEmpty(t, id.ID)
	require.NotEmpty(t, id.PasswordHash)
	assert.NotEqual(t, "s3nh4-forte", id.PasswordHash)

	require.NoError(t, users.InsertUser(ctx, &models.User{
		ID: id.ID, Name: "Maria", Email: id.Email, PasswordHash: id.PasswordHash,
	}))

	t.Run("duplicate email rejected", func(t *testing.T) {
		_, err := p.SignUp(ctx, "MARIA@email.com", "whatever")
		assert.ErrorIs(t, err, ErrSignUpRejected)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := p.SignIn(ctx, "maria@email.com", "errada")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := p.SignIn(ctx, "ninguem@email.com", "s3nh4-forte")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("valid login yields verifiable token", func(t *testing.T) {
		session, err := p.SignIn(ctx, "maria@email.com", "s3nh4-forte")
		require.NoError(t, err)
		assert.Equal(t, id.ID, session.UserID)

		userID, err := p.Verify(ctx, session.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, id.ID, userID)
	})

	t.Run("bad token", func(t *testing.T) {
		_, err := p.Verify(ctx, "garbage")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

const (
	gotrueUserID    = "6f1c2b7e-3a4d-4e5f-8a9b-0c1d2e3f4a5b"
	gotruePendingID = "0b8e6f2a-9c1d-4b3e-a5f7-1d2c3b4a5e6f"
)

// fakeGoTrue answers like a Supabase auth server for one known account.
func fakeGoTrue(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/auth/v1/signup", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		w.Header().Set("Content-Type", "application/json")
		switch body.Email {
		case "taken@email.com":
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"code":422,"msg":"User already registered"}`))
		case "confirm@email.com":
			// Auto-confirm off: the user is the top-level object.
			_, _ = w.Write([]byte(`{"id":"` + gotruePendingID + `","email":"confirm@email.com"}`))
		default:
			_, _ = w.Write([]byte(`{"access_token":"tok","user":{"id":"` + gotrueUserID + `","email":"` + body.Email + `"}}`))
		}
	})

	mux.HandleFunc("/auth/v1/token", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "password", r.URL.Query().Get("grant_type"))
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		w.Header().Set("Content-Type", "application/json")
		if body.Password != "123456" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant","error_description":"Invalid login credentials"}`))
			return
		}
		_, _ = w.Write([]byte(`{"access_token":"session-token","token_type":"bearer","user":{"id":"` + gotrueUserID + `"}}`))
	})

	mux.HandleFunc("/auth/v1/user", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.Header.Get("Authorization") {
		case "Bearer session-token":
			_, _ = w.Write([]byte(`{"id":"` + gotrueUserID + `","email":"joao@email.com"}`))
		case "Bearer broken":
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"message":"boom"}`))
		default:
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"msg":"invalid JWT"}`))
		}
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestGoTrueProvider(t *testing.T) {
	ctx := context.Background()
	srv := fakeGoTrue(t)
	p := NewGoTrue(srv.URL+"/", "anon-key", 5*time.Second)

	t.Run("sign up", func(t *testing.T) {
		id, err := p.SignUp(ctx, "joao@email.com", "123456")
		require.NoError(t, err)
		assert.Equal(t, gotrueUserID, id.ID)
		assert.Equal(t, "joao@email.com", id.Email)
		assert.Empty(t, id.PasswordHash)
	})

	t.Run("sign up awaiting confirmation", func(t *testing.T) {
		id, err := p.SignUp(ctx, "confirm@email.com", "123456")
		require.NoError(t, err)
		assert.Equal(t, gotruePendingID, id.ID)
	})

	t.Run("sign up rejected", func(t *testing.T) {
		_, err := p.SignUp(ctx, "taken@email.com", "123456")
		assert.ErrorIs(t, err, ErrSignUpRejected)
		assert.Contains(t, err.Error(), "User already registered")
	})

	t.Run("sign in", func(t *testing.T) {
		s, err := p.SignIn(ctx, "joao@email.com", "123456")
		require.NoError(t, err)
		assert.Equal(t, "session-token", s.AccessToken)
		assert.Equal(t, gotrueUserID, s.UserID)
	})

	t.Run("sign in with bad password", func(t *testing.T) {
		_, err := p.SignIn(ctx, "joao@email.com", "nope")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("sign in with empty password", func(t *testing.T) {
		_, err := p.SignIn(ctx, "joao@email.com", "")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("verify", func(t *testing.T) {
		userID, err := p.Verify(ctx, "session-token")
		require.NoError(t, err)
		assert.Equal(t, gotrueUserID, userID)
	})

	t.Run("verify invalid token", func(t *testing.T) {
		_, err := p.Verify(ctx, "expired")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("provider failure is not a token error", func(t *testing.T) {
		_, err := p.Verify(ctx, "broken")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("canceled context", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := p.Verify(canceled, "session-token")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestGoTrueUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	p := NewGoTrue(url, "anon-key", time.Second)
	_, err := p.SignIn(context.Background(), "joao@email.com", "123456")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}
