package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/01moynul/aguadelivery-golang/internal/identity"
)

type stubProvider struct {
	identity.Provider
	verify func(token string) (string, error)
}

func (p stubProvider) Verify(_ context.Context, token string) (string, error) {
	return p.verify(token)
}

func newRouter(p identity.Provider) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/private", AuthMiddleware(p), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": UserID(c)})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	provider := stubProvider{verify: func(token string) (string, error) {
		switch token {
		case "good":
			return "user-1", nil
		case "broken":
			return "", errors.New("connection refused")
		default:
			return "", identity.ErrInvalidToken
		}
	}}
	r := newRouter(provider)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"valid token", "Bearer good", http.StatusOK, `{"userId":"user-1"}`},
		{"lower-case scheme", "bearer good", http.StatusOK, `{"userId":"user-1"}`},
		{"missing header", "", http.StatusUnauthorized, `{"error":"Token de acesso requerido"}`},
		{"no token", "Bearer ", http.StatusUnauthorized, `{"error":"Token de acesso requerido"}`},
		{"wrong scheme", "Basic dXNlcjpwYXNz", http.StatusUnauthorized, `{"error":"Token de acesso requerido"}`},
		{"invalid token", "Bearer forged", http.StatusForbidden, `{"error":"Token inválido ou expirado"}`},
		{"provider failure", "Bearer broken", http.StatusInternalServerError, `{"error":"Erro interno do servidor"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}
